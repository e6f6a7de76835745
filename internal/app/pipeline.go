package app

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/track"
)

// runPipeline is the main recognition loop that processes frames from the camera.
//
// Pipeline logic:
// 1. Read a frame at the configured FPS
// 2. Sample ambient brightness while the calibration window is open
// 3. Run hand detection
// 4. Feed landmarks through the tracking session
// 5. On a locked gesture: resolve the phrase, record it, broadcast it,
//    and hand it to the speech plugin
func (a *App) runPipeline(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	frameInterval := time.Second / time.Duration(a.config.FPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var lastCandidate track.GestureID
	lastCountdown := -1

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			enabled, reset := a.beginFrame()
			if reset {
				lastCandidate = track.GestureNone
				lastCountdown = -1
			}
			if !enabled {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Brightness only matters while the calibration window is open.
			brightness := -1.0
			if !a.session.Calibrator().Ready() {
				brightness = a.brightness.Sample(frame)
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			res := a.session.Process(track.Input{
				Hands:       hands,
				TimestampMs: time.Now().UnixMilli(),
				Brightness:  brightness,
			})

			a.mu.Lock()
			a.lastStatus.CalibrationDone = a.session.Calibrator().Ready()
			a.lastStatus.CountdownSec = res.CountdownSec
			a.lastStatus.Candidate = string(res.Candidate)
			a.mu.Unlock()

			if !a.session.Calibrator().Ready() && res.CountdownSec != lastCountdown {
				lastCountdown = res.CountdownSec
				a.events.BroadcastCountdown(res.CountdownSec, time.Now().UnixMilli())
			}

			if res.Candidate != lastCandidate {
				lastCandidate = res.Candidate
				a.events.BroadcastCandidate(res.Candidate, time.Now().UnixMilli())
			}

			if res.Event != nil {
				a.handleLock(*res.Event)
			}
		}
	}
}

// handleLock records, broadcasts, and speaks a locked gesture.
func (a *App) handleLock(event track.Event) {
	event.Phrase = a.resolvePhrase(event.Gesture)

	log.Printf("Locked gesture %s: %q", event.Gesture, event.Phrase)

	if a.config.Store != nil {
		err := a.config.Store.Transcript().Append(&store.TranscriptEntry{
			ID:         uuid.New().String(),
			Gesture:    string(event.Gesture),
			Phrase:     event.Phrase,
			LockedAtMs: event.TimestampMs,
		})
		if err != nil {
			log.Printf("Failed to record transcript entry: %v", err)
		}
	}

	a.events.BroadcastLock(event)

	a.mu.Lock()
	a.lastPhrase = event.Phrase
	onLock := a.onLock
	a.mu.Unlock()

	if onLock != nil {
		onLock(event)
	}

	go a.speak(event)
}

// resolvePhrase returns the spoken text for a gesture, preferring a stored
// override over the built-in phrase.
func (a *App) resolvePhrase(g track.GestureID) string {
	if a.config.Store != nil {
		override, err := a.config.Store.Phrases().Get(string(g))
		if err == nil {
			return override.Phrase
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Failed to look up phrase override: %v", err)
		}
	}
	return track.Phrase(g)
}

// speak hands a locked phrase to the configured speech plugin, if present.
func (a *App) speak(event track.Event) {
	if a.config.SpeechPlugin == "" {
		return
	}

	p, err := a.pluginMgr.Get(a.config.SpeechPlugin)
	if err != nil {
		if !errors.Is(err, plugin.ErrPluginNotFound) {
			log.Printf("Speech plugin lookup failed: %v", err)
		}
		return
	}
	if !p.Supports("speak") {
		log.Printf("Plugin %s does not declare the speak action", p.Manifest.Name)
		return
	}

	resp, err := a.pluginExec.Execute(p, &plugin.Request{
		Action:  "speak",
		Gesture: string(event.Gesture),
		Phrase:  event.Phrase,
	})
	if err != nil {
		log.Printf("Speech plugin failed: %v", err)
		return
	}
	if !resp.Success {
		log.Printf("Speech plugin error: %s", resp.Error)
	}
}
