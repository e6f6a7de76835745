// Package app provides the main application logic for the Mudra communicator.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/track"
)

// Config holds configuration options for the application.
type Config struct {
	Store           *store.Store
	PluginDir       string
	SpeechPlugin    string
	PluginTimeoutMs int
	CameraID        int
	FPS             int
	Track           track.Config
	Detector        detector.Config
}

// App is the main application that turns camera frames into locked phrases.
type App struct {
	config     Config
	camera     capture.Camera
	brightness *capture.BrightnessSampler
	detector   detector.Detector
	session    *track.Session
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor
	events     *server.EventsHub

	enabled      bool
	resetPending bool
	lastPhrase   string
	lastStatus   server.SessionStatus
	onLock       func(track.Event)
	mu           sync.RWMutex
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.FPS <= 0 {
		config.FPS = capture.DefaultFPS
	}
	if config.PluginTimeoutMs <= 0 {
		config.PluginTimeoutMs = 5000
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		brightness: capture.NewBrightnessSampler(),
		session:    track.NewSession(config.Track),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(config.PluginTimeoutMs),
		events:     server.NewEventsHub(),
		enabled:    false,
		stopCh:     nil,
	}
	a.camera.SetFPS(config.FPS)

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture recognition. Disabling and
// re-enabling restarts the session from a fresh calibration.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if enabled && !a.enabled {
		// While the pipeline is running, its goroutine owns the session;
		// hand the reset over so a frame in flight never sees
		// half-replaced state.
		if a.stopCh != nil {
			a.resetPending = true
		} else {
			a.session.Reset()
		}
	}
	a.enabled = enabled
}

// beginFrame is called by the pipeline loop before each frame. It reports
// whether recognition is enabled and applies any session reset requested
// since the previous frame.
func (a *App) beginFrame() (enabled, reset bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.resetPending {
		a.session.Reset()
		a.resetPending = false
		reset = true
	}
	return a.enabled, reset
}

// IsEnabled returns whether gesture recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetOnLock registers a callback invoked for every locked gesture, after
// the event has been recorded and broadcast.
func (a *App) SetOnLock(fn func(track.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onLock = fn
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start begins the recognition pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the recognition pipeline and releases resources. The camera
// is closed only after the pipeline loop has exited, so no frame read is
// in flight when the device goes away.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, doneCh := a.stopCh, a.doneCh
	a.stopCh, a.doneCh = nil, nil
	a.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if d := a.Detector(); d != nil {
		if err := d.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// Status returns a snapshot of the pipeline for the status endpoint.
func (a *App) Status() server.SessionStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()

	status := a.lastStatus
	status.Running = a.stopCh != nil && a.enabled
	status.LastPhrase = a.lastPhrase
	return status
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Session returns the gesture tracking session.
func (a *App) Session() *track.Session {
	return a.session
}

// Events returns the WebSocket events hub.
func (a *App) Events() *server.EventsHub {
	return a.events
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
