package track

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func processHold(s *Session, hand detector.HandLandmarks, frames int, startMs, stepMs int64) []Event {
	var events []Event
	for i := 0; i < frames; i++ {
		res := s.Process(Input{
			Hands:       []detector.HandLandmarks{hand},
			TimestampMs: startMs + int64(i)*stepMs,
			Brightness:  -1,
		})
		if res.Event != nil {
			events = append(events, *res.Event)
		}
	}
	return events
}

func TestSession_LocksHeldGesture(t *testing.T) {
	s := NewSession(DefaultConfig())

	events := processHold(s, detector.FistLandmarks(), 10, 0, 33)
	if len(events) != 1 {
		t.Fatalf("got %d events from 10 fist frames, want 1", len(events))
	}
	if events[0].Gesture != GestureYes {
		t.Errorf("locked %q, want yes", events[0].Gesture)
	}
	if events[0].Phrase != "Yes" {
		t.Errorf("phrase = %q, want %q", events[0].Phrase, "Yes")
	}
	if s.CurrentLabel() != GestureYes {
		t.Errorf("CurrentLabel = %q, want yes", s.CurrentLabel())
	}
}

func TestSession_CandidateUpdatesEveryFrame(t *testing.T) {
	s := NewSession(DefaultConfig())

	res := s.Process(Input{
		Hands:       []detector.HandLandmarks{detector.WShapeLandmarks()},
		TimestampMs: 0,
		Brightness:  -1,
	})
	if res.Event != nil {
		t.Error("single frame must not lock")
	}
	if res.Candidate != GestureWater {
		t.Errorf("Candidate = %q, want water on the very first frame", res.Candidate)
	}
}

func TestSession_CalibrationLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg)

	hand := detector.FistLandmarks()
	var doneAt int64 = -1
	for i := int64(0); i*100 <= cfg.CalibrationMs+200; i++ {
		res := s.Process(Input{
			Hands:       []detector.HandLandmarks{hand},
			TimestampMs: i * 100,
			Brightness:  0.5,
		})
		if res.CalibrationDone {
			if doneAt >= 0 {
				t.Fatal("calibration finalized twice")
			}
			doneAt = i * 100
		}
	}

	if doneAt < cfg.CalibrationMs {
		t.Errorf("calibration finalized at %dms, before the %dms window", doneAt, cfg.CalibrationMs)
	}
	if !s.Calibrator().Ready() {
		t.Fatal("calibrator should be ready")
	}
	// Every frame carried the same hand, so the baseline is its size.
	if b := s.Calibrator().Baseline(); b < 0.09 || b > 0.11 {
		t.Errorf("baseline = %f, want about 0.10", b)
	}
}

func TestSession_TwoHandOverride(t *testing.T) {
	s := NewSession(DefaultConfig())

	h0 := detector.FistLandmarks()
	h1 := detector.FistLandmarks().Translate(0.03, 0)

	var events []Event
	for i := 0; i < 10; i++ {
		res := s.Process(Input{
			Hands:       []detector.HandLandmarks{h0, h1},
			TimestampMs: int64(i) * 33,
			Brightness:  -1,
		})
		if res.Candidate != GestureRestroom {
			t.Fatalf("frame %d candidate = %q, want restroom", i, res.Candidate)
		}
		if res.Event != nil {
			events = append(events, *res.Event)
		}
	}

	if len(events) != 1 || events[0].Gesture != GestureRestroom {
		t.Fatalf("expected exactly one restroom lock, got %v", events)
	}
}

func TestSession_DropoutResetsStreak(t *testing.T) {
	s := NewSession(DefaultConfig())

	hand := detector.WShapeLandmarks()
	if events := processHold(s, hand, 9, 0, 33); len(events) != 0 {
		t.Fatal("nine frames must not lock")
	}

	// An empty frame clears the streak and resets the hand's trackers.
	res := s.Process(Input{TimestampMs: 9 * 33, Brightness: -1})
	if res.Candidate != GestureNone {
		t.Errorf("empty frame candidate = %q, want none", res.Candidate)
	}

	events := processHold(s, hand, 9, 10*33, 33)
	if len(events) != 0 {
		t.Error("streak must restart from scratch after the dropout")
	}
	events = processHold(s, hand, 1, 19*33, 33)
	if len(events) != 1 {
		t.Errorf("got %d events on the tenth consecutive frame, want 1", len(events))
	}
}

func TestSession_ResetDiscardsAllState(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg)

	processHold(s, detector.FistLandmarks(), 10, 0, 33)
	if _, _, ok := s.Locker().LastLocked(); !ok {
		t.Fatal("expected a lock before reset")
	}

	s.Reset()

	if _, _, ok := s.Locker().LastLocked(); ok {
		t.Error("reset must clear the lock history")
	}
	if s.Calibrator().Ready() {
		t.Error("reset must restart calibration")
	}
	if s.CurrentLabel() != GestureNone {
		t.Error("reset must clear the current label")
	}

	// The same gesture locks again in the fresh session.
	events := processHold(s, detector.FistLandmarks(), 10, 60000, 33)
	if len(events) != 1 {
		t.Errorf("got %d events after reset, want 1", len(events))
	}
}

func TestSession_LockPulse(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg)

	processHold(s, detector.FistLandmarks(), 10, 0, 33)

	res := s.Process(Input{
		Hands:       []detector.HandLandmarks{detector.FistLandmarks()},
		TimestampMs: 9*33 + cfg.PulseMs/2,
		Brightness:  -1,
	})
	if !res.LockPulse {
		t.Error("pulse should be active shortly after the lock")
	}

	res = s.Process(Input{
		Hands:       []detector.HandLandmarks{detector.FistLandmarks()},
		TimestampMs: 9*33 + cfg.PulseMs + 100,
		Brightness:  -1,
	})
	if res.LockPulse {
		t.Error("pulse should expire after PulseMs")
	}
}
