package track

import "testing"

// feed runs a candidate stream through the locker at a fixed frame interval
// and returns the emitted events.
func feed(l *Locker, startMs int64, stepMs int64, stream []GestureID) []Event {
	var events []Event
	for i, c := range stream {
		if ev, ok := l.Step(c, startMs+int64(i)*stepMs); ok {
			events = append(events, ev)
		}
	}
	return events
}

func repeat(g GestureID, n int) []GestureID {
	out := make([]GestureID, n)
	for i := range out {
		out[i] = g
	}
	return out
}

func TestLocker_StreakEmitsOnce(t *testing.T) {
	l := NewLocker(DefaultConfig())

	events := feed(l, 0, 33, repeat(GestureYes, 10))
	if len(events) != 1 {
		t.Fatalf("got %d events for a 10-frame streak, want 1", len(events))
	}
	if events[0].Gesture != GestureYes {
		t.Errorf("locked gesture = %q, want yes", events[0].Gesture)
	}
	if events[0].Phrase != Phrase(GestureYes) {
		t.Errorf("locked phrase = %q, want %q", events[0].Phrase, Phrase(GestureYes))
	}
}

func TestLocker_NullResetsStreak(t *testing.T) {
	l := NewLocker(DefaultConfig())

	// Nine frames, a dropout, then ten more: the dropout must clear the
	// streak, so only the trailing run locks.
	stream := append(repeat(GestureHello, 9), GestureNone)
	stream = append(stream, repeat(GestureHello, 10)...)

	events := feed(l, 0, 33, stream)
	if len(events) != 1 {
		t.Fatalf("got %d events, want exactly 1 (from the post-dropout streak)", len(events))
	}

	t.Run("nine frames alone never lock", func(t *testing.T) {
		l := NewLocker(DefaultConfig())
		stream := append(repeat(GestureHello, 9), GestureNone)
		if events := feed(l, 0, 33, stream); len(events) != 0 {
			t.Errorf("got %d events from a 9-frame streak, want 0", len(events))
		}
	})
}

func TestLocker_SameGestureSuppression(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("held gesture locks once", func(t *testing.T) {
		l := NewLocker(cfg)
		// Two full streak lengths with no intervening different gesture.
		events := feed(l, 0, 500, repeat(GestureWater, 20))
		if len(events) != 1 {
			t.Errorf("got %d events, want 1 despite elapsed cooldown", len(events))
		}
	})

	t.Run("different gesture re-arms the suppression", func(t *testing.T) {
		l := NewLocker(cfg)
		// 500ms frames keep every streak comfortably past the cooldown.
		stream := append(repeat(GestureWater, 10), repeat(GestureHelp, 10)...)
		stream = append(stream, repeat(GestureWater, 10)...)

		events := feed(l, 0, 500, stream)
		if len(events) != 3 {
			t.Fatalf("got %d events, want 3", len(events))
		}
		want := []GestureID{GestureWater, GestureHelp, GestureWater}
		for i, ev := range events {
			if ev.Gesture != want[i] {
				t.Errorf("event %d = %q, want %q", i, ev.Gesture, want[i])
			}
		}
	})
}

func TestLocker_Cooldown(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLocker(cfg)

	// First lock at frame 10 (33ms frames). The second gesture reaches its
	// streak well inside the cooldown and must stay suppressed until it
	// elapses.
	stream := append(repeat(GestureYes, 10), repeat(GestureWait, 100)...)
	events := feed(l, 0, 33, stream)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Gesture != GestureWait {
		t.Errorf("second event = %q, want wait", events[1].Gesture)
	}
	if delta := events[1].TimestampMs - events[0].TimestampMs; delta < cfg.CooldownMs {
		t.Errorf("second lock after %dms, inside the %dms cooldown", delta, cfg.CooldownMs)
	}
}

func TestLocker_Pulse(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLocker(cfg)

	if l.PulseActive(0) {
		t.Error("pulse must be idle before any lock")
	}

	feed(l, 0, 33, repeat(GestureStop, 10))
	lockAt := int64(9 * 33)

	if !l.PulseActive(lockAt + cfg.PulseMs/2) {
		t.Error("pulse should be active shortly after a lock")
	}
	if l.PulseActive(lockAt + cfg.PulseMs + 1) {
		t.Error("pulse should expire after PulseMs")
	}
}

func TestLocker_Reset(t *testing.T) {
	l := NewLocker(DefaultConfig())

	feed(l, 0, 33, repeat(GestureYes, 10))
	l.Reset()

	if _, _, ok := l.LastLocked(); ok {
		t.Error("reset must clear the lock history")
	}

	// After reset the same gesture can lock again immediately.
	events := feed(l, 10000, 33, repeat(GestureYes, 10))
	if len(events) != 1 {
		t.Errorf("got %d events after reset, want 1", len(events))
	}
}
