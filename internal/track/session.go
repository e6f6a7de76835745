package track

import "github.com/ayusman/mudra/internal/detector"

// maxHands is the number of tracked hand slots.
const maxHands = 2

// Input is one frame delivered to the session: up to two hands plus a
// monotonic timestamp. Brightness is an optional ambient sample in [0,1]
// taken during the calibration window; pass a negative value when absent.
type Input struct {
	Hands       []detector.HandLandmarks
	TimestampMs int64
	Brightness  float64
}

// Result is the outcome of processing one frame.
type Result struct {
	// Event is non-nil at most once per qualifying streak.
	Event *Event

	// Candidate is the gesture seen this frame regardless of streak, for
	// the live "currently seen" display. GestureNone when nothing matched.
	Candidate GestureID

	// CalibrationDone is true only on the frame calibration finalizes.
	CalibrationDone bool

	// CountdownSec is the remaining whole seconds of calibration, 0 once
	// ready.
	CountdownSec int

	// LockPulse is true for a short fixed duration after each lock.
	LockPulse bool
}

// Session owns all mutable classification state for one camera session:
// the calibrator, one classifier per hand slot, and the lock machine. It is
// single threaded and frame driven; every operation runs to completion
// within one Process call and performs no I/O. Frames must arrive in
// monotonic timestamp order.
//
// Hand slots are positional: trackers follow the detector's hand ordering,
// not a stable physical-hand identity. See DESIGN.md.
type Session struct {
	cfg     Config
	cal     *Calibrator
	hands   [maxHands]*Classifier
	lock    *Locker
	started bool
	label   GestureID
}

// NewSession creates a session with fresh state. Processing the first frame
// starts the calibration window.
func NewSession(cfg Config) *Session {
	s := &Session{cfg: cfg}
	s.initState()
	return s
}

func (s *Session) initState() {
	s.cal = NewCalibrator(s.cfg)
	for i := range s.hands {
		s.hands[i] = NewClassifier(s.cfg)
	}
	s.lock = NewLocker(s.cfg)
	s.started = false
	s.label = GestureNone
}

// Reset atomically discards and recreates all mutable state, as required
// when the camera stops and restarts. Partial resets are an invariant
// violation, so everything goes at once.
func (s *Session) Reset() {
	s.initState()
}

// Process runs one classification pass over a frame and advances every
// tracker and the lock machine.
func (s *Session) Process(in Input) Result {
	now := in.TimestampMs
	var res Result

	if !s.started {
		s.cal.Start(now)
		s.started = true
	}

	if !s.cal.Ready() {
		s.cal.Sample(s.frameHandSize(in.Hands), in.Brightness)
		if s.cal.WindowElapsed(now) {
			s.cal.Finalize()
			res.CalibrationDone = true
		}
	}
	res.CountdownSec = s.cal.CountdownSeconds(now)

	var results [maxHands]GestureID
	var pts [maxHands][]detector.Point3D
	for i := 0; i < maxHands; i++ {
		if i >= len(in.Hands) {
			s.hands[i].Reset()
			continue
		}
		pts[i] = in.Hands[i].Points[:]
		results[i] = s.hands[i].Classify(pts[i], s.scaleRef(pts[i]), now)
	}

	var candidate GestureID
	if len(in.Hands) >= 2 {
		candidate = combine(s.cfg, results[0], results[1], pts[0], pts[1], s.cal.Baseline())
	} else if results[0] != GestureNone {
		candidate = results[0]
	} else {
		candidate = results[1]
	}

	if ev, ok := s.lock.Step(candidate, now); ok {
		res.Event = &ev
	}

	// The "currently seen" label updates on every non-null frame,
	// independent of streak or lock.
	if candidate != GestureNone {
		s.label = candidate
	}
	res.Candidate = candidate
	res.LockPulse = s.lock.PulseActive(now)
	return res
}

// scaleRef computes the floored per-hand scale reference:
// max(current hand size, calibration baseline, epsilon).
func (s *Session) scaleRef(pts []detector.Point3D) float64 {
	scale := HandSize(pts)
	if b := s.cal.Baseline(); b > scale {
		scale = b
	}
	if scale < s.cfg.MinHandSize {
		scale = s.cfg.MinHandSize
	}
	return scale
}

// frameHandSize is the calibration sample for one frame: the larger hand's
// size, or 0 when no hand is present.
func (s *Session) frameHandSize(hands []detector.HandLandmarks) float64 {
	var size float64
	for i := range hands {
		if sz := HandSize(hands[i].Points[:]); sz > size {
			size = sz
		}
	}
	return size
}

// Calibrator exposes the session's calibration state for status reads.
func (s *Session) Calibrator() *Calibrator {
	return s.cal
}

// Locker exposes the lock machine for status reads.
func (s *Session) Locker() *Locker {
	return s.lock
}

// CurrentLabel returns the most recently seen candidate for display.
func (s *Session) CurrentLabel() GestureID {
	return s.label
}
