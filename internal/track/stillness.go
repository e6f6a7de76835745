package track

// stillnessTracker accumulates the time a wrist has stayed within a small
// absolute displacement between frames while an open or four-finger shape
// is held. Like the wave tracker it is per hand slot and reset when the
// qualifying shape disappears.
type stillnessTracker struct {
	active       bool
	lastX, lastY float64
	stillMs      float64
	lastFrameMs  int64
}

func (s *stillnessTracker) reset() {
	*s = stillnessTracker{}
}

// observe feeds one frame's wrist position and returns the accumulated
// stillness in milliseconds. Time only accrues while both axis deltas stay
// below the epsilon; movement pauses accumulation without clearing it.
func (s *stillnessTracker) observe(cfg Config, x, y float64, nowMs int64) float64 {
	if !s.active {
		*s = stillnessTracker{active: true, lastX: x, lastY: y, lastFrameMs: nowMs}
		return 0
	}

	dt := float64(nowMs - s.lastFrameMs)
	dx := x - s.lastX
	dy := y - s.lastY
	if dx < cfg.StillEpsilon && dx > -cfg.StillEpsilon &&
		dy < cfg.StillEpsilon && dy > -cfg.StillEpsilon {
		s.stillMs += dt
	}

	s.lastX = x
	s.lastY = y
	s.lastFrameMs = nowMs
	return s.stillMs
}

// consume zeroes the accumulated stillness after a successful trigger while
// keeping the tracker live for the next accumulation.
func (s *stillnessTracker) consume() {
	s.stillMs = 0
}
