package track

import "math"

// Calibrator accumulates hand-size and ambient-brightness samples over a
// fixed window at session start and freezes a baseline once the window
// elapses. Classification may run during the window using the current-frame
// hand size; the baseline only refines the scale floor afterwards.
// Calibration never fails: with no valid hand samples the baseline stays 0
// and callers fall back to the current hand size.
type Calibrator struct {
	cfg Config

	startedMs     int64
	started       bool
	sizeCount     int
	sumHandSize   float64
	brightCount   int
	sumBrightness float64

	baselineHandSize float64
	brightness       float64
	ready            bool
}

// NewCalibrator creates an idle Calibrator. Start must be called at session
// start before sampling.
func NewCalibrator(cfg Config) *Calibrator {
	return &Calibrator{cfg: cfg}
}

// Start resets all state and marks the window origin.
func (c *Calibrator) Start(nowMs int64) {
	*c = Calibrator{cfg: c.cfg, startedMs: nowMs, started: true}
}

// Sample accumulates one frame's measurements during the active window.
// A non-positive handSize means no hand was present this frame and is
// skipped; a negative brightness means no brightness sample was taken.
// Samples after finalization are ignored.
func (c *Calibrator) Sample(handSize, brightness float64) {
	if !c.started || c.ready {
		return
	}
	if handSize > 0 {
		c.sumHandSize += handSize
		c.sizeCount++
	}
	if brightness >= 0 {
		c.sumBrightness += brightness
		c.brightCount++
	}
}

// WindowElapsed reports whether the calibration window has run its course.
func (c *Calibrator) WindowElapsed(nowMs int64) bool {
	return c.started && nowMs-c.startedMs >= c.cfg.CalibrationMs
}

// Finalize freezes the baseline as the mean of the accumulated samples.
func (c *Calibrator) Finalize() {
	if c.ready {
		return
	}
	if c.sizeCount > 0 {
		c.baselineHandSize = c.sumHandSize / float64(c.sizeCount)
	}
	if c.brightCount > 0 {
		c.brightness = c.sumBrightness / float64(c.brightCount)
	}
	c.ready = true
}

// Ready reports whether the baseline has been frozen.
func (c *Calibrator) Ready() bool {
	return c.ready
}

// Baseline returns the frozen baseline hand size, 0 before finalization or
// when no hand was ever sampled.
func (c *Calibrator) Baseline() float64 {
	return c.baselineHandSize
}

// Brightness returns the mean ambient brightness in [0,1].
func (c *Calibrator) Brightness() float64 {
	return c.brightness
}

// CountdownSeconds is the UI-facing number of whole seconds remaining in
// the window. It is a derived read, not owned state.
func (c *Calibrator) CountdownSeconds(nowMs int64) int {
	if !c.started || c.ready {
		return 0
	}
	remaining := c.cfg.CalibrationMs - (nowMs - c.startedMs)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(float64(remaining) / 1000.0))
}
