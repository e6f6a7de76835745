package track

// waveTracker watches wrist x oscillation while the four-finger shape is
// held. It carries mutable state across frames for one hand slot and must
// be reset whenever the qualifying shape disappears.
type waveTracker struct {
	active        bool
	lastX         float64
	lastDir       int // -1, 0, 1
	flips         int
	windowStartMs int64
	minX, maxX    float64
}

func (w *waveTracker) reset() {
	*w = waveTracker{}
}

func (w *waveTracker) restart(x float64, nowMs int64) {
	*w = waveTracker{
		active:        true,
		lastX:         x,
		windowStartMs: nowMs,
		minX:          x,
		maxX:          x,
	}
}

// observe feeds one frame's wrist x position and reports whether a wave
// completed. The window restarts when it expires without triggering and
// immediately after a trigger, so one swing cannot fire twice.
func (w *waveTracker) observe(cfg Config, x, scale float64, nowMs int64) bool {
	if !w.active {
		w.restart(x, nowMs)
		return false
	}

	if nowMs-w.windowStartMs > cfg.WaveWindowMs {
		w.restart(x, nowMs)
		return false
	}

	dx := x - w.lastX
	if dx > cfg.WaveStepCoeff*scale || dx < -cfg.WaveStepCoeff*scale {
		dir := 1
		if dx < 0 {
			dir = -1
		}
		if w.lastDir != 0 && dir != w.lastDir {
			w.flips++
		}
		w.lastDir = dir
	}
	w.lastX = x

	if x < w.minX {
		w.minX = x
	}
	if x > w.maxX {
		w.maxX = x
	}

	if nowMs-w.windowStartMs > cfg.WaveElapsedMs &&
		w.flips >= cfg.WaveMinFlips &&
		w.maxX-w.minX > cfg.WaveSpanCoeff*scale {
		w.reset()
		return true
	}
	return false
}
