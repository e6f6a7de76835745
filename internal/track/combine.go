package track

import "github.com/ayusman/mudra/internal/detector"

// combine resolves the frame candidate from both hands' single-hand
// results. Two patterns override the per-hand classifications: two low,
// close fists become restroom, and two close open-family hands merge into
// please. Otherwise the first hand's result is preferred with the second as
// fallback.
func combine(cfg Config, g0, g1 GestureID, h0, h1 []detector.Point3D, baseline float64) GestureID {
	w0, ok0 := point(h0, detector.Wrist)
	w1, ok1 := point(h1, detector.Wrist)
	if ok0 && ok1 {
		scale := HandSize(h0)
		if s := HandSize(h1); s > scale {
			scale = s
		}
		if baseline > scale {
			scale = baseline
		}
		if scale < cfg.MinHandSize {
			scale = cfg.MinHandSize
		}

		wristsClose := Distance(w0, w1) < cfg.CombineCloseCoeff*scale
		lowHands := w0.Y > cfg.CombineLowY && w1.Y > cfg.CombineLowY

		if wristsClose && lowHands && g0 == GestureYes && g1 == GestureYes {
			return GestureRestroom
		}
		if wristsClose && isOpenFamily(g0) && isOpenFamily(g1) {
			return GesturePlease
		}
	}

	if g0 != GestureNone {
		return g0
	}
	return g1
}

// isOpenFamily reports membership in the namaste-merge set.
func isOpenFamily(g GestureID) bool {
	return g == GestureHello || g == GestureThankYou || g == GesturePlease
}
