package track

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// SquaredDistance returns the squared distance between two landmarks on the
// image plane. Depth is ignored for classification.
func SquaredDistance(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two landmarks on the
// image plane.
func Distance(a, b detector.Point3D) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// HandSize returns the wrist to middle-MCP distance, the natural per-hand
// scale unit. Returns 0 when either landmark is missing; callers must floor
// the value before dividing by it.
func HandSize(pts []detector.Point3D) float64 {
	w, okW := point(pts, detector.Wrist)
	m, okM := point(pts, detector.MiddleMCP)
	if !okW || !okM {
		return 0
	}
	return Distance(w, m)
}

// point returns the landmark at index i, reporting false when the slice is
// too short. Missing landmarks degrade every predicate to false rather than
// failing.
func point(pts []detector.Point3D, i int) (detector.Point3D, bool) {
	if i < 0 || i >= len(pts) {
		return detector.Point3D{}, false
	}
	return pts[i], true
}

// fingerExtended applies the two-stage radial test: the tip must sit farther
// from the wrist than the PIP, and the PIP farther than the MCP, each by a
// scale-relative margin. The test only assumes the finger straightens
// radially outward, so it tolerates hand rotation better than comparing y
// coordinates.
func (c Config) fingerExtended(pts []detector.Point3D, mcpIdx, pipIdx, tipIdx int, scale float64) bool {
	wrist, ok := point(pts, detector.Wrist)
	if !ok {
		return false
	}
	mcp, okM := point(pts, mcpIdx)
	pip, okP := point(pts, pipIdx)
	tip, okT := point(pts, tipIdx)
	if !okM || !okP || !okT {
		return false
	}
	s2 := scale * scale
	return SquaredDistance(tip, wrist) > SquaredDistance(pip, wrist)+c.ExtendTipCoeff*s2 &&
		SquaredDistance(pip, wrist) > SquaredDistance(mcp, wrist)+c.ExtendPIPCoeff*s2
}

// fingerCurled reports whether the tip has folded back toward the wrist past
// the PIP by a scale-relative margin. Not the complement of fingerExtended:
// a finger can be neither.
func (c Config) fingerCurled(pts []detector.Point3D, pipIdx, tipIdx int, scale float64) bool {
	wrist, ok := point(pts, detector.Wrist)
	if !ok {
		return false
	}
	pip, okP := point(pts, pipIdx)
	tip, okT := point(pts, tipIdx)
	if !okP || !okT {
		return false
	}
	s2 := scale * scale
	return SquaredDistance(tip, wrist)+c.CurlCoeff*s2 < SquaredDistance(pip, wrist)
}

// thumbExtended is the radial extension test over the thumb MCP/IP/TIP
// chain with coefficients sized for its shorter reach.
func (c Config) thumbExtended(pts []detector.Point3D, scale float64) bool {
	wrist, ok := point(pts, detector.Wrist)
	if !ok {
		return false
	}
	mcp, okM := point(pts, detector.ThumbMCP)
	ip, okI := point(pts, detector.ThumbIP)
	tip, okT := point(pts, detector.ThumbTip)
	if !okM || !okI || !okT {
		return false
	}
	s2 := scale * scale
	return SquaredDistance(tip, wrist) > SquaredDistance(ip, wrist)+c.ThumbTipCoeff*s2 &&
		SquaredDistance(ip, wrist) > SquaredDistance(mcp, wrist)+c.ThumbIPCoeff*s2
}
