package track

import "github.com/ayusman/mudra/internal/detector"

// Classifier recognizes single-hand gestures from raw landmarks. It is
// stateful only through its wave and stillness trackers, which belong to
// one hand slot for the lifetime of a session. Calls must arrive in
// monotonic timestamp order and must not be concurrent for the same slot.
type Classifier struct {
	cfg   Config
	wave  waveTracker
	still stillnessTracker
}

// NewClassifier creates a classifier for one hand slot.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Reset clears the temporal trackers, as when the hand leaves the frame.
func (c *Classifier) Reset() {
	c.wave.reset()
	c.still.reset()
}

// Classify returns the gesture recognized this frame, or GestureNone.
// scaleRef must already be floored: max(current hand size, calibration
// baseline, epsilon). The decision list is priority ordered; the first
// matching rule wins, which is the conflict-resolution policy, not an
// accident of implementation.
func (c *Classifier) Classify(pts []detector.Point3D, scaleRef float64, nowMs int64) GestureID {
	cfg := c.cfg

	indexExt := cfg.fingerExtended(pts, detector.IndexMCP, detector.IndexPIP, detector.IndexTip, scaleRef)
	middleExt := cfg.fingerExtended(pts, detector.MiddleMCP, detector.MiddlePIP, detector.MiddleTip, scaleRef)
	ringExt := cfg.fingerExtended(pts, detector.RingMCP, detector.RingPIP, detector.RingTip, scaleRef)
	pinkyExt := cfg.fingerExtended(pts, detector.PinkyMCP, detector.PinkyPIP, detector.PinkyTip, scaleRef)
	thumbExt := cfg.thumbExtended(pts, scaleRef)

	fourExt := indexExt && middleExt && ringExt && pinkyExt

	// Wave and held-pose run only while the flat-hand shape is held and
	// are checked before every static rule. Wave before stillness: a hand
	// that is simultaneously "open and waving" and "open and still" across
	// frames resolves in favor of the wave.
	if fourExt {
		wrist, ok := point(pts, detector.Wrist)
		if ok {
			if c.wave.observe(cfg, wrist.X, scaleRef, nowMs) {
				return GestureGoodbye
			}

			still := c.still.observe(cfg, wrist.X, wrist.Y, nowMs)
			inStopZone := wrist.X > cfg.StopXMin && wrist.X < cfg.StopXMax && wrist.Y < cfg.StopYMax
			inPleaseZone := wrist.X > cfg.PleaseXMin && wrist.X < cfg.PleaseXMax && wrist.Y > cfg.PleaseYMin

			if inStopZone && still > float64(cfg.StillZoneMs) {
				c.still.consume()
				return GestureStop
			}
			if (inPleaseZone && still > float64(cfg.StillZoneMs)) || still > float64(cfg.StillAnywhereMs) {
				c.still.consume()
				return GesturePlease
			}
		}
	} else {
		c.wave.reset()
		c.still.reset()
	}

	indexCurl := cfg.fingerCurled(pts, detector.IndexPIP, detector.IndexTip, scaleRef)
	middleCurl := cfg.fingerCurled(pts, detector.MiddlePIP, detector.MiddleTip, scaleRef)
	ringCurl := cfg.fingerCurled(pts, detector.RingPIP, detector.RingTip, scaleRef)
	pinkyCurl := cfg.fingerCurled(pts, detector.PinkyPIP, detector.PinkyTip, scaleRef)

	switch {
	// "W" shape.
	case !thumbExt && indexExt && middleExt && ringExt && !pinkyExt:
		return GestureWater

	// ILY sign. The curled-or-not-extended disjunctions tolerate borderline
	// middle and ring readings.
	case thumbExt && indexExt && pinkyExt &&
		(middleCurl || !middleExt) && (ringCurl || !ringExt):
		return GestureAssistance

	// Flat hand, thumb alongside.
	case !thumbExt && fourExt:
		return GestureThankYou

	// Thumb only: up or down.
	case thumbExt && !indexExt && !middleExt && !ringExt && !pinkyExt:
		return c.classifyThumbOnly(pts, scaleRef)

	// Two fingers.
	case !thumbExt && indexExt && middleExt && !ringExt && !pinkyExt:
		return GestureHelp

	// Index only.
	case !thumbExt && indexExt && !middleExt && !ringExt && !pinkyExt:
		return GestureWait

	// Fist: every finger explicitly curled, none extended.
	case indexCurl && middleCurl && ringCurl && pinkyCurl &&
		!indexExt && !middleExt && !ringExt && !pinkyExt:
		return GestureYes

	// Spread open palm.
	case thumbExt && fourExt && c.thumbSpread(pts, scaleRef):
		return GestureHello
	}

	return GestureNone
}

// classifyThumbOnly separates thumbs up from thumbs down by where the thumb
// tip sits relative to the thumb MCP / wrist band, widened by a
// scale-relative margin. Image y grows downward, so a larger y is lower.
func (c *Classifier) classifyThumbOnly(pts []detector.Point3D, scaleRef float64) GestureID {
	wrist, okW := point(pts, detector.Wrist)
	mcp, okM := point(pts, detector.ThumbMCP)
	tip, okT := point(pts, detector.ThumbTip)
	if !okW || !okM || !okT {
		return GestureGoodOkay
	}

	low := mcp.Y
	high := mcp.Y
	if wrist.Y < low {
		low = wrist.Y
	}
	if wrist.Y > high {
		high = wrist.Y
	}

	margin := c.cfg.ThumbYCoeff * scaleRef
	switch {
	case tip.Y > high+margin:
		return GestureNo
	case tip.Y < low-margin:
		return GestureGoodOkay
	default:
		return GestureGoodOkay
	}
}

// thumbSpread reports whether the thumb tip is splayed wide of the index
// MCP, distinguishing a spread-open palm from a closed-thumb flat hand.
func (c *Classifier) thumbSpread(pts []detector.Point3D, scaleRef float64) bool {
	tip, okT := point(pts, detector.ThumbTip)
	idx, okI := point(pts, detector.IndexMCP)
	if !okT || !okI {
		return false
	}
	return Distance(tip, idx) > c.cfg.SpreadCoeff*scaleRef
}
