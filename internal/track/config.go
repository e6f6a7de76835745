package track

// Config collects every tuning constant of the classification core in one
// place. The defaults were calibrated empirically against the target gesture
// set; changing them changes recognition behavior.
type Config struct {
	// Finger extension: tip² > pip² + ExtendTipCoeff·s² and
	// pip² > mcp² + ExtendPIPCoeff·s², distances measured from the wrist.
	ExtendTipCoeff float64
	ExtendPIPCoeff float64

	// Finger curl: tip² + CurlCoeff·s² < pip². Extension and curl are not
	// complements; the gap between them is an intentional ambiguous band.
	CurlCoeff float64

	// Thumb extension uses the same two-stage test over MCP/IP/TIP with
	// smaller coefficients for the shorter kinematic chain.
	ThumbTipCoeff float64
	ThumbIPCoeff  float64

	// MinHandSize floors the scale reference before any squaring or
	// division. Must stay positive.
	MinHandSize float64

	// CalibrationMs is the length of the startup calibration window.
	CalibrationMs int64

	// Wave detection.
	WaveWindowMs  int64   // rolling window length
	WaveElapsedMs int64   // minimum time in window before a trigger
	WaveMinFlips  int     // direction reversals required
	WaveStepCoeff float64 // |Δx| > WaveStepCoeff·s counts as movement
	WaveSpanCoeff float64 // (maxX−minX) > WaveSpanCoeff·s required

	// Held-pose detection. StillEpsilon is an absolute normalized-coordinate
	// threshold, deliberately not scale-relative.
	StillEpsilon    float64
	StillZoneMs     int64 // stillness required inside a zone
	StillAnywhereMs int64 // stillness required anywhere (please)

	// Upper-middle "stop" zone and lower-middle "please" zone bounds.
	StopXMin, StopXMax, StopYMax       float64
	PleaseXMin, PleaseXMax, PleaseYMin float64

	// ThumbYCoeff disambiguates thumbs up from thumbs down relative to
	// min/max(thumb MCP y, wrist y) by ThumbYCoeff·s.
	ThumbYCoeff float64

	// SpreadCoeff separates a spread open palm (hello) from a flat hand
	// with the thumb alongside: thumb tip to index MCP > SpreadCoeff·s.
	SpreadCoeff float64

	// Two-hand combination.
	CombineCloseCoeff float64 // wrist distance < CombineCloseCoeff·s
	CombineLowY       float64 // both wrists below this y count as "low"

	// Lock state machine.
	LockFrames int   // consecutive identical frames required
	CooldownMs int64 // minimum wall time between emitted locks
	PulseMs    int64 // duration of the locked-this-instant pulse
}

// DefaultConfig returns the calibrated production configuration.
func DefaultConfig() Config {
	return Config{
		ExtendTipCoeff: 0.16,
		ExtendPIPCoeff: 0.08,
		CurlCoeff:      0.128,
		ThumbTipCoeff:  0.128,
		ThumbIPCoeff:   0.064,
		MinHandSize:    1e-4,

		CalibrationMs: 3000,

		WaveWindowMs:  1700,
		WaveElapsedMs: 450,
		WaveMinFlips:  3,
		WaveStepCoeff: 0.12,
		WaveSpanCoeff: 0.56,

		StillEpsilon:    0.012,
		StillZoneMs:     650,
		StillAnywhereMs: 1100,

		StopXMin: 0.25, StopXMax: 0.75, StopYMax: 0.45,
		PleaseXMin: 0.30, PleaseXMax: 0.70, PleaseYMin: 0.45,

		ThumbYCoeff: 0.24,
		SpreadCoeff: 0.48,

		CombineCloseCoeff: 0.55,
		CombineLowY:       0.55,

		LockFrames: 10,
		CooldownMs: 2500,
		PulseMs:    900,
	}
}
