// Package track implements the gesture classification and stabilization
// core: geometric per-frame classification of hand landmarks, dynamic scale
// calibration, temporal wave and held-pose detectors, two-hand combination,
// and the debounced lock state machine that turns a noisy per-frame
// classification stream into single phrase events.
package track

// GestureID identifies one recognizable gesture. The zero value GestureNone
// means no gesture was recognized, which is the normal high-frequency
// outcome, not an error.
type GestureID string

const (
	GestureNone       GestureID = ""
	GestureHello      GestureID = "hello"
	GestureYes        GestureID = "yes"
	GestureGoodOkay   GestureID = "good_okay"
	GestureNo         GestureID = "no"
	GestureWait       GestureID = "wait"
	GestureHelp       GestureID = "help"
	GestureAssistance GestureID = "assistance"
	GestureThankYou   GestureID = "thank_you"
	GesturePlease     GestureID = "please"
	GestureGoodbye    GestureID = "goodbye"
	GestureWater      GestureID = "water"
	GestureRestroom   GestureID = "restroom"
	GestureStop       GestureID = "stop"
)

// AllGestures lists every recognizable gesture in a stable order.
func AllGestures() []GestureID {
	return []GestureID{
		GestureHello, GestureYes, GestureGoodOkay, GestureNo,
		GestureWait, GestureHelp, GestureAssistance, GestureThankYou,
		GesturePlease, GestureGoodbye, GestureWater, GestureRestroom,
		GestureStop,
	}
}

// Valid reports whether g is a member of the gesture enumeration.
func (g GestureID) Valid() bool {
	_, ok := phrases[g]
	return ok
}
