package track

// phrases maps every gesture to its spoken phrase. The map is total over
// the GestureID enumeration; classification can only produce member values.
var phrases = map[GestureID]string{
	GestureHello:      "Hello!",
	GestureYes:        "Yes",
	GestureGoodOkay:   "I'm good / Okay",
	GestureNo:         "No",
	GestureWait:       "Please wait",
	GestureHelp:       "I need help",
	GestureAssistance: "I need assistance",
	GestureThankYou:   "Thank you",
	GesturePlease:     "Please",
	GestureGoodbye:    "Goodbye!",
	GestureWater:      "I need water",
	GestureRestroom:   "I need the restroom",
	GestureStop:       "Stop",
}

// Phrase returns the display phrase for a gesture.
func Phrase(g GestureID) string {
	return phrases[g]
}
