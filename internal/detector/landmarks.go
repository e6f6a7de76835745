// Package detector provides hand detection interfaces and landmark types.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is one landmark in normalized image coordinates.
// X and Y are in [0,1]; Z is relative depth and is ignored by classification.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected for one hand
// in one frame. Values are immutable once produced by a Detector.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Translate returns a copy of the hand shifted by (dx, dy).
// Useful for moving a fixture hand into a different screen zone.
func (h HandLandmarks) Translate(dx, dy float64) HandLandmarks {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// ScaleAboutWrist returns a copy of the hand with every landmark scaled
// about the wrist by factor f, simulating a change in camera distance.
func (h HandLandmarks) ScaleAboutWrist(f float64) HandLandmarks {
	out := h
	w := h.Points[Wrist]
	for i := range out.Points {
		out.Points[i].X = w.X + (h.Points[i].X-w.X)*f
		out.Points[i].Y = w.Y + (h.Points[i].Y-w.Y)*f
		out.Points[i].Z = w.Z + (h.Points[i].Z-w.Z)*f
	}
	return out
}
