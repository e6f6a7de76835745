package detector

import (
	"math"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Fixture hands.
//
// Each fixture lays finger joints on straight rays out of the wrist, so the
// radial extension and curl predicates hold by construction at any hand
// position. The wrist-to-middle-MCP distance is 0.10 for every fixture.

type fingerPose int

const (
	poseExtended fingerPose = iota
	poseCurled
	poseHalf // neither extended nor curled
)

// Joint distances from the wrist for each finger pose (MCP, PIP, DIP, TIP).
var fingerReach = map[fingerPose][4]float64{
	poseExtended: {0.10, 0.18, 0.24, 0.30},
	poseCurled:   {0.10, 0.15, 0.13, 0.10},
	poseHalf:     {0.10, 0.16, 0.165, 0.16},
}

// Thumb joint distances from the wrist (CMC, MCP, IP, TIP).
var (
	thumbReachExtended = [4]float64{0.06, 0.10, 0.17, 0.25}
	thumbReachTucked   = [4]float64{0.06, 0.10, 0.13, 0.12}
)

// Splay directions per finger, wrist-relative (image y grows downward).
var fingerDirs = [4][2]float64{
	{0.30, -0.95},  // index
	{0.00, -1.00},  // middle
	{-0.30, -0.95}, // ring
	{-0.55, -0.84}, // pinky
}

var thumbSideDir = [2]float64{0.92, -0.39}

func placeRay(h *HandLandmarks, idx []int, dir [2]float64, reach [4]float64) {
	wrist := h.Points[Wrist]
	norm := math.Hypot(dir[0], dir[1])
	ux, uy := dir[0]/norm, dir[1]/norm
	for k, i := range idx {
		h.Points[i] = Point3D{
			X: wrist.X + ux*reach[k],
			Y: wrist.Y + uy*reach[k],
		}
	}
}

func buildHand(wristX, wristY float64, thumbDir [2]float64, thumbExtended bool, fingers [4]fingerPose) HandLandmarks {
	h := HandLandmarks{Handedness: "Right", Score: 0.95}
	h.Points[Wrist] = Point3D{X: wristX, Y: wristY}

	thumbReach := thumbReachTucked
	if thumbExtended {
		thumbReach = thumbReachExtended
	}
	placeRay(&h, []int{ThumbCMC, ThumbMCP, ThumbIP, ThumbTip}, thumbDir, thumbReach)

	chains := [4][]int{
		{IndexMCP, IndexPIP, IndexDIP, IndexTip},
		{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip},
		{RingMCP, RingPIP, RingDIP, RingTip},
		{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip},
	}
	for f, chain := range chains {
		placeRay(&h, chain, fingerDirs[f], fingerReach[fingers[f]])
	}
	return h
}

// OpenPalmLandmarks returns a spread open palm: thumb and all four fingers
// extended, thumb splayed wide of the index MCP.
func OpenPalmLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, true,
		[4]fingerPose{poseExtended, poseExtended, poseExtended, poseExtended})
}

// FourFingersLandmarks returns a raised flat hand with the thumb tucked:
// index through pinky extended.
func FourFingersLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, false,
		[4]fingerPose{poseExtended, poseExtended, poseExtended, poseExtended})
}

// FistLandmarks returns a closed fist: thumb tucked, all fingers curled.
func FistLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, false,
		[4]fingerPose{poseCurled, poseCurled, poseCurled, poseCurled})
}

// WShapeLandmarks returns a "W" hand: index, middle and ring extended,
// pinky curled, thumb tucked.
func WShapeLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, false,
		[4]fingerPose{poseExtended, poseExtended, poseExtended, poseCurled})
}

// ILYLandmarks returns the ILY sign: thumb, index and pinky extended,
// middle and ring halfway between curled and extended.
func ILYLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, true,
		[4]fingerPose{poseExtended, poseHalf, poseHalf, poseExtended})
}

// VictoryLandmarks returns a two-finger "V": index and middle extended,
// ring and pinky curled, thumb tucked.
func VictoryLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, false,
		[4]fingerPose{poseExtended, poseExtended, poseCurled, poseCurled})
}

// PointingLandmarks returns an index-only point, remaining fingers curled.
func PointingLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, thumbSideDir, false,
		[4]fingerPose{poseExtended, poseCurled, poseCurled, poseCurled})
}

// ThumbsUpLandmarks returns a fist with the thumb extended upward.
func ThumbsUpLandmarks() HandLandmarks {
	return buildHand(0.5, 0.6, [2]float64{0.20, -0.98}, true,
		[4]fingerPose{poseCurled, poseCurled, poseCurled, poseCurled})
}

// ThumbsDownLandmarks returns a fist with the thumb extended downward.
func ThumbsDownLandmarks() HandLandmarks {
	return buildHand(0.5, 0.45, [2]float64{0.20, 0.98}, true,
		[4]fingerPose{poseCurled, poseCurled, poseCurled, poseCurled})
}
