package capture

import (
	"image"

	"gocv.io/x/gocv"
)

// Brightness sampling constants. The frame is reduced to a small fixed grid
// before averaging so the sample cost is independent of camera resolution.
const (
	BrightnessGridWidth  = 64
	BrightnessGridHeight = 48
)

// Rec.709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// BrightnessSampler measures the mean ambient brightness of frames during
// the calibration window.
type BrightnessSampler struct{}

// NewBrightnessSampler creates a new BrightnessSampler.
func NewBrightnessSampler() *BrightnessSampler {
	return &BrightnessSampler{}
}

// Sample returns the frame's mean luma normalized to [0,1], or a negative
// value when the frame is unusable. Negative results are the "no sample"
// signal the calibration tracker expects.
func (s *BrightnessSampler) Sample(frame *gocv.Mat) float64 {
	if frame == nil || frame.Empty() {
		return -1
	}

	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(*frame, &small,
		image.Point{X: BrightnessGridWidth, Y: BrightnessGridHeight},
		0, 0, gocv.InterpolationArea)

	mean := small.Mean()

	// Grayscale frames carry their mean in the first channel.
	if small.Channels() == 1 {
		return mean.Val1 / 255.0
	}

	// BGR channel order.
	luma := lumaB*mean.Val1 + lumaG*mean.Val2 + lumaR*mean.Val3
	return luma / 255.0
}
