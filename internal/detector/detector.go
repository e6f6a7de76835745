package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

// Normalize clamps out-of-range values to usable ones. The tracking core
// follows at most two hands (the two-hand gestures need exactly two), so
// MaxHands is capped at 2.
func (c Config) Normalize() Config {
	if c.MaxHands < 1 {
		c.MaxHands = 1
	}
	if c.MaxHands > 2 {
		c.MaxHands = 2
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 1 {
		c.MinConfidence = 0.5
	}
	if c.MinTrackingConf <= 0 || c.MinTrackingConf > 1 {
		c.MinTrackingConf = 0.5
	}
	return c
}
