package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func makeTestFrames(t *testing.T, n int) []*gocv.Mat {
	t.Helper()
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		mat := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		mat.SetTo(gocv.NewScalar(float64(i*10), float64(i*10), float64(i*10), 0))
		frames[i] = &mat
	}
	t.Cleanup(func() {
		for _, f := range frames {
			f.Close()
		}
	})
	return frames
}

func TestMockCamera_Playback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frames := makeTestFrames(t, 3)
	cam := NewMockCamera(frames, false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i := 0; i < 3; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame %d: %v", i, err)
		}
		frame.Close()
	}

	if _, err := cam.ReadFrame(); err == nil {
		t.Error("expected error after frames are exhausted")
	}
}

func TestMockCamera_Loop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frames := makeTestFrames(t, 2)
	cam := NewMockCamera(frames, true)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i := 0; i < 6; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame %d: %v", i, err)
		}
		frame.Close()
	}
}

func TestMockCamera_NotOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame before Open = %v, want ErrCameraNotOpen", err)
	}

	if cam.IsOpen() {
		t.Error("camera should not report open")
	}
}

func TestMockCamera_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frames := makeTestFrames(t, 1)
	cam := NewMockCamera(frames, false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	frame.Close()

	cam.Reset()

	frame, err = cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame after Reset: %v", err)
	}
	frame.Close()
}
