package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/track"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:     s,
		PluginDir: filepath.Join(tmpDir, "plugins"),
		CameraID:  -1,
		Track:     track.DefaultConfig(),
		Detector:  detector.DefaultConfig(),
	})

	srv := server.New(server.Config{
		Store:  s,
		Events: application.Events(),
		Status: application.Status,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("OverridePhrase", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPut,
			ts.URL+"/api/phrases/water",
			strings.NewReader(`{"phrase": "Could I have some water, please?"}`),
		)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("override phrase error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("LockGesture", func(t *testing.T) {
		application.SetEnabled(true)

		// Hold a W-shape hand long enough for the streak to lock.
		hand := detector.WShapeLandmarks()
		session := application.Session()
		var locked *track.Event
		for i := 0; i < 12 && locked == nil; i++ {
			res := session.Process(track.Input{
				Hands:       []detector.HandLandmarks{hand},
				TimestampMs: int64(i) * 66,
				Brightness:  -1,
			})
			if res.Event != nil {
				locked = res.Event
			}
		}
		if locked == nil {
			t.Fatal("held gesture never locked")
		}
		if locked.Gesture != track.GestureWater {
			t.Fatalf("locked %q, want water", locked.Gesture)
		}

		// Record it the way the pipeline would.
		err := s.Transcript().Append(&store.TranscriptEntry{
			ID:         "e2e-entry",
			Gesture:    string(locked.Gesture),
			Phrase:     "Could I have some water, please?",
			LockedAtMs: locked.TimestampMs,
		})
		if err != nil {
			t.Fatalf("append transcript: %v", err)
		}
	})

	t.Run("ReadTranscript", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/transcript")
		if err != nil {
			t.Fatalf("get transcript error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body struct {
			Entries []struct {
				Gesture string `json:"gesture"`
				Phrase  string `json:"phrase"`
			} `json:"entries"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode transcript: %v", err)
		}
		if len(body.Entries) != 1 {
			t.Fatalf("expected 1 transcript entry, got %d", len(body.Entries))
		}
		if body.Entries[0].Gesture != "water" {
			t.Errorf("gesture = %q, want water", body.Entries[0].Gesture)
		}
		if body.Entries[0].Phrase != "Could I have some water, please?" {
			t.Errorf("phrase = %q, want the override", body.Entries[0].Phrase)
		}
	})

	t.Run("ClearTranscript", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/transcript", nil)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("clear transcript error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		entries, err := s.Transcript().List(0)
		if err != nil {
			t.Fatalf("list transcript: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("transcript should be empty, got %d entries", len(entries))
		}
	})

	t.Run("SessionStatus", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/session")
		if err != nil {
			t.Fatalf("get session error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var status server.SessionStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		// The pipeline goroutine was never started; only the session ran.
		if status.Running {
			t.Error("pipeline should not report running")
		}
	})
}
