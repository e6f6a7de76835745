package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mudra-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() with no config file failed: %v", err)
	}

	if cfg.Camera.DeviceID != 0 {
		t.Errorf("camera device = %d, want 0", cfg.Camera.DeviceID)
	}
	if cfg.Camera.FPS != 15 {
		t.Errorf("camera fps = %d, want 15", cfg.Camera.FPS)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:8765" {
		t.Errorf("listen addr = %q, want 127.0.0.1:8765", cfg.Server.ListenAddr)
	}
	if cfg.Detector.MaxHands != 2 {
		t.Errorf("max hands = %d, want 2", cfg.Detector.MaxHands)
	}
	if cfg.Plugins.TimeoutMs != 5000 {
		t.Errorf("plugin timeout = %d, want 5000", cfg.Plugins.TimeoutMs)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mudra-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	content := `{
		"camera": {"deviceId": 2, "fps": 30},
		"server": {"listenAddr": "127.0.0.1:9000"},
		"track": {"lockFrames": 12, "cooldownMs": 3000},
		"dbPath": "/tmp/custom.db"
	}`
	path := filepath.Join(tmpDir, "mudra.cfg.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Camera.DeviceID != 2 {
		t.Errorf("camera device = %d, want 2", cfg.Camera.DeviceID)
	}
	if cfg.Camera.FPS != 30 {
		t.Errorf("camera fps = %d, want 30", cfg.Camera.FPS)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("listen addr = %q, want 127.0.0.1:9000", cfg.Server.ListenAddr)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db path = %q, want /tmp/custom.db", cfg.DBPath)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Detector.MaxHands != 2 {
		t.Errorf("max hands = %d, want default 2", cfg.Detector.MaxHands)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mudra-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "mudra.cfg.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Load() should fail on invalid JSON")
	}
}

func TestTrackConfig_Overrides(t *testing.T) {
	cfg := &Config{}
	cfg.Track.LockFrames = 20
	cfg.Track.CooldownMs = 4000

	tc := cfg.TrackConfig()
	if tc.LockFrames != 20 {
		t.Errorf("lock frames = %d, want 20", tc.LockFrames)
	}
	if tc.CooldownMs != 4000 {
		t.Errorf("cooldown = %d, want 4000", tc.CooldownMs)
	}

	// Untouched fields keep the built-in defaults.
	if tc.CalibrationMs != 3000 {
		t.Errorf("calibration = %d, want default 3000", tc.CalibrationMs)
	}
	if tc.PulseMs != 900 {
		t.Errorf("pulse = %d, want default 900", tc.PulseMs)
	}
}

func TestTrackConfig_ZeroMeansDefault(t *testing.T) {
	cfg := &Config{}

	tc := cfg.TrackConfig()
	if tc.LockFrames != 10 {
		t.Errorf("lock frames = %d, want default 10", tc.LockFrames)
	}
	if tc.CooldownMs != 2500 {
		t.Errorf("cooldown = %d, want default 2500", tc.CooldownMs)
	}
}
