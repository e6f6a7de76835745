package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/track"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Gesture to Speech Communicator")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "mudra.db")
	}
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	pluginDir := cfg.Plugins.Dir
	if pluginDir == "" {
		pluginDir = filepath.Join(dataDir, "plugins")
	}

	a := app.New(app.Config{
		Store:           st,
		PluginDir:       pluginDir,
		SpeechPlugin:    cfg.Plugins.Speech,
		PluginTimeoutMs: cfg.Plugins.TimeoutMs,
		CameraID:        cfg.Camera.DeviceID,
		FPS:             cfg.Camera.FPS,
		Track:           cfg.TrackConfig(),
		Detector:        detectorConfig(cfg),
	})

	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Events:    a.Events(),
		Status:    a.Status,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(cfg.Server.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	a.SetEnabled(true)
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start recognition pipeline: %v", err)
	}

	t := tray.New()
	a.SetOnLock(func(e track.Event) {
		t.SetLastPhrase(e.Phrase)
	})
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	// Blocks until quit is selected from the tray menu.
	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

func detectorConfig(cfg *config.Config) detector.Config {
	d := detector.DefaultConfig()
	if cfg.Detector.MaxHands > 0 {
		d.MaxHands = cfg.Detector.MaxHands
	}
	if cfg.Detector.MinConfidence > 0 {
		d.MinConfidence = cfg.Detector.MinConfidence
	}
	if cfg.Detector.MinTrackingConf > 0 {
		d.MinTrackingConf = cfg.Detector.MinTrackingConf
	}
	return d.Normalize()
}
