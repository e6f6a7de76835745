// Package config loads application configuration from a JSON file with
// sensible defaults for every key.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ayusman/mudra/internal/track"
)

// CameraConfig holds camera capture settings.
type CameraConfig struct {
	DeviceID int `json:"deviceId" mapstructure:"deviceId"`
	FPS      int `json:"fps" mapstructure:"fps"`
}

// ServerConfig holds the local HTTP server settings.
type ServerConfig struct {
	ListenAddr string `json:"listenAddr" mapstructure:"listenAddr"`
}

// DetectorConfig holds hand detector settings.
type DetectorConfig struct {
	MaxHands        int     `json:"maxHands" mapstructure:"maxHands"`
	MinConfidence   float64 `json:"minConfidence" mapstructure:"minConfidence"`
	MinTrackingConf float64 `json:"minTrackingConf" mapstructure:"minTrackingConf"`
}

// TrackConfig holds the gesture tracking overrides that users commonly tune.
// Zero values fall back to the built-in defaults.
type TrackConfig struct {
	LockFrames    int   `json:"lockFrames" mapstructure:"lockFrames"`
	CooldownMs    int64 `json:"cooldownMs" mapstructure:"cooldownMs"`
	CalibrationMs int64 `json:"calibrationMs" mapstructure:"calibrationMs"`
	PulseMs       int64 `json:"pulseMs" mapstructure:"pulseMs"`
}

// PluginConfig holds output plugin settings.
type PluginConfig struct {
	Dir       string `json:"dir" mapstructure:"dir"`
	TimeoutMs int    `json:"timeoutMs" mapstructure:"timeoutMs"`
	Speech    string `json:"speech" mapstructure:"speech"`
}

// Config is the full application configuration.
type Config struct {
	Camera   CameraConfig   `json:"camera" mapstructure:"camera"`
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	Detector DetectorConfig `json:"detector" mapstructure:"detector"`
	Track    TrackConfig    `json:"track" mapstructure:"track"`
	Plugins  PluginConfig   `json:"plugins" mapstructure:"plugins"`
	DBPath   string         `json:"dbPath" mapstructure:"dbPath"`
}

// Load reads configuration from mudra.cfg.json in configDir, applying
// defaults for every missing key. A missing config file is not an error;
// the defaults are used as-is.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("camera.deviceId", 0)
	v.SetDefault("camera.fps", 15)

	v.SetDefault("server.listenAddr", "127.0.0.1:8765")

	v.SetDefault("detector.maxHands", 2)
	v.SetDefault("detector.minConfidence", 0.7)
	v.SetDefault("detector.minTrackingConf", 0.5)

	v.SetDefault("track.lockFrames", 0)
	v.SetDefault("track.cooldownMs", 0)
	v.SetDefault("track.calibrationMs", 0)
	v.SetDefault("track.pulseMs", 0)

	v.SetDefault("plugins.dir", "")
	v.SetDefault("plugins.timeoutMs", 5000)
	v.SetDefault("plugins.speech", "speech")

	v.SetDefault("dbPath", "")

	v.SetConfigName("mudra.cfg.json")
	v.AddConfigPath(configDir)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// TrackConfig returns the gesture tracking configuration with the user's
// overrides applied on top of the built-in defaults.
func (c *Config) TrackConfig() track.Config {
	tc := track.DefaultConfig()
	if c.Track.LockFrames > 0 {
		tc.LockFrames = c.Track.LockFrames
	}
	if c.Track.CooldownMs > 0 {
		tc.CooldownMs = c.Track.CooldownMs
	}
	if c.Track.CalibrationMs > 0 {
		tc.CalibrationMs = c.Track.CalibrationMs
	}
	if c.Track.PulseMs > 0 {
		tc.PulseMs = c.Track.PulseMs
	}
	return tc
}
