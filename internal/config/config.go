package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/realtube/internal/playback"
)

// HomeEnv overrides the data directory (default ~/.realtube).
const HomeEnv = "REALTUBE_HOME"

// Config is the persistent application configuration
type Config struct {
	// DataDir holds the database, event log and log files.
	DataDir string `json:"data_dir"`

	// CatalogFile points at a TOML or YAML catalog. Empty uses the built-in catalog.
	CatalogFile string `json:"catalog_file,omitempty"`

	// FallbackMediaURL is bound when a video has no media reference.
	FallbackMediaURL string `json:"fallback_media_url"`

	// PulseMs is how long the like acknowledgment stays visible.
	PulseMs int `json:"pulse_ms"`

	// GestureQuietMs is the scroll silence that ends one wheel gesture.
	GestureQuietMs int `json:"gesture_quiet_ms"`

	Shorts PlayerConfig `json:"shorts"`
	Watch  PlayerConfig `json:"watch"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
}

// PlayerConfig holds per-surface playback preferences
type PlayerConfig struct {
	Autoplay bool `json:"autoplay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DataDir:          DefaultDataDir(),
		FallbackMediaURL: playback.DefaultFallbackURL,
		PulseMs:          1000,
		GestureQuietMs:   250,
		Shorts:           PlayerConfig{Autoplay: true},
		Watch:            PlayerConfig{Autoplay: false},
		LogLevel:         "info",
	}
}

// DefaultDataDir returns $REALTUBE_HOME or ~/.realtube.
func DefaultDataDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".realtube")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.json")
}

// Load reads config from path (ConfigPath when empty), or returns defaults.
// A missing or unparseable file yields defaults; only unreadable files are errors.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.normalize()

	return cfg, nil
}

// Save writes config to path (ConfigPath when empty)
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize replaces zero values that would break the player with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.FallbackMediaURL == "" {
		c.FallbackMediaURL = def.FallbackMediaURL
	}
	if c.PulseMs <= 0 {
		c.PulseMs = def.PulseMs
	}
	if c.GestureQuietMs <= 0 {
		c.GestureQuietMs = def.GestureQuietMs
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// DBPath returns the SQLite database location inside the data dir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "realtube.db")
}

// EventsPath returns the JSONL event log location inside the data dir.
func (c *Config) EventsPath() string {
	return filepath.Join(c.DataDir, "events.jsonl")
}

// LockPath returns the interactive session lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.DataDir, "session.lock")
}

// PulseDuration returns PulseMs as a time.Duration.
func (c *Config) PulseDuration() time.Duration {
	return time.Duration(c.PulseMs) * time.Millisecond
}

// GestureQuiet returns GestureQuietMs as a time.Duration.
func (c *Config) GestureQuiet() time.Duration {
	return time.Duration(c.GestureQuietMs) * time.Millisecond
}
