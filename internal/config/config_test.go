package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abelbrown/realtube/internal/playback"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	cfg, err := Load(filepath.Join(dir, "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if !cfg.Shorts.Autoplay {
		t.Error("shorts should autoplay by default")
	}
	if cfg.Watch.Autoplay {
		t.Error("watch page should start paused by default")
	}
	if cfg.PulseDuration() != time.Second {
		t.Errorf("PulseDuration = %v, want 1s", cfg.PulseDuration())
	}
}

func TestLoadCorruptReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PulseMs != 1000 {
		t.Errorf("PulseMs = %d, want 1000", cfg.PulseMs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.json")

	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.PulseMs = 400
	cfg.Watch.Autoplay = true
	cfg.FallbackMediaURL = "file:///tmp/clip.mp4"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.PulseMs != 400 || !got.Watch.Autoplay || got.FallbackMediaURL != "file:///tmp/clip.mp4" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.DBPath() != filepath.Join(dir, "realtube.db") {
		t.Errorf("DBPath = %q", got.DBPath())
	}
}

func TestLoadFillsZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"pulse_ms": 0, "fallback_media_url": ""}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PulseMs != 1000 {
		t.Errorf("PulseMs = %d, want default 1000", cfg.PulseMs)
	}
	if cfg.FallbackMediaURL != playback.DefaultFallbackURL {
		t.Errorf("FallbackMediaURL = %q, want the playback default", cfg.FallbackMediaURL)
	}
}
