package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "porygon", "config.json")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if config.EVStep != defaultEVStep || config.TieBreak != TIE_BREAK_RANDOM || config.Debug {
		t.Fatalf("unexpected defaults: %+v", config)
	}
	if config.LogDir != filepath.Join(dir, "porygon", "logs") {
		t.Fatalf("log dir should sit next to the config, got %s", config.LogDir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %s", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %s", err)
	}
	if again != config {
		t.Fatalf("reloaded config differs: %+v vs %+v", again, config)
	}
}

func TestLoadKeepsUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"Debug": true, "EVStep": 16, "PerishSong": true, "TieBreak": "first"}`), 0666); err != nil {
		t.Fatalf("%s", err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if !config.Debug || config.EVStep != 16 || !config.PerishSong || config.TieBreak != TIE_BREAK_FIRST {
		t.Fatalf("user values lost: %+v", config)
	}
	if config.ObservationDB == "" {
		t.Fatalf("missing fields should still be populated")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(path, []byte(`{"TieBreak": "coin"}`), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrBadTieBreak) {
		t.Fatalf("expected ErrBadTieBreak, got %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"Debug": `), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("broken json should fail")
	}
}
