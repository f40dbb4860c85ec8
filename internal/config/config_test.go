package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOverwriteDefault(t *testing.T) {
	cfg := Config{}
	if cfg.Scale.OverwriteValue() {
		t.Fatal("expected OverwriteValue() = false when Overwrite is nil")
	}
}

func TestOverwriteExplicitTrue(t *testing.T) {
	cfg := Config{Scale: ScaleConfig{Overwrite: boolPtr(true)}}
	if !cfg.Scale.OverwriteValue() {
		t.Fatal("expected OverwriteValue() = true")
	}
}

func TestLoggingEnabledDefault(t *testing.T) {
	cfg := Config{}
	if !cfg.Logging.EnabledValue() {
		t.Fatal("expected EnabledValue() = true when Enabled is nil")
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	defaults := Default()
	if cfg.Version != defaults.Version {
		t.Fatalf("expected version %d, got %d", defaults.Version, cfg.Version)
	}
	if cfg.Scale.Jobs != defaults.Scale.Jobs {
		t.Fatalf("expected jobs %d, got %d", defaults.Scale.Jobs, cfg.Scale.Jobs)
	}
	if cfg.Scale.StrictValue() {
		t.Fatal("expected strict to default to false")
	}
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "scale:\n  jobs: 8\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scale.Jobs != 8 {
		t.Fatalf("expected jobs 8, got %d", cfg.Scale.Jobs)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected default version 1, got %d", cfg.Version)
	}
	if !cfg.Logging.EnabledValue() {
		t.Fatal("expected logging enabled by default")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scale: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestApplyDefaultsRepairsNonPositiveJobs(t *testing.T) {
	cfg := Config{Scale: ScaleConfig{Jobs: -2}}
	cfg.ApplyDefaults()
	if cfg.Scale.Jobs != Default().Scale.Jobs {
		t.Fatalf("expected jobs repaired to default, got %d", cfg.Scale.Jobs)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scale.Jobs = 2

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Scale.Jobs != 2 {
		t.Fatalf("expected jobs 2 after round trip, got %d", loaded.Scale.Jobs)
	}
}
