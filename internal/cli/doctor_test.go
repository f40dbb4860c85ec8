package cli

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/twardoch/tscprojpy/internal/config"
)

func TestCheckConfigWithError(t *testing.T) {
	result := checkConfig("config.yaml", config.Config{}, fmt.Errorf("yaml: line 3: mapping values"))

	if result.Status != "error" {
		t.Errorf("got status=%q, want error", result.Status)
	}
	if result.Name != "Config" {
		t.Errorf("got name=%q, want Config", result.Name)
	}
}

func TestCheckConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	result := checkConfig(path, config.Default(), nil)

	if result.Status != "ok" {
		t.Errorf("got status=%q, want ok", result.Status)
	}
	if result.Summary != "using defaults" {
		t.Errorf("got summary=%q, want using defaults", result.Summary)
	}
}

func TestCheckConfigValid(t *testing.T) {
	path := writeTestConfig(t)
	result := checkConfig(path, config.Default(), nil)

	if result.Status != "ok" {
		t.Errorf("got status=%q, want ok", result.Status)
	}
	if result.Summary != "4 parallel jobs" {
		t.Errorf("got summary=%q, want job count", result.Summary)
	}
}

func TestCheckLogsDisabled(t *testing.T) {
	cfg := config.Default()
	off := false
	cfg.Logging.Enabled = &off

	result := checkLogs(cfg)
	if result.Status != "ok" {
		t.Errorf("got status=%q, want ok", result.Status)
	}
	if result.Summary != "disabled" {
		t.Errorf("got summary=%q, want disabled", result.Summary)
	}
}

func TestCheckEditor(t *testing.T) {
	t.Setenv("EDITOR", "nano")
	result := checkEditor()
	if result.Status != "ok" || result.Summary != "nano" {
		t.Errorf("got %+v, want ok/nano", result)
	}

	t.Setenv("EDITOR", "")
	result = checkEditor()
	if result.Status != "warning" {
		t.Errorf("got status=%q, want warning", result.Status)
	}
}
