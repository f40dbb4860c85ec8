package tui

import (
	"strings"
	"testing"
)

func TestDetectMode(t *testing.T) {
	var buf strings.Builder

	if got := DetectMode(&buf, false, true); got != ModeJSON {
		t.Errorf("json flag: got %v, want ModeJSON", got)
	}
	if got := DetectMode(&buf, true, false); got != ModePlain {
		t.Errorf("no-progress flag: got %v, want ModePlain", got)
	}
	// A non-terminal writer never gets the interactive mode.
	if got := DetectMode(&buf, false, false); got != ModePlain {
		t.Errorf("buffer writer: got %v, want ModePlain", got)
	}
	// JSON wins over no-progress.
	if got := DetectMode(&buf, true, true); got != ModeJSON {
		t.Errorf("both flags: got %v, want ModeJSON", got)
	}
}
