package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = false

	input := writeTestProject(t, t.TempDir(), "demo.tscproj", cliTimelineDoc)

	cmd := newInfoCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := runInfo(cmd, []string{input}); err != nil {
		t.Fatalf("info returned error: %v", err)
	}

	got := stdout.String()
	for _, want := range []string{
		"Version:",
		"9.0",
		"1280x720",
		"705600000 ticks/s",
		"Tracks:",
		"Medias:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got %q", want, got)
		}
	}
}

func TestInfoCommandJSONOutput(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = true

	input := writeTestProject(t, t.TempDir(), "demo.tscproj", cliTimelineDoc)

	cmd := newInfoCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := runInfo(cmd, []string{input}); err != nil {
		t.Fatalf("info returned error: %v", err)
	}

	got := stdout.String()
	for _, want := range []string{
		"\"version\": \"9.0\"",
		"\"edit_rate\": 705600000",
		"\"tracks\": 1",
		"\"medias\": 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in JSON output, got %q", want, got)
		}
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	cmd := newInfoCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := runInfo(cmd, []string{"/nonexistent/demo.tscproj"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
