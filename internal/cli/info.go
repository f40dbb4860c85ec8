package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/pkg/tscproj"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <project.tscproj>",
		Short: "Show format and timeline facts for a project file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

type projectInfo struct {
	File            string            `json:"file"`
	Title           string            `json:"title,omitempty"`
	Author          string            `json:"author,omitempty"`
	Version         string            `json:"version"`
	EditRate        int64             `json:"edit_rate"`
	Width           float64           `json:"width"`
	Height          float64           `json:"height"`
	FrameRate       float64           `json:"frame_rate,omitempty"`
	AudioSampleRate float64           `json:"audio_sample_rate,omitempty"`
	DurationSec     float64           `json:"duration_seconds"`
	Tracks          int               `json:"tracks"`
	Medias          int               `json:"medias"`
	Sources         int               `json:"sources"`
	Warnings        []tscproj.Warning `json:"warnings,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read project: %w", err)
	}
	project, warnings, err := tscproj.Load(data)
	if err != nil {
		return err
	}

	info := projectInfo{
		File:            input,
		Title:           project.Title,
		Author:          project.Author,
		Version:         project.Version.Version,
		EditRate:        project.Version.EditRate,
		Width:           project.Canvas.Width,
		Height:          project.Canvas.Height,
		FrameRate:       project.Canvas.FrameRate,
		AudioSampleRate: project.Canvas.AudioSampleRate,
		DurationSec:     project.DurationSeconds(),
		Tracks:          project.TrackCount(),
		Medias:          project.MediaCount(),
		Sources:         project.SourceCount(),
		Warnings:        warnings,
	}

	if outputJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encode info json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("PROJECT:")+" "+input)
	if info.Title != "" {
		fmt.Fprintf(out, "  %-14s %s\n", "Title:", info.Title)
	}
	if info.Author != "" {
		fmt.Fprintf(out, "  %-14s %s\n", "Author:", info.Author)
	}
	fmt.Fprintf(out, "  %-14s %s\n", "Version:", info.Version)
	fmt.Fprintf(out, "  %-14s %d ticks/s\n", "Edit rate:", info.EditRate)
	fmt.Fprintf(out, "  %-14s %gx%g\n", "Canvas:", info.Width, info.Height)
	if info.FrameRate > 0 {
		fmt.Fprintf(out, "  %-14s %g fps\n", "Frame rate:", info.FrameRate)
	}
	if info.AudioSampleRate > 0 {
		fmt.Fprintf(out, "  %-14s %g Hz\n", "Sample rate:", info.AudioSampleRate)
	}
	fmt.Fprintf(out, "  %-14s %.3f s\n", "Duration:", info.DurationSec)
	fmt.Fprintf(out, "  %-14s %d\n", "Tracks:", info.Tracks)
	fmt.Fprintf(out, "  %-14s %d\n", "Medias:", info.Medias)
	fmt.Fprintf(out, "  %-14s %d\n", "Sources:", info.Sources)

	if len(warnings) > 0 {
		fmt.Fprintln(out, bold.Render("WARNINGS:"))
		for _, w := range warnings {
			fmt.Fprintf(out, "  %s\n", yellow.Render(w.String()))
		}
	}
	return nil
}
