package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/internal/config"
	"github.com/twardoch/tscprojpy/internal/paths"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check tool environment health",
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, err := paths.GlobalDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	path, err := resolveConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	var checks []healthCheck

	cfg, cfgErr := config.Load(path)
	checks = append(checks, checkConfig(path, cfg, cfgErr))
	checks = append(checks, checkLogs(cfg))
	checks = append(checks, checkEditor())

	return writeDoctorResult(cmd, root, checks)
}

func checkConfig(path string, cfg config.Config, cfgErr error) healthCheck {
	if cfgErr != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: cfgErr.Error()}
	}

	exists, err := paths.FileExists(path)
	if err != nil {
		return healthCheck{Name: "Config", Status: "warning", Summary: err.Error()}
	}
	if !exists {
		return healthCheck{Name: "Config", Status: "ok", Summary: "using defaults"}
	}
	return healthCheck{Name: "Config", Status: "ok", Summary: fmt.Sprintf("%d parallel jobs", cfg.Scale.Jobs)}
}

func checkLogs(cfg config.Config) healthCheck {
	if !cfg.Logging.EnabledValue() {
		return healthCheck{Name: "Logs", Status: "ok", Summary: "disabled"}
	}
	dir, err := paths.GlobalLogsDir()
	if err != nil {
		return healthCheck{Name: "Logs", Status: "error", Summary: err.Error()}
	}
	return healthCheck{Name: "Logs", Status: "ok", Summary: dir}
}

func checkEditor() healthCheck {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return healthCheck{Name: "Editor", Status: "warning", Summary: "EDITOR not set, config edit falls back to vi"}
	}
	return healthCheck{Name: "Editor", Status: "ok", Summary: editor}
}

func writeDoctorResult(cmd *cobra.Command, root string, checks []healthCheck) error {
	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("ENVIRONMENT:")+" "+root)
	for _, c := range checks {
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusLabel(c.Status), c.Summary)
	}
	return nil
}

func statusLabel(status string) string {
	style := lipgloss.NewStyle().Inline(true)
	switch status {
	case "ok":
		return style.Foreground(lipgloss.Color("2")).Render("OK")
	case "warning":
		return style.Foreground(lipgloss.Color("3")).Render("WARN")
	case "error":
		return style.Foreground(lipgloss.Color("1")).Render("ERROR")
	}
	return status
}
