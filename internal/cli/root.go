package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/internal/config"
	"github.com/twardoch/tscprojpy/internal/paths"
)

var (
	configPath string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tscprojpy",
		Short:   "Scale Camtasia project files spatially or temporally",
		Version: version,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.tscprojpy/config.yaml)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newXYScaleCmd())
	cmd.AddCommand(newTimescaleCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveConfigPath returns the config file in effect: the --config override
// when given, otherwise the user-level file.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return paths.GlobalConfigFile()
}

// loadConfig reads the effective configuration.
func loadConfig() (config.Config, string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}
