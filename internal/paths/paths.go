package paths

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// GlobalDir returns the user-level tscprojpy directory (~/.tscprojpy).
// It creates the directory if it does not exist.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".tscprojpy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns the global logs directory (~/.tscprojpy/logs).
// It creates the directory if it does not exist.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// GlobalConfigFile returns the path of the user-level config file
// (~/.tscprojpy/config.yaml). The file itself is not created.
func GlobalConfigFile() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(global, "config.yaml"), nil
}

// ScaleSuffix renders a percentage for use in generated file names. Whole
// percentages drop the fraction (150 -> "150pct"); fractional ones keep a
// single decimal with the dot replaced (150.5 -> "150_5pct").
func ScaleSuffix(percent float64) string {
	if percent == math.Trunc(percent) {
		return fmt.Sprintf("%dpct", int64(percent))
	}
	return strings.ReplaceAll(fmt.Sprintf("%.1fpct", percent), ".", "_")
}

// ScaledOutputPath derives the default output path for a spatially scaled
// project. clip.tscproj scaled to 150% becomes clip_150pct.tscproj next to
// the input.
func ScaledOutputPath(input string, percent float64) string {
	return siblingWithSuffix(input, "_"+ScaleSuffix(percent))
}

// TimescaleOutputPath derives the default output path for a temporally
// scaled project. clip.tscproj stretched to 150% becomes
// clip_time150pct.tscproj next to the input.
func TimescaleOutputPath(input string, percent float64) string {
	return siblingWithSuffix(input, "_time"+ScaleSuffix(percent))
}

func siblingWithSuffix(input, suffix string) string {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(dir, stem+suffix+ext)
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
