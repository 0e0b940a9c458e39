// Package paths resolves where onelogs keeps its configuration and its
// diary data. Configuration follows the platform conventions; diary data
// defaults to a directory next to where the command runs.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDirName is the CWD-relative data directory name used when
// no override is active.
const DefaultDataDirName = ".onelogs-db"

// appDirName is the subdirectory placed under the platform config root.
const appDirName = "onelogs"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ONELOGS_CONFIG_DIR"
	EnvDataDir   = "ONELOGS_DATA_DIR"
)

// DefaultConfigDir returns the platform configuration directory:
// $XDG_CONFIG_HOME/onelogs (fallback ~/.config/onelogs) on Linux, the
// os.UserConfigDir location elsewhere (~/Library/Application Support on
// macOS, %APPDATA% on Windows).
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// ResolveConfigDir picks the configuration directory: the --config-dir
// flag beats ONELOGS_CONFIG_DIR, which beats the platform default.
// Overrides are returned absolute.
func ResolveConfigDir(flagValue string) (string, error) {
	for _, dir := range []string{flagValue, os.Getenv(EnvConfigDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory: the --data-dir flag beats the
// config.yaml data_dir value, which beats ONELOGS_DATA_DIR, which beats
// $(CWD)/.onelogs-db. Overrides are returned absolute.
func ResolveDataDir(flagValue, configValue string) (string, error) {
	for _, dir := range []string{flagValue, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
