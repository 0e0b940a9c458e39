// Root command for the onelogs CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/internal/paths"
	"github.com/oddworks/onelogs/pkg/onelogs"
	"github.com/oddworks/onelogs/pkg/view"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDiary     string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir        string
	configListLimit      int
	configChainScanLimit int
)

var rootCmd = &cobra.Command{
	Use:     "onelogs",
	Short:   "Onelogs is a local-first multi-diary journal",
	Version: onelogs.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListLimit = cfg.GetInt(cfgKeyListLimit)
		configChainScanLimit = cfg.GetInt(cfgKeyChainScanLimit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir, e.g. ~/.config/onelogs)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.onelogs-db)")
	rootCmd.PersistentFlags().StringVar(&flagDiary, "diary", "WorkDiary", "diary to operate on")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(diaryCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addImageCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDataDir returns the data directory path with precedence:
// --data-dir flag > config.yaml data_dir > ONELOGS_DATA_DIR env >
// default $(CWD)/.onelogs-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > ONELOGS_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// listLimit returns the configured list window size.
func listLimit() int {
	if configListLimit > 0 {
		return configListLimit
	}
	return view.DefaultListLimit
}

// chainScanLimit returns the configured chain resolution window size.
func chainScanLimit() int {
	if configChainScanLimit > 0 {
		return configChainScanLimit
	}
	return view.DefaultChainScanLimit
}
