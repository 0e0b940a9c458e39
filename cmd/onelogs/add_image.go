// Add-image command for the onelogs CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var addImageCmd = &cobra.Command{
	Use:   "add-image <path>",
	Short: "Add an image entry to the diary",
	Long: `Add-image records a reference to an image file. The path is stored
as given (made absolute when possible); the file itself is never read
or copied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add-image:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		date, timeOfDay := nowStamps()
		id, err := store.CreateImageEntry(path, date, timeOfDay)
		if err != nil {
			return fmt.Errorf("create image entry: %w", err)
		}

		fmt.Printf("Added image entry #%d\n", id)
		return nil
	},
}
