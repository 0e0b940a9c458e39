// Remove command for the onelogs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Soft-delete an entry",
	Long: `Remove hides the entry from normal listings. The row is retained so
reply chains through it stay navigable, and its id is never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := store.SoftDelete(id); err != nil {
			return fmt.Errorf("remove entry: %w", err)
		}

		fmt.Printf("Removed entry #%d\n", id)
		return nil
	},
}
