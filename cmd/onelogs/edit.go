// Edit and note commands for the onelogs CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>...",
	Short: "Replace an entry's text",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitUserError)
		}
		text := strings.Join(args[1:], " ")

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := store.UpdateText(id, text); err != nil {
			if errors.Is(err, types.ErrEmptyText) {
				fmt.Fprintln(os.Stderr, "edit: entry text must not be empty")
				os.Exit(exitUserError)
			}
			return fmt.Errorf("update text: %w", err)
		}

		fmt.Printf("Updated entry #%d\n", id)
		return nil
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <id> [text]...",
	Short: "Set or clear an entry's note",
	Long: `Note replaces the entry's annotation. With no text the note is
cleared.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "note:", err)
			os.Exit(exitUserError)
		}
		text := strings.Join(args[1:], " ")

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "note:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := store.UpdateNote(id, text); err != nil {
			return fmt.Errorf("update note: %w", err)
		}

		if text == "" {
			fmt.Printf("Cleared note on entry #%d\n", id)
		} else {
			fmt.Printf("Noted entry #%d\n", id)
		}
		return nil
	},
}
