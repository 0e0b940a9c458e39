// Add command for the onelogs CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/types"
)

var (
	addReplyTo int64
	addNote    string
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a text entry to the diary",
	Long: `Add appends a text entry to the selected diary, stamped with the
current date and time. With --reply-to the entry links to an existing
entry, forming a reply chain navigable with the chain command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		var linkedID *int64
		if addReplyTo > 0 {
			linkedID = &addReplyTo
		}

		date, timeOfDay := nowStamps()
		id, err := store.CreateEntry(text, date, timeOfDay, linkedID)
		if err != nil {
			if errors.Is(err, types.ErrEmptyText) {
				fmt.Fprintln(os.Stderr, "add: entry text must not be empty")
				os.Exit(exitUserError)
			}
			return fmt.Errorf("create entry: %w", err)
		}

		if addNote != "" {
			if err := store.UpdateNote(id, addNote); err != nil {
				return fmt.Errorf("set note: %w", err)
			}
		}

		fmt.Printf("Added entry #%d\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().Int64Var(&addReplyTo, "reply-to", 0, "link the new entry to an existing entry id")
	addCmd.Flags().StringVar(&addNote, "note", "", "attach a note to the new entry")
}
