// Diary management commands for the onelogs CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/types"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Manage diaries",
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all diaries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "diary list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		diaries, err := backend.ListDiaries()
		if err != nil {
			return fmt.Errorf("list diaries: %w", err)
		}

		if flagJSON {
			out, err := json.MarshalIndent(diaries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal diaries: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, d := range diaries {
			fmt.Println(d.Name)
		}
		return nil
	},
}

var diaryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a diary",
	Long: `Add creates a diary under the sanitized form of <name>: letters are
lowercased and anything outside [a-z0-9_] becomes an underscore. Adding
a name that sanitizes to an existing diary is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "diary add:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		diary, err := backend.CreateDiary(args[0])
		if err != nil {
			if errors.Is(err, types.ErrInvalidName) {
				fmt.Fprintf(os.Stderr, "invalid diary name %q\n", args[0])
				os.Exit(exitUserError)
			}
			return fmt.Errorf("create diary: %w", err)
		}

		fmt.Println("Created diary:", diary.Name)
		return nil
	},
}

var diaryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a diary and all of its entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "diary delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.DeleteDiary(args[0]); err != nil {
			if errors.Is(err, types.ErrDiaryNotFound) {
				fmt.Fprintf(os.Stderr, "diary %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			return fmt.Errorf("delete diary: %w", err)
		}

		fmt.Println("Deleted diary:", args[0])
		return nil
	},
}

func init() {
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryAddCmd)
	diaryCmd.AddCommand(diaryDeleteCmd)
}
