// Task and convert commands for the onelogs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Change a task entry's status",
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task entry as done",
	Args:  cobra.ExactArgs(1),
	RunE:  setTaskStatusRun(types.TaskStatusDone),
}

var taskTodoCmd = &cobra.Command{
	Use:   "todo <id>",
	Short: "Mark a task entry as todo",
	Args:  cobra.ExactArgs(1),
	RunE:  setTaskStatusRun(types.TaskStatusTodo),
}

// setTaskStatusRun builds a RunE that stores the given canonical status.
func setTaskStatusRun(status string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "task:", err)
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "task:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := store.SetTaskStatus(id, status); err != nil {
			return fmt.Errorf("set task status: %w", err)
		}

		fmt.Printf("Entry #%d marked %s\n", id, status)
		return nil
	}
}

var convertCmd = &cobra.Command{
	Use:   "convert <id> <task|text>",
	Short: "Convert an entry between text and task",
	Long: `Convert turns a text entry into a todo task, or a task back into
plain text. Image entries cannot be converted; the command is a no-op
for them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "convert:", err)
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "convert:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		switch args[1] {
		case "task":
			err = store.ConvertToTask(id)
		case "text":
			err = store.ConvertToText(id)
		default:
			fmt.Fprintf(os.Stderr, "convert: unknown target %q (valid: task, text)\n", args[1])
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("convert entry: %w", err)
		}

		fmt.Printf("Converted entry #%d to %s\n", id, args[1])
		return nil
	},
}

func init() {
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskTodoCmd)
}
