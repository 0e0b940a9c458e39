// List command for the onelogs CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/types"
	"github.com/oddworks/onelogs/pkg/view"
)

var (
	listFlagLimit   int
	listFlagPending bool
	listFlagSearch  string
	listFlagFrom    string
	listFlagTo      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries",
	Long: `List shows the most recent entries of the selected diary in
chronological order.

--pending narrows the view to unfinished tasks, --search to entries
whose text or note contains every word of the query. The two are
exclusive: a view is filtered one way at a time.

--from/--to switch to a date-range query over "YYYY-MM-DD" dates,
inclusive on both ends, deleted entries included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlagPending && listFlagSearch != "" {
			fmt.Fprintln(os.Stderr, "list: --pending and --search are mutually exclusive")
			os.Exit(exitUserError)
		}
		rangeQuery := listFlagFrom != "" || listFlagTo != ""
		if rangeQuery && (listFlagPending || listFlagSearch != "") {
			fmt.Fprintln(os.Stderr, "list: --from/--to cannot be combined with --pending or --search")
			os.Exit(exitUserError)
		}
		if rangeQuery && (listFlagFrom == "" || listFlagTo == "") {
			fmt.Fprintln(os.Stderr, "list: --from and --to must be given together")
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if rangeQuery {
			entries, err := store.ListInDateRange(listFlagFrom, listFlagTo)
			if err != nil {
				return fmt.Errorf("list range: %w", err)
			}
			return printEntries(entries)
		}

		limit := listFlagLimit
		if limit <= 0 {
			limit = listLimit()
		}

		coord := view.NewCoordinator(store, limit, chainScanLimit())

		var v view.View
		switch {
		case listFlagPending:
			v, err = coord.EnterPending()
		case listFlagSearch != "":
			v, err = coord.EnterSearch(listFlagSearch)
		default:
			v, err = coord.Refresh()
		}
		if err != nil {
			if errors.Is(err, types.ErrInvalidLimit) {
				fmt.Fprintln(os.Stderr, "list: limit must not be negative")
				os.Exit(exitUserError)
			}
			return fmt.Errorf("list entries: %w", err)
		}

		return printEntries(v.Entries)
	},
}

func init() {
	listCmd.Flags().IntVar(&listFlagLimit, "limit", 0, "number of most recent entries to show")
	listCmd.Flags().BoolVar(&listFlagPending, "pending", false, "show only unfinished tasks")
	listCmd.Flags().StringVar(&listFlagSearch, "search", "", "show only entries matching the query")
	listCmd.Flags().StringVar(&listFlagFrom, "from", "", "start date (YYYY-MM-DD), inclusive")
	listCmd.Flags().StringVar(&listFlagTo, "to", "", "end date (YYYY-MM-DD), inclusive")
}
