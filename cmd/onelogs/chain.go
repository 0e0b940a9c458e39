// Chain command for the onelogs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/view"
)

var chainCmd = &cobra.Command{
	Use:   "chain <id>",
	Short: "Show the reply chain containing an entry",
	Long: `Chain walks the reply links up from <id> to the root of its thread,
then collects every descendant of the entries found on the way. The
result is the connected thread around <id>, shown in chronological
order. Soft-deleted entries keep a chain connected but are not shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "chain:", err)
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "chain:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		coord := view.NewCoordinator(store, listLimit(), chainScanLimit())
		v, err := coord.EnterChain(id)
		if err != nil {
			return fmt.Errorf("resolve chain: %w", err)
		}

		if len(v.Entries) == 0 {
			fmt.Fprintf(os.Stderr, "no visible entries in the chain of #%d\n", id)
			os.Exit(exitUserError)
		}

		return printEntries(v.Entries)
	},
}
