// Export command for the onelogs CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/export"
	"github.com/oddworks/onelogs/pkg/types"
)

var (
	exportFormat string
	exportOutDir string
	exportLimit  int
	exportFrom   string
	exportTo     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export diary entries to a file",
	Long: `Export writes the diary's most recent entries, deleted included, to
<out-dir>/<diary>_<unix-millis>.<format>. With --from/--to the export
covers a date range instead of the most recent window.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != export.FormatCSV && exportFormat != export.FormatTXT {
			fmt.Fprintf(os.Stderr, "export: unknown format %q (valid: csv, txt)\n", exportFormat)
			os.Exit(exitUserError)
		}
		rangeQuery := exportFrom != "" || exportTo != ""
		if rangeQuery && (exportFrom == "" || exportTo == "") {
			fmt.Fprintln(os.Stderr, "export: --from and --to must be given together")
			os.Exit(exitUserError)
		}

		backend, store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		var entries []types.DiaryEntry
		if rangeQuery {
			entries, err = store.ListInDateRange(exportFrom, exportTo)
		} else {
			limit := exportLimit
			if limit <= 0 {
				limit = chainScanLimit()
			}
			entries, err = store.ListAll(limit)
		}
		if err != nil {
			return fmt.Errorf("fetch entries: %w", err)
		}

		path := filepath.Join(exportOutDir, export.Filename(flagDiary, exportFormat))
		if err := export.Write(path, exportFormat, entries); err != nil {
			if errors.Is(err, export.ErrNoEntries) {
				fmt.Fprintln(os.Stderr, "export: no entries to export")
				os.Exit(exitUserError)
			}
			return fmt.Errorf("write export: %w", err)
		}

		fmt.Println("Exported", len(entries), "entries to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "output format (csv or txt)")
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "output directory")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "number of most recent entries to export")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start date (YYYY-MM-DD), inclusive")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end date (YYYY-MM-DD), inclusive")
}
