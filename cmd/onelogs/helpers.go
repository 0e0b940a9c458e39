// Shared helpers for onelogs CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oddworks/onelogs/internal/sqlite"
	"github.com/oddworks/onelogs/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach(). Returns the
// attached backend or an error suitable for the CLI.
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openStore attaches the backend and opens the diary selected by the
// --diary flag. The caller must defer backend.Detach().
func openStore() (*sqlite.Backend, types.EntryStore, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	store, err := backend.OpenDiary(flagDiary)
	if err != nil {
		backend.Detach()
		if errors.Is(err, types.ErrDiaryNotFound) {
			return nil, nil, fmt.Errorf("diary %q not found", flagDiary)
		}
		return nil, nil, fmt.Errorf("open diary: %w", err)
	}

	return backend, store, nil
}

// parseEntryID converts a command argument into an entry id.
func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", arg)
	}
	return id, nil
}

// nowStamps returns the creation date and time for a new entry.
func nowStamps() (string, string) {
	now := time.Now()
	return now.Format(types.DateFormat), now.Format(types.TimeFormat)
}

// printEntries renders a slice of entries, honoring the --json flag.
func printEntries(entries []types.DiaryEntry) error {
	if flagJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, e := range entries {
		printEntry(e)
	}
	return nil
}

// printEntry renders one entry as a human-readable line pair.
func printEntry(e types.DiaryEntry) {
	label := e.Type
	if e.Type == types.EntryTypeTask {
		label = fmt.Sprintf("%s[%s]", e.Type, types.NormalizeTaskStatus(e.TaskStatus))
	}

	body := e.Text
	if e.Type == types.EntryTypeImage {
		body = e.FilePath
	}

	fmt.Printf("#%-5d %s %s  %-12s %s\n", e.EntryID, e.CreatedDate, e.CreatedTime, label, body)
	if e.LinkedID != nil {
		fmt.Printf("       reply to #%d\n", *e.LinkedID)
	}
	if e.Note != "" {
		fmt.Printf("       note: %s\n", e.Note)
	}
	if e.Deleted {
		fmt.Println("       (deleted)")
	}
}
