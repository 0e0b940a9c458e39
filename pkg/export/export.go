// Package export writes a diary's entries to CSV or TXT files in the
// download-friendly formats of the original exporters. It consumes
// ListAll / ListInDateRange results; field presence and ordering are the
// store's contract, formatting is this package's.
package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/oddworks/onelogs/pkg/types"
)

// ErrNoEntries is returned when there is nothing to export.
var ErrNoEntries = errors.New("no entries to export")

// Export formats.
const (
	FormatCSV = "csv"
	FormatTXT = "txt"
)

// csvHeader is the fixed CSV column order.
var csvHeader = []string{
	"EntryUniqueId", "LinkedId", "Date", "Time", "Type",
	"TaskStat", "FilePath", "Text", "Note", "DeleteStat",
}

// Filename builds the export file name: <diary>_<unix-millis>.<format>.
func Filename(diaryName, format string) string {
	return fmt.Sprintf("%s_%d.%s", diaryName, time.Now().UnixMilli(), format)
}

// WriteCSV writes entries as CSV to path. Returns ErrNoEntries for an
// empty slice; a half-written file is never left behind.
func WriteCSV(path string, entries []types.DiaryEntry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	return writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, e := range entries {
			record := []string{
				strconv.FormatInt(e.EntryID, 10),
				linkedIDString(e.LinkedID),
				e.CreatedDate,
				e.CreatedTime,
				e.Type,
				e.TaskStatus,
				e.FilePath,
				e.Text,
				e.Note,
				strconv.FormatBool(e.Deleted),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing entry %d: %w", e.EntryID, err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteTXT writes entries as labeled text blocks separated by "-----".
func WriteTXT(path string, entries []types.DiaryEntry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	return writeAtomic(path, func(w io.Writer) error {
		for _, e := range entries {
			_, err := fmt.Fprintf(w,
				"EntryUniqueId: %d\nLinkedId: %s\nDate: %s  Time: %s\nType: %s\nTaskStat: %s\nFilePath: %s\nText: %s\nNote: %s\nDeleteStat: %t\n-----\n",
				e.EntryID, linkedIDString(e.LinkedID), e.CreatedDate, e.CreatedTime,
				e.Type, e.TaskStatus, e.FilePath, e.Text, e.Note, e.Deleted,
			)
			if err != nil {
				return fmt.Errorf("writing entry %d: %w", e.EntryID, err)
			}
		}
		return nil
	})
}

// Write dispatches on format.
func Write(path, format string, entries []types.DiaryEntry) error {
	switch format {
	case FormatCSV:
		return WriteCSV(path, entries)
	case FormatTXT:
		return WriteTXT(path, entries)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// writeAtomic writes through the temp-file, flush, sync, rename pattern
// so a failed export never clobbers or half-writes the target.
func writeAtomic(path string, fill func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := fill(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func linkedIDString(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
