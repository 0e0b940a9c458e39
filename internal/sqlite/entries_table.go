// This file implements the per-diary entry store: creation with per-diary
// monotonic ids, targeted mutations that are no-ops on missing ids, soft
// deletion, and the ordered range/filter queries.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/oddworks/onelogs/pkg/types"
)

// Compile-time interface check: entriesStore must implement EntryStore.
var _ types.EntryStore = (*entriesStore)(nil)

// entriesStore implements the EntryStore interface for one diary. The
// handle stays valid across catalog operations; every call re-checks the
// registry row so a deleted diary reports ErrDiaryNotFound rather than
// writing orphan rows.
type entriesStore struct {
	backend *Backend
	diaryID string
}

// CreateEntry inserts a Text entry with the next id in this diary's
// sequence and returns the assigned id. Ids are never reused: rows are
// only removed together with the whole diary. A linkedID equal to the
// id being assigned is rejected with ErrSelfLink.
func (s *entriesStore) CreateEntry(text, date, timeOfDay string, linkedID *int64) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, types.ErrEmptyText
	}
	return s.insertEntry(types.EntryTypeText, text, "", date, timeOfDay, linkedID)
}

// CreateImageEntry inserts an Image entry with empty text. The file path
// is stored as given and never validated.
func (s *entriesStore) CreateImageEntry(filePath, date, timeOfDay string) (int64, error) {
	return s.insertEntry(types.EntryTypeImage, "", filePath, date, timeOfDay, nil)
}

// insertEntry assigns the next per-diary id inside the insert transaction
// and writes the row.
func (s *entriesStore) insertEntry(entryType, text, filePath, date, timeOfDay string, linkedID *int64) (int64, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return 0, types.ErrDetached
	}
	if err := s.requireDiary(); err != nil {
		return 0, err
	}

	tx, err := s.backend.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(
		"SELECT COALESCE(MAX(entry_id), 0) + 1 FROM entries WHERE diary_id = ?",
		s.diaryID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("assigning entry id: %w", err)
	}
	// A link to the id being assigned would make the row its own parent.
	if linkedID != nil && *linkedID == id {
		return 0, types.ErrSelfLink
	}

	_, err = tx.Exec(
		`INSERT INTO entries
		(diary_id, entry_id, created_date, created_time, linked_id, entry_type, task_status, file_path, text, note, deleted)
		VALUES (?, ?, ?, ?, ?, ?, NULL, ?, ?, NULL, 0)`,
		s.diaryID, id, date, timeOfDay, nullableID(linkedID), entryType, nullableText(filePath), text,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing entry: %w", err)
	}
	return id, nil
}

// UpdateText replaces the text of an existing entry.
func (s *entriesStore) UpdateText(id int64, newText string) error {
	if strings.TrimSpace(newText) == "" {
		return types.ErrEmptyText
	}
	return s.update("UPDATE entries SET text = ? WHERE diary_id = ? AND entry_id = ?",
		newText, s.diaryID, id)
}

// UpdateNote replaces the note of an existing entry. An empty note clears it.
func (s *entriesStore) UpdateNote(id int64, newNote string) error {
	return s.update("UPDATE entries SET note = ? WHERE diary_id = ? AND entry_id = ?",
		nullableText(newNote), s.diaryID, id)
}

// SetLinkedID links or reassigns the entry's parent reference. A nil
// linkedID clears the link. Self-references are rejected.
func (s *entriesStore) SetLinkedID(id int64, linkedID *int64) error {
	if linkedID != nil && *linkedID == id {
		return types.ErrSelfLink
	}
	return s.update("UPDATE entries SET linked_id = ? WHERE diary_id = ? AND entry_id = ?",
		nullableID(linkedID), s.diaryID, id)
}

// ConvertToTask turns a Text entry into a Task with status TODO.
// Image and Audio entries are not convertible and are left untouched.
func (s *entriesStore) ConvertToTask(id int64) error {
	return s.update(
		"UPDATE entries SET entry_type = ?, task_status = ? WHERE diary_id = ? AND entry_id = ? AND entry_type = ?",
		types.EntryTypeTask, types.TaskStatusTodo, s.diaryID, id, types.EntryTypeText)
}

// ConvertToText turns a Task back into a Text entry and clears its status.
func (s *entriesStore) ConvertToText(id int64) error {
	return s.update(
		"UPDATE entries SET entry_type = ?, task_status = NULL WHERE diary_id = ? AND entry_id = ? AND entry_type = ?",
		types.EntryTypeText, s.diaryID, id, types.EntryTypeTask)
}

// SetTaskStatus stores the canonical status value on a Task entry.
func (s *entriesStore) SetTaskStatus(id int64, status string) error {
	return s.update(
		"UPDATE entries SET task_status = ? WHERE diary_id = ? AND entry_id = ? AND entry_type = ?",
		status, s.diaryID, id, types.EntryTypeTask)
}

// SoftDelete hides the entry from ListActive. The row is retained so link
// chains through it stay navigable.
func (s *entriesStore) SoftDelete(id int64) error {
	return s.update("UPDATE entries SET deleted = 1 WHERE diary_id = ? AND entry_id = ?",
		s.diaryID, id)
}

// update runs a targeted mutation. Mutations on entry ids that do not
// exist affect zero rows and are deliberately not errors.
func (s *entriesStore) update(query string, args ...any) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return types.ErrDetached
	}
	if err := s.requireDiary(); err != nil {
		return err
	}

	if _, err := s.backend.db.Exec(query, args...); err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	return nil
}

// ListActive returns the last limit non-deleted entries in ascending id
// order: the newest rows are selected descending, then re-sorted, so the
// result is a suffix of the full active set. The tie-break is always id
// order, never timestamps.
func (s *entriesStore) ListActive(limit int) ([]types.DiaryEntry, error) {
	return s.listLastN(limit, true)
}

// ListAll is ListActive without the deleted filter. The chain resolver
// reads it so soft-deleted intermediate nodes keep the graph connected.
func (s *entriesStore) ListAll(limit int) ([]types.DiaryEntry, error) {
	return s.listLastN(limit, false)
}

func (s *entriesStore) listLastN(limit int, activeOnly bool) ([]types.DiaryEntry, error) {
	if limit < 0 {
		return nil, types.ErrInvalidLimit
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, types.ErrDetached
	}
	if err := s.requireDiary(); err != nil {
		return nil, err
	}

	deletedFilter := ""
	if activeOnly {
		deletedFilter = " AND deleted = 0"
	}
	query := fmt.Sprintf(`SELECT %s FROM (
		SELECT %s FROM entries WHERE diary_id = ?%s
		ORDER BY entry_id DESC LIMIT ?
	) ORDER BY entry_id ASC`, entryColumns, entryColumns, deletedFilter)

	return s.queryEntries(query, s.diaryID, limit)
}

// ListInDateRange returns all entries, deleted included, whose created
// date falls inclusively in [startDate, endDate], ordered by date then
// time ascending. Export consumes this, so full history is kept.
func (s *entriesStore) ListInDateRange(startDate, endDate string) ([]types.DiaryEntry, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, types.ErrDetached
	}
	if err := s.requireDiary(); err != nil {
		return nil, err
	}

	query := "SELECT " + entryColumns + ` FROM entries
		WHERE diary_id = ? AND created_date BETWEEN ? AND ?
		ORDER BY created_date ASC, created_time ASC`
	return s.queryEntries(query, s.diaryID, startDate, endDate)
}

// requireDiary verifies the registry row still exists. Caller holds
// backend.mu (read or write).
func (s *entriesStore) requireDiary() error {
	var one int
	err := s.backend.db.QueryRow(
		"SELECT 1 FROM diaries WHERE diary_id = ?", s.diaryID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrDiaryNotFound
	}
	if err != nil {
		return fmt.Errorf("checking diary existence: %w", err)
	}
	return nil
}

// entryColumns is the column list matching hydrateEntry's scan order.
const entryColumns = "entry_id, created_date, created_time, linked_id, entry_type, task_status, file_path, text, note, deleted"

func (s *entriesStore) queryEntries(query string, args ...any) ([]types.DiaryEntry, error) {
	rows, err := s.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	entries := []types.DiaryEntry{}
	for rows.Next() {
		e, err := hydrateEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// hydrateEntry converts a row from sql.Rows into a types.DiaryEntry.
func hydrateEntry(rows *sql.Rows) (types.DiaryEntry, error) {
	var e types.DiaryEntry
	var linkedID sql.NullInt64
	var taskStatus, filePath, note sql.NullString
	var deleted int
	err := rows.Scan(
		&e.EntryID, &e.CreatedDate, &e.CreatedTime, &linkedID,
		&e.Type, &taskStatus, &filePath, &e.Text, &note, &deleted,
	)
	if err != nil {
		return types.DiaryEntry{}, err
	}
	if linkedID.Valid {
		v := linkedID.Int64
		e.LinkedID = &v
	}
	e.TaskStatus = taskStatus.String
	e.FilePath = filePath.String
	e.Note = note.String
	e.Deleted = deleted != 0
	return e, nil
}

// nullableID maps a nil id pointer to SQL NULL.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// nullableText maps an empty string to SQL NULL.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
