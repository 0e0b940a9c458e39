// This file implements the diary catalog operations: registry enumeration,
// idempotent creation by sanitized name, and irreversible deletion that
// discards the diary's whole entry collection.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oddworks/onelogs/pkg/types"
)

// ListDiaries returns every registered diary in storage-enumeration order.
func (b *Backend) ListDiaries() ([]types.Diary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := b.db.Query("SELECT diary_id, name, created_at FROM diaries")
	if err != nil {
		return nil, fmt.Errorf("querying diaries: %w", err)
	}
	defer rows.Close()

	var diaries []types.Diary
	for rows.Next() {
		d, err := hydrateDiary(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating diary: %w", err)
		}
		diaries = append(diaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diaries: %w", err)
	}
	return diaries, nil
}

// CreateDiary sanitizes rawName and creates the diary if absent.
// Idempotent: an existing sanitized name returns the existing diary
// unchanged, so two raw names that collide after sanitization resolve to
// the same diary.
func (b *Backend) CreateDiary(rawName string) (types.Diary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Diary{}, types.ErrDetached
	}
	if !types.ValidDiaryName(rawName) {
		return types.Diary{}, types.ErrInvalidName
	}

	name := types.SanitizeDiaryName(rawName)
	existing, err := b.lookupDiary(name)
	if err == nil {
		return existing, nil
	}
	if err != types.ErrDiaryNotFound {
		return types.Diary{}, err
	}

	return b.insertDiary(name)
}

// DeleteDiary removes the diary and every entry it owns. Irreversible.
func (b *Backend) DeleteDiary(rawName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	diary, err := b.lookupDiary(types.SanitizeDiaryName(rawName))
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries WHERE diary_id = ?", diary.DiaryID); err != nil {
		return fmt.Errorf("deleting diary entries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM diaries WHERE diary_id = ?", diary.DiaryID); err != nil {
		return fmt.Errorf("deleting diary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing diary deletion: %w", err)
	}
	return nil
}

// lookupDiary finds the registry row for a sanitized name.
// Returns ErrDiaryNotFound when no such diary exists. Caller holds b.mu.
func (b *Backend) lookupDiary(name string) (types.Diary, error) {
	var d types.Diary
	var createdAt string
	err := b.db.QueryRow(
		"SELECT diary_id, name, created_at FROM diaries WHERE name = ?", name,
	).Scan(&d.DiaryID, &d.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Diary{}, types.ErrDiaryNotFound
		}
		return types.Diary{}, fmt.Errorf("looking up diary %s: %w", name, err)
	}
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return types.Diary{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return d, nil
}

// insertDiary writes a new registry row for an already-sanitized name.
// Caller holds b.mu.
func (b *Backend) insertDiary(name string) (types.Diary, error) {
	d := types.Diary{
		DiaryID:   newUUID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := b.db.Exec(
		"INSERT INTO diaries (diary_id, name, created_at) VALUES (?, ?, ?)",
		d.DiaryID, d.Name, d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return types.Diary{}, fmt.Errorf("inserting diary %s: %w", name, err)
	}
	return d, nil
}

// hydrateDiary converts a row from sql.Rows into a types.Diary.
func hydrateDiary(rows *sql.Rows) (types.Diary, error) {
	var d types.Diary
	var createdAt string
	if err := rows.Scan(&d.DiaryID, &d.Name, &createdAt); err != nil {
		return types.Diary{}, err
	}
	var err error
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return types.Diary{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return d, nil
}
