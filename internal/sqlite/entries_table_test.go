package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddworks/onelogs/pkg/types"
)

// setupStore returns an entry store for a fresh diary on a fresh backend.
func setupStore(t *testing.T) types.EntryStore {
	t.Helper()
	b := setupBackend(t)
	_, err := b.CreateDiary("TestDiary")
	require.NoError(t, err)
	store, err := b.OpenDiary("TestDiary")
	require.NoError(t, err)
	return store
}

func mustCreate(t *testing.T, store types.EntryStore, text string) int64 {
	t.Helper()
	id, err := store.CreateEntry(text, "2024-01-01", "10:00:00", nil)
	require.NoError(t, err)
	return id
}

func activeIDs(t *testing.T, store types.EntryStore, limit int) []int64 {
	t.Helper()
	entries, err := store.ListActive(limit)
	require.NoError(t, err)
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EntryID)
	}
	return ids
}

func TestCreateEntryRoundTrip(t *testing.T) {
	store := setupStore(t)

	id, err := store.CreateEntry("hi", "2024-01-01", "10:00:00", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, id, got.EntryID)
	assert.Equal(t, types.EntryTypeText, got.Type)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, "2024-01-01", got.CreatedDate)
	assert.Equal(t, "10:00:00", got.CreatedTime)
	assert.Nil(t, got.LinkedID)
	assert.Empty(t, got.TaskStatus)
	assert.Empty(t, got.FilePath)
	assert.Empty(t, got.Note)
	assert.False(t, got.Deleted)
}

func TestCreateEntryAssignsMonotonicIDs(t *testing.T) {
	store := setupStore(t)

	assert.Equal(t, int64(1), mustCreate(t, store, "one"))
	assert.Equal(t, int64(2), mustCreate(t, store, "two"))

	// Soft-deleted rows keep their slot in the sequence, so ids are
	// never reused.
	require.NoError(t, store.SoftDelete(2))
	assert.Equal(t, int64(3), mustCreate(t, store, "three"))
}

func TestCreateEntryRejectsEmptyText(t *testing.T) {
	store := setupStore(t)

	_, err := store.CreateEntry("", "2024-01-01", "10:00:00", nil)
	assert.ErrorIs(t, err, types.ErrEmptyText)
	_, err = store.CreateEntry("   ", "2024-01-01", "10:00:00", nil)
	assert.ErrorIs(t, err, types.ErrEmptyText)
}

func TestCreateEntryWithLink(t *testing.T) {
	store := setupStore(t)

	parent := mustCreate(t, store, "parent")
	id, err := store.CreateEntry("reply", "2024-01-01", "10:01:00", &parent)
	require.NoError(t, err)

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[1].LinkedID)
	assert.Equal(t, parent, *entries[1].LinkedID)
	assert.Equal(t, id, entries[1].EntryID)
}

func TestCreateImageEntry(t *testing.T) {
	store := setupStore(t)

	id, err := store.CreateImageEntry("/pictures/IMG_20240101.jpg", "2024-01-01", "12:00:00")
	require.NoError(t, err)

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].EntryID)
	assert.Equal(t, types.EntryTypeImage, entries[0].Type)
	assert.Equal(t, "/pictures/IMG_20240101.jpg", entries[0].FilePath)
	assert.Empty(t, entries[0].Text)
}

func TestListActiveExcludesDeletedListAllKeepsThem(t *testing.T) {
	store := setupStore(t)

	mustCreate(t, store, "keep")
	doomed := mustCreate(t, store, "hide")
	require.NoError(t, store.SoftDelete(doomed))
	require.NoError(t, store.SoftDelete(doomed), "re-deleting is harmless")

	assert.Equal(t, []int64{1}, activeIDs(t, store, 10))

	all, err := store.ListAll(10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[1].Deleted)
}

func TestListActiveLimitIsAscendingSuffix(t *testing.T) {
	store := setupStore(t)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		mustCreate(t, store, text)
	}

	assert.Equal(t, []int64{4, 5}, activeIDs(t, store, 2))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, activeIDs(t, store, 10))
	assert.Empty(t, activeIDs(t, store, 0))

	_, err := store.ListActive(-1)
	assert.ErrorIs(t, err, types.ErrInvalidLimit)
	_, err = store.ListAll(-1)
	assert.ErrorIs(t, err, types.ErrInvalidLimit)
}

func TestMutationsOnMissingIDAreNoOps(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, "only entry")

	assert.NoError(t, store.UpdateText(99, "new text"))
	assert.NoError(t, store.UpdateNote(99, "new note"))
	assert.NoError(t, store.ConvertToTask(99))
	assert.NoError(t, store.ConvertToText(99))
	assert.NoError(t, store.SetTaskStatus(99, types.TaskStatusDone))
	assert.NoError(t, store.SoftDelete(99))
	parent := int64(1)
	assert.NoError(t, store.SetLinkedID(99, &parent))

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only entry", entries[0].Text)
}

func TestUpdateTextAndNote(t *testing.T) {
	store := setupStore(t)
	id := mustCreate(t, store, "draft")

	require.NoError(t, store.UpdateText(id, "final"))
	require.NoError(t, store.UpdateNote(id, "remember this"))

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	assert.Equal(t, "final", entries[0].Text)
	assert.Equal(t, "remember this", entries[0].Note)

	assert.ErrorIs(t, store.UpdateText(id, "  "), types.ErrEmptyText)

	require.NoError(t, store.UpdateNote(id, ""))
	entries, err = store.ListActive(10)
	require.NoError(t, err)
	assert.Empty(t, entries[0].Note)
}

func TestTaskConversionRoundTrip(t *testing.T) {
	store := setupStore(t)
	id := mustCreate(t, store, "chore")

	require.NoError(t, store.ConvertToTask(id))
	entries, err := store.ListActive(10)
	require.NoError(t, err)
	assert.Equal(t, types.EntryTypeTask, entries[0].Type)
	assert.Equal(t, types.TaskStatusTodo, entries[0].TaskStatus)

	// Intervening status changes do not stick through conversion back.
	require.NoError(t, store.SetTaskStatus(id, types.TaskStatusDone))
	require.NoError(t, store.ConvertToText(id))
	entries, err = store.ListActive(10)
	require.NoError(t, err)
	assert.Equal(t, types.EntryTypeText, entries[0].Type)
	assert.Empty(t, entries[0].TaskStatus)
}

func TestImageEntriesAreNotConvertible(t *testing.T) {
	store := setupStore(t)
	id, err := store.CreateImageEntry("/pictures/a.jpg", "2024-01-01", "10:00:00")
	require.NoError(t, err)

	require.NoError(t, store.ConvertToTask(id))
	require.NoError(t, store.SetTaskStatus(id, types.TaskStatusDone))

	entries, err := store.ListActive(10)
	require.NoError(t, err)
	assert.Equal(t, types.EntryTypeImage, entries[0].Type)
	assert.Empty(t, entries[0].TaskStatus)
}

func TestSetLinkedID(t *testing.T) {
	store := setupStore(t)
	first := mustCreate(t, store, "first")
	second := mustCreate(t, store, "second")

	require.NoError(t, store.SetLinkedID(second, &first))
	entries, err := store.ListActive(10)
	require.NoError(t, err)
	require.NotNil(t, entries[1].LinkedID)
	assert.Equal(t, first, *entries[1].LinkedID)

	// Self-links are invalid; the row keeps its previous reference.
	assert.ErrorIs(t, store.SetLinkedID(second, &second), types.ErrSelfLink)
	entries, err = store.ListActive(10)
	require.NoError(t, err)
	require.NotNil(t, entries[1].LinkedID)
	assert.Equal(t, first, *entries[1].LinkedID)

	require.NoError(t, store.SetLinkedID(second, nil))
	entries, err = store.ListActive(10)
	require.NoError(t, err)
	assert.Nil(t, entries[1].LinkedID)
}

func TestCreateEntryRejectsSelfLink(t *testing.T) {
	store := setupStore(t)

	// The next id in an empty diary is 1; linking the new entry to it
	// would make the row its own parent.
	next := int64(1)
	_, err := store.CreateEntry("loop", "2024-01-01", "10:00:00", &next)
	assert.ErrorIs(t, err, types.ErrSelfLink)

	entries, err := store.ListAll(10)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is persisted when the link is rejected")

	// The sequence is unaffected; the same pointer is a valid parent
	// reference once entry 1 exists.
	first := mustCreate(t, store, "root")
	assert.Equal(t, int64(1), first)
	id, err := store.CreateEntry("reply", "2024-01-01", "10:01:00", &first)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestListInDateRange(t *testing.T) {
	store := setupStore(t)

	mk := func(text, date, timeOfDay string) int64 {
		t.Helper()
		id, err := store.CreateEntry(text, date, timeOfDay, nil)
		require.NoError(t, err)
		return id
	}

	mk("before", "2023-12-31", "23:59:59")
	late := mk("jan first, late", "2024-01-01", "18:00:00")
	early := mk("jan first, early", "2024-01-01", "08:00:00")
	second := mk("jan second", "2024-01-02", "12:00:00")
	mk("after", "2024-02-01", "00:00:00")
	deleted := mk("deleted in range", "2024-01-01", "12:00:00")
	require.NoError(t, store.SoftDelete(deleted))

	entries, err := store.ListInDateRange("2024-01-01", "2024-01-02")
	require.NoError(t, err)

	// Inclusive bounds, date then time ascending, deleted rows included
	// (export wants full history).
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EntryID)
	}
	assert.Equal(t, []int64{early, deleted, late, second}, ids)
}

func TestStoreHandleAfterDiaryDeleted(t *testing.T) {
	b := setupBackend(t)
	_, err := b.CreateDiary("Fleeting")
	require.NoError(t, err)
	store, err := b.OpenDiary("Fleeting")
	require.NoError(t, err)
	require.NoError(t, b.DeleteDiary("Fleeting"))

	_, err = store.CreateEntry("orphan", "2024-01-01", "10:00:00", nil)
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)
	_, err = store.ListActive(10)
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)
	assert.ErrorIs(t, store.SoftDelete(1), types.ErrDiaryNotFound)
	_, err = store.ListInDateRange("2024-01-01", "2024-12-31")
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)
}
