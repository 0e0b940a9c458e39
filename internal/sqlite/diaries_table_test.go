package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddworks/onelogs/pkg/types"
)

func TestCreateDiarySanitizesName(t *testing.T) {
	b := setupBackend(t)

	d, err := b.CreateDiary("My Diary!")
	require.NoError(t, err)
	assert.Equal(t, "my_diary_", d.Name)
	assert.NotEmpty(t, d.DiaryID)
}

func TestCreateDiaryIsIdempotent(t *testing.T) {
	b := setupBackend(t)

	first, err := b.CreateDiary("My Diary!")
	require.NoError(t, err)
	second, err := b.CreateDiary("My Diary!")
	require.NoError(t, err)
	assert.Equal(t, first.DiaryID, second.DiaryID)

	diaries, err := b.ListDiaries()
	require.NoError(t, err)
	assert.Len(t, diaries, 3, "two defaults plus one created")
}

func TestCreateDiaryCollidingRawNames(t *testing.T) {
	b := setupBackend(t)

	// "A/B" and "A_B" sanitize to the same identifier and resolve to the
	// same diary; the catalog cannot tell them apart.
	first, err := b.CreateDiary("A/B")
	require.NoError(t, err)
	second, err := b.CreateDiary("A_B")
	require.NoError(t, err)
	assert.Equal(t, first.DiaryID, second.DiaryID)
}

func TestCreateDiaryRejectsUnusableNames(t *testing.T) {
	b := setupBackend(t)

	_, err := b.CreateDiary("")
	assert.ErrorIs(t, err, types.ErrInvalidName)
	_, err = b.CreateDiary("   ")
	assert.ErrorIs(t, err, types.ErrInvalidName)
	_, err = b.CreateDiary("!!!")
	assert.ErrorIs(t, err, types.ErrInvalidName, "no letter or digit survives sanitization")
}

func TestOpenDiaryMissing(t *testing.T) {
	b := setupBackend(t)

	_, err := b.OpenDiary("no_such_diary")
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)
}

func TestDeleteDiaryDiscardsEntries(t *testing.T) {
	b := setupBackend(t)

	d, err := b.CreateDiary("Doomed")
	require.NoError(t, err)
	store, err := b.OpenDiary("Doomed")
	require.NoError(t, err)
	_, err = store.CreateEntry("gone soon", "2024-01-01", "10:00:00", nil)
	require.NoError(t, err)

	require.NoError(t, b.DeleteDiary("Doomed"))

	_, err = b.OpenDiary("Doomed")
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)

	// Recreating the name starts an empty collection with fresh ids.
	recreated, err := b.CreateDiary("Doomed")
	require.NoError(t, err)
	assert.NotEqual(t, d.DiaryID, recreated.DiaryID)

	store, err = b.OpenDiary("Doomed")
	require.NoError(t, err)
	entries, err := store.ListActive(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteDiaryMissing(t *testing.T) {
	b := setupBackend(t)

	err := b.DeleteDiary("no_such_diary")
	assert.ErrorIs(t, err, types.ErrDiaryNotFound)
}

func TestDiariesAreIsolated(t *testing.T) {
	b := setupBackend(t)

	work, err := b.OpenDiary("WorkDiary")
	require.NoError(t, err)
	personal, err := b.OpenDiary("PersonalDiary")
	require.NoError(t, err)

	_, err = work.CreateEntry("standup notes", "2024-01-01", "09:00:00", nil)
	require.NoError(t, err)

	entries, err := personal.ListActive(10)
	require.NoError(t, err)
	assert.Empty(t, entries, "entries never cross diaries")

	// Per-diary sequences start at 1 independently.
	id, err := personal.CreateEntry("groceries", "2024-01-01", "10:00:00", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
