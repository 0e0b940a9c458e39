package types

import "strings"

// Entry type values as stored in the entries table.
const (
	EntryTypeText  = "TEXT"
	EntryTypeTask  = "TASK"
	EntryTypeImage = "IMAGE"
	EntryTypeAudio = "AUDIO"
)

// Task status values. Older rows may carry legacy encodings ("true",
// "false", "0", "incomplete", empty); NormalizeTaskStatus folds them.
const (
	TaskStatusTodo = "TODO"
	TaskStatusDone = "DONE"
)

// Timestamp formats for the CreatedDate and CreatedTime columns. Both are
// plain strings set once at creation; the store never generates them.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

// DiaryEntry is one row of a diary. EntryID is unique and monotonically
// assigned within its diary and is never reused. CreatedDate and
// CreatedTime are immutable after creation; LinkedID, Type, TaskStatus,
// Text, Note, and Deleted may change through EntryStore mutations.
type DiaryEntry struct {
	// EntryID is the per-diary monotonic identifier, assigned by the store.
	EntryID int64

	// CreatedDate is the creation date, "YYYY-MM-DD".
	CreatedDate string

	// CreatedTime is the creation time, "HH:MM:SS".
	CreatedTime string

	// LinkedID points at the parent entry in a reply chain, or nil.
	// A dangling LinkedID is tolerated; a self-reference is not.
	LinkedID *int64

	// Type is one of the EntryType constants.
	Type string

	// TaskStatus holds the raw stored status for Task entries. Read it
	// through NormalizeTaskStatus; legacy rows carry non-canonical values.
	TaskStatus string

	// FilePath is the absolute image path for Image entries. The store
	// never checks that the file exists.
	FilePath string

	// Text is the entry content. Required for Text and Task entries,
	// empty for Image entries.
	Text string

	// Note is an optional annotation, independent of Type.
	Note string

	// Deleted marks the row soft-deleted. The row is retained and still
	// visible to ListAll so link chains stay navigable.
	Deleted bool
}

// NormalizeTaskStatus folds the legacy status encodings into the two
// canonical values: "DONE" and "true" mean done, everything else (TODO,
// incomplete, false, 0, empty) means todo.
func NormalizeTaskStatus(raw string) string {
	if raw == TaskStatusDone || raw == "true" {
		return TaskStatusDone
	}
	return TaskStatusTodo
}

// IsPendingTask reports whether the entry is a Task whose normalized
// status is not done.
func (e DiaryEntry) IsPendingTask() bool {
	return e.Type == EntryTypeTask && NormalizeTaskStatus(e.TaskStatus) != TaskStatusDone
}

// MatchesQuery reports whether every whitespace-separated token of query
// is a case-insensitive substring of the entry's text and note combined.
// Token order is irrelevant. An empty query matches everything.
func (e DiaryEntry) MatchesQuery(query string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	haystack := strings.ToLower(e.Text + " " + e.Note)
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}
