package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical done", raw: "DONE", want: TaskStatusDone},
		{name: "legacy boolean true", raw: "true", want: TaskStatusDone},
		{name: "canonical todo", raw: "TODO", want: TaskStatusTodo},
		{name: "legacy incomplete", raw: "incomplete", want: TaskStatusTodo},
		{name: "legacy zero", raw: "0", want: TaskStatusTodo},
		{name: "legacy boolean false", raw: "false", want: TaskStatusTodo},
		{name: "empty status", raw: "", want: TaskStatusTodo},
		{name: "lowercase done is not done", raw: "done", want: TaskStatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTaskStatus(tt.raw))
		})
	}
}

func TestIsPendingTask(t *testing.T) {
	tests := []struct {
		name  string
		entry DiaryEntry
		want  bool
	}{
		{
			name:  "todo task is pending",
			entry: DiaryEntry{Type: EntryTypeTask, TaskStatus: "TODO"},
			want:  true,
		},
		{
			name:  "legacy true task is complete",
			entry: DiaryEntry{Type: EntryTypeTask, TaskStatus: "true"},
			want:  false,
		},
		{
			name:  "done task is complete",
			entry: DiaryEntry{Type: EntryTypeTask, TaskStatus: "DONE"},
			want:  false,
		},
		{
			name:  "empty status task is pending",
			entry: DiaryEntry{Type: EntryTypeTask},
			want:  true,
		},
		{
			name:  "text entry is never pending",
			entry: DiaryEntry{Type: EntryTypeText},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.IsPendingTask())
		})
	}
}

func TestMatchesQuery(t *testing.T) {
	entry := DiaryEntry{Text: "bar something foo", Note: "weekly review"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "tokens match out of order", query: "foo bar", want: true},
		{name: "case insensitive", query: "FOO Something", want: true},
		{name: "token spanning text and note", query: "foo review", want: true},
		{name: "missing token fails", query: "foo baz", want: false},
		{name: "empty query matches", query: "", want: true},
		{name: "whitespace only query matches", query: "   ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entry.MatchesQuery(tt.query))
		})
	}
}

func TestMatchesQueryOnlyPartialToken(t *testing.T) {
	// An entry containing only one of two tokens must not match.
	entry := DiaryEntry{Text: "foo only"}
	assert.False(t, entry.MatchesQuery("foo bar"))
}
