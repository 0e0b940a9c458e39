package view

import "github.com/oddworks/onelogs/pkg/types"

// FilterPending keeps Task entries whose normalized status is not done.
// Legacy status encodings are folded before the comparison.
func FilterPending(entries []types.DiaryEntry) []types.DiaryEntry {
	filtered := []types.DiaryEntry{}
	for _, e := range entries {
		if e.IsPendingTask() {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FilterQuery keeps entries matching every token of query. Matching is
// case-insensitive substring over text plus note, token order irrelevant.
// An empty query keeps everything.
func FilterQuery(entries []types.DiaryEntry, query string) []types.DiaryEntry {
	filtered := []types.DiaryEntry{}
	for _, e := range entries {
		if e.MatchesQuery(query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
