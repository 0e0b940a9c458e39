package types

import (
	"strings"
	"time"
)

// Diary is one row of the catalog registry. Each diary owns an independent
// entry collection; deleting a diary discards that collection irrevocably.
type Diary struct {
	// DiaryID is a UUID v7, generated on creation.
	DiaryID string

	// Name is the sanitized diary name (lowercase letters, digits,
	// underscore). Unique within the catalog.
	Name string

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time
}

// Default diaries seeded into an empty catalog on attach.
var DefaultDiaryNames = []string{"WorkDiary", "PersonalDiary"}

// SanitizeDiaryName folds a raw diary name into its storage identifier:
// every rune outside [A-Za-z0-9_] becomes an underscore, then the result
// is lowercased. Distinct raw names can collide ("A/B" and "A_B" both
// sanitize to "a_b"); the catalog treats such names as the same diary.
func SanitizeDiaryName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ValidDiaryName reports whether raw sanitizes to a usable identifier:
// at least one letter or digit must survive sanitization. Names of pure
// punctuation or whitespace would sanitize to bare underscores and are
// rejected.
func ValidDiaryName(raw string) bool {
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		}
	}
	return false
}
