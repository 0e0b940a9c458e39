package types

import "errors"

// Catalog enumerates and manages independent diaries inside one storage
// backend. Callers attach to a backend, open diaries by name, and detach
// when done.
type Catalog interface {
	// ListDiaries returns all diaries in storage-enumeration order.
	ListDiaries() ([]Diary, error)

	// CreateDiary sanitizes rawName and creates the diary if it does not
	// already exist. Idempotent: creating an existing sanitized name
	// returns the existing diary. Returns ErrInvalidName for names that
	// sanitize to nothing usable.
	CreateDiary(rawName string) (Diary, error)

	// DeleteDiary removes the diary and its entire entry collection.
	// Irreversible. Returns ErrDiaryNotFound if no such diary exists.
	DeleteDiary(rawName string) error

	// OpenDiary returns an EntryStore scoped to the named diary.
	// Returns ErrDiaryNotFound if the diary does not exist.
	OpenDiary(rawName string) (EntryStore, error)

	// Attach connects the catalog to the backend described by config,
	// creating the data directory and schema as needed and seeding the
	// default diaries into an empty catalog. Returns ErrAlreadyAttached
	// if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach all
	// operations return ErrDetached.
	Detach() error
}

// EntryStore provides CRUD and range/filter queries over one diary's
// entries. Every operation fails with ErrDiaryNotFound if the diary has
// been deleted since the store was opened. Targeted mutations on entry
// ids that do not exist are silent no-ops.
type EntryStore interface {
	// CreateEntry inserts a Text entry and returns its assigned id.
	// Returns ErrEmptyText when text is blank. linkedID may be nil;
	// a linkedID equal to the id the store would assign is rejected
	// with ErrSelfLink.
	CreateEntry(text, date, timeOfDay string, linkedID *int64) (int64, error)

	// CreateImageEntry inserts an Image entry with empty text.
	CreateImageEntry(filePath, date, timeOfDay string) (int64, error)

	// UpdateText replaces the entry's text. Returns ErrEmptyText when
	// newText is blank.
	UpdateText(id int64, newText string) error

	// UpdateNote replaces the entry's note. An empty note clears it.
	UpdateNote(id int64, newNote string) error

	// SetLinkedID links or reassigns the entry's parent reference.
	// Returns ErrSelfLink when linkedID equals id. nil clears the link.
	SetLinkedID(id int64, linkedID *int64) error

	// ConvertToTask turns a Text entry into a Task with status TODO.
	ConvertToTask(id int64) error

	// ConvertToText turns a Task back into a Text entry, clearing its
	// task status.
	ConvertToText(id int64) error

	// SetTaskStatus stores the canonical status value for a Task entry.
	SetTaskStatus(id int64, status string) error

	// SoftDelete hides the entry from ListActive while retaining the row.
	// Already-deleted entries are left unchanged.
	SoftDelete(id int64) error

	// ListActive returns the last limit non-deleted entries in ascending
	// id order. Returns ErrInvalidLimit for negative limits.
	ListActive(limit int) ([]DiaryEntry, error)

	// ListAll returns the last limit entries in ascending id order with
	// no deleted filter. Chain resolution reads this so soft-deleted
	// intermediate nodes stay reachable.
	ListAll(limit int) ([]DiaryEntry, error)

	// ListInDateRange returns all entries, deleted included, whose
	// CreatedDate falls inclusively between startDate and endDate,
	// ordered by date then time ascending.
	ListInDateRange(startDate, endDate string) ([]DiaryEntry, error)
}

// Catalog lifecycle errors.
var (
	ErrDetached        = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrDiaryNotFound   = errors.New("diary not found")
)

// Argument validation errors.
var (
	ErrInvalidName  = errors.New("invalid diary name")
	ErrEmptyText    = errors.New("entry text must not be empty")
	ErrSelfLink     = errors.New("entry cannot link to itself")
	ErrInvalidLimit = errors.New("limit must not be negative")
)
