package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/oddworks/onelogs/pkg/types"
)

// databaseFileName is the single database file holding every diary.
const databaseFileName = "logbooks.db"

// Compile-time interface check: Backend must implement Catalog.
var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface on a durable SQLite database.
// All diaries share one database; the diaries table is the registry and
// entries are partitioned by diary_id.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database under config.DataDir, creating the directory,
// the schema, and the default diaries for an empty catalog. Returns
// ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	if err := b.seedDefaultDiaries(); err != nil {
		b.db.Close()
		b.db = nil
		b.attached = false
		return fmt.Errorf("seeding default diaries: %w", err)
	}

	return nil
}

// Detach closes the database. Idempotent; after Detach all operations
// return ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// OpenDiary returns an EntryStore scoped to the named diary.
func (b *Backend) OpenDiary(rawName string) (types.EntryStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	diary, err := b.lookupDiary(types.SanitizeDiaryName(rawName))
	if err != nil {
		return nil, err
	}
	return &entriesStore{backend: b, diaryID: diary.DiaryID}, nil
}

// seedDefaultDiaries creates the two default diaries when the catalog is
// empty. Caller holds b.mu.
func (b *Backend) seedDefaultDiaries() error {
	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM diaries").Scan(&count); err != nil {
		return fmt.Errorf("counting diaries: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range types.DefaultDiaryNames {
		if _, err := b.insertDiary(types.SanitizeDiaryName(name)); err != nil {
			return err
		}
	}
	return nil
}

// newUUID generates a UUID v7 string for diary ids.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
