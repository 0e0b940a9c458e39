// Package sqlite implements the SQLite storage backend for onelogs.
// One database file holds every diary: a diaries registry table plus a
// single entries table keyed by (diary_id, entry_id).
package sqlite

// Schema DDL. The database survives across attaches, so every statement
// is IF NOT EXISTS; there is no migration beyond table creation.
const (
	createDiaries = `CREATE TABLE IF NOT EXISTS diaries (
    diary_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createEntries = `CREATE TABLE IF NOT EXISTS entries (
    diary_id TEXT NOT NULL,
    entry_id INTEGER NOT NULL,
    created_date TEXT NOT NULL,
    created_time TEXT NOT NULL,
    linked_id INTEGER,
    entry_type TEXT NOT NULL,
    task_status TEXT,
    file_path TEXT,
    text TEXT NOT NULL,
    note TEXT,
    deleted INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (diary_id, entry_id),
    FOREIGN KEY (diary_id) REFERENCES diaries(diary_id)
);`
)

// Index DDL for common queries.
const (
	idxEntriesDate    = `CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(diary_id, created_date, created_time);`
	idxEntriesDeleted = `CREATE INDEX IF NOT EXISTS idx_entries_deleted ON entries(diary_id, deleted);`
	idxEntriesLinked  = `CREATE INDEX IF NOT EXISTS idx_entries_linked ON entries(diary_id, linked_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createDiaries,
	createEntries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEntriesDate,
	idxEntriesDeleted,
	idxEntriesLinked,
}
