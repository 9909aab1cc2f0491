// Package sqlite is the external TTL-store cache backend. The table
// persists everything as text, so values carry a kind tag that the
// codec reverses on read.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const cacheEntriesSchema = `
	CREATE TABLE IF NOT EXISTS cache_entries (
		key        TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		expires_at INTEGER NOT NULL
	);
`

type Settings struct {
	DbPath string
}

// NewDB opens the cache database and boots the schema.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db %q: %w", settings.DbPath, err)
	}

	// Serialize access through one connection; also keeps :memory:
	// databases from splitting across pool connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(cacheEntriesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boot cache schema: %w", err)
	}
	return db, nil
}
