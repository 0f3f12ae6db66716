package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ngos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	address TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	website TEXT,
	category TEXT NOT NULL,
	description TEXT NOT NULL,
	rating REAL DEFAULT 0,
	review_count INTEGER DEFAULT 0,
	is_active BOOLEAN DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ngos_category ON ngos(category);
CREATE INDEX IF NOT EXISTS idx_ngos_name ON ngos(name);
CREATE INDEX IF NOT EXISTS idx_ngos_active ON ngos(is_active);
`

// OpenSQLite opens (creating if necessary) the SQLite database at path and
// applies the schema. Pass ":memory:" for an ephemeral database in tests.
// Caller should call db.Close().
func OpenSQLite(ctx context.Context, path string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// SQLite is single-writer; one connection avoids busy errors under
	// concurrent requests.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return db, nil
}
