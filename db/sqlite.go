package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Initialize opens the sqlite database at path, creating the file on first
// use, and verifies the connection. The schema is applied separately via
// InitSchema.
func Initialize(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	}

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty
		// in-memory database.
		database.SetMaxOpenConns(1)
	}

	if err = database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return database, nil
}
