package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create users table
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password TEXT NOT NULL
);

-- Create students table
CREATE TABLE IF NOT EXISTS students (
    student_id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

-- Create attendance table
CREATE TABLE IF NOT EXISTS attendance (
    student_id TEXT,
    date TEXT,
    present INTEGER,
    PRIMARY KEY (student_id, date),
    FOREIGN KEY (student_id) REFERENCES students(student_id)
);
`

// InitSchema creates the tables if they do not exist yet. Safe to run on
// every open.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
