package db

import (
	"database/sql"
	"fmt"
)

// SeedData populates the database with a small demo roster. Existing rows
// are left untouched.
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	students := [][2]string{
		{"1001", "Alice"},
		{"1002", "Bob"},
		{"1003", "Carol"},
	}
	for _, student := range students {
		_, err = tx.Exec(
			`INSERT INTO students (student_id, name) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			student[0], student[1],
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding students: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
