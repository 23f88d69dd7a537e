package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// presentToken converts a presence flag to its on-disk literal. Only the
// exact text "True" reads back as present; see LoadCSV.
func presentToken(present bool) string {
	if present {
		return "True"
	}
	return "False"
}

// SaveCSV writes one row per (student, date) pair as
// [id, name, date, True|False], overwriting the target file.
func (m *Manager) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		m.log.Error("Failed to save file: %v", err)
		return fmt.Errorf("error creating csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, student := range m.Students() {
		// Ascending date order keeps repeated saves byte-identical.
		for _, date := range student.SortedDates() {
			if err := w.Write([]string{student.ID, student.Name, date, presentToken(student.Attendance[date])}); err != nil {
				m.log.Error("Failed to save file: %v", err)
				return fmt.Errorf("error writing csv row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		m.log.Error("Failed to save file: %v", err)
		return fmt.Errorf("error flushing csv file: %w", err)
	}
	m.log.Info("Attendance data saved to '%s'.", path)
	return nil
}

// LoadCSV merges rows from path into the roster. Rows without exactly four
// fields are skipped. Students referenced only by attendance rows are created
// with the name from that row. The presence field is true only for the exact
// literal "True"; anything else, including "true" or "1", reads as false.
// A missing file is a warning, not an error.
func (m *Manager) LoadCSV(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		m.log.Warn("File '%s' not found.", path)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		m.log.Error("Failed to load file: %v", err)
		return fmt.Errorf("error opening csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Corrupt row; keep going with the rest of the file.
				continue
			}
			m.log.Error("Failed to load file: %v", err)
			return fmt.Errorf("error reading csv file: %w", err)
		}
		if len(row) != 4 {
			continue
		}
		student := m.getOrCreate(row[0], row[1])
		student.MarkAttendance(row[2], row[3] == "True")
	}
	m.log.Info("Data loaded from '%s'.", path)
	return nil
}
