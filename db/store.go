package db

import (
	"database/sql"
	"errors"
	"fmt"

	"attendance_tracker/models"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	ErrDuplicateUser    = errors.New("user already exists")
	ErrDuplicateStudent = errors.New("student already exists")
	ErrStudentNotFound  = errors.New("student not found")
)

// Store is the relational attendance adapter. It is independent of the
// in-memory roster; the two backends are separate modes of the tool and are
// never synchronized.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

// AddUser inserts a credential pair. The password is stored verbatim: the
// tool reproduces the plaintext credential scheme of the system it tracks,
// and hashing would break the exact-equality contract of Authenticate.
func (s *Store) AddUser(username, password string) error {
	_, err := s.db.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`, username, password)
	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// Authenticate reports whether the exact (username, password) pair is stored.
func (s *Store) Authenticate(username, password string) (bool, error) {
	var user models.User
	err := s.db.QueryRow(
		`SELECT username, password FROM users WHERE username = ? AND password = ?`,
		username, password,
	).Scan(&user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error querying user: %w", err)
	}
	return true, nil
}

// AddStudent inserts a student. A duplicate id is reported via
// ErrDuplicateStudent and leaves the stored name unchanged.
func (s *Store) AddStudent(studentID, name string) error {
	_, err := s.db.Exec(`INSERT INTO students (student_id, name) VALUES (?, ?)`, studentID, name)
	if isUniqueViolation(err) {
		return ErrDuplicateStudent
	}
	if err != nil {
		return fmt.Errorf("error inserting student: %w", err)
	}
	return nil
}

// ListStudents returns all students in insertion (rowid) order.
func (s *Store) ListStudents() ([]models.StudentResponse, error) {
	rows, err := s.db.Query(`SELECT student_id, name FROM students`)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []models.StudentResponse
	for rows.Next() {
		var student models.StudentResponse
		if err := rows.Scan(&student.StudentID, &student.Name); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// MarkAttendance upserts the presence flag for (student_id, date). A later
// call for the same key overwrites the earlier value. The student must exist.
func (s *Store) MarkAttendance(studentID, date string, present bool) error {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM students WHERE student_id = ?)`, studentID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error verifying student: %w", err)
	}
	if !exists {
		return ErrStudentNotFound
	}

	presentFlag := 0
	if present {
		presentFlag = 1
	}
	_, err = s.db.Exec(`
        INSERT INTO attendance (student_id, date, present)
        VALUES (?, ?, ?)
        ON CONFLICT (student_id, date) DO UPDATE SET present = excluded.present
    `, studentID, date, presentFlag)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}
	return nil
}

// SummaryReport aggregates attendance per student with a left join. A
// student with no attendance rows reports 0 present, 0 total and "0.00%";
// that rendering is this backend's policy and is allowed to differ from the
// flat-file path.
func (s *Store) SummaryReport() ([]models.SummaryRow, error) {
	rows, err := s.db.Query(`
        SELECT s.student_id, s.name,
            COALESCE(SUM(a.present), 0) AS present_days,
            COUNT(a.date) AS total_days,
            COALESCE(ROUND(100.0 * SUM(a.present) / COUNT(a.date), 2), 0) AS percentage
        FROM students s
        LEFT JOIN attendance a ON s.student_id = a.student_id
        GROUP BY s.student_id
    `)
	if err != nil {
		return nil, fmt.Errorf("error querying summary: %w", err)
	}
	defer rows.Close()

	var report []models.SummaryRow
	for rows.Next() {
		var row models.SummaryRow
		var percentage float64
		if err := rows.Scan(&row.StudentID, &row.Name, &row.PresentDays, &row.TotalDays, &percentage); err != nil {
			return nil, fmt.Errorf("error scanning summary row: %w", err)
		}
		row.Percentage = fmt.Sprintf("%.2f%%", percentage)
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary: %w", err)
	}
	return report, nil
}

// Attendance returns the recorded (date, present) pairs for one student in
// ascending date order.
func (s *Store) Attendance(studentID string) ([]models.AttendanceResponse, error) {
	rows, err := s.db.Query(
		`SELECT student_id, date, present FROM attendance WHERE student_id = ? ORDER BY date`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceResponse
	for rows.Next() {
		var record models.AttendanceResponse
		var presentFlag int
		if err := rows.Scan(&record.StudentID, &record.Date, &presentFlag); err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		record.Present = presentFlag != 0
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}
	return records, nil
}
