// Package roster holds the in-memory student roster and its flat-file
// persistence. The roster is owned by the interactive session that created
// it; the sqlite-backed store in package db is a separate mode of the tool
// and is never synchronized with it.
package roster

import (
	"fmt"

	"attendance_tracker/logger"
	"attendance_tracker/models"
)

func formatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Manager tracks students keyed by id, preserving insertion order for
// listing and saving.
type Manager struct {
	students map[string]*models.Student
	order    []string
	log      *logger.Logger
}

func NewManager(log *logger.Logger) *Manager {
	return &Manager{
		students: make(map[string]*models.Student),
		log:      log,
	}
}

// AddStudent registers a new student with an empty attendance record.
// A duplicate id is reported and leaves the roster unchanged.
func (m *Manager) AddStudent(id, name string) bool {
	if _, exists := m.students[id]; exists {
		m.log.Warn("Student %s already exists.", id)
		return false
	}
	m.students[id] = models.NewStudent(id, name)
	m.order = append(m.order, id)
	m.log.Info("Student %s added with ID %s.", name, id)
	return true
}

// MarkAttendance sets presence for a student on a date (empty date means
// today). Marking the same date twice keeps the later value.
func (m *Manager) MarkAttendance(id string, present bool, date string) bool {
	student, ok := m.students[id]
	if !ok {
		m.log.Error("Student ID %s not found.", id)
		return false
	}
	student.MarkAttendance(date, present)
	m.log.Info("Attendance marked for %s.", id)
	return true
}

// Get looks up a student by id.
func (m *Manager) Get(id string) (*models.Student, bool) {
	student, ok := m.students[id]
	return student, ok
}

// Students returns all students in insertion order.
func (m *Manager) Students() []*models.Student {
	out := make([]*models.Student, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.students[id])
	}
	return out
}

func (m *Manager) Len() int {
	return len(m.students)
}

// Summary computes the report rows for every student, in insertion order.
func (m *Manager) Summary() []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, len(m.order))
	for _, student := range m.Students() {
		total := len(student.Attendance)
		percentage := "0.00%"
		if total > 0 {
			percentage = formatPercentage(student.AttendancePercentage())
		}
		rows = append(rows, models.SummaryRow{
			StudentID:   student.ID,
			Name:        student.Name,
			PresentDays: student.PresentCount(),
			TotalDays:   total,
			Percentage:  percentage,
		})
	}
	return rows
}

// getOrCreate returns the student for id, creating it with the given name if
// it is not yet registered. Used by the CSV loader, where attendance rows may
// reference students that were never explicitly added.
func (m *Manager) getOrCreate(id, name string) *models.Student {
	if student, ok := m.students[id]; ok {
		return student
	}
	student := models.NewStudent(id, name)
	m.students[id] = student
	m.order = append(m.order, id)
	return student
}
