package models

import (
	"fmt"
	"sort"
	"time"
)

// DateFormat is the layout used for all attendance dates.
const DateFormat = "2006-01-02"

// Student holds one student and their per-date attendance records.
type Student struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Attendance map[string]bool `json:"attendance"` // date -> present
}

func NewStudent(id, name string) *Student {
	return &Student{
		ID:         id,
		Name:       name,
		Attendance: make(map[string]bool),
	}
}

// MarkAttendance records presence for a date. An empty date means today.
// A repeated mark for the same date overwrites the earlier one.
func (s *Student) MarkAttendance(date string, present bool) {
	if date == "" {
		date = time.Now().Format(DateFormat)
	}
	s.Attendance[date] = present
}

// PresentCount returns the number of dates the student was marked present.
func (s *Student) PresentCount() int {
	count := 0
	for _, present := range s.Attendance {
		if present {
			count++
		}
	}
	return count
}

// AttendancePercentage returns present/total*100, or 0 when no dates are
// recorded.
func (s *Student) AttendancePercentage() float64 {
	total := len(s.Attendance)
	if total == 0 {
		return 0
	}
	return float64(s.PresentCount()) / float64(total) * 100
}

// SortedDates returns the recorded dates in ascending order.
func (s *Student) SortedDates() []string {
	dates := make([]string, 0, len(s.Attendance))
	for date := range s.Attendance {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Summary renders the one-line report row, e.g. "S1 | Ann | 50.00%".
func (s *Student) Summary() string {
	return fmt.Sprintf("%s | %s | %.2f%%", s.ID, s.Name, s.AttendancePercentage())
}

func (s *Student) String() string {
	return fmt.Sprintf("%s - %s", s.ID, s.Name)
}
