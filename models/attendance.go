package models

type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required,alphanum,min=4,max=10"`
	Name      string `json:"name" binding:"required,min=2"`
}

type StudentResponse struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Present   *bool  `json:"present" binding:"required"`
}

type AttendanceResponse struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
}

// SummaryRow is one line of the attendance summary report.
type SummaryRow struct {
	StudentID   string `json:"student_id"`
	Name        string `json:"name"`
	PresentDays int    `json:"present_days"`
	TotalDays   int    `json:"total_days"`
	Percentage  string `json:"percentage"`
}
