package handlers

import (
	"errors"
	"log"
	"net/http"

	"attendance_tracker/db"
	"attendance_tracker/models"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store *db.Store
}

func NewAttendanceHandler(store *db.Store) *AttendanceHandler {
	return &AttendanceHandler{store: store}
}

func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	if err := h.store.MarkAttendance(req.StudentID, date, *req.Present); err != nil {
		if errors.Is(err, db.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		log.Printf("Error marking attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance"})
		return
	}

	c.JSON(http.StatusOK, models.AttendanceResponse{
		StudentID: req.StudentID,
		Date:      date,
		Present:   *req.Present,
	})
}

func (h *AttendanceHandler) GetSummary(c *gin.Context) {
	report, err := h.store.SummaryReport()
	if err != nil {
		log.Printf("Error fetching summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance summary"})
		return
	}
	if report == nil {
		report = []models.SummaryRow{}
	}
	c.JSON(http.StatusOK, report)
}

func (h *AttendanceHandler) GetStudentAttendance(c *gin.Context) {
	studentID := c.Param("id")
	records, err := h.store.Attendance(studentID)
	if err != nil {
		log.Printf("Error fetching attendance for %s: %v", studentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance records"})
		return
	}
	if records == nil {
		records = []models.AttendanceResponse{}
	}
	c.JSON(http.StatusOK, records)
}
