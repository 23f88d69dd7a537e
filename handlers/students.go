package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"attendance_tracker/db"
	"attendance_tracker/models"

	"github.com/gin-gonic/gin"
)

func today() string {
	return time.Now().Format(models.DateFormat)
}

type StudentHandler struct {
	store *db.Store
}

func NewStudentHandler(store *db.Store) *StudentHandler {
	return &StudentHandler{store: store}
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddStudent(req.StudentID, req.Name); err != nil {
		if errors.Is(err, db.ErrDuplicateStudent) {
			c.JSON(http.StatusConflict, gin.H{"error": "Student already exists"})
			return
		}
		log.Printf("Error creating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}

	c.JSON(http.StatusCreated, models.StudentResponse{
		StudentID: req.StudentID,
		Name:      req.Name,
	})
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	students, err := h.store.ListStudents()
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}
	if students == nil {
		students = []models.StudentResponse{}
	}
	c.JSON(http.StatusOK, students)
}
