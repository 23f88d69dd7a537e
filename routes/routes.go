package routes

import (
	"database/sql"

	"attendance_tracker/db"
	"attendance_tracker/handlers"
	"attendance_tracker/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the HTTP API mode.
func SetupRoutes(r *gin.Engine, database *sql.DB, jwtSecret []byte) {
	store := db.NewStore(database)

	authHandler := handlers.NewAuthHandler(store, jwtSecret)
	studentHandler := handlers.NewStudentHandler(store)
	attendanceHandler := handlers.NewAttendanceHandler(store)
	healthHandler := handlers.NewHealthHandler(database)

	// Public routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/health", healthHandler.HealthCheck)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		// Student routes
		protected.POST("/students", studentHandler.CreateStudent)
		protected.GET("/students", studentHandler.GetStudents)

		// Attendance routes
		protected.POST("/attendance", attendanceHandler.MarkAttendance)
		protected.GET("/attendance/summary", attendanceHandler.GetSummary)
		protected.GET("/attendance/students/:id", attendanceHandler.GetStudentAttendance)
	}
}
