package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance_tracker/cli"
	"attendance_tracker/config"
	"attendance_tracker/db"
	"attendance_tracker/logger"
	"attendance_tracker/report"
	"attendance_tracker/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLog := logger.New(cfg.LogPath)
	defer appLog.Close()

	mode := "menu"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "menu":
		cli.New(cfg, appLog).RunMenu()
	case "db":
		cli.New(cfg, appLog).RunDB()
	case "export":
		output := "attendance_summary.xlsx"
		if len(os.Args) > 2 {
			output = os.Args[2]
		}
		runExport(cfg, appLog, output)
	case "seed":
		runSeed(cfg, appLog)
	case "serve":
		runServer(cfg)
	default:
		log.Fatalf("Unknown mode %q (expected menu, db, export, seed or serve)", mode)
	}
}

// runSeed loads the demo roster into the sqlite store.
func runSeed(cfg *config.Config, appLog *logger.Logger) {
	database, err := db.Initialize(cfg.DBPath)
	if err != nil {
		appLog.Error("Failed to open database: %v", err)
		return
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		appLog.Error("Failed to initialize database schema: %v", err)
		return
	}

	if err := db.SeedData(database); err != nil {
		appLog.Error("Failed to seed demo data: %v", err)
		return
	}
	appLog.Info("Demo data seeded into '%s'.", cfg.DBPath)
}

// runExport writes the sqlite store's summary report to an .xlsx workbook.
func runExport(cfg *config.Config, appLog *logger.Logger, output string) {
	database, err := db.Initialize(cfg.DBPath)
	if err != nil {
		appLog.Error("Failed to open database: %v", err)
		return
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		appLog.Error("Failed to initialize database schema: %v", err)
		return
	}

	store := db.NewStore(database)
	rows, err := store.SummaryReport()
	if err != nil {
		appLog.Error("Failed to fetch summary: %v", err)
		return
	}

	if err := report.WriteSummaryXLSX(output, rows); err != nil {
		appLog.Error("Failed to export summary: %v", err)
		return
	}
	appLog.Info("Summary exported to '%s'.", output)
}

// runServer starts the HTTP API mode backed by the sqlite store.
func runServer(cfg *config.Config) {
	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	database, err := db.Initialize(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Error initializing database schema: %v", err)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
		"PUT",
		"DELETE",
		"PATCH",
	}
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r, database, jwtSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
