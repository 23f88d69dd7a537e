package config

import (
	"os"
)

type Config struct {
	Environment string
	ServerPort  string
	CSVPath     string
	DBPath      string
	LogPath     string
	JWTSecret   string
}

func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8080"),
		CSVPath:     getEnv("CSV_PATH", "attendance_data.csv"),
		DBPath:      getEnv("DB_PATH", "attendance.db"),
		LogPath:     getEnv("LOG_PATH", "system_log.txt"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
