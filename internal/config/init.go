package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and fails fast on the settings the app cannot run without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	dbDSN := os.Getenv("DB_DSN")
	if dbDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	staffSecret := os.Getenv("STAFF_JWT_SECRET")
	if staffSecret == "" {
		Logger.Fatal("STAFF_JWT_SECRET is not set")
	}
}
