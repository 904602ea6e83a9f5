package main

import (
	"context"
	"os"
	"time"

	dbadapter "gallery/internal/adapters/database"
	"gallery/internal/adapters/httpapi"
	redisadapter "gallery/internal/adapters/redis"
	"gallery/internal/config"
	"gallery/internal/core/deletion"
	"gallery/internal/core/queue"
	"gallery/internal/core/submission"
	submissionapp "gallery/internal/core/submission/service"
	"gallery/internal/core/user"
	"gallery/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	// Shared tables first, then one submission table per kind.
	if err := config.DB.AutoMigrate(
		&user.User{},
		&submission.UpdateRecord{},
		&submission.Comment{},
		&deletion.ScheduledDeletion{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	for _, kind := range queue.Kinds() {
		if err := config.DB.Table(kind.Table()).AutoMigrate(&submission.Submission{}); err != nil {
			config.Logger.Fatal("Error migrating submission table:",
				zap.String("kind", string(kind)), zap.Error(err))
		}
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	subRepo := dbadapter.NewSubmissionRepositoryDatabase()
	ledgerRepo := dbadapter.NewDeletionLedgerDatabase()
	subCache := redisadapter.NewSubmissionCacheRedis(config.RedisClient, 5*time.Minute)
	subSvc := submissionapp.NewSubmissionService(subRepo, subCache, config.Logger)
	r := httpapi.SetupRoutes(subSvc, []byte(os.Getenv("STAFF_JWT_SECRET")))

	sweepInterval := time.Hour
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			config.Logger.Fatal("Invalid SWEEP_INTERVAL:", zap.String("value", raw), zap.Error(err))
		}
		sweepInterval = d
	}

	sweepWorker := workers.NewSweepWorker(ledgerRepo, subRepo, subCache, sweepInterval, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweepWorker.Run(ctx)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
