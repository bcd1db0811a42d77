package main

import (
	"commune/internal/app"
	"commune/pkg/cache"
	"commune/pkg/config"
	"commune/pkg/database"
	"commune/pkg/logger"
)

// @title           Commune API
// @version         1.0
// @description     Media-sharing feed for a small private club: a seven-day feed, a permanent archive, and weekly club picks.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
