// @title Adaptive Tutor API
// @version 1.0
// @description Backend for the adaptive math tutor: onboarding, learning paths, quizzes and the tutor chat.

// @host localhost:8080
// @BasePath /api

package main

import (
	"adaptive_tutor_backend/internal/app"
	"adaptive_tutor_backend/internal/config"
	"adaptive_tutor_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// NewApp has already migrated the schema.
	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	application.Run()
}
