package main

import (
	"fmt"
	"os"
	"time"

	"wealthdesk/internal/config"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/server"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/validator"
)

// @title           WealthDesk API
// @version         1.0
// @description     WealthDesk is a client relationship and portfolio reporting service for a wealth management desk.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	// Open the store and its repositories
	store, err := storage.Open(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("store close error: %v", err)
		}
	}()

	var repos *repository.Repositories
	if appConfig.SeedData {
		repos, err = repository.Open(store, time.Now)
		if err != nil {
			return fmt.Errorf("failed to seed repositories: %w", err)
		}
	} else {
		repos = repository.New(store, time.Now)
	}

	router := server.NewRouter(server.NewServices(repos, time.Now, appConfig))

	log.Infof("Starting WealthDesk server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
