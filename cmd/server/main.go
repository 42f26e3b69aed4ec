package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mushafhub/mushaf-backend/internal/db"
	"github.com/mushafhub/mushaf-backend/internal/handlers"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/observability"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/server"
	"github.com/mushafhub/mushaf-backend/internal/services"
	"github.com/mushafhub/mushaf-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "mushaf-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	mushafRepo := repos.NewMushafRepo(thePG, log)
	pageRepo := repos.NewPageRepo(thePG, log)
	narratorRepo := repos.NewNarratorRepo(thePG, log)
	wordRepo := repos.NewWordRepo(thePG, log)
	variationRepo := repos.NewVariationRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	mushafService := services.NewMushafService(thePG, log, mushafRepo)
	pageService := services.NewPageService(thePG, log, mushafRepo, pageRepo)
	narratorService := services.NewNarratorService(thePG, log, narratorRepo)
	wordService := services.NewWordService(thePG, log, wordRepo)
	variationService := services.NewVariationService(thePG, log, variationRepo, wordRepo, narratorRepo)

	// Handlers
	log.Info("Setting up handlers...")
	healthHandler := handlers.NewHealthHandler(thePG)
	mushafHandler := handlers.NewMushafHandler(mushafService)
	pageHandler := handlers.NewPageHandler(pageService)
	narratorHandler := handlers.NewNarratorHandler(narratorService)
	wordHandler := handlers.NewWordHandler(wordService)
	variationHandler := handlers.NewVariationHandler(variationService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		Log:              log,
		HealthHandler:    healthHandler,
		MushafHandler:    mushafHandler,
		PageHandler:      pageHandler,
		NarratorHandler:  narratorHandler,
		WordHandler:      wordHandler,
		VariationHandler: variationHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
