package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"call-quality-backend/internal/api/routes"
	"call-quality-backend/internal/bitrix"
	"call-quality-backend/internal/config"
	"call-quality-backend/internal/database"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/pipeline"
	"call-quality-backend/internal/repository"
	"call-quality-backend/internal/scoring"
	"call-quality-backend/internal/transcribe"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	callRepo := repository.NewCallRepository(db)
	userRepo := repository.NewUserRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	bitrixClient := bitrix.NewClient(cfg)
	whisperClient := transcribe.NewWhisperClient(cfg.WhisperURL)
	scorer := scoring.NewOpenAIScorer(cfg)
	metrics := pipeline.NewMetrics()

	ingest, err := pipeline.NewIngestDriver(cfg, callRepo, userRepo, bitrixClient, bitrixClient.PortalURL(), metrics)
	if err != nil {
		logrus.Fatal("Failed to initialize ingestion:", err)
	}
	ingest.SyncUsers(ctx)

	transcriber := pipeline.NewTranscribeDriver(cfg, callRepo, analysisRepo, whisperClient, metrics)
	analyzer := pipeline.NewAnalysisDriver(cfg, callRepo, analysisRepo, scorer, metrics)
	dispatcher := pipeline.NewDispatchDriver(callRepo, analysisRepo, bitrixClient, metrics)

	var wg sync.WaitGroup
	stages := []struct {
		driver   pipeline.Driver
		interval time.Duration
	}{
		{ingest, cfg.IngestInterval()},
		{transcriber, cfg.TranscribeInterval()},
		{analyzer, cfg.AnalysisInterval()},
		{dispatcher, cfg.DispatchInterval()},
	}
	for _, stage := range stages {
		wg.Add(1)
		go func(driver pipeline.Driver, interval time.Duration) {
			defer wg.Done()
			pipeline.Run(ctx, driver, interval)
		}(stage.driver, stage.interval)
	}

	router := routes.SetupRoutes(db, cfg, metrics)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		logrus.Infof("Starting ops API on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start ops API:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Ops API shutdown failed:", err)
	}

	wg.Wait()
	logrus.Info("Pipeline stopped")
}
