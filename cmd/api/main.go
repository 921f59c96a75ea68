package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/season-link/profiles/config"
	v1 "github.com/season-link/profiles/internal/delivery/http/v1"
	"github.com/season-link/profiles/internal/repository/postgres"
	"github.com/season-link/profiles/internal/usecase"
	"github.com/season-link/profiles/pkg/database"
	"github.com/season-link/profiles/pkg/idp"
	"github.com/season-link/profiles/pkg/jobs"
	"github.com/season-link/profiles/pkg/logger"
	"github.com/season-link/profiles/pkg/redis"
	"github.com/season-link/profiles/pkg/storage"
	"github.com/season-link/profiles/pkg/validation"

	"log"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidate profile backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Object Storage
	ctx := context.Background()
	s3Client, err := storage.NewClient(ctx, storage.Config{
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
	})
	if err != nil {
		logger.Log.Error("Failed to create object-store client", "error", err)
		os.Exit(1)
	}
	if err := storage.EnsureBucket(ctx, s3Client, cfg.S3Bucket); err != nil {
		logger.Log.Error("Failed to ensure bucket", "error", err)
		os.Exit(1)
	}
	cvStore := storage.NewStore(s3Client, cfg.S3Bucket)

	// 5. Setup Redis (optional, rate limiting)
	redisClient, err := redis.New(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		redisClient = nil
	}

	// 6. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	referenceRepo := postgres.NewReferenceRepository(dbPool)

	// 7. Setup Collaborators
	jobChecker := jobs.NewClient(cfg.JobServiceURL)
	idpClient := idp.NewClient(idp.Config{
		URL:             cfg.KeycloakURL,
		Realm:           cfg.KeycloakRealm,
		ServiceUsername: cfg.KeycloakServiceUsername,
		ServicePassword: cfg.KeycloakServicePassword,
		ClientID:        cfg.KeycloakClientID,
	})

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobChecker, idpClient, validate)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, validate)
	referenceUC := usecase.NewReferenceUsecase(referenceRepo, validate)
	cvUC := usecase.NewCVUsecase(cvStore)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:  candidateUC,
		ExperienceUC: experienceUC,
		ReferenceUC:  referenceUC,
		CVUC:         cvUC,
		Redis:        redisClient,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
