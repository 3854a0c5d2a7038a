package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; the login rate limiter falls back to an
	// in-memory counter when it is unavailable.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	hasher := auth.NewPasswordHasher()
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		logger.Log.Error("Failed to configure token issuer", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	sessionUC := usecase.NewSessionUsecase(sessionRepo, cfg.SessionTTL, cfg.SessionRenewWindow)
	authUC := usecase.NewAuthUsecase(userRepo, sessionUC, hasher, issuer, cfg.SessionTTL)
	userUC := usecase.NewUserUsecase(userRepo, employerRepo, candidateRepo, hasher)
	employerUC := usecase.NewEmployerUsecase(employerRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, resumeRepo, employerRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		SessionUC:     sessionUC,
		JobUC:         jobUC,
		CategoryUC:    categoryUC,
		EmployerUC:    employerUC,
		CandidateUC:   candidateUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		TokenIssuer:   issuer,
		Store:         store,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
