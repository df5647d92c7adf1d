package main

import (
	"context"

	api "pitchcraft-backend/cmd/api"
	authdomain "pitchcraft-backend/internal/auth/domain"
	authRepo "pitchcraft-backend/internal/auth/repository"
	authUsecase "pitchcraft-backend/internal/auth/usecase"
	"pitchcraft-backend/internal/notification"
	pitchRepo "pitchcraft-backend/internal/pitch/repository"
	pitchUsecasePkg "pitchcraft-backend/internal/pitch/usecase"
	"pitchcraft-backend/pkg/config"
	"pitchcraft-backend/pkg/database"
	"pitchcraft-backend/pkg/logger"
	"pitchcraft-backend/pkg/mailer"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()

	// Initialize Firestore (pitch document store)
	firestoreClient, err := pitchRepo.NewFirestoreClient(ctx, cfg.GoogleProjectID)
	if err != nil {
		log.Fatal("failed to connect to Firestore", zap.Error(err))
	}
	defer firestoreClient.Close()

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	pitchRepository := pitchRepo.NewFirestorePitchRepository(firestoreClient, cfg.PitchCollection)

	// Initialize notification worker (best-effort pitch-ready emails)
	var notifWorker *notification.Worker
	if cfg.EmailEnabled {
		sesMailer, err := mailer.NewSESMailer(ctx, cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			log.Warn("failed to initialize SES mailer, notification emails disabled", zap.Error(err))
		} else {
			notifWorker = notification.NewWorker(sesMailer, log, cfg.AppBaseURL, 2)
			notifWorker.Start()
			defer notifWorker.Stop()
		}
	} else {
		log.Info("notification emails disabled by config")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	pitchUsecaseInstance := pitchUsecasePkg.NewPitchUsecase(pitchRepository, log, cfg.MaxPitchesPerUser)

	// Initialize HTTP handler
	var notifier pitchUsecasePkg.Notifier
	if notifWorker != nil {
		notifier = notifWorker
	}
	handler := api.NewHandler(authUsecaseInstance, pitchUsecaseInstance, notifier, cfg, log)

	// Start server
	log.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
