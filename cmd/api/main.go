package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"hireflow/internal/config"
	"hireflow/internal/database"
	"hireflow/internal/handlers"
	"hireflow/internal/logger"
	"hireflow/internal/notify"
	"hireflow/internal/repository"
	"hireflow/internal/services"
	"hireflow/internal/storage"
)

func main() {
	// 1. Configuration (.env + config.yaml + env overrides)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	zlog.Info("database connection established")

	// 3. Asset store
	store, err := storage.New(cfg.Uploads.Dir, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize asset store", zap.Error(err))
	}

	// 4. Notification dispatcher
	var mailer notify.Mailer
	if cfg.Email.Enabled {
		mailer, err = notify.NewSESMailer(context.Background(), cfg.Email.Region, cfg.Email.From)
		if err != nil {
			zlog.Fatal("failed to initialize SES client", zap.Error(err))
		}
		zlog.Info("SES mailer connected", zap.String("region", cfg.Email.Region))
	} else {
		mailer = &notify.LogMailer{Log: zlog}
	}
	dispatcher := notify.NewDispatcher(mailer, zlog, cfg.Email.QueueSize)
	defer dispatcher.Close()

	// 5. Repositories and services
	candidateRepo := repository.NewCandidateRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)

	candidateService := services.NewCandidateService(candidateRepo, jobRepo, store, dispatcher, zlog)
	commentService := services.NewCommentService(commentRepo, candidateRepo, userRepo)

	// 6. Router
	r := handlers.NewRouter(handlers.RouterDeps{
		Candidates:     candidateService,
		Comments:       commentService,
		Users:          userRepo,
		MaxUploadBytes: cfg.Uploads.MaxBytes,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
