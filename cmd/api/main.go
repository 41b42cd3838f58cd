package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanabel-org/adahi-api/internal/api"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/db/mongo"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/db/redis"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/notify"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/realtime"
	"github.com/sanabel-org/adahi-api/internal/pkg/config"
	"github.com/sanabel-org/adahi-api/pkg/logger"
)

// @title        Adahi Donation Tracking API
// @version      1.0
// @description  Donation tracking for Adahi (sacrificial animal) submissions.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	submissionRepo := mongo.NewSubmissionRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := submissionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create submission indexes")
	}

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Realtime fan-out ---
	hub := realtime.NewHub(submissionRepo.ListAll, log)
	changes := realtime.NewPublisher(rdb, log)
	bridge := realtime.NewBridge(rdb, hub, log)
	go bridge.Run(ctx)

	// --- Donor notifications ---
	dedup := redis.NewNotificationDedup(rdb)
	sender := notify.NewLogSender(log)
	notifier := notify.NewDispatcher(cfg.NotifyWorkers, sender, dedup, log)
	notifier.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, hub, changes, notifier, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
