package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brvhprince/planner-api/internal/api"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
	"github.com/brvhprince/planner-api/internal/infrastructure/db/mongo"
	"github.com/brvhprince/planner-api/internal/infrastructure/db/redis"
	"github.com/brvhprince/planner-api/internal/infrastructure/mail"
	"github.com/brvhprince/planner-api/internal/infrastructure/queue"
	"github.com/brvhprince/planner-api/internal/infrastructure/sms"
	"github.com/brvhprince/planner-api/internal/infrastructure/storage"
	"github.com/brvhprince/planner-api/internal/infrastructure/twofa"
	"github.com/brvhprince/planner-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Level: "info"})
		l.Fatal().Err(err).Msg("configuration load failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("configuration invalid")
		os.Exit(1)
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	accountRepo := mongo.NewAccountRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}

	store, err := storage.New(ctx, cfg.Storage, cfg.AppURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage initialisation failed")
	}
	mailer, err := mail.New(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("mail initialisation failed")
	}
	smsSender, err := sms.New(cfg.SMS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("sms initialisation failed")
	}

	dispatcher := queue.NewDispatcher(0, mongo.NewActivityRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, api.Dependencies{
		DB:       db,
		Redis:    rdb,
		Store:    store,
		Mailer:   mailer,
		SMS:      smsSender,
		TwoFa:    twofa.New(),
		Recorder: dispatcher,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped cleanly")
}
