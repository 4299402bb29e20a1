package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/api"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/service"
	mongodb "github.com/Ihssaneabousshal/hotelreservationapi/internal/infrastructure/db/mongo"
	redisdb "github.com/Ihssaneabousshal/hotelreservationapi/internal/infrastructure/db/redis"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/infrastructure/queue"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/pkg/config"
	"github.com/Ihssaneabousshal/hotelreservationapi/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
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

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"inventory":    inventoryRepo.EnsureIndexes,
		"reservations": reservationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Bootstrap admin ---
	if cfg.AdminUsername != "" {
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("admin bootstrap failed")
		}
	}

	// --- Async summary workers ---
	dispatcher := queue.NewDispatcher(cfg.SummaryWorkers, userRepo, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		DB:           db,
		Redis:        rdb,
		Users:        userRepo,
		Inventory:    inventoryRepo,
		Reservations: reservationRepo,
		Dedup:        redisdb.NewRatingDedup(rdb),
		Summaries:    dispatcher,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
