package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stemsi/school-api/internal/config"
	"github.com/stemsi/school-api/internal/database"
	"github.com/stemsi/school-api/internal/handler"
	"github.com/stemsi/school-api/internal/logger"
	"github.com/stemsi/school-api/internal/middleware"
	"github.com/stemsi/school-api/internal/repository"
	"github.com/stemsi/school-api/internal/router"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting School Management API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	// A failed connection leaves the API up in degraded mode: content
	// endpoints answer 503 while / and /test keep working.
	var db *mongo.Database
	client, mdb, err := database.NewMongoDatabase(ctx, cfg, log)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		log.Warn().Msg("DATABASE_URL or DATABASE_NAME not set, storage disabled")
	case err != nil:
		log.Error().Err(err).Msg("Failed to connect to MongoDB, storage disabled")
	default:
		db = mdb
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error().Err(err).Msg("MongoDB disconnect error")
			}
		}()
	}

	// ─── Connect to Redis (optional) ───────────────────────────────────
	var counter middleware.Counter
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, contact rate limiting disabled")
	} else if rdb != nil {
		defer rdb.Close()
		counter = middleware.NewRedisCounter(rdb)
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	documentRepo := repository.NewDocumentRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	contentService := service.NewContentService(documentRepo, time.Now, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		System:     handler.NewSystemHandler(documentRepo, cfg, log),
		Department: handler.NewDepartmentHandler(contentService),
		Faculty:    handler.NewFacultyHandler(contentService),
		Event:      handler.NewEventHandler(contentService),
		Notice:     handler.NewNoticeHandler(contentService),
		Contact:    handler.NewContactHandler(contentService),
	}

	contactLimiter := middleware.NewRateLimiter(counter, cfg.ContactRateLimit, cfg.ContactRateWindow, log)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, contactLimiter, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
