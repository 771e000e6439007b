package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/api"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/archive"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/config"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/kv"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/notify"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/db"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/logger"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/mq"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting StudyBuddy server...",
		zap.String("port", cfg.Server.Port),
		zap.String("upstream_model", cfg.Upstream.Model),
	)
	if cfg.Upstream.APIKey == "" {
		log.Warn("OPENROUTER_API_KEY is not set, upstream calls will be rejected")
	}

	// Storage backend: Redis when configured, in-memory otherwise.
	var kvStore kv.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewRedisClient(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redis.Ping(pingCtx, client); err != nil {
			cancel()
			log.Fatal("Redis connection failed", zap.Error(err))
		}
		cancel()
		defer client.Close()
		kvStore = kv.NewRedis(client)
		log.Info("Using Redis notification storage", zap.String("addr", cfg.Redis.Addr))
	} else {
		kvStore = kv.NewMemory()
		log.Warn("No Redis configured, notifications are process-local")
	}

	opts := notify.Options{}

	// Optional archive sink for the cleanup sweep.
	if cfg.DB.Host != "" {
		dbConn, err := db.NewConnection(cfg.DB, log)
		if err != nil {
			log.Fatal("Failed to init DB", zap.Error(err))
		}
		defer dbConn.Close()
		opts.Archiver = archive.NewRepository(dbConn)
	}

	// Optional notification.created event stream.
	if cfg.MQ.URL != "" {
		publisher, err := mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatal("Failed to init MQ publisher", zap.Error(err))
		}
		defer publisher.Close()
		opts.Publisher = publisher
	}

	sound := notify.NewSoundService(kvStore, nil, log)
	store := notify.NewStore(kvStore, sound, log, opts)

	quizHandler := api.NewQuizHandler(cfg.Upstream.URL, cfg.Upstream.APIKey, cfg.Upstream.Model, log)
	notificationHandler := api.NewNotificationHandler(store, sound, log)
	router := api.NewRouter(quizHandler, notificationHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("StudyBuddy server is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("Server shutdown complete")
}
