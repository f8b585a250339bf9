package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"netdash/internal/artifact"
	"netdash/internal/layout"
	"netdash/internal/server"
	"netdash/pkg/config"
	"netdash/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting dashboard server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Load artifacts once; each file degrades independently to an empty
	// default so the dashboard always starts.
	bundle := artifact.Load(cfg, log)

	// One render seed per process keeps the network layouts stable across
	// requests but not across restarts.
	seed := int64(rand.Intn(100) + 1)

	page, err := layout.Compose(context.Background(), layout.Input{Bundle: bundle, Seed: seed}, log)
	if err != nil {
		log.Fatal("Failed to compose dashboard layout", zap.Error(err))
	}

	router := server.New(cfg, log, bundle, page)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
