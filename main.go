package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hakikat011/portfolio/internal/catalog"
	"github.com/hakikat011/portfolio/internal/config"
	"github.com/hakikat011/portfolio/internal/content"
	"github.com/hakikat011/portfolio/internal/logging"
	"github.com/hakikat011/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Authored data is checked once; a bad record stops the site from starting
	projects := catalog.Default()
	if err := projects.Validate(); err != nil {
		logger.Fatal("invalid project catalog", zap.Error(err))
	}
	profile := content.Default()
	if err := profile.Validate(); err != nil {
		logger.Fatal("invalid profile content", zap.Error(err))
	}

	srv, err := web.New(cfg, logger, web.Deps{Catalog: projects, Profile: &profile})
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", httpServer.Addr),
			zap.String("env", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
			zap.String("media_dir", cfg.Media.Dir),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
