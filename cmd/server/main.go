package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"apicatalog/internal/config"
	"apicatalog/internal/handler"
	"apicatalog/internal/logging"
	"apicatalog/internal/repository/fixture"
	"apicatalog/internal/router"
	"apicatalog/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.New(cfg.Log)
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Canned repository
	apiRepo, err := fixture.NewServingApiRepository()
	if err != nil {
		return fmt.Errorf("failed to prepare api repository: %w", err)
	}

	// Initialize services
	apiSvc := service.NewApiService(apiRepo, log)

	// Initialize handlers
	apiH := handler.NewApiHandler(apiSvc, cfg.Export)
	healthH := handler.NewHealthHandler(apiRepo)

	// Setup router
	r := router.Setup(log, cfg, apiH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Str("environment", cfg.Server.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
