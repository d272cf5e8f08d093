package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hello-api-go/internal/config"
	"hello-api-go/internal/constants"
	apperrors "hello-api-go/internal/errors"
	"hello-api-go/internal/server"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Err != nil {
			log.Fatalf("Failed to load configuration: %s (%v)", appErr.Message, appErr.Err)
		}
		log.Fatalf("Failed to load configuration: %s", appErr.Message)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info(fmt.Sprintf("%s Starting Hello API Go server", constants.APIName()),
		zap.Int("port", cfg.ServerPort),
		zap.String("log_level", cfg.LogLevel),
		zap.String("cors_profile", string(cfg.Profile)),
		zap.Bool("spa_fallback", cfg.CORS.SPAFallback),
		zap.Strings("allowed_origins", cfg.CORS.AllowedOrigins),
	)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.Build(cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("%s Server listening", constants.APIName()), zap.String("address", addr))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info(fmt.Sprintf("%s Shutting down", constants.APIName()), zap.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}
