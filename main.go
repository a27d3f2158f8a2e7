// Package main is the entry point for the application
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
	"time"

	"github.com/joho/godotenv"

	"github.com/harshitrajsinha/onecall-weather-go/internal/config"
	"github.com/harshitrajsinha/onecall-weather-go/internal/database"
	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
	"github.com/harshitrajsinha/onecall-weather-go/internal/handler"
	"github.com/harshitrajsinha/onecall-weather-go/internal/kafka"
	"github.com/harshitrajsinha/onecall-weather-go/internal/logger"
	"github.com/harshitrajsinha/onecall-weather-go/internal/middleware"
	"github.com/harshitrajsinha/onecall-weather-go/internal/onecall"
	"github.com/harshitrajsinha/onecall-weather-go/internal/tracing"
	"github.com/harshitrajsinha/onecall-weather-go/internal/webhook"
)

func init() {
	// load env vars into application
	_ = godotenv.Load()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// log to stdout and a rotated file
	logFile := logger.NewRotatingFile(cfg.LogFile)
	defer logFile.Close()

	appLogger, err := logger.New(cfg.Env, cfg.LogLevel, os.Stdout, logFile)
	if err != nil {
		return fmt.Errorf("error creating logger, %w", err)
	}
	log.SetFlags(0)
	log.SetOutput(appLogger)

	shutdownTracer, err := tracing.InitTracer("onecall-weather", cfg.ZipkinURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			appLogger.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	dbClient, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if err := dbClient.LoadDataToDatabase(); err != nil {
		return err
	}

	hub := events.NewHub(*appLogger)
	hub.Register("database", dbClient)

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		defer publisher.Close()
		hub.Register("kafka", publisher)
	}

	if cfg.WebhookURL != "" {
		hub.Register("webhook", webhook.New(cfg.WebhookURL, cfg.WebhookCredentials()))
	}

	adapter := onecall.NewAdapter(
		logger.NewDiagnostic(*appLogger, "onecall"),
		hub,
		onecall.WithBaseURL(cfg.BaseAPIUrl),
	)

	oneCallHandler := handler.NewOneCallHandler(adapter, dbClient, dbClient, *appLogger)

	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/notifications", middleware.AuthMiddleware(http.HandlerFunc(oneCallHandler.HandleNotification), cfg.SecretAuthKey))
	mux.Handle("GET /api/v1/onecall/latest", middleware.AuthMiddleware(http.HandlerFunc(oneCallHandler.HandleLatest), cfg.SecretAuthKey))
	mux.HandleFunc("GET /health", oneCallHandler.HandleHealth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.TraceMiddleware(middleware.LogMiddleware(mux, *appLogger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error serving http, %w", err)
		}
	case <-stop:
		appLogger.Info().Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server, %w", err)
	}

	// let accepted requests reach the sinks before they are closed
	if err := adapter.Wait(ctx); err != nil {
		appLogger.Error().Err(err).Msg("onecall requests still in flight at shutdown")
	}

	appLogger.Info().Msg("shutdown complete")
	return nil
}
