package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/meridianpr/pr-tracker/internal/server"
	"github.com/meridianpr/pr-tracker/pkg/cache"
	"github.com/meridianpr/pr-tracker/pkg/logging"
	"github.com/meridianpr/pr-tracker/pkg/reach"
	"github.com/meridianpr/pr-tracker/pkg/sheets"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: getEnv("LOG_PRETTY", "") == "1",
		Output: os.Stderr,
	})

	// Configuration from environment
	port := getEnv("PORT", "8080")
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		logger.Fatal().Msg("SPREADSHEET_ID is required")
	}
	apiKey := os.Getenv("GOOGLE_API_KEY")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)
	fetchTimeout := getEnvDuration("FETCH_TIMEOUT", 45*time.Second)
	coverageSheet := getEnv("COVERAGE_SHEET", "Coverage")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := sheets.New(ctx, sheets.Config{
		SpreadsheetID: spreadsheetID,
		APIKey:        apiKey,
		Logger:        logging.NewLogger("sheets"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create sheets source")
	}

	datasetCache := cache.New(source.Fetch, cache.Config{
		TTL:          cacheTTL,
		FetchTimeout: fetchTimeout,
		Logger:       logging.NewLogger("cache"),
	})

	srv := server.New(server.Config{
		Cache:         datasetCache,
		Estimator:     reach.NewEstimator(),
		CoverageSheet: coverageSheet,
		Logger:        logging.NewLogger("server"),
	})

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("addr", httpServer.Addr).
			Str("spreadsheet_id", spreadsheetID).
			Dur("cache_ttl", cacheTTL).
			Msg("Starting PR tracker server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
