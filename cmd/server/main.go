package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"drivelog/internal/app"
	"drivelog/internal/config"
	"drivelog/internal/handler"
	internalRedis "drivelog/internal/redis"
	"drivelog/internal/repository/mongodb"
	"drivelog/internal/service"
)

const version = "1.0.0"

func main() {
	// Load configuration.
	cfg := config.Load()
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST so the store clients can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.WithError(err).Warn("failed to initialize New Relic")
		} else {
			logger.WithField("app", cfg.NewRelic.AppName).Info("New Relic enabled")
		}
	}

	logger.WithFields(logrus.Fields{
		"uri":      cfg.Mongo.RedactedURI(),
		"database": cfg.Mongo.Database,
	}).Info("database configuration")

	mongoClient, err := app.NewMongoClient(ctx, cfg.Mongo, nrApp)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize mongo client")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.WithError(err).Warn("mongo disconnect")
		}
	}()

	store := mongodb.NewStore(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.OpTimeout)
	probeStore(ctx, store, logger)

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, idempotent replay disabled")
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info("connected to Redis")
	}

	// Wire dependencies.
	server := wireServer(store, redisClient, nrApp, logger, cfg)

	// Start server in goroutine.
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}

	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logger.Info("server exited")
}

// probeStore checks reachability and prepares indexes. Failures are logged;
// the server still starts and /health reports the store state.
func probeStore(ctx context.Context, store *mongodb.Store, logger *logrus.Logger) {
	names, err := store.CollectionNames(ctx)
	if err != nil {
		logger.WithError(err).Warn("startup with database connection issues")
		return
	}
	logger.WithField("collections", names).Info("database connection successful")

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("failed to ensure indexes")
	}
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(store *mongodb.Store, redisClient *redis.Client, nrApp *newrelic.Application, logger *logrus.Logger, cfg *config.Config) *http.Server {
	// Initialize repositories.
	tripRepo := mongodb.NewTripRepository(store)
	expenseRepo := mongodb.NewExpenseRepository(store)
	profileRepo := mongodb.NewProfileRepository(store)

	// Initialize services.
	normalizer := service.NewNormalizer(service.ParseNumberPolicy(cfg.Records.NumberPolicy), cfg.Records.DefaultDriverID)
	tripService := service.NewTripService(tripRepo, normalizer, cfg.Records.ListLimit)
	expenseService := service.NewExpenseService(expenseRepo, normalizer, cfg.Records.ListLimit)
	profileService := service.NewProfileService(profileRepo, normalizer)
	summaryService := service.NewSummaryService(tripService, expenseService, normalizer)

	deps := app.RouterDeps{
		TripHandler:    handler.NewTripHandler(tripService),
		ExpenseHandler: handler.NewExpenseHandler(expenseService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		ReportHandler:  handler.NewReportHandler(summaryService, tripService, expenseService),
		HealthHandler:  handler.NewHealthHandler(store, version),
		NewRelicApp:    nrApp,
		Logger:         logger,
		CORS:           cfg.CORS,
	}
	if redisClient != nil {
		deps.IdempotencyCache = internalRedis.NewIdempotencyStore(redisClient)
	}

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
