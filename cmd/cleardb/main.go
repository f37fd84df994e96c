// Command cleardb empties every collection in the configured database.
// It is irreversible and meant for test and reset use only.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"drivelog/internal/app"
	"drivelog/internal/config"
	"drivelog/internal/repository/mongodb"
)

type wiper interface {
	Wipe(ctx context.Context) ([]mongodb.WipeResult, error)
}

type disconnecter interface {
	Disconnect(ctx context.Context) error
}

func main() {
	confirm := flag.Bool("confirm", false, "actually delete every document")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg := config.Load()
	logger := app.NewLogger(cfg.Log)

	if !*confirm {
		logger.WithField("database", cfg.Mongo.Database).Error("refusing to wipe without -confirm")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := app.NewMongoClient(ctx, cfg.Mongo, nil)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize mongo client")
	}

	store := mongodb.NewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.OpTimeout)
	if err := clearAll(ctx, store, client, logger); err != nil {
		cancel()
		logger.WithError(err).Fatal("wipe failed")
	}

	logger.WithField("database", cfg.Mongo.Database).Info("database cleared")
}

// clearAll wipes the store and always disconnects the client before
// returning, so callers may exit immediately on error.
func clearAll(ctx context.Context, store wiper, client disconnecter, logger *logrus.Logger) error {
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.WithError(err).Warn("mongo disconnect")
		}
	}()

	results, err := store.Wipe(ctx)
	for _, r := range results {
		logger.WithFields(logrus.Fields{
			"collection": r.Collection,
			"deleted":    r.Deleted,
		}).Info("cleared collection")
	}
	return err
}
