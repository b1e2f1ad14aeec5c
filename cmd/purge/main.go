// Command purge physically removes soft-deleted articles that have not been
// touched for longer than the configured retention, together with their
// snapshots, events and published mirror. It is intended to be invoked by
// an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/config"
)

func main() {
	retention := flag.Duration("retention", 0, "override moderation.purge_retention")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	keep := cfg.Moderation.PurgeRetention
	if *retention > 0 {
		keep = *retention
	}

	services := app.NewServices(cfg, pool, logger)

	deleted, err := services.Articles.PurgeDeleted(ctx, keep)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", keep),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", keep),
	)
}
