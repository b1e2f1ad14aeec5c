package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres/article"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres/published"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres/snapshot"
	"github.com/heartmarshall/moderation-backend/internal/config"
	articlesvc "github.com/heartmarshall/moderation-backend/internal/service/article"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

// Services bundles the application services over one connection pool.
// The HTTP server and the command-line tools share it.
type Services struct {
	Moderation *moderation.Service
	Articles   *articlesvc.Service
}

// NewServices wires repositories, the transaction manager and services.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	articles := article.New(pool)
	snapshots := snapshot.New(pool)
	mirrors := published.New(pool)
	events := audit.New(pool)

	tx := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Moderation.LockTimeout))

	return &Services{
		Moderation: moderation.NewService(logger, articles, snapshots, mirrors, events, tx,
			moderation.WithSubmitCooldown(cfg.Moderation.SubmitCooldown),
			moderation.WithAnnotationMaxLen(cfg.Moderation.AnnotationMaxLen),
		),
		Articles: articlesvc.NewService(logger, articles, snapshots, mirrors, events, tx),
	}
}
