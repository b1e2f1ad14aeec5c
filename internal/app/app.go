package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/auth"
	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
	"github.com/heartmarshall/moderation-backend/internal/transport/rest"
	"github.com/heartmarshall/moderation-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled, and serves the REST API
// until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	services := NewServices(cfg, pool, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, pool, services, limiter, logger)

	return serve(ctx, cfg.Server, handler, logger)
}

// newHandler builds the REST router with its middleware.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, services *Services, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool}),
		Articles:    rest.NewArticleHandler(services.Articles, logger),
		Moderation:  rest.NewModerationHandler(services.Moderation, logger),
		Admin:       rest.NewAdminHandler(services.Articles, logger),
		Logger:      logger,
		CORS:        cfg.CORS,
		Auth:        middleware.Auth(jwtManager),
		ActionLimit: limiter.Limit(cfg.RateLimit.ModerationPerMinute),
	})
}

// serve runs the HTTP server until ctx is cancelled or the listener fails.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
