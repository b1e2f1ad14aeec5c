// Command modctl is the operator CLI: it runs moderation operations on
// behalf of a user, inspects article history and the review queue, applies
// migrations and mints access tokens for development.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

var (
	globalActor string
	globalRole  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "modctl",
		Short:         "Operate the article moderation service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalActor, "as", "", "User ID to act as")
	rootCmd.PersistentFlags().StringVar(&globalRole, "role", string(domain.UserRoleModerator), "Role of the acting user (user, moderator, admin)")

	for _, op := range domain.EventKinds {
		rootCmd.AddCommand(newActionCmd(op))
	}
	rootCmd.AddCommand(
		newHistoryCmd(),
		newQueueCmd(),
		newMigrateCmd(),
		newTokenCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// actorContext attaches the --as/--role identity to ctx.
func actorContext(ctx context.Context) (context.Context, error) {
	if globalActor == "" {
		return nil, fmt.Errorf("--as is required")
	}
	id, err := uuid.Parse(globalActor)
	if err != nil {
		return nil, fmt.Errorf("--as: %w", err)
	}
	role := domain.UserRole(globalRole)
	if !role.IsValid() {
		return nil, fmt.Errorf("--role: unknown role %q", globalRole)
	}
	ctx = ctxutil.WithUserID(ctx, id)
	return ctxutil.WithUserRole(ctx, role.String()), nil
}

// withServices loads configuration, connects to the database and hands the
// wired services to fn.
func withServices(ctx context.Context, fn func(*app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(app.NewServices(cfg, pool, logger))
}
