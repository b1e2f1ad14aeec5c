// Package article implements authoring and the read side around moderation:
// drafts, published mirrors, snapshot history, the review queue, the event
// log and purges.
package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, f domain.ArticleFilter) ([]*domain.Article, error)
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams, now time.Time) (*domain.Article, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
	PurgeDeleted(ctx context.Context, threshold time.Time) (int64, error)
}

type snapshotRepo interface {
	List(ctx context.Context, f domain.SnapshotFilter) ([]*domain.Snapshot, error)
}

type publishedRepo interface {
	GetVisible(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error)
	ListVisible(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error)
}

type eventRepo interface {
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides article authoring and read operations.
type Service struct {
	articles  articleRepo
	snapshots snapshotRepo
	published publishedRepo
	events    eventRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new article service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	snapshots snapshotRepo,
	published publishedRepo,
	events eventRepo,
	tx txManager,
) *Service {
	return &Service{
		articles:  articles,
		snapshots: snapshots,
		published: published,
		events:    events,
		tx:        tx,
		log:       log.With("service", "article"),
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}
