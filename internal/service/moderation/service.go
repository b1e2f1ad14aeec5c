// Package moderation implements the article lifecycle operations: submit,
// withdraw, approve, reject, unpublish and delete. Each runs as one
// transaction serialized on the article row.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

type articleRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, change domain.ArticleStatusChange, now time.Time) error
}

type snapshotRepo interface {
	Latest(ctx context.Context, articleID uuid.UUID) (*domain.Snapshot, error)
	Create(ctx context.Context, s domain.Snapshot) (*domain.Snapshot, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.SnapshotStatus) error
}

type publishedRepo interface {
	Upsert(ctx context.Context, p domain.PublishedArticle) (*domain.PublishedArticle, error)
	DeleteByArticleID(ctx context.Context, articleID uuid.UUID) (bool, error)
}

type eventRepo interface {
	Create(ctx context.Context, ev domain.Event) (*domain.Event, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultAnnotationMaxLen bounds the free-text remark attached to an event.
const DefaultAnnotationMaxLen = 2000

// Service runs moderation operations.
type Service struct {
	articles  articleRepo
	snapshots snapshotRepo
	published publishedRepo
	events    eventRepo
	tx        txManager
	log       *slog.Logger

	now              func() time.Time
	cooldown         time.Duration
	annotationMaxLen int
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for timestamps and cooldown arithmetic.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSubmitCooldown sets the wait after a moderation decision before the
// article may be resubmitted. Zero disables the cooldown.
func WithSubmitCooldown(d time.Duration) Option {
	return func(s *Service) { s.cooldown = d }
}

// WithAnnotationMaxLen sets the maximum annotation length in characters.
func WithAnnotationMaxLen(n int) Option {
	return func(s *Service) { s.annotationMaxLen = n }
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	snapshots snapshotRepo,
	published publishedRepo,
	events eventRepo,
	tx txManager,
	opts ...Option,
) *Service {
	s := &Service{
		articles:         articles,
		snapshots:        snapshots,
		published:        published,
		events:           events,
		tx:               tx,
		log:              log.With("service", "moderation"),
		now:              defaultNow,
		cooldown:         domain.DefaultSubmitCooldown,
		annotationMaxLen: DefaultAnnotationMaxLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostgreSQL stores microseconds; truncating keeps round-trips exact.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
