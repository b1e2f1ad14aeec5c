package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ArticleOpt customises a seeded article.
type ArticleOpt func(*domain.Article)

// WithStatus seeds the article in status s. Deleted also sets the soft-delete flag.
func WithStatus(s domain.ArticleStatus) ArticleOpt {
	return func(a *domain.Article) {
		a.Status = s
		a.IsDeleted = s == domain.ArticleStatusDeleted
	}
}

// WithContent seeds the article with the given JSON document.
func WithContent(raw string) ArticleOpt {
	return func(a *domain.Article) { a.Content = json.RawMessage(raw) }
}

// WithTitle seeds the article with the given title.
func WithTitle(title string) ArticleOpt {
	return func(a *domain.Article) { a.Title = title }
}

// WithLastModeration seeds last_moderation_at.
func WithLastModeration(at time.Time) ArticleOpt {
	return func(a *domain.Article) { a.LastModerationAt = &at }
}

// WithUpdatedAt backdates updated_at, e.g. to age a soft-deleted article past retention.
func WithUpdatedAt(at time.Time) ArticleOpt {
	return func(a *domain.Article) { a.UpdatedAt = at }
}

// SeedArticle inserts a draft article owned by authorID and returns it.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, opts ...ArticleOpt) domain.Article {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Article{
		ID:        uuid.New(),
		AuthorID:  &authorID,
		Title:     "Article " + uniqueSuffix(),
		Content:   json.RawMessage(`{"type":"doc","content":[{"type":"paragraph"}]}`),
		Status:    domain.ArticleStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&a)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, author_id, title, content, status, last_moderation_at, is_deleted, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.AuthorID, a.Title, []byte(a.Content), string(a.Status), a.LastModerationAt, a.IsDeleted, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}

	return a
}

// SeedSnapshot inserts a snapshot of the article's current content.
func SeedSnapshot(t *testing.T, pool *pgxpool.Pool, a domain.Article, status domain.SnapshotStatus, createdAt time.Time) domain.Snapshot {
	t.Helper()
	ctx := context.Background()

	hash, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("testhelper: SeedSnapshot fingerprint: %v", err)
	}

	s := domain.Snapshot{
		ID:          uuid.New(),
		ArticleID:   a.ID,
		Title:       a.Title,
		Content:     a.Content,
		ContentHash: hash,
		Status:      status,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO article_snapshots (id, article_id, title, content, content_hash, moderation_status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.ArticleID, s.Title, []byte(s.Content), s.ContentHash, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSnapshot: %v", err)
	}

	return s
}

// SeedPublished inserts a published mirror for the article.
func SeedPublished(t *testing.T, pool *pgxpool.Pool, a domain.Article) domain.PublishedArticle {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.PublishedArticle{
		ID:        uuid.New(),
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO published_articles (id, article_id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.ArticleID, p.Title, []byte(p.Content), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPublished: %v", err)
	}

	return p
}

// CountRows returns the number of rows in table matching article_id.
// table must be one of the article-owned tables.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, articleID uuid.UUID) int {
	t.Helper()

	var sql string
	switch table {
	case "article_snapshots", "article_events", "published_articles":
		sql = `SELECT count(*) FROM ` + table + ` WHERE article_id = $1`
	case "articles":
		sql = `SELECT count(*) FROM articles WHERE id = $1`
	default:
		t.Fatalf("testhelper: CountRows: unknown table %q", table)
	}

	var n int
	if err := pool.QueryRow(context.Background(), sql, articleID).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
