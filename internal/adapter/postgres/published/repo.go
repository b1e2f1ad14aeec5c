// Package published implements the published-mirror repository using PostgreSQL.
package published

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Repo provides published-mirror persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new published-mirror repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const mirrorColumns = `p.id, p.article_id, p.title, p.content, p.created_at, p.updated_at`

// The row is overwritten in place: id and created_at survive re-approval.
const upsertSQL = `
INSERT INTO published_articles AS p (id, article_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (article_id) DO UPDATE
SET title = EXCLUDED.title,
    content = EXCLUDED.content,
    updated_at = EXCLUDED.updated_at
RETURNING ` + mirrorColumns

const deleteByArticleSQL = `DELETE FROM published_articles WHERE article_id = $1`

const getByArticleSQL = `SELECT ` + mirrorColumns + ` FROM published_articles p WHERE p.article_id = $1`

// Public reads only expose mirrors of currently published articles.
// An unpublished article keeps its mirror row but it is not served.
const getVisibleSQL = `
SELECT ` + mirrorColumns + `
FROM published_articles p
JOIN articles a ON a.id = p.article_id
WHERE p.article_id = $1 AND a.status = 'PUBLISHED'`

const listVisibleSQL = `
SELECT ` + mirrorColumns + `
FROM published_articles p
JOIN articles a ON a.id = p.article_id
WHERE a.status = 'PUBLISHED'
ORDER BY p.updated_at DESC, p.id DESC
LIMIT $1 OFFSET $2`

type row struct {
	ID        uuid.UUID `db:"id"`
	ArticleID uuid.UUID `db:"article_id"`
	Title     string    `db:"title"`
	Content   []byte    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.PublishedArticle {
	return &domain.PublishedArticle{
		ID:        r.ID,
		ArticleID: r.ArticleID,
		Title:     r.Title,
		Content:   json.RawMessage(r.Content),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Upsert creates the article's mirror or overwrites the existing one.
func (r *Repo) Upsert(ctx context.Context, p domain.PublishedArticle) (*domain.PublishedArticle, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, upsertSQL,
		p.ID, p.ArticleID, p.Title, p.Content, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "published article of article", p.ArticleID)
	}
	return out.toDomain(), nil
}

// DeleteByArticleID removes the article's mirror. It reports whether a row existed.
func (r *Repo) DeleteByArticleID(ctx context.Context, articleID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByArticleSQL, articleID)
	if err != nil {
		return false, postgres.MapError(err, "published article of article", articleID)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByArticleID returns the article's mirror regardless of article status.
func (r *Repo) GetByArticleID(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error) {
	return r.get(ctx, getByArticleSQL, articleID)
}

// GetVisible returns the mirror only while the article is published.
func (r *Repo) GetVisible(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error) {
	return r.get(ctx, getVisibleSQL, articleID)
}

// ListVisible returns mirrors of published articles, most recently approved first.
func (r *Repo) ListVisible(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error) {
	page = page.Normalize()

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listVisibleSQL, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	out := make([]*domain.PublishedArticle, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *Repo) get(ctx context.Context, sql string, articleID uuid.UUID) (*domain.PublishedArticle, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, articleID)
	if err != nil {
		if pgxscan.NotFound(err) || errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("published article of article %s: %w", articleID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "published article of article", articleID)
	}
	return out.toDomain(), nil
}
