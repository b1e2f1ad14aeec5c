// Package article implements the Article repository using PostgreSQL.
// The article row is the aggregate root: moderation operations serialize on
// it with SELECT ... FOR UPDATE.
package article

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new article repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const articleColumns = `id, author_id, title, content, status, last_moderation_at, is_deleted, created_at, updated_at`

const getByIDSQL = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

const getByIDForUpdateSQL = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1 FOR UPDATE`

const createSQL = `
INSERT INTO articles (id, author_id, title, content, status, is_deleted, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, false, $6, $6)
RETURNING ` + articleColumns

const hardDeleteSQL = `DELETE FROM articles WHERE id = $1`

const purgeDeletedSQL = `DELETE FROM articles WHERE is_deleted AND updated_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an article by primary key. Soft-deleted articles are returned.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanArticle(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// GetByIDForUpdate returns an article and holds an exclusive row lock on it
// until the surrounding transaction ends. It must be called inside
// TxManager.RunInTx; outside a transaction the lock would be released at once.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("article %s: lock requested outside transaction", id)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanArticle(q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// List returns articles matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ArticleFilter) ([]*domain.Article, error) {
	page := f.Page.Normalize()

	b := psql.Select(articleColumns).From("articles")
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"author_id": *f.AuthorID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	if !f.IncludeDeleted {
		b = b.Where(sq.Eq{"is_deleted": false})
	}
	b = b.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft article.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanArticle(q.QueryRow(ctx, createSQL,
		a.ID, postgres.NullUUID(a.AuthorID), a.Title, a.Content, string(a.Status), a.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}
	return created, nil
}

// Update applies a partial edit of title and content.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams, now time.Time) (*domain.Article, error) {
	b := psql.Update("articles").Set("updated_at", now)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Content != nil {
		b = b.Set("content", params.Content)
	}
	b = b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + articleColumns)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update article: %w", err)
	}

	updated, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return updated, nil
}

// UpdateStatus writes a moderation outcome. Status, last_moderation_at and
// the soft-delete flag change in a single statement.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, change domain.ArticleStatusChange, now time.Time) error {
	b := psql.Update("articles").
		Set("status", string(change.Status)).
		Set("updated_at", now)
	if change.LastModerationAt != nil {
		b = b.Set("last_moderation_at", *change.LastModerationAt)
	}
	if change.SoftDelete {
		b = b.Set("is_deleted", true)
	}
	b = b.Where(sq.Eq{"id": id})

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update article status: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HardDelete physically removes an article. Snapshots, events and the
// published mirror go with it via ON DELETE CASCADE.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, hardDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// PurgeDeleted hard-deletes soft-deleted articles last touched before threshold.
func (r *Repo) PurgeDeleted(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, purgeDeletedSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge deleted articles: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		a        domain.Article
		authorID pgtype.UUID
		content  []byte
		status   string
	)
	if err := row.Scan(&a.ID, &authorID, &a.Title, &content, &status,
		&a.LastModerationAt, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	a.AuthorID = postgres.UUIDPtr(authorID)
	a.Content = json.RawMessage(content)
	a.Status = domain.ArticleStatus(status)
	return &a, nil
}

func scanArticles(rows pgx.Rows) ([]*domain.Article, error) {
	articles := []*domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}
