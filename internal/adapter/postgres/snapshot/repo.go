// Package snapshot implements the append-only snapshot store using PostgreSQL.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Repo provides snapshot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new snapshot repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const snapshotColumns = `id, article_id, title, content, content_hash, moderation_status, created_at`

const createSQL = `
INSERT INTO article_snapshots (id, article_id, title, content, content_hash, moderation_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + snapshotColumns

// Ties on created_at are broken by id; ids are UUIDv7 and therefore time-ordered.
const latestSQL = `
SELECT ` + snapshotColumns + `
FROM article_snapshots
WHERE article_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

const getByIDSQL = `SELECT ` + snapshotColumns + ` FROM article_snapshots WHERE id = $1`

// Only a pending snapshot may be resolved; the sub-status changes exactly once.
const resolveSQL = `
UPDATE article_snapshots
SET moderation_status = $2
WHERE id = $1 AND moderation_status = 'PENDING'`

// row is the scan target for scany.
type row struct {
	ID               uuid.UUID `db:"id"`
	ArticleID        uuid.UUID `db:"article_id"`
	Title            string    `db:"title"`
	Content          []byte    `db:"content"`
	ContentHash      string    `db:"content_hash"`
	ModerationStatus string    `db:"moderation_status"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Snapshot {
	return &domain.Snapshot{
		ID:          r.ID,
		ArticleID:   r.ArticleID,
		Title:       r.Title,
		Content:     json.RawMessage(r.Content),
		ContentHash: r.ContentHash,
		Status:      domain.SnapshotStatus(r.ModerationStatus),
		CreatedAt:   r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a snapshot and reads it back. Failing to read the row back
// aborts the caller's transaction.
func (r *Repo) Create(ctx context.Context, s domain.Snapshot) (*domain.Snapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := q.QueryRow(ctx, createSQL,
		s.ID, s.ArticleID, s.Title, s.Content, s.ContentHash, string(s.Status), s.CreatedAt,
	).Scan(&out.ID, &out.ArticleID, &out.Title, &out.Content, &out.ContentHash, &out.ModerationStatus, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "snapshot", s.ID)
	}
	return out.toDomain(), nil
}

// Resolve sets the moderation sub-status of a pending snapshot.
// It returns domain.ErrConflict if the snapshot was already resolved.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, status domain.SnapshotStatus) error {
	if !status.IsFinal() {
		return domain.NewValidationError("moderation_status", "must be a final status")
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, resolveSQL, id, string(status))
	if err != nil {
		return postgres.MapError(err, "snapshot", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("snapshot %s: already resolved: %w", id, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Latest returns the most recent snapshot of an article, or nil if the
// article has never been submitted.
func (r *Repo) Latest(ctx context.Context, articleID uuid.UUID) (*domain.Snapshot, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, latestSQL, articleID)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "snapshot of article", articleID)
	}
	return out.toDomain(), nil
}

// GetByID returns a snapshot by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Snapshot, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, getByIDSQL, id)
	if notFound(err) {
		return nil, fmt.Errorf("snapshot %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, postgres.MapError(err, "snapshot", id)
	}
	return out.toDomain(), nil
}

// List returns snapshots matching the filter.
func (r *Repo) List(ctx context.Context, f domain.SnapshotFilter) ([]*domain.Snapshot, error) {
	page := f.Page.Normalize()

	b := psql.Select(snapshotColumns).From("article_snapshots")
	if f.ArticleID != nil {
		b = b.Where(sq.Eq{"article_id": *f.ArticleID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"moderation_status": string(*f.Status)})
	}
	if f.OldestFirst {
		b = b.OrderBy("created_at ASC", "id ASC")
	} else {
		b = b.OrderBy("created_at DESC", "id DESC")
	}
	b = b.Limit(uint64(page.Limit)).Offset(uint64(page.Offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]*domain.Snapshot, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// notFound matches both scany's and pgx's no-rows errors.
func notFound(err error) bool {
	return err != nil && (pgxscan.NotFound(err) || errors.Is(err, pgx.ErrNoRows))
}
