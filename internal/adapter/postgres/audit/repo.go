// Package audit implements the article event log using PostgreSQL.
// Records are append-only: the repository exposes no update or delete.
package audit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new event log repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const eventColumns = `e.id, e.event_type, e.article_id, e.snapshot_id, e.annotation, e.actor_id, e.created_at`

const createSQL = `
INSERT INTO article_events AS e (id, event_type, article_id, snapshot_id, annotation, actor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + eventColumns

const getByIDSQL = `SELECT ` + eventColumns + ` FROM article_events e WHERE e.id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an event and returns the row as stored.
func (r *Repo) Create(ctx context.Context, ev domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanEvent(q.QueryRow(ctx, createSQL,
		ev.ID, string(ev.Kind), ev.ArticleID, postgres.NullUUID(ev.SnapshotID),
		ev.Annotation, postgres.NullUUID(ev.ActorID), ev.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "event", ev.ID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single event.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	ev, err := scanEvent(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return ev, nil
}

// List returns events matching the filter, newest first.
// ArticleAuthorID restricts the result to events on that author's articles.
func (r *Repo) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	page := f.Page.Normalize()

	b := psql.Select(eventColumns).From("article_events e")
	if f.ArticleAuthorID != nil {
		b = b.Join("articles a ON a.id = e.article_id").
			Where(sq.Eq{"a.author_id": *f.ArticleAuthorID})
	}
	if f.ArticleID != nil {
		b = b.Where(sq.Eq{"e.article_id": *f.ArticleID})
	}
	if f.ActorID != nil {
		b = b.Where(sq.Eq{"e.actor_id": *f.ActorID})
	}
	if f.Kind != nil {
		b = b.Where(sq.Eq{"e.event_type": string(*f.Kind)})
	}
	b = b.OrderBy("e.created_at DESC", "e.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		ev         domain.Event
		kind       string
		snapshotID pgtype.UUID
		actorID    pgtype.UUID
	)
	if err := row.Scan(&ev.ID, &kind, &ev.ArticleID, &snapshotID, &ev.Annotation, &actorID, &ev.CreatedAt); err != nil {
		return nil, err
	}
	ev.Kind = domain.EventKind(kind)
	ev.SnapshotID = postgres.UUIDPtr(snapshotID)
	ev.ActorID = postgres.UUIDPtr(actorID)
	return &ev, nil
}
