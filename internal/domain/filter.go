package domain

import "github.com/google/uuid"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// ArticleFilter selects articles for listing.
type ArticleFilter struct {
	AuthorID       *uuid.UUID
	Status         *ArticleStatus
	IncludeDeleted bool
	Page
}

// EventFilter selects events for listing. ArticleAuthorID restricts the
// result to events on articles owned by that user.
type EventFilter struct {
	ArticleID       *uuid.UUID
	ActorID         *uuid.UUID
	ArticleAuthorID *uuid.UUID
	Kind            *EventKind
	Page
}

// SnapshotFilter selects snapshots for listing. Results are newest first
// unless OldestFirst is set, which the moderation queue uses.
type SnapshotFilter struct {
	ArticleID   *uuid.UUID
	Status      *SnapshotStatus
	OldestFirst bool
	Page
}
