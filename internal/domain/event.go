package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable audit record of one successful moderation operation.
type Event struct {
	ID         uuid.UUID
	Kind       EventKind
	ArticleID  uuid.UUID
	SnapshotID *uuid.UUID
	Annotation *string
	ActorID    *uuid.UUID
	CreatedAt  time.Time
}

// NewEvent builds the audit record for op performed by actor on articleID.
func NewEvent(kind EventKind, articleID uuid.UUID, snapshotID *uuid.UUID, actor uuid.UUID, annotation *string, now time.Time) Event {
	return Event{
		ID:         newID(),
		Kind:       kind,
		ArticleID:  articleID,
		SnapshotID: snapshotID,
		Annotation: annotation,
		ActorID:    &actor,
		CreatedAt:  now,
	}
}

// newID returns a time-ordered identifier.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
