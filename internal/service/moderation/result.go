package moderation

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ActionResult describes a committed moderation operation.
type ActionResult struct {
	EventID     uuid.UUID
	EventKind   domain.EventKind
	EventLabel  string
	ActorID     uuid.UUID
	ArticleID   uuid.UUID
	Status      domain.ArticleStatus
	StatusLabel string
	SnapshotID  *uuid.UUID
	CreatedAt   time.Time
}

func newActionResult(ev *domain.Event, actorID uuid.UUID, status domain.ArticleStatus) *ActionResult {
	return &ActionResult{
		EventID:     ev.ID,
		EventKind:   ev.Kind,
		EventLabel:  ev.Kind.Label(),
		ActorID:     actorID,
		ArticleID:   ev.ArticleID,
		Status:      status,
		StatusLabel: status.Label(),
		SnapshotID:  ev.SnapshotID,
		CreatedAt:   ev.CreatedAt,
	}
}
