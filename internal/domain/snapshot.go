package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of an article's content taken at submission.
// Only Status changes after creation.
type Snapshot struct {
	ID          uuid.UUID
	ArticleID   uuid.UUID
	Title       string
	Content     json.RawMessage
	ContentHash string
	Status      SnapshotStatus
	CreatedAt   time.Time
}

// NewSnapshot copies the article's current title and content into a
// pending snapshot carrying the given fingerprint.
func NewSnapshot(a *Article, hash string, now time.Time) Snapshot {
	content := make(json.RawMessage, len(a.Content))
	copy(content, a.Content)

	return Snapshot{
		ID:          newID(),
		ArticleID:   a.ID,
		Title:       a.Title,
		Content:     content,
		ContentHash: hash,
		Status:      SnapshotStatusPending,
		CreatedAt:   now,
	}
}
