package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PublishedArticle is the public rendition of an article. There is at most
// one per article and it always mirrors the most recently approved snapshot.
type PublishedArticle struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	Title     string
	Content   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MirrorOf builds the published rendition of an approved snapshot.
func MirrorOf(s Snapshot, now time.Time) PublishedArticle {
	return PublishedArticle{
		ID:        newID(),
		ArticleID: s.ArticleID,
		Title:     s.Title,
		Content:   s.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
