package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength is the maximum article title length in characters.
	MaxTitleLength = 60

	// DefaultTitle is used when an article is created without a title.
	DefaultTitle = "Untitled"
)

// DefaultContent is the empty editor document assigned to new articles.
var DefaultContent = json.RawMessage(`{"type":"doc","content":[{"type":"paragraph"}]}`)

// Article is the mutable, mastered record that moderation operates on.
type Article struct {
	ID               uuid.UUID
	AuthorID         *uuid.UUID
	Title            string
	Content          json.RawMessage
	Status           ArticleStatus
	LastModerationAt *time.Time
	IsDeleted        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAuthoredBy reports whether userID owns the article.
// Articles whose author was removed have no owner.
func (a *Article) IsAuthoredBy(userID uuid.UUID) bool {
	return a.AuthorID != nil && *a.AuthorID == userID
}

// Fingerprint returns the content fingerprint of the article's current
// title and content.
func (a *Article) Fingerprint() (string, error) {
	return Fingerprint(a.Title, a.Content)
}

// IsEditable reports whether title and content may be edited directly.
func (a *Article) IsEditable() bool {
	return a.Status != ArticleStatusPending && a.Status != ArticleStatusDeleted
}

// ArticleUpdateParams holds the fields for a partial article edit.
// Nil fields are left unchanged.
type ArticleUpdateParams struct {
	Title   *string
	Content json.RawMessage
}

// ArticleStatusChange is written by moderation operations.
type ArticleStatusChange struct {
	Status           ArticleStatus
	LastModerationAt *time.Time
	SoftDelete       bool
}
