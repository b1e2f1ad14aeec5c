package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

type articleResponse struct {
	ID               uuid.UUID       `json:"id"`
	AuthorID         *uuid.UUID      `json:"author_id"`
	Title            string          `json:"title"`
	Content          json.RawMessage `json:"content"`
	Status           string          `json:"status"`
	StatusDisplay    string          `json:"status_display"`
	LastModerationAt *time.Time      `json:"last_moderation_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:               a.ID,
		AuthorID:         a.AuthorID,
		Title:            a.Title,
		Content:          a.Content,
		Status:           a.Status.String(),
		StatusDisplay:    a.Status.Label(),
		LastModerationAt: a.LastModerationAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

type snapshotResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	ContentHash string          `json:"content_hash"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toSnapshotResponse(s *domain.Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:          s.ID,
		ArticleID:   s.ArticleID,
		Title:       s.Title,
		Content:     s.Content,
		ContentHash: s.ContentHash,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
	}
}

type publishedResponse struct {
	ArticleID   uuid.UUID       `json:"article_id"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	PublishedAt time.Time       `json:"published_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toPublishedResponse(p *domain.PublishedArticle) publishedResponse {
	return publishedResponse{
		ArticleID:   p.ArticleID,
		Title:       p.Title,
		Content:     p.Content,
		PublishedAt: p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type eventResponse struct {
	ID               uuid.UUID  `json:"id"`
	EventType        string     `json:"event_type"`
	EventTypeDisplay string     `json:"event_type_display"`
	ArticleID        uuid.UUID  `json:"article_id"`
	SnapshotID       *uuid.UUID `json:"snapshot_id"`
	Annotation       *string    `json:"annotation"`
	ActorID          *uuid.UUID `json:"actor_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:               e.ID,
		EventType:        e.Kind.String(),
		EventTypeDisplay: e.Kind.Label(),
		ArticleID:        e.ArticleID,
		SnapshotID:       e.SnapshotID,
		Annotation:       e.Annotation,
		ActorID:          e.ActorID,
		CreatedAt:        e.CreatedAt,
	}
}

type actionResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventType        string     `json:"event_type"`
	EventTypeDisplay string     `json:"event_type_display"`
	ActorID          uuid.UUID  `json:"actor_id"`
	ArticleID        uuid.UUID  `json:"article_id"`
	Status           string     `json:"status"`
	StatusDisplay    string     `json:"status_display"`
	SnapshotID       *uuid.UUID `json:"snapshot_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toActionResponse(r *moderation.ActionResult) actionResponse {
	return actionResponse{
		EventID:          r.EventID,
		EventType:        r.EventKind.String(),
		EventTypeDisplay: r.EventLabel,
		ActorID:          r.ActorID,
		ArticleID:        r.ArticleID,
		Status:           r.Status.String(),
		StatusDisplay:    r.StatusLabel,
		SnapshotID:       r.SnapshotID,
		CreatedAt:        r.CreatedAt,
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func mapList[S any, T any](src []S, fn func(S) T) listResponse[T] {
	items := make([]T, 0, len(src))
	for _, s := range src {
		items = append(items, fn(s))
	}
	return listResponse[T]{Items: items}
}
