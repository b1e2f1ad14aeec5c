package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// ListPublished returns the public renditions of published articles.
func (s *Service) ListPublished(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error) {
	list, err := s.published.ListVisible(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return list, nil
}

// GetPublished returns the public rendition of one article.
func (s *Service) GetPublished(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error) {
	p, err := s.published.GetVisible(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get published: %w", err)
	}
	return p, nil
}

// ListSnapshots returns an article's submission history, newest first.
// Moderator only.
func (s *Service) ListSnapshots(ctx context.Context, articleID uuid.UUID, page domain.Page) ([]*domain.Snapshot, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	list, err := s.snapshots.List(ctx, domain.SnapshotFilter{ArticleID: &articleID, Page: page})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return list, nil
}

// PendingQueue returns snapshots awaiting a decision, oldest first.
// Moderator only.
func (s *Service) PendingQueue(ctx context.Context, page domain.Page) ([]*domain.Snapshot, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}

	pending := domain.SnapshotStatusPending
	list, err := s.snapshots.List(ctx, domain.SnapshotFilter{Status: &pending, OldestFirst: true, Page: page})
	if err != nil {
		return nil, fmt.Errorf("list moderation queue: %w", err)
	}
	return list, nil
}

// ListEvents returns events from the log, newest first. Moderators see
// every event; other users only see events on their own articles.
func (s *Service) ListEvents(ctx context.Context, input ListEventsInput) ([]*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.EventFilter{
		ArticleID: input.ArticleID,
		ActorID:   input.ActorID,
		Kind:      input.Kind,
		Page:      domain.Page{Limit: input.Limit, Offset: input.Offset},
	}

	if !ctxutil.IsModeratorCtx(ctx) {
		if input.ArticleID != nil {
			a, err := s.articles.GetByID(ctx, *input.ArticleID)
			if err != nil {
				return nil, fmt.Errorf("get article: %w", err)
			}
			if !a.IsAuthoredBy(userID) {
				return nil, fmt.Errorf("events of article %s: %w", a.ID, domain.ErrForbidden)
			}
		}
		filter.ArticleAuthorID = &userID
	}

	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func requireModerator(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsModeratorCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
