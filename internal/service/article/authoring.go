package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// CreateArticle stores a new draft owned by the caller.
func (s *Service) CreateArticle(ctx context.Context, input CreateArticleInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := domain.DefaultTitle
	if input.Title != nil {
		if trimmed := strings.TrimSpace(*input.Title); trimmed != "" {
			title = trimmed
		}
	}
	content := domain.DefaultContent
	if input.Content != nil {
		content = input.Content
	}

	now := s.now()
	created, err := s.articles.Create(ctx, &domain.Article{
		ID:        uuid.New(),
		AuthorID:  &userID,
		Title:     title,
		Content:   content,
		Status:    domain.ArticleStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("user_id", userID.String()),
		slog.String("article_id", created.ID.String()),
	)

	return created, nil
}

// UpdateArticle edits title and content. Only the author may edit, and not
// while the article is under review or deleted. The edit takes the same row
// lock as moderation operations so it cannot interleave with a submit.
func (s *Service) UpdateArticle(ctx context.Context, input UpdateArticleInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ArticleUpdateParams{Content: input.Content}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}

	var updated *domain.Article
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.articles.GetByIDForUpdate(txCtx, input.ArticleID)
		if err != nil {
			return fmt.Errorf("lock article: %w", err)
		}
		if !a.IsAuthoredBy(userID) {
			return fmt.Errorf("edit article %s: not the author: %w", a.ID, domain.ErrForbidden)
		}
		if !a.IsEditable() {
			return fmt.Errorf("edit article in status %s: %w", a.Status.Label(), domain.ErrIllegalTransition)
		}

		updated, err = s.articles.Update(txCtx, a.ID, params, s.now())
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article updated",
		slog.String("user_id", userID.String()),
		slog.String("article_id", updated.ID.String()),
	)

	return updated, nil
}

// GetArticle returns an article to its author or a moderator.
// Soft-deleted articles are returned with status Deleted.
func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !a.IsAuthoredBy(userID) && !ctxutil.IsModeratorCtx(ctx) {
		return nil, fmt.Errorf("get article %s: %w", id, domain.ErrForbidden)
	}
	return a, nil
}

// ListMyArticles returns the caller's articles, newest first. Deleted
// articles are excluded unless the status filter asks for them.
func (s *Service) ListMyArticles(ctx context.Context, input ListArticlesInput) ([]*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	articles, err := s.articles.List(ctx, domain.ArticleFilter{
		AuthorID:       &userID,
		Status:         input.Status,
		IncludeDeleted: input.Status != nil && *input.Status == domain.ArticleStatusDeleted,
		Page:           domain.Page{Limit: input.Limit, Offset: input.Offset},
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// PurgeArticle hard-deletes an article with its snapshots, events and
// published mirror. Admin only.
func (s *Service) PurgeArticle(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.articles.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("purge article: %w", err)
	}

	s.log.InfoContext(ctx, "article purged",
		slog.String("user_id", userID.String()),
		slog.String("article_id", id.String()),
	)
	return nil
}

// PurgeDeleted hard-deletes soft-deleted articles untouched for longer than
// retention. It runs as a system job without a caller identity.
func (s *Service) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	threshold := s.now().Add(-retention)
	n, err := s.articles.PurgeDeleted(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge deleted articles: %w", err)
	}

	s.log.InfoContext(ctx, "deleted articles purged",
		slog.Int64("count", n),
		slog.Time("threshold", threshold),
	)
	return n, nil
}
