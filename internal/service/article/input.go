package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// CreateArticleInput holds the parameters for creating a draft.
// Nil title and content fall back to defaults.
type CreateArticleInput struct {
	Title   *string
	Content json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateArticleInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = appendTitleErrors(errs, strings.TrimSpace(*i.Title), false)
	}
	if i.Content != nil && !isJSONObject(i.Content) {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must be a JSON object"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateArticleInput holds the parameters for editing a draft.
type UpdateArticleInput struct {
	ArticleID uuid.UUID
	Title     *string
	Content   json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i UpdateArticleInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, strings.TrimSpace(*i.Title), true)
	}
	if i.Content != nil && !isJSONObject(i.Content) {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must be a JSON object"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListArticlesInput selects the caller's own articles.
type ListArticlesInput struct {
	Status *domain.ArticleStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListArticlesInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEventsInput selects events from the log.
type ListEventsInput struct {
	ArticleID *uuid.UUID
	ActorID   *uuid.UUID
	Kind      *domain.EventKind
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListEventsInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "unknown event type"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string, required bool) []domain.FieldError {
	if required && title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("max %d characters", domain.MaxTitleLength),
		})
	}
	return errs
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
