package moderation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ActionInput holds the parameters shared by every moderation operation.
type ActionInput struct {
	ArticleID  uuid.UUID
	Annotation *string
}

// Validate checks all fields and collects all errors.
func (i ActionInput) Validate(annotationMaxLen int) error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.Annotation != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Annotation)) > annotationMaxLen {
		errs = append(errs, domain.FieldError{
			Field:   "annotation",
			Message: fmt.Sprintf("max %d characters", annotationMaxLen),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// annotation returns the trimmed remark, or nil when it is blank.
func (i ActionInput) annotation() *string {
	if i.Annotation == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*i.Annotation)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
