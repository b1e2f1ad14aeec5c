package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrBusy          = errors.New("resource busy")
)

// Moderation outcomes. Each aborts the operation before any write.
var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrCooldownActive    = errors.New("cooldown active")
	ErrNoChange          = errors.New("no change since last submission")
	ErrMissingSnapshot   = errors.New("missing snapshot")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports an operation that is not allowed from the
// article's current status.
type TransitionError struct {
	From ArticleStatus
	Op   EventKind
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition: cannot %s article in status %s",
		e.Op.Label(), e.From.Label())
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// CooldownError reports a submit attempted too soon after the last
// moderation decision.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active: retry in %s", e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }

// RetryAfterSeconds rounds the remaining wait up to whole seconds, never below 1.
func (e *CooldownError) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.Remaining.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// ErrorKind is the closed set of caller-facing error categories.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindIllegalTransition
	KindCooldownActive
	KindNoChange
	KindMissingSnapshot
	KindValidation
	KindUnauthorized
	KindForbidden
	KindConflict
	KindBusy
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindIllegalTransition:
		return "ILLEGAL_TRANSITION"
	case KindCooldownActive:
		return "COOLDOWN_ACTIVE"
	case KindNoChange:
		return "NO_CHANGE"
	case KindMissingSnapshot:
		return "MISSING_SNAPSHOT"
	case KindValidation:
		return "VALIDATION"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	case KindBusy:
		return "BUSY"
	}
	return "INTERNAL"
}

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrIllegalTransition):
		return KindIllegalTransition
	case errors.Is(err, ErrCooldownActive):
		return KindCooldownActive
	case errors.Is(err, ErrNoChange):
		return KindNoChange
	case errors.Is(err, ErrMissingSnapshot):
		return KindMissingSnapshot
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrBusy):
		return KindBusy
	}
	return KindInternal
}
