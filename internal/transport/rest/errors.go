package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// errorTable maps each caller-facing error kind to its HTTP status.
// The response code is the kind's name.
var errorTable = map[domain.ErrorKind]int{
	domain.KindNotFound:          http.StatusNotFound,
	domain.KindIllegalTransition: http.StatusConflict,
	domain.KindMissingSnapshot:   http.StatusConflict,
	domain.KindNoChange:          http.StatusBadRequest,
	domain.KindCooldownActive:    http.StatusTooManyRequests,
	domain.KindValidation:        http.StatusBadRequest,
	domain.KindUnauthorized:      http.StatusUnauthorized,
	domain.KindForbidden:         http.StatusForbidden,
	domain.KindConflict:          http.StatusConflict,
	domain.KindBusy:              http.StatusServiceUnavailable,
	domain.KindInternal:          http.StatusInternalServerError,
}

// busyRetryAfter is the Retry-After hint sent when a row lock could not be
// acquired in time.
const busyRetryAfter = 1

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// respondError translates err through errorTable. Only server-side failures
// are logged; everything else is an expected outcome for the caller.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := errorTable[kind]
	detail := errorDetail{Code: kind.String(), Message: err.Error()}

	switch kind {
	case domain.KindInternal:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		detail.Message = "internal server error"
	case domain.KindBusy:
		log.WarnContext(r.Context(), "article busy", slog.String("error", err.Error()))
		detail.Message = "article is busy, retry later"
		w.Header().Set("Retry-After", strconv.Itoa(busyRetryAfter))
	case domain.KindCooldownActive:
		var ce *domain.CooldownError
		if errors.As(err, &ce) {
			w.Header().Set("Retry-After", strconv.Itoa(ce.RetryAfterSeconds()))
		}
	case domain.KindValidation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
	}

	writeJSON(w, status, errorBody{Error: detail})
}
