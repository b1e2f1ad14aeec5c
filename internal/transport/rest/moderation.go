package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

type moderationService interface {
	Apply(ctx context.Context, op domain.EventKind, input moderation.ActionInput) (*moderation.ActionResult, error)
}

// ModerationHandler serves the article lifecycle actions.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type actionRequest struct {
	Annotation *string `json:"annotation"`
}

// Action returns the handler for POST /articles/{id}/<op>. The body is
// optional.
func (h *ModerationHandler) Action(op domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}

		var req actionRequest
		if err := decodeBody(w, r, &req, true); err != nil {
			respondError(w, r, h.log, err)
			return
		}

		result, err := h.svc.Apply(r.Context(), op, moderation.ActionInput{
			ArticleID:  id,
			Annotation: req.Annotation,
		})
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toActionResponse(result))
	}
}
