package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type purgeService interface {
	PurgeArticle(ctx context.Context, id uuid.UUID) error
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	svc purgeService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc purgeService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// PurgeArticle hard-deletes an article and everything attached to it.
// DELETE /admin/articles/{id}
func (h *AdminHandler) PurgeArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.PurgeArticle(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
