package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/article"
)

type articleService interface {
	CreateArticle(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	UpdateArticle(ctx context.Context, input article.UpdateArticleInput) (*domain.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListMyArticles(ctx context.Context, input article.ListArticlesInput) ([]*domain.Article, error)
	ListSnapshots(ctx context.Context, articleID uuid.UUID, page domain.Page) ([]*domain.Snapshot, error)
	PendingQueue(ctx context.Context, page domain.Page) ([]*domain.Snapshot, error)
	ListEvents(ctx context.Context, input article.ListEventsInput) ([]*domain.Event, error)
	ListPublished(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error)
	GetPublished(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error)
}

// ArticleHandler serves authoring and read-side endpoints.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

type articleRequest struct {
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.CreateArticle(r.Context(), article.CreateArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(a))
}

// Update handles PATCH /articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req articleRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.UpdateArticle(r.Context(), article.UpdateArticleInput{
		ArticleID: id,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.GetArticle(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// List handles GET /articles?status=&limit=&offset=.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := article.ListArticlesInput{Limit: page.Limit, Offset: page.Offset}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ArticleStatus(v)
		input.Status = &status
	}

	list, err := h.svc.ListMyArticles(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toArticleResponse))
}

// Snapshots handles GET /articles/{id}/snapshots.
func (h *ArticleHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	page, err := queryPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.svc.ListSnapshots(r.Context(), id, page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toSnapshotResponse))
}

// Queue handles GET /moderation/queue.
func (h *ArticleHandler) Queue(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.svc.PendingQueue(r.Context(), page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toSnapshotResponse))
}

// ArticleEvents handles GET /articles/{id}/events.
func (h *ArticleHandler) ArticleEvents(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.listEvents(w, r, &id)
}

// Events handles GET /events?article_id=&actor_id=&event_type=.
func (h *ArticleHandler) Events(w http.ResponseWriter, r *http.Request) {
	articleID, err := queryUUID(r, "article_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.listEvents(w, r, articleID)
}

func (h *ArticleHandler) listEvents(w http.ResponseWriter, r *http.Request, articleID *uuid.UUID) {
	page, err := queryPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	actorID, err := queryUUID(r, "actor_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := article.ListEventsInput{
		ArticleID: articleID,
		ActorID:   actorID,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if v := r.URL.Query().Get("event_type"); v != "" {
		kind := domain.EventKind(v)
		input.Kind = &kind
	}

	list, err := h.svc.ListEvents(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toEventResponse))
}

// ListPublished handles GET /published.
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.svc.ListPublished(r.Context(), page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toPublishedResponse))
}

// GetPublished handles GET /published/{article_id}.
func (h *ArticleHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "article_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPublished(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublishedResponse(p))
}
