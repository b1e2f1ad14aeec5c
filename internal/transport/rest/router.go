package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Health     *HealthHandler
	Articles   *ArticleHandler
	Moderation *ModerationHandler
	Admin      *AdminHandler

	Logger *slog.Logger
	CORS   config.CORSConfig

	// Auth resolves the bearer token. Required.
	Auth middleware.Middleware
	// ActionLimit, when set, wraps the moderation action routes.
	ActionLimit middleware.Middleware
}

// NewRouter registers all routes and wraps them in the global middleware
// chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.HandleFunc("POST /articles", d.Articles.Create)
	mux.HandleFunc("GET /articles", d.Articles.List)
	mux.HandleFunc("GET /articles/{id}", d.Articles.Get)
	mux.HandleFunc("PATCH /articles/{id}", d.Articles.Update)
	mux.HandleFunc("GET /articles/{id}/snapshots", d.Articles.Snapshots)
	mux.HandleFunc("GET /articles/{id}/events", d.Articles.ArticleEvents)
	mux.HandleFunc("GET /moderation/queue", d.Articles.Queue)
	mux.HandleFunc("GET /events", d.Articles.Events)
	mux.HandleFunc("GET /published", d.Articles.ListPublished)
	mux.HandleFunc("GET /published/{article_id}", d.Articles.GetPublished)

	for _, op := range domain.EventKinds {
		var h http.Handler = d.Moderation.Action(op)
		if d.ActionLimit != nil {
			h = d.ActionLimit(h)
		}
		mux.Handle("POST /articles/{id}/"+strings.ToLower(op.String()), h)
	}

	mux.HandleFunc("DELETE /admin/articles/{id}", d.Admin.PurgeArticle)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		d.Auth,
	)(mux)
}
