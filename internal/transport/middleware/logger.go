package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status, duration and the caller identity. 4xx responses log at Warn and
// 5xx at Error.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			caller := &callerInfo{}
			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				caller.set(userID, ctxutil.UserRoleFromCtx(r.Context()))
			}
			if caller.known {
				attrs = append(attrs,
					slog.String("user_id", caller.userID.String()),
					slog.String("role", caller.role),
				)
			}

			logger.LogAttrs(r.Context(), levelForStatus(sw.status), "http.request", attrs...)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// callerInfo lets Auth, which runs inside Logger, report the resolved
// identity back to the access log.
type callerInfo struct {
	userID uuid.UUID
	role   string
	known  bool
}

type callerKey struct{}

func (c *callerInfo) set(userID uuid.UUID, role string) {
	c.userID, c.role, c.known = userID, role, true
}

func recordCaller(ctx context.Context, userID uuid.UUID, role string) {
	if c, ok := ctx.Value(callerKey{}).(*callerInfo); ok {
		c.set(userID, role)
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
