package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"book_catalog/internal/metrics"
	"book_catalog/utils"
)

const (
	SessionHeader   = "X-Session-ID"
	RequestIDHeader = "X-Request-ID"
)

type sessionKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// SessionID takes the session from the X-Session-ID header or starts a new one, and echoes
// it back so the client can continue browsing.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromCtx(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey{}).(string)
	return sessionID
}

// RequestLogger assigns a request id and logs every request at the INFO level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rqID := r.Header.Get(RequestIDHeader)
		if rqID == "" {
			rqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, rqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(utils.ContextWithRqID(r.Context(), rqID)))

		slog.Info(
			"http.request",
			slog.String("rqID", rqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("remote", r.RemoteAddr),
			slog.String("agent", r.UserAgent()),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// Metrics counts requests per route pattern, so path values do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}

		metrics.HttpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
