package mergepatch

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/patchkit/pkg/logger"
)

// Mount registers h for PATCH requests on pattern.
func Mount(r chi.Router, pattern string, h http.Handler) {
	r.Method(http.MethodPatch, pattern, h)
}

// NewRouter returns a chi router that tags every request with a request id
// and recovers from panics.
func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	return r
}

// RequestLogger builds a logger that adds the request id set by NewRouter to
// every record logged with the request context.
func RequestLogger(opts ...logger.Option) *slog.Logger {
	opts = append(opts, logger.WithContextValue("request_id", middleware.RequestIDKey))
	return logger.New(opts...)
}
