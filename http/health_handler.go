package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Pinger is implemented by dependencies that can report their own health,
// such as repository.RedisCache.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	cache  Pinger
	logger *slog.Logger
}

func NewHealthHandler(cache Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		cache:  cache,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"engine": "ok"}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.WarnContext(r.Context(), "cache health check failed",
				slog.String("error", err.Error()))
			checks["cache"] = "unavailable"
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]any{"status": "degraded", "checks": checks})
			return
		}
		checks["cache"] = "ok"
	}

	render.JSON(w, r, map[string]any{"status": "ok", "checks": checks})
}
