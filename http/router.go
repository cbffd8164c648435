package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finance-calculator/metrics"
	"finance-calculator/service"
)

// RouterConfig wires the router's dependencies. RateLimiter and Cache may be
// nil to disable rate limiting and the cache health check. With TrustProxy
// unset, forwarding headers are ignored and clients are keyed by RemoteAddr.
type RouterConfig struct {
	Service     *service.FinanceService
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *RateLimiter
	Cache       Pinger
	TrustProxy  bool
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestLogger(cfg.Logger))
	r.Use(Metrics(cfg.Metrics))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})

	health := NewHealthHandler(cfg.Cache, cfg.Logger)
	r.Get("/healthz", health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	finance := NewFinanceHandler(cfg.Service, cfg.Logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		if cfg.RateLimiter != nil {
			r.Use(RateLimitMiddleware(cfg.RateLimiter))
		}
		finance.RegisterRoutes(r)
	})

	return r
}
