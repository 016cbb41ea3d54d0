package router

import (
	"github.com/Totarae/tinyurl/internal/handlers"
	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/Totarae/tinyurl/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Options настройки middleware маршрутизатора.
type Options struct {
	Blacklist      []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, m *metrics.Metrics, logger *zap.Logger, opts Options) *chi.Mux {
	r := chi.NewRouter()
	limiter := middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Blacklist(opts.Blacklist, logger))

	// promhttp сжимает ответ сам
	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", handler.Healthz)

	r.Group(func(r chi.Router) {
		r.Use(middleware.GzipMiddleware)

		r.Get("/info/version", handler.Version)
		r.Get("/info/ping", handler.Ping)

		r.Route("/api/v1/tinyurl", func(r chi.Router) {
			r.Get("/", handler.ListLinks)
			r.Delete("/", handler.DeleteLink)
			r.Get("/{id}", handler.Redirect)
			r.Get("/{id}/info", handler.GetLink)
			r.Get("/{id}/status", handler.UsageStatus)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", handler.CreateLink)
				r.Post("/multi", handler.CreateLinks)
			})
		})

		r.Get("/{code}", handler.RedirectByCode)
	})

	return r
}
