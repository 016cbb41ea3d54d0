package middleware

import (
	"net/http"
	"time"

	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics учитывает запросы по шаблону маршрута chi, чтобы не плодить метки по ID.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(lw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.ObserveHTTP(r.Method, route, lw.statusCode, time.Since(start))
		})
	}
}
