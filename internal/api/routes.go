package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/calendrics-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router. metrics
// may be nil.
//
// Route structure:
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/calendars
//	GET  /api/v1/convert?date=|rd=&to=
//	POST /api/v1/dates                        {calendar, era, year, month_code, day}
//	POST /api/v1/offset                       {calendar, rd|date, years, months, weeks, days}
//	POST /api/v1/until                        {calendar, from_rd, to_rd}
//	GET  /api/v1/easter/{year}
//	GET  /api/v1/astronomy/new-moon?date=
//	GET  /api/v1/astronomy/crescent?date=&lat=&lon=
//	GET  /api/v1/astronomy/sun?date=&lat=&lon=
//	GET  /api/v1/astronomy/seasons/{year}
//	GET  /api/v1/cache
//	GET  /api/v1/cache/{calendar}?from=&to=
//	GET  /api/v1/cache/{calendar}/containing?date=
//	POST /api/v1/cache/{calendar}/warm        {from, to}
//
// POST routes need X-API-Key in production.
func SetupRoutes(handlers *Handlers, cfg *config.Config, metrics *Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)
	if metrics != nil {
		r.Use(MetricsMiddleware(metrics))
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))
		}

		r.Get("/calendars", handlers.ListCalendars)
		r.Get("/convert", handlers.Convert)
		r.Get("/easter/{year}", handlers.Easter)

		r.Route("/astronomy", func(r chi.Router) {
			r.Get("/new-moon", handlers.NewMoon)
			r.Get("/crescent", handlers.Crescent)
			r.Get("/sun", handlers.Sun)
			r.Get("/seasons/{year}", handlers.Seasons)
		})

		r.Get("/cache", handlers.CacheStats)
		r.Get("/cache/{calendar}", handlers.CachedYears)
		r.Get("/cache/{calendar}/containing", handlers.CachedYearContaining)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Post("/dates", handlers.CreateDate)
			r.Post("/offset", handlers.Offset)
			r.Post("/until", handlers.Until)
			r.Post("/cache/{calendar}/warm", handlers.WarmCache)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeBadRequest)
	})

	return r
}
