// Package api provides the HTTP API for shuuden.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/shuuden/shuuden/internal/api/handler"
	"github.com/shuuden/shuuden/internal/api/middleware"
	"github.com/shuuden/shuuden/internal/api/response"
	"github.com/shuuden/shuuden/internal/provider/resilience"
	"github.com/shuuden/shuuden/internal/station"
)

// DefaultServiceName is reported on server spans when none is configured.
const DefaultServiceName = "shuuden-api"

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	// Searcher answers POST /v1/search.
	Searcher handler.Searcher
	// Stations backs the station endpoints (optional, defaults to station.Default).
	Stations handler.StationFinder
	// Registry exposes provider health on /v1/ops/status (optional).
	Registry *resilience.Registry
	// HasAPIKey is reported by the health endpoint.
	HasAPIKey bool
	// RequireTLS rejects plain-HTTP forwarded requests.
	RequireTLS bool
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	stations := cfg.Stations
	if stations == nil {
		stations = station.Default()
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(serviceName))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP) // rate limits key on the resolved client IP
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))
	r.Use(middleware.ContentTypeJSON)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "no such resource")
	})
	r.MethodNotAllowed(response.MethodNotAllowed)

	opsHandler := handler.NewOpsHandler(handler.OpsConfig{
		Version:   cfg.Version,
		BuildTime: cfg.BuildTime,
		HasAPIKey: cfg.HasAPIKey,
		Registry:  cfg.Registry,
	})
	searchHandler := handler.NewSearchHandler(cfg.Searcher, cfg.Logger)
	stationHandler := handler.NewStationHandler(stations)

	searchRateLimit := middleware.RateLimitByIP(middleware.SearchRateLimit)     // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		r.With(searchRateLimit, middleware.RequireJSON).Post("/search", searchHandler.Search)

		r.Route("/stations", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", stationHandler.List)
			r.Get("/nearest", stationHandler.Nearest)
		})
	})

	return r
}
