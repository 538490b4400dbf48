// Package api provides the HTTP API of the Alexandria transit assistant.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/api/handler"
	"github.com/alextransit/alextransit/internal/api/middleware"
	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/memory"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	RequireTLS  bool

	Assistant handler.Answerer
	Geocoder  *gazetteer.Geocoder
	Memory    memory.Store

	// Planner and Registry feed /v1/ops/status (optional).
	Planner  handler.StatusChecker
	Registry *resilience.Registry

	MemoryPath string
	NEREnabled bool
}

// NewRouter creates a chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "alextransit-api"
	}

	// Order matters: the request ID must exist before tracing and logging.
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(serviceName))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(handler.OpsConfig{
		Version:    cfg.Version,
		BuildTime:  cfg.BuildTime,
		Planner:    cfg.Planner,
		Registry:   cfg.Registry,
		StopCount:  cfg.Geocoder.Index().Len(),
		MemoryPath: cfg.MemoryPath,
		NEREnabled: cfg.NEREnabled,
	})
	queryHandler := handler.NewQueryHandler(cfg.Assistant)
	stopsHandler := handler.NewStopsHandler(cfg.Geocoder)
	memoryHandler := handler.NewMemoryHandler(cfg.Memory, cfg.Logger)

	queryRateLimit := middleware.RateLimitByIP(middleware.QueryRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.With(standardRateLimit).Get("/status", opsHandler.SystemStatus)
		})

		r.With(queryRateLimit, middleware.RequireJSON).Post("/query", queryHandler.Query)

		r.Group(func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/stops", stopsHandler.Search)
			r.Get("/stops/nearby", stopsHandler.Nearby)
			r.Get("/stops/resolve", stopsHandler.Resolve)
		})

		r.Route("/memory", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Use(middleware.RequireJSON)
			r.Delete("/", memoryHandler.Clear)
			r.Get("/preferences", memoryHandler.GetPreferences)
			r.Patch("/preferences", memoryHandler.UpdatePreferences)
			r.Get("/recent", memoryHandler.RecentLocations)
			r.Get("/favorites", memoryHandler.Favorites)
			r.Post("/favorites", memoryHandler.AddFavorite)
			r.Get("/history", memoryHandler.SearchHistory)
		})
	})

	return r
}
