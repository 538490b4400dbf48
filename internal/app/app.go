// Package app assembles the assistant and its collaborators from
// configuration. The API server, the cache warmer and the CLI share it.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/api/middleware"
	"github.com/alextransit/alextransit/internal/assistant"
	"github.com/alextransit/alextransit/internal/config"
	"github.com/alextransit/alextransit/internal/extract"
	"github.com/alextransit/alextransit/internal/format"
	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/memory"
	"github.com/alextransit/alextransit/internal/ner"
	"github.com/alextransit/alextransit/internal/planner"
	"github.com/alextransit/alextransit/internal/planner/otp"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

// recognizerCacheTTL bounds how long a model answer is reused for an
// identical query.
const recognizerCacheTTL = time.Hour

// Components are the wired collaborators of one process.
type Components struct {
	Config    config.Config
	Registry  *resilience.Registry
	Geocoder  *gazetteer.Geocoder
	Planner   *planner.Service
	Memory    *memory.FileStore
	Assistant *assistant.Service

	redis *redis.Client
}

// Options tune Build for a particular binary.
type Options struct {
	// InMemory keeps user memory out of the filesystem.
	InMemory bool

	// Metrics records upstream calls (optional).
	Metrics *middleware.ProviderMetrics
}

// Build wires every component described by cfg.
func Build(ctx context.Context, cfg config.Config, opts Options, logger zerolog.Logger) (*Components, error) {
	geo, err := NewGeocoder(cfg.GTFSStopsFile, logger)
	if err != nil {
		return nil, err
	}

	c := &Components{
		Config:   cfg,
		Registry: resilience.NewRegistry(),
		Geocoder: geo,
	}

	provider := otp.NewClient(otp.ClientConfig{
		BaseURL:       cfg.OTPBaseURL,
		Router:        cfg.OTPRouter,
		PlanTimeout:   cfg.OTPPlanTimeout,
		StatusTimeout: cfg.OTPStatusTimeout,
		Registry:      c.Registry,
		Logger:        logger,
	})

	svcCfg := planner.ServiceConfig{
		Provider: provider,
		Logger:   logger,
		CacheTTL: cfg.PlanCacheTTL,
	}
	if opts.Metrics != nil {
		svcCfg.Metrics = opts.Metrics
	}
	if cfg.RedisAddress != "" {
		c.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		if err := c.redis.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis unreachable, plans cached per process until it recovers")
		}
		svcCfg.Shared = planner.NewRedisCache(c.redis, cfg.PlanCacheTTL, logger)
	}
	c.Planner = planner.NewService(svcCfg)

	// OTP_MAX_WALK_DISTANCE applies until the user stores their own limit.
	defaults := memory.DefaultPreferences()
	defaults.MaxWalkingDistance = cfg.OTPMaxWalkDistance
	path := cfg.MemoryFile
	if opts.InMemory {
		path = ""
	}
	c.Memory = memory.NewFileStore(path, logger, memory.WithDefaults(defaults))

	c.Assistant = assistant.NewService(assistant.Config{
		Geocoder:        geo,
		Extractor:       extract.New(geo.Index()),
		Recognizer:      newRecognizer(cfg, c.Registry, opts.Metrics, logger),
		Planner:         c.Planner,
		Formatter:       format.New(cfg.OTPNumItineraries),
		Memory:          c.Memory,
		NumItineraries:  cfg.OTPNumItineraries,
		MaxWalkDistance: cfg.OTPMaxWalkDistance,
		Logger:          logger,
	})

	logger.Info().
		Int("stops", geo.Index().Len()).
		Int("aliases", geo.Index().AliasCount()).
		Str("planner", cfg.OTPBaseURL).
		Bool("ner", cfg.NERenabled()).
		Bool("shared_cache", c.redis != nil).
		Msg("components ready")

	return c, nil
}

// NewGeocoder indexes the built-in catalog plus, when path is set, the stops
// of a GTFS feed.
func NewGeocoder(path string, logger zerolog.Logger) (*gazetteer.Geocoder, error) {
	stops := gazetteer.DefaultStops()
	if path != "" {
		extra, err := gazetteer.LoadGTFSFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading GTFS stops: %w", err)
		}
		stops = append(stops, extra...)
		logger.Info().Str("file", path).Int("stops", len(extra)).Msg("loaded GTFS stops")
	}

	idx, err := gazetteer.NewIndex(stops)
	if err != nil {
		return nil, fmt.Errorf("building stop index: %w", err)
	}
	for _, c := range idx.Collisions() {
		logger.Debug().
			Str("alias", c.Alias).
			Str("kept", c.KeptID).
			Str("dropped", c.DroppedID).
			Msg("alias collision")
	}

	return gazetteer.NewGeocoder(idx), nil
}

func newRecognizer(cfg config.Config, reg *resilience.Registry, metrics *middleware.ProviderMetrics, logger zerolog.Logger) ner.Recognizer {
	if !cfg.NERenabled() {
		return ner.Disabled{}
	}

	gcfg := ner.GeminiConfig{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Timeout:  cfg.GeminiTimeout,
		Registry: reg,
		Logger:   logger,
	}
	if metrics != nil {
		gcfg.Metrics = metrics
	}
	return ner.NewCaching(ner.NewGemini(gcfg), recognizerCacheTTL)
}

// Close releases network resources.
func (c *Components) Close() error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Close()
}
