package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Cache is a shared second-level plan cache, e.g. RedisCache.
type Cache interface {
	Get(ctx context.Context, key string) ([]Itinerary, bool)
	Set(ctx context.Context, key string, itineraries []Itinerary)
}

// Metrics receives provider call and cache outcomes.
type Metrics interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
	RecordCacheHit(provider, operation string)
	RecordCacheMiss(provider, operation string)
}

// ServiceConfig holds configuration for the planning service.
type ServiceConfig struct {
	// Provider is the upstream trip planner.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// Shared is an optional cache shared between processes.
	Shared Cache

	// Metrics is optional.
	Metrics Metrics

	// CacheTTL is how long plans stay fresh (default: 5 minutes).
	CacheTTL time.Duration

	// CacheGridSize quantizes endpoints for cache keys, in degrees
	// (default: 0.001, about 110 m). Requests whose endpoints fall in the same
	// cells share a plan.
	CacheGridSize float64

	// StaleIfErrorTTL is how long an expired plan may still be served when
	// the planner is down (default: 30 minutes).
	StaleIfErrorTTL time.Duration

	// CleanupInterval is how often expired entries are dropped (default: 5 minutes).
	CleanupInterval time.Duration
}

// Service plans trips through a Provider and caches the results.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	shared          Cache
	metrics         Metrics
	cacheTTL        time.Duration
	cacheGridSize   float64
	staleIfErrorTTL time.Duration
	cleanupInterval time.Duration

	mu          sync.RWMutex
	cache       map[string]*cachedPlan
	lastCleanup time.Time
}

type cachedPlan struct {
	itineraries []Itinerary
	fetchedAt   time.Time
	expiresAt   time.Time
}

// NewService creates a planning service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	gridSize := cfg.CacheGridSize
	if gridSize == 0 {
		gridSize = 0.001
	}

	staleTTL := cfg.StaleIfErrorTTL
	if staleTTL == 0 {
		staleTTL = 30 * time.Minute
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval == 0 {
		cleanupInterval = 5 * time.Minute
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		shared:          cfg.Shared,
		metrics:         cfg.Metrics,
		cacheTTL:        cacheTTL,
		cacheGridSize:   gridSize,
		staleIfErrorTTL: staleTTL,
		cleanupInterval: cleanupInterval,
		cache:           make(map[string]*cachedPlan),
	}
}

// PlanTrip returns itineraries for req, from cache when possible. When the
// provider fails transiently, a plan up to StaleIfErrorTTL old is served
// instead.
func (s *Service) PlanTrip(ctx context.Context, req Request) ([]Itinerary, error) {
	if !req.From.Valid() {
		return nil, &Error{
			Provider: s.provider.Name(),
			Code:     "INVALID_ORIGIN",
			Message:  "invalid origin coordinates",
			Err:      ErrInvalidCoordinates,
		}
	}
	if !req.To.Valid() {
		return nil, &Error{
			Provider: s.provider.Name(),
			Code:     "INVALID_DESTINATION",
			Message:  "invalid destination coordinates",
			Err:      ErrInvalidCoordinates,
		}
	}

	req = req.WithDefaults()
	key := s.cacheKey(req)

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		s.recordCache(true)
		s.logger.Debug().Str("cache_key", key).Msg("plan cache hit")
		return cached.itineraries, nil
	}
	s.mu.RUnlock()

	if s.shared != nil {
		if its, ok := s.shared.Get(ctx, key); ok {
			s.recordCache(true)
			s.store(key, its)
			s.logger.Debug().Str("cache_key", key).Msg("shared plan cache hit")
			return its, nil
		}
	}
	s.recordCache(false)

	return s.fetch(ctx, req, key)
}

func (s *Service) fetch(ctx context.Context, req Request, key string) ([]Itinerary, error) {
	s.logger.Debug().
		Stringer("from", req.From).
		Stringer("to", req.To).
		Str("modes", req.Modes).
		Str("provider", s.provider.Name()).
		Msg("requesting plan from provider")

	start := time.Now()
	its, err := s.provider.PlanTrip(ctx, req)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.provider.Name(), "plan", time.Since(start), err)
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Stringer("from", req.From).
			Stringer("to", req.To).
			Msg("plan request failed")

		var perr *Error
		if errors.As(err, &perr) && perr.IsRetryable() {
			if stale, ok := s.stale(key); ok {
				s.logger.Warn().
					Time("fetched_at", stale.fetchedAt).
					Str("cache_key", key).
					Msg("serving stale plan due to provider error")
				return stale.itineraries, nil
			}
		}
		return nil, err
	}

	s.store(key, its)
	if s.shared != nil {
		s.shared.Set(ctx, key, its)
	}

	s.logger.Debug().
		Str("cache_key", key).
		Int("itineraries", len(its)).
		Msg("cached plan")

	return its, nil
}

func (s *Service) store(key string, its []Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.cache[key] = &cachedPlan{
		itineraries: its,
		fetchedAt:   now,
		expiresAt:   now.Add(s.cacheTTL),
	}
	s.cleanupIfNeeded(now)
}

func (s *Service) stale(key string) (*cachedPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.cache[key]
	if !ok || time.Now().After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
		return nil, false
	}
	return cached, true
}

func (s *Service) recordCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.RecordCacheHit(s.provider.Name(), "plan")
		return
	}
	s.metrics.RecordCacheMiss(s.provider.Name(), "plan")
}

// cacheKey quantizes both endpoints to grid cells and appends every option
// that changes the answer.
func (s *Service) cacheKey(req Request) string {
	cell := func(v float64) int64 {
		return int64(math.Floor(v / s.cacheGridSize))
	}
	return fmt.Sprintf("plan:%d,%d:%d,%d:%s:%d:%d:%t:%t:%s:%s",
		cell(req.From.Lat), cell(req.From.Lon),
		cell(req.To.Lat), cell(req.To.Lon),
		req.Modes, req.MaxWalkDistance, req.NumItineraries,
		req.ArriveBy, req.Wheelchair, req.Date, req.Time,
	)
}

// cleanupIfNeeded drops entries past the stale window. Callers hold s.mu.
func (s *Service) cleanupIfNeeded(now time.Time) {
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}
	s.lastCleanup = now

	expired := 0
	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
			expired++
		}
	}
	if expired > 0 {
		s.logger.Debug().Int("expired_entries", expired).Msg("cleaned up plan cache")
	}
}

// CheckStatus reports whether the provider is online.
func (s *Service) CheckStatus(ctx context.Context) bool {
	return s.provider.CheckStatus(ctx)
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// InvalidateCache clears the local cache.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedPlan)
}

// CacheStats describes the local cache.
type CacheStats struct {
	TotalEntries int
	FreshEntries int
	StaleEntries int
	Provider     string
}

// CacheStats returns local cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	stats := CacheStats{TotalEntries: len(s.cache), Provider: s.provider.Name()}
	for _, c := range s.cache {
		switch {
		case now.Before(c.expiresAt):
			stats.FreshEntries++
		case now.Before(c.fetchedAt.Add(s.staleIfErrorTTL)):
			stats.StaleEntries++
		}
	}
	return stats
}
