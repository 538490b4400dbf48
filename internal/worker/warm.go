package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/planner"
)

// Geocoder resolves a place name to a stop.
type Geocoder interface {
	Resolve(text string) (gazetteer.Match, bool)
}

// Planner plans trips. planner.Service fills its caches as a side effect.
type Planner interface {
	PlanTrip(ctx context.Context, req planner.Request) ([]planner.Itinerary, error)
}

// RequestBuilder turns two coordinates into the request a user query would
// send. assistant.Service implements it.
type RequestBuilder interface {
	PlanRequest(ctx context.Context, from, to planner.Coordinate) planner.Request
}

// StaticRequest uses the same options for every corridor.
type StaticRequest planner.Request

// PlanRequest implements RequestBuilder.
func (r StaticRequest) PlanRequest(_ context.Context, from, to planner.Coordinate) planner.Request {
	req := planner.Request(r)
	req.From = from
	req.To = to
	return req
}

// WarmJob pre-plans corridors so user queries hit a warm cache.
type WarmJob struct {
	config   WarmConfig
	geocoder Geocoder
	planner  Planner
	requests RequestBuilder
	logger   zerolog.Logger

	metrics *WarmMetrics
}

// WarmMetrics tracks warming statistics across runs.
type WarmMetrics struct {
	mu sync.RWMutex

	TotalRuns  int64
	Planned    int64
	Failed     int64
	Unresolved int64

	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// WarmJobConfig holds configuration for creating a WarmJob.
type WarmJobConfig struct {
	Config   WarmConfig
	Geocoder Geocoder
	Planner  Planner

	// Requests builds each plan request. Warmed entries only serve user
	// queries when this is the builder those queries use.
	// Default: StaticRequest with planner.DefaultModes.
	Requests RequestBuilder

	Logger zerolog.Logger
}

// NewWarmJob creates a cache warming job.
func NewWarmJob(cfg WarmJobConfig) *WarmJob {
	config := cfg.Config
	if len(config.Corridors) == 0 {
		config.Corridors = DefaultCorridors()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 3
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	requests := cfg.Requests
	if requests == nil {
		requests = StaticRequest{Modes: planner.DefaultModes}
	}

	return &WarmJob{
		config:   config,
		geocoder: cfg.Geocoder,
		planner:  cfg.Planner,
		requests: requests,
		logger:   cfg.Logger,
		metrics:  &WarmMetrics{},
	}
}

// WarmResult summarizes one run.
type WarmResult struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Total      int
	Planned    int
	Failed     int
	Unresolved int
	Errors     []WarmError
}

// WarmError describes a corridor that could not be warmed.
type WarmError struct {
	Corridor string
	Error    string
}

type corridorResult struct {
	corridor   Corridor
	unresolved bool
	err        error
}

// Run plans every corridor once, using a fixed pool of workers.
func (j *WarmJob) Run(ctx context.Context) *WarmResult {
	corridors := j.config.Plan()
	result := &WarmResult{StartTime: time.Now(), Total: len(corridors)}

	j.logger.Info().
		Int("corridors", result.Total).
		Int("concurrency", j.config.Concurrency).
		Msg("starting cache warm job")

	work := make(chan Corridor, len(corridors))
	results := make(chan corridorResult, len(corridors))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range work {
				if ctx.Err() != nil {
					results <- corridorResult{corridor: c, err: ctx.Err()}
					continue
				}
				results <- j.warm(ctx, c)
			}
		}()
	}

	for _, c := range corridors {
		work <- c
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		switch {
		case r.unresolved:
			result.Unresolved++
			result.Errors = append(result.Errors, WarmError{Corridor: r.corridor.Name, Error: "place not found"})
		case r.err != nil:
			result.Failed++
			result.Errors = append(result.Errors, WarmError{Corridor: r.corridor.Name, Error: r.err.Error()})
		default:
			result.Planned++
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("planned", result.Planned).
		Int("failed", result.Failed).
		Int("unresolved", result.Unresolved).
		Msg("cache warm job completed")

	return result
}

func (j *WarmJob) warm(ctx context.Context, c Corridor) corridorResult {
	from, ok := j.geocoder.Resolve(c.From)
	if !ok {
		return corridorResult{corridor: c, unresolved: true}
	}
	to, ok := j.geocoder.Resolve(c.To)
	if !ok {
		return corridorResult{corridor: c, unresolved: true}
	}

	ctx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	req := j.requests.PlanRequest(ctx,
		planner.Coordinate{Lat: from.Lat, Lon: from.Lon},
		planner.Coordinate{Lat: to.Lat, Lon: to.Lon})

	_, err := j.planner.PlanTrip(ctx, req)
	if err != nil {
		j.logger.Debug().Err(err).Str("corridor", c.Name).Msg("corridor warm failed")
	}
	return corridorResult{corridor: c, err: err}
}

func (j *WarmJob) updateMetrics(result *WarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.Planned += int64(result.Planned)
	j.metrics.Failed += int64(result.Failed)
	j.metrics.Unresolved += int64(result.Unresolved)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *WarmJob) GetMetrics() WarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return WarmMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		Planned:         j.metrics.Planned,
		Failed:          j.metrics.Failed,
		Unresolved:      j.metrics.Unresolved,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
		TotalDuration:   j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns the current metrics as a JSON-friendly map.
func (j *WarmJob) MetricsSnapshot() map[string]any {
	m := j.GetMetrics()
	return map[string]any{
		"total_runs":        m.TotalRuns,
		"planned":           m.Planned,
		"failed":            m.Failed,
		"unresolved":        m.Unresolved,
		"last_run_at":       m.LastRunAt,
		"last_run_duration": m.LastRunDuration.String(),
		"total_duration":    m.TotalDuration.String(),
	}
}

// Start runs the job immediately and then every interval until ctx ends.
func (j *WarmJob) Start(ctx context.Context, interval time.Duration) {
	j.Run(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("cache warm loop stopped")
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}
