// Package resilience wraps outbound HTTP calls to upstream services (the
// trip planner, the language model) with a circuit breaker, bounded retries
// and per-call timeouts.
package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig configures a circuit breaker.
type BreakerConfig struct {
	// Name identifies the breaker in logs and health reports.
	Name string

	// HalfOpenRequests is how many probes are let through while half-open.
	// Default: 1
	HalfOpenRequests uint32

	// ResetInterval clears the closed-state counters periodically. Zero keeps
	// them for the lifetime of the breaker.
	ResetInterval time.Duration

	// OpenTimeout is how long the breaker stays open before probing again.
	// Default: 30 seconds
	OpenTimeout time.Duration

	// ShouldTrip decides when to open. Defaults to TripOnFailureRatio.
	ShouldTrip func(counts gobreaker.Counts) bool

	// OnStateChange is called on every transition.
	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultBreakerConfig returns the breaker settings used for upstream calls.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		HalfOpenRequests: 1,
		OpenTimeout:      30 * time.Second,
		ShouldTrip:       TripOnFailureRatio,
	}
}

// TripOnFailureRatio opens the breaker once five or more requests have been
// seen and at least half of them failed.
func TripOnFailureRatio(counts gobreaker.Counts) bool {
	if counts.Requests < 5 {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
}

// NewBreaker builds a gobreaker circuit breaker from cfg.
func NewBreaker[T any](cfg BreakerConfig) *gobreaker.CircuitBreaker[T] {
	halfOpen := cfg.HalfOpenRequests
	if halfOpen == 0 {
		halfOpen = 1
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout == 0 {
		openTimeout = 30 * time.Second
	}
	trip := cfg.ShouldTrip
	if trip == nil {
		trip = TripOnFailureRatio
	}

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:          cfg.Name,
		MaxRequests:   halfOpen,
		Interval:      cfg.ResetInterval,
		Timeout:       openTimeout,
		ReadyToTrip:   trip,
		OnStateChange: cfg.OnStateChange,
	})
}
