package resilience_test

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextransit/alextransit/internal/provider/resilience"
)

func TestRegistry_RegisteredByClientConfig(t *testing.T) {
	registry := resilience.NewRegistry()

	for _, name := range []string{"otp", "gemini"} {
		cfg := resilience.DefaultClientConfig(name)
		cfg.Registry = registry
		resilience.NewClient(cfg)
	}

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "gemini", all[0].Name)
	assert.Equal(t, "otp", all[1].Name)
	for _, h := range all {
		assert.Equal(t, gobreaker.StateClosed, h.State)
		assert.Equal(t, "healthy", h.Status())
	}
}

func TestRegistry_RecordOutcomes(t *testing.T) {
	registry := resilience.NewRegistry()
	registry.Register("otp", resilience.NewClient(resilience.DefaultClientConfig("otp")))

	registry.RecordSuccess("otp")
	registry.RecordFailure("otp", errors.New("connection refused"))

	h, ok := registry.Health("otp")
	require.True(t, ok)
	assert.NotNil(t, h.LastSuccessAt)
	assert.NotNil(t, h.LastFailureAt)
	assert.Equal(t, "connection refused", h.LastError)
}

func TestRegistry_UnknownName(t *testing.T) {
	registry := resilience.NewRegistry()

	registry.RecordSuccess("missing")
	registry.RecordFailure("missing", errors.New("boom"))

	_, ok := registry.Health("missing")
	assert.False(t, ok)
	assert.Empty(t, registry.All())
}

func TestHealth_Status(t *testing.T) {
	assert.Equal(t, "healthy", resilience.Health{State: gobreaker.StateClosed}.Status())
	assert.Equal(t, "degraded", resilience.Health{State: gobreaker.StateHalfOpen}.Status())
	assert.Equal(t, "unhealthy", resilience.Health{State: gobreaker.StateOpen}.Status())
}
