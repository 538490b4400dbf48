package resilience

import (
	"sort"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Health is a point-in-time view of one upstream.
type Health struct {
	Name          string
	State         gobreaker.State
	Counts        gobreaker.Counts
	LastSuccessAt *time.Time
	LastFailureAt *time.Time
	LastError     string
}

// Status maps the breaker state to "healthy", "degraded" or "unhealthy".
func (h Health) Status() string {
	switch h.State {
	case gobreaker.StateClosed:
		return "healthy"
	case gobreaker.StateHalfOpen:
		return "degraded"
	default:
		return "unhealthy"
	}
}

// Registry tracks the upstream clients of one process. Construct one in main
// and hand it to every client that should appear in status reports.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*tracked
}

type tracked struct {
	client        *Client
	lastSuccessAt *time.Time
	lastFailureAt *time.Time
	lastError     string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*tracked)}
}

// Register adds or replaces the client tracked under name.
func (r *Registry) Register(name string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = &tracked{client: client}
}

// RecordSuccess stamps the last successful call for name.
func (r *Registry) RecordSuccess(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.clients[name]; ok {
		now := time.Now()
		t.lastSuccessAt = &now
	}
}

// RecordFailure stamps the last failed call for name.
func (r *Registry) RecordFailure(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.clients[name]; ok {
		now := time.Now()
		t.lastFailureAt = &now
		if err != nil {
			t.lastError = err.Error()
		}
	}
}

// Health returns the health of name, or false when it is not registered.
func (r *Registry) Health(name string) (Health, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.clients[name]
	if !ok {
		return Health{}, false
	}
	return t.health(name), true
}

// All returns the health of every registered upstream, sorted by name.
func (r *Registry) All() []Health {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Health, 0, len(r.clients))
	for name, t := range r.clients {
		out = append(out, t.health(name))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (t *tracked) health(name string) Health {
	return Health{
		Name:          name,
		State:         t.client.State(),
		Counts:        t.client.Counts(),
		LastSuccessAt: t.lastSuccessAt,
		LastFailureAt: t.lastFailureAt,
		LastError:     t.lastError,
	}
}
