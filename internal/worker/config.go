// Package worker keeps the trip plan cache warm for busy corridors.
package worker

import (
	"sort"
	"time"
)

// Corridor is an origin and destination pair planned ahead of demand.
// From and To are place names as a user would type them.
type Corridor struct {
	Name string
	From string
	To   string

	// Priority orders warming (lower = first).
	Priority int
}

// WarmConfig holds configuration for the cache warming job.
type WarmConfig struct {
	// Corridors to plan. If empty, DefaultCorridors is used.
	Corridors []Corridor

	// Concurrency is the number of concurrent plan requests.
	// Default: 3
	Concurrency int

	// Timeout bounds each plan request.
	// Default: 30 seconds
	Timeout time.Duration

	// Reverse also warms each corridor in the opposite direction.
	Reverse bool
}

// DefaultWarmConfig returns the default warming configuration.
func DefaultWarmConfig() WarmConfig {
	return WarmConfig{
		Corridors:   DefaultCorridors(),
		Concurrency: 3,
		Timeout:     30 * time.Second,
		Reverse:     true,
	}
}

// DefaultCorridors returns the busiest Alexandria commuter corridors along
// the tram line and the corniche.
func DefaultCorridors() []Corridor {
	return []Corridor{
		{Name: "raml-victoria", From: "Raml Station", To: "Victoria Station", Priority: 1},
		{Name: "sidigaber-raml", From: "Sidi Gaber Station", To: "Raml Station", Priority: 1},
		{Name: "sidigaber-montazah", From: "Sidi Gaber Station", To: "Tamween Montazah", Priority: 1},
		{Name: "moharambek-sidigaber", From: "Moharam Bek", To: "Sidi Gaber Station", Priority: 2},
		{Name: "stanley-sanstefano", From: "Stanley Bridge", To: "San Stefano", Priority: 2},
		{Name: "falaki-victoria", From: "Falaki - Al Seyouf", To: "Victoria Station", Priority: 2},
		{Name: "kafrashry-raml", From: "Kafr Ashry", To: "Raml Station", Priority: 3},
		{Name: "miami-sidigaber", From: "Miami - Courniche", To: "Sidi Gaber Station", Priority: 3},
	}
}

// Plan returns the corridors to warm, by priority. With Reverse set each
// corridor is followed by its return trip.
func (c WarmConfig) Plan() []Corridor {
	ordered := make([]Corridor, len(c.Corridors))
	copy(ordered, c.Corridors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	if !c.Reverse {
		return ordered
	}

	out := make([]Corridor, 0, 2*len(ordered))
	for _, cr := range ordered {
		out = append(out, cr, Corridor{
			Name:     cr.Name + "-return",
			From:     cr.To,
			To:       cr.From,
			Priority: cr.Priority,
		})
	}
	return out
}
