// Package gazetteer holds the catalog of named Alexandria transit stops and
// resolves free-text place mentions to coordinates.
package gazetteer

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrEmptyCatalog is returned when an index is requested for no stops.
var ErrEmptyCatalog = errors.New("gazetteer: no stops to index")

// Stop is a named transit point of interest.
// Stops are immutable after construction.
type Stop struct {
	ID      string
	Name    string
	Lat     float64
	Lon     float64
	Aliases []string
}

// NewStop builds a Stop and generates its alias set from the name.
func NewStop(id, name string, lat, lon float64) Stop {
	return Stop{
		ID:      id,
		Name:    name,
		Lat:     lat,
		Lon:     lon,
		Aliases: GenerateAliases(name),
	}
}

// Point returns the stop location in orb's [lon, lat] order.
func (s Stop) Point() orb.Point {
	return orb.Point{s.Lon, s.Lat}
}

// DefaultStops returns the built-in Alexandria catalog with aliases generated.
// Each call returns a fresh slice.
func DefaultStops() []Stop {
	stops := make([]Stop, 0, len(alexandriaStops))
	for _, s := range alexandriaStops {
		stops = append(stops, NewStop(s.ID, s.Name, s.Lat, s.Lon))
	}
	return stops
}
