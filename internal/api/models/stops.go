package models

import "github.com/alextransit/alextransit/internal/gazetteer"

// Stop is a gazetteer stop on the wire.
type Stop struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       Point    `json:"location"`
	Aliases        []string `json:"aliases,omitempty"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`

	// Strategy is set on resolve results.
	Strategy string `json:"strategy,omitempty"`
}

// NewStop converts a gazetteer stop.
func NewStop(s gazetteer.Stop) Stop {
	return Stop{
		ID:       s.ID,
		Name:     s.Name,
		Location: Point{Lat: s.Lat, Lon: s.Lon},
		Aliases:  s.Aliases,
	}
}

// NewNearbyStop converts a stop with its distance.
func NewNearbyStop(n gazetteer.NearbyStop) Stop {
	s := NewStop(n.Stop)
	d := n.DistanceMeters
	s.DistanceMeters = &d
	return s
}

// NewResolvedStop converts a geocoder match.
func NewResolvedStop(m gazetteer.Match) Stop {
	return Stop{
		ID:       m.StopID,
		Name:     m.Name,
		Location: Point{Lat: m.Lat, Lon: m.Lon},
		Strategy: string(m.Strategy),
	}
}
