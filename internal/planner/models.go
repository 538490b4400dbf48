// Package planner defines normalized trip itineraries and the service that
// fetches them from a trip-planning provider with caching.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Sentinel errors for planning. Every one of them is recoverable: callers
// fall back to generic travel options.
var (
	// ErrNetwork means the planner could not be reached.
	ErrNetwork = errors.New("planner unreachable")
	// ErrServiceUnavailable means the planner answered with a non-200 status
	// or an explicit error payload.
	ErrServiceUnavailable = errors.New("planner service unavailable")
	// ErrNoItineraries means a well-formed response carried no plan.
	ErrNoItineraries = errors.New("no itineraries found")
	// ErrMalformedResponse means the payload did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed planner response")
	// ErrInvalidCoordinates means a request endpoint is out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Provider plans trips against an upstream service.
type Provider interface {
	// PlanTrip returns normalized itineraries, or an *Error wrapping one of
	// the sentinels above.
	PlanTrip(ctx context.Context, req Request) ([]Itinerary, error)
	// CheckStatus reports whether the upstream is online. It never fails.
	CheckStatus(ctx context.Context) bool
	// Name identifies the provider for logs and metrics.
	Name() string
}

// Mode is a leg mode as reported by the planner.
type Mode string

const (
	ModeWalk   Mode = "WALK"
	ModeBus    Mode = "BUS"
	ModeTram   Mode = "TRAM"
	ModeRail   Mode = "RAIL"
	ModeSubway Mode = "SUBWAY"
	ModeFerry  Mode = "FERRY"
)

// IsTransit reports whether m is a public transport mode.
func (m Mode) IsTransit() bool {
	switch m {
	case ModeBus, ModeTram, ModeRail, ModeSubway, ModeFerry:
		return true
	}
	return false
}

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point returns c as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Valid reports whether c is within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String renders c the way the planner expects place parameters.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// DefaultModes is the transit plus walking mode mask.
const DefaultModes = "TRANSIT,WALK"

// Request asks for itineraries between two points.
type Request struct {
	From Coordinate
	To   Coordinate

	// Modes is the planner mode mask (default: TRANSIT,WALK).
	Modes string
	// MaxWalkDistance is in meters (default: 2000).
	MaxWalkDistance int
	ArriveBy        bool
	// NumItineraries is how many options to ask for (default: 3).
	NumItineraries int
	Wheelchair     bool
	// Date (YYYY-MM-DD or MM-DD-YYYY) and Time (e.g. 8:30am) are optional;
	// the planner uses its own clock when empty.
	Date string
	Time string
}

// WithDefaults fills zero-valued options.
func (r Request) WithDefaults() Request {
	if r.Modes == "" {
		r.Modes = DefaultModes
	}
	if r.MaxWalkDistance <= 0 {
		r.MaxWalkDistance = 2000
	}
	if r.NumItineraries <= 0 {
		r.NumItineraries = 3
	}
	return r
}

// Itinerary is one candidate trip.
type Itinerary struct {
	DurationMinutes int       `json:"total_duration_minutes"`
	DistanceKm      float64   `json:"total_distance_km"`
	WalkingMinutes  int       `json:"total_walking_minutes"`
	Transfers       int       `json:"transfer_count"`
	StartTime       time.Time `json:"start_time,omitzero"`
	EndTime         time.Time `json:"end_time,omitzero"`
	Legs            []Leg     `json:"legs"`
}

// TransitModes returns the distinct transit modes used, in travel order.
func (it Itinerary) TransitModes() []Mode {
	var modes []Mode
	seen := make(map[Mode]bool)
	for _, leg := range it.Legs {
		if !leg.IsTransit() || seen[leg.Mode] {
			continue
		}
		seen[leg.Mode] = true
		modes = append(modes, leg.Mode)
	}
	return modes
}

// Summary is a compact one-line description such as
// "WALK 5 min > BUS 12 > WALK 3 min".
func (it Itinerary) Summary() string {
	parts := make([]string, 0, len(it.Legs))
	for _, leg := range it.Legs {
		if leg.IsTransit() && leg.RouteLabel != "" {
			parts = append(parts, fmt.Sprintf("%s %s", leg.Mode, leg.RouteLabel))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d min", leg.Mode, leg.DurationMinutes))
	}
	return strings.Join(parts, " > ")
}

// Leg is one single-mode segment of an itinerary.
type Leg struct {
	Mode            Mode    `json:"mode"`
	FromName        string  `json:"from_name"`
	ToName          string  `json:"to_name"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	// Transit is set when the planner flagged the leg as a transit leg even if
	// its mode is not one of the known transit modes.
	Transit        bool           `json:"transit_leg,omitempty"`
	RouteLabel     string         `json:"route_label,omitempty"`
	RouteShortName string         `json:"route_short_name,omitempty"`
	RouteLongName  string         `json:"route_long_name,omitempty"`
	Headsign       string         `json:"headsign,omitempty"`
	AgencyName     string         `json:"agency_name,omitempty"`
	RouteType      *int           `json:"route_type,omitempty"`
	StartTime      time.Time      `json:"start_time,omitzero"`
	EndTime        time.Time      `json:"end_time,omitzero"`
	Geometry       orb.LineString `json:"-"`
}

// IsTransit reports whether the leg rides public transport.
func (l Leg) IsTransit() bool {
	return l.Transit || l.Mode.IsTransit()
}

// Error carries planner failure details.
type Error struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failure is transient.
func (e *Error) IsRetryable() bool {
	return errors.Is(e.Err, ErrNetwork) || errors.Is(e.Err, ErrServiceUnavailable)
}
