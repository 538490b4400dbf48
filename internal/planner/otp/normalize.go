package otp

import (
	"math"
	"time"

	"github.com/alextransit/alextransit/internal/planner"
	"github.com/alextransit/alextransit/pkg/polyline"
)

const unknownPlace = "Unknown"

// NormalizeItinerary converts a raw planner itinerary to whole minutes,
// kilometers and a transfer count. Seconds are rounded to the nearest minute.
func NormalizeItinerary(raw RawItinerary) planner.Itinerary {
	it := planner.Itinerary{
		DurationMinutes: minutes(raw.Duration),
		StartTime:       epochMillis(raw.StartTime),
		EndTime:         epochMillis(raw.EndTime),
		Legs:            make([]planner.Leg, 0, len(raw.Legs)),
	}

	var meters, walkSeconds float64
	transitLegs := 0
	for _, rl := range raw.Legs {
		leg := normalizeLeg(rl)
		it.Legs = append(it.Legs, leg)

		meters += rl.Distance
		if leg.Mode == planner.ModeWalk {
			walkSeconds += rl.Duration
		}
		if leg.IsTransit() {
			transitLegs++
		}
	}

	if raw.WalkTime != nil {
		walkSeconds = *raw.WalkTime
	}

	it.DistanceKm = math.Round(meters/10) / 100
	it.WalkingMinutes = minutes(walkSeconds)
	it.Transfers = max(0, transitLegs-1)
	return it
}

func normalizeLeg(rl RawLeg) planner.Leg {
	mode := planner.Mode(rl.Mode)
	if mode == "" {
		mode = planner.ModeWalk
	}

	leg := planner.Leg{
		Mode:            mode,
		FromName:        placeName(rl.From),
		ToName:          placeName(rl.To),
		DurationMinutes: minutes(rl.Duration),
		DistanceKm:      rl.Distance / 1000,
		Transit:         rl.TransitLeg,
		RouteLabel:      routeLabel(rl),
		RouteShortName:  rl.RouteShortName,
		RouteLongName:   rl.RouteLongName,
		Headsign:        rl.Headsign,
		AgencyName:      rl.AgencyName,
		RouteType:       rl.RouteType,
		StartTime:       epochMillis(rl.StartTime),
		EndTime:         epochMillis(rl.EndTime),
	}

	if rl.LegGeometry != nil {
		if line, err := polyline.Decode(rl.LegGeometry.Points); err == nil {
			leg.Geometry = line
		}
	}
	return leg
}

// routeLabel prefers the short designation, then the generic route field,
// then the long name.
func routeLabel(rl RawLeg) string {
	switch {
	case rl.RouteShortName != "":
		return rl.RouteShortName
	case rl.Route != "":
		return rl.Route
	default:
		return rl.RouteLongName
	}
}

func placeName(p *Place) string {
	if p == nil || p.Name == "" {
		return unknownPlace
	}
	return p.Name
}

func minutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}

func epochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
