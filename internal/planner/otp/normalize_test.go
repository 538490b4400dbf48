package otp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextransit/alextransit/internal/planner"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeItinerary_WalkThenBus(t *testing.T) {
	raw := RawItinerary{
		Duration: 1800,
		Legs: []RawLeg{
			{Mode: "WALK", Duration: 300, Distance: 400},
			{Mode: "BUS", Duration: 1500, Distance: 5000},
		},
	}

	it := NormalizeItinerary(raw)

	assert.Equal(t, 30, it.DurationMinutes)
	assert.InDelta(t, 5.40, it.DistanceKm, 1e-9)
	assert.Equal(t, 5, it.WalkingMinutes)
	assert.Equal(t, 0, it.Transfers)
	require.Len(t, it.Legs, 2)
	assert.Equal(t, 5, it.Legs[0].DurationMinutes)
	assert.Equal(t, 25, it.Legs[1].DurationMinutes)
}

func TestNormalizeItinerary_Transfers(t *testing.T) {
	tests := []struct {
		name string
		legs []RawLeg
		want int
	}{
		{"walk only", []RawLeg{{Mode: "WALK"}}, 0},
		{"no legs", nil, 0},
		{"single transit", []RawLeg{{Mode: "WALK"}, {Mode: "TRAM"}, {Mode: "WALK"}}, 0},
		{"three transit legs", []RawLeg{{Mode: "BUS"}, {Mode: "TRAM"}, {Mode: "RAIL"}}, 2},
		{
			"three transit legs among walks",
			[]RawLeg{{Mode: "WALK"}, {Mode: "BUS"}, {Mode: "WALK"}, {Mode: "SUBWAY"}, {Mode: "WALK"}, {Mode: "FERRY"}, {Mode: "WALK"}},
			2,
		},
		{"flagged transit leg", []RawLeg{{Mode: "BUS"}, {Mode: "GONDOLA", TransitLeg: true}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeItinerary(RawItinerary{Legs: tt.legs}).Transfers)
		})
	}
}

func TestNormalizeItinerary_RoundsNotTruncates(t *testing.T) {
	it := NormalizeItinerary(RawItinerary{
		Duration: 89,
		Legs:     []RawLeg{{Mode: "WALK", Duration: 150, Distance: 1234.5}},
	})

	assert.Equal(t, 1, it.DurationMinutes)
	assert.Equal(t, 3, it.WalkingMinutes)
	assert.Equal(t, 3, it.Legs[0].DurationMinutes)
	assert.InDelta(t, 1.23, it.DistanceKm, 1e-9)
	assert.InDelta(t, 1.2345, it.Legs[0].DistanceKm, 1e-9)
}

func TestNormalizeItinerary_WalkTimePreferred(t *testing.T) {
	legs := []RawLeg{{Mode: "WALK", Duration: 600}, {Mode: "BUS", Duration: 900}}

	assert.Equal(t, 10, NormalizeItinerary(RawItinerary{Legs: legs}).WalkingMinutes)
	assert.Equal(t, 4, NormalizeItinerary(RawItinerary{Legs: legs, WalkTime: ptr(240.0)}).WalkingMinutes)
	assert.Equal(t, 0, NormalizeItinerary(RawItinerary{Legs: legs, WalkTime: ptr(0.0)}).WalkingMinutes)
}

func TestNormalizeItinerary_RouteLabel(t *testing.T) {
	tests := []struct {
		name string
		leg  RawLeg
		want string
	}{
		{"short name wins", RawLeg{RouteShortName: "735", Route: "Line 735", RouteLongName: "Victoria - Montazah"}, "735"},
		{"route field next", RawLeg{Route: "Line 2", RouteLongName: "Raml - Victoria"}, "Line 2"},
		{"long name last", RawLeg{RouteLongName: "Raml - Victoria"}, "Raml - Victoria"},
		{"absent", RawLeg{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.leg.Mode = "BUS"
			it := NormalizeItinerary(RawItinerary{Legs: []RawLeg{tt.leg}})
			assert.Equal(t, tt.want, it.Legs[0].RouteLabel)
		})
	}
}

func TestNormalizeItinerary_LegDefaults(t *testing.T) {
	it := NormalizeItinerary(RawItinerary{Legs: []RawLeg{{
		LegGeometry: &Geometry{Points: "_p~iF"},
	}}})

	leg := it.Legs[0]
	assert.Equal(t, planner.ModeWalk, leg.Mode)
	assert.Equal(t, "Unknown", leg.FromName)
	assert.Equal(t, "Unknown", leg.ToName)
	assert.Nil(t, leg.Geometry, "truncated geometry is dropped")
	assert.True(t, leg.StartTime.IsZero())
}

func TestNormalizeItinerary_FromJSON(t *testing.T) {
	var raw RawItinerary
	require.NoError(t, json.Unmarshal([]byte(`{
		"duration": 1800,
		"legs": [
			{"mode": "WALK", "duration": 300, "distance": 400, "from": {"name": "Victoria"}, "to": {"name": "Victoria Station"}},
			{"mode": "BUS", "duration": 1500, "distance": 5000, "from": {"name": "Victoria Station"}, "to": {"name": "Montazah"}, "routeShortName": "735"}
		]
	}`), &raw))

	it := NormalizeItinerary(raw)
	assert.Equal(t, 30, it.DurationMinutes)
	assert.InDelta(t, 5.40, it.DistanceKm, 1e-9)
	assert.Equal(t, 5, it.WalkingMinutes)
	assert.Equal(t, 0, it.Transfers)
	assert.Equal(t, "WALK 5 min > BUS 735", it.Summary())
}
