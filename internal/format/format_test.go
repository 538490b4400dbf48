package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alextransit/alextransit/internal/language"
	"github.com/alextransit/alextransit/internal/planner"
)

var (
	victoria = Place{Name: "Victoria Station", Lat: 31.24727, Lon: 29.97122}
	montazah = Place{Name: "Tamween Montazah", Lat: 31.28390, Lon: 30.01131}
)

func walkBus() planner.Itinerary {
	return planner.Itinerary{
		DurationMinutes: 30,
		DistanceKm:      5.4,
		WalkingMinutes:  5,
		Legs: []planner.Leg{
			{Mode: planner.ModeWalk, FromName: "Origin", ToName: "Victoria Station", DurationMinutes: 5, DistanceKm: 0.4},
			{Mode: planner.ModeBus, FromName: "Victoria Station", ToName: "Tamween Montazah", DurationMinutes: 25, DistanceKm: 5, RouteLabel: "735", Headsign: "Montazah"},
		},
	}
}

func TestItineraries_English(t *testing.T) {
	out := New(0).Itineraries([]planner.Itinerary{walkBus()}, victoria, montazah, language.English)

	assert.Contains(t, out, "Trip Plan from Victoria Station to Tamween Montazah")
	assert.Contains(t, out, "**Total Time:** 30 minutes")
	assert.Contains(t, out, "**Total Distance:** 5.4 km")
	assert.Contains(t, out, "**Walking Time:** 5 minutes")
	assert.Contains(t, out, "1. 🚶 Walk from **Origin** to **Victoria Station** (5 min - 0.4 km)")
	assert.Contains(t, out, "2. 🚌 Take Bus 735 (towards Montazah) from **Victoria Station** to **Tamween Montazah** (~25 min)")
	assert.Contains(t, out, "**Transit Modes Used:** Bus")
	assert.NotContains(t, out, "Option 1", "a single itinerary is not numbered")
}

func TestItineraries_Arabic(t *testing.T) {
	out := New(0).Itineraries([]planner.Itinerary{walkBus()}, victoria, montazah, language.Arabic)

	assert.Contains(t, out, "خطة الرحلة من Victoria Station إلى Tamween Montazah")
	assert.Contains(t, out, "**الوقت الكلي:** 30 دقيقة")
	assert.Contains(t, out, "**المسافة الكلية:** 5.4 كم")
	assert.Contains(t, out, "امشي من **Origin**")
	assert.Contains(t, out, "اركب أتوبيس 735 (اتجاه Montazah)")
	assert.Contains(t, out, "**وسائل النقل المستخدمة:** أتوبيس")
}

func TestItineraries_MultipleOptions(t *testing.T) {
	second := planner.Itinerary{
		DurationMinutes: 46,
		DistanceKm:      10.37,
		WalkingMinutes:  7,
		Transfers:       2,
		Legs: []planner.Leg{
			{Mode: planner.ModeTram, FromName: "Raml", ToName: "Sidi Gaber", DurationMinutes: 15},
			{Mode: planner.ModeBus, FromName: "Sidi Gaber", ToName: "Sporting", DurationMinutes: 14},
			{Mode: planner.ModeBus, FromName: "Sporting", ToName: "Montazah", DurationMinutes: 10},
		},
	}
	its := []planner.Itinerary{walkBus(), second, walkBus(), walkBus()}

	out := New(3).Itineraries(its, victoria, montazah, language.English)
	assert.Contains(t, out, "**Option 1** (30 min, no transfers)")
	assert.Contains(t, out, "**Option 2** (46 min, 2 transfers)")
	assert.Contains(t, out, "**Option 3**")
	assert.NotContains(t, out, "**Option 4**")
	assert.Contains(t, out, "**Transit Modes Used:** Tram, Bus")

	ar := New(3).Itineraries(its[:2], victoria, montazah, language.Arabic)
	assert.Contains(t, ar, "**الخيار 1** (30 دقيقة، بدون تبديل)")
	assert.Contains(t, ar, "**الخيار 2** (46 دقيقة، 2 تبديلات)")
	assert.Contains(t, ar, "ترام، أتوبيس")
}

func TestItineraries_EmptyFallsBackToBasicOptions(t *testing.T) {
	f := New(0)
	assert.Equal(t,
		f.BasicOptions(victoria, montazah, language.English),
		f.Itineraries(nil, victoria, montazah, language.English))
}

func TestBasicOptions(t *testing.T) {
	f := New(0)

	en := f.BasicOptions(victoria, montazah, language.English)
	for _, want := range []string{"Bus", "Tram", "Microbus", "Taxi", "(31.2473, 29.9712)", "(31.2839, 30.0113)"} {
		assert.Contains(t, en, want)
	}

	ar := f.BasicOptions(victoria, montazah, language.Arabic)
	for _, want := range []string{"أتوبيس", "ترام", "ميكروباص", "تاكسي"} {
		assert.Contains(t, ar, want)
	}
}

func TestModeName(t *testing.T) {
	tests := []struct {
		mode planner.Mode
		ar   string
		en   string
	}{
		{planner.ModeBus, "أتوبيس", "Bus"},
		{planner.ModeTram, "ترام", "Tram"},
		{planner.ModeRail, "قطار", "Train"},
		{planner.ModeSubway, "مترو", "Metro"},
		{planner.ModeFerry, "عبّارة", "Ferry"},
		{planner.Mode("CABLE_CAR"), "CABLE_CAR", "CABLE_CAR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.ar, ModeName(tt.mode, language.Arabic))
			assert.Equal(t, tt.en, ModeName(tt.mode, language.English))
		})
	}
}

func TestLegModeName_Microbus(t *testing.T) {
	tests := []struct {
		name string
		leg  planner.Leg
		want string
	}{
		{"route label", planner.Leg{Mode: planner.ModeBus, RouteLabel: "Microbus 12"}, "ميكروباص"},
		{"arabic headsign", planner.Leg{Mode: planner.ModeBus, Headsign: "ميكروباص العصافرة"}, "ميكروباص"},
		{"tonaya", planner.Leg{Mode: planner.ModeBus, RouteLongName: "توناية المندرة"}, "ميكروباص"},
		{"plain bus", planner.Leg{Mode: planner.ModeBus, RouteLabel: "735"}, "أتوبيس"},
		{"walk never microbus", planner.Leg{Mode: planner.ModeWalk, Headsign: "microbus stand"}, "مشي"},
		{"tram keeps its label", planner.Leg{Mode: planner.ModeTram, Headsign: "Microbus terminal"}, "ترام"},
		{"rail keeps its label", planner.Leg{Mode: planner.ModeRail, RouteLongName: "micro bus interchange"}, "قطار"},
		{"flagged informal transit", planner.Leg{Mode: "SHARE_TAXI", Transit: true, RouteLabel: "Microbus 4"}, "ميكروباص"},
		{"unflagged unknown mode", planner.Leg{Mode: "SHARE_TAXI", RouteLabel: "Microbus 4"}, "SHARE_TAXI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LegModeName(tt.leg, language.Arabic))
		})
	}

	assert.Equal(t, "Microbus", LegModeName(planner.Leg{Mode: planner.ModeBus, RouteLabel: "MICROBUS"}, language.English))
}

func TestLegLine_MicrobusInItinerary(t *testing.T) {
	leg := planner.Leg{Mode: planner.ModeBus, FromName: "Mahatet Masr", ToName: "Asafra", DurationMinutes: 20, RouteLabel: "Microbus 12"}
	assert.True(t, strings.HasPrefix(LegLine(leg, language.Arabic), "🚌 اركب ميكروباص Microbus 12"))
}

func TestMessages(t *testing.T) {
	assert.Contains(t, ExtractionPrompt(language.English), "starting point and destination")
	assert.Contains(t, ExtractionPrompt(language.Arabic), "نقطة البداية والوجهة")
	assert.Contains(t, LocationNotFound("Cairo", language.English), "**Cairo**")
	assert.Contains(t, LocationNotFound("القاهرة", language.Arabic), "**القاهرة**")
	assert.NotEqual(t, InternalError(language.English), InternalError(language.Arabic))
}
