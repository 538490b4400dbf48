package gazetteer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextransit/alextransit/internal/gazetteer"
)

func newDefaultGeocoder(t *testing.T) *gazetteer.Geocoder {
	t.Helper()
	idx, err := gazetteer.NewIndex(gazetteer.DefaultStops())
	require.NoError(t, err)
	return gazetteer.NewGeocoder(idx)
}

func TestGenerateAliases(t *testing.T) {
	tests := []struct {
		name     string
		stop     string
		contains []string
		excludes []string
	}{
		{
			name:     "english words and arabic translations",
			stop:     "Victoria Station",
			contains: []string{"victoria station", "victoria", "station", "محطة", "استيشن", "فيكتوريا", "فيكتوري"},
		},
		{
			name:     "articles are not word aliases",
			stop:     "Al Montazah Train Station",
			contains: []string{"al montazah train station", "montazah", "train", "المنتزه"},
			excludes: []string{"al"},
		},
		{
			name:     "punctuation tokens dropped",
			stop:     "Falaki - Al Seyouf",
			contains: []string{"falaki - al seyouf", "falaki", "seyouf", "الفلكي", "السيوف"},
			excludes: []string{"-", "al"},
		},
		{
			name:     "multi-word district keys match the full name",
			stop:     "Sidi Gaber Station",
			contains: []string{"سيدي جابر", "سيدى جابر"},
		},
		{
			name:     "parentheses trimmed from words",
			stop:     "Street 16 (Montazah)",
			contains: []string{"street", "montazah"},
			excludes: []string{"16", "(montazah)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aliases := gazetteer.GenerateAliases(tt.stop)
			assert.Equal(t, strings.ToLower(tt.stop), aliases[0])
			for _, want := range tt.contains {
				assert.Contains(t, aliases, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, aliases, unwanted)
			}
		})
	}
}

func TestGenerateAliases_Empty(t *testing.T) {
	assert.Empty(t, gazetteer.GenerateAliases("   "))
}

func TestNewIndex_EmptyCatalog(t *testing.T) {
	_, err := gazetteer.NewIndex(nil)
	assert.ErrorIs(t, err, gazetteer.ErrEmptyCatalog)
}

func TestIndex_EveryStopHasLowercasedName(t *testing.T) {
	for _, s := range gazetteer.DefaultStops() {
		assert.Contains(t, s.Aliases, strings.ToLower(s.Name), "stop %s", s.ID)
	}
}

func TestIndex_AliasCollisionLaterStopWins(t *testing.T) {
	north := gazetteer.NewStop("n", "North Gate", 31.1, 29.1)
	south := gazetteer.NewStop("s", "South Gate", 31.2, 29.2)

	idx, err := gazetteer.NewIndex([]gazetteer.Stop{north, south})
	require.NoError(t, err)

	got, ok := idx.Lookup("gate")
	require.True(t, ok)
	assert.Equal(t, "s", got.ID)

	got, ok = idx.Lookup("بوابة")
	require.True(t, ok)
	assert.Equal(t, "s", got.ID)

	// Full names stay reachable.
	got, ok = idx.Lookup("north gate")
	require.True(t, ok)
	assert.Equal(t, "n", got.ID)

	assert.Contains(t, idx.Collisions(), gazetteer.Collision{Alias: "gate", KeptID: "s", DroppedID: "n"})
}

func TestIndex_DuplicateNamesLaterStopWins(t *testing.T) {
	first := gazetteer.NewStop("1", "Hadra", 31.20, 29.93)
	second := gazetteer.NewStop("2", "Hadra", 31.21, 29.94)

	idx, err := gazetteer.NewIndex([]gazetteer.Stop{first, second})
	require.NoError(t, err)

	got, ok := idx.Lookup("HADRA")
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, 2, idx.Len())
}

func TestIndex_FullNameNotShadowedByWordAlias(t *testing.T) {
	plain := gazetteer.NewStop("1", "Khorshid", 31.1, 29.9)
	central := gazetteer.NewStop("2", "Khorshid Central", 31.2, 29.9)

	idx, err := gazetteer.NewIndex([]gazetteer.Stop{plain, central})
	require.NoError(t, err)

	got, ok := idx.Lookup("khorshid")
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)
	assert.Contains(t, idx.Collisions(), gazetteer.Collision{Alias: "khorshid", KeptID: "1", DroppedID: "2"})
}

func TestGeocode_OwnNameResolvesForEveryStop(t *testing.T) {
	g := newDefaultGeocoder(t)

	counts := make(map[string]int)
	for _, s := range g.Index().Stops() {
		counts[s.Name]++
	}

	for _, s := range g.Index().Stops() {
		m, ok := g.Geocode(strings.ToLower(s.Name))
		require.True(t, ok, "stop %s", s.Name)
		assert.Equal(t, s.Name, m.Name)
		assert.Equal(t, gazetteer.StrategyExact, m.Strategy)
		if counts[s.Name] == 1 {
			assert.Equal(t, s.Lat, m.Lat, "stop %s", s.Name)
			assert.Equal(t, s.Lon, m.Lon, "stop %s", s.Name)
		}
	}
}

func TestGeocode_Strategies(t *testing.T) {
	g := newDefaultGeocoder(t)

	tests := []struct {
		input    string
		wantName string
		strategy gazetteer.Strategy
	}{
		{"Victoria", "Victoria Station", gazetteer.StrategyExact},
		{"  VICTORIA STATION ", "Victoria Station", gazetteer.StrategyExact},
		{"فيكتوريا", "Victoria Station", gazetteer.StrategyExact},
		{"سيدي جابر", "Sidi Gaber Station", gazetteer.StrategyExact},
		{"Sidi Gaber", "Sidi Gaber Station", gazetteer.StrategySubstring},
		{"Falaki", "Falaki - Al Seyouf", gazetteer.StrategyExact},
		{"المنشية", "El Mansheya", gazetteer.StrategyExact},
		{"montazah?", "Tamween Montazah", gazetteer.StrategySubstring},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := g.Geocode(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, tt.strategy, m.Strategy)
		})
	}
}

func TestGeocode_NotFound(t *testing.T) {
	g := newDefaultGeocoder(t)

	for _, input := range []string{"", "   ", "xyzzy", "Cairo"} {
		_, ok := g.Geocode(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestGeocode_RankingPrefersLongestOverlap(t *testing.T) {
	stops := []gazetteer.Stop{
		gazetteer.NewStop("1", "Raml Station", 31.200331, 29.899098),
		gazetteer.NewStop("2", "Sidi Gaber Station", 31.218117, 29.941997),
	}
	idx, err := gazetteer.NewIndex(stops)
	require.NoError(t, err)
	g := gazetteer.NewGeocoder(idx)

	// "station" is owned by stop 2 but "raml station" is a longer overlap.
	m, ok := g.Geocode("near raml station please")
	require.True(t, ok)
	assert.Equal(t, "1", m.StopID)
	assert.Equal(t, gazetteer.StrategySubstring, m.Strategy)
}

func TestGeocode_RankingIsDeterministic(t *testing.T) {
	g := newDefaultGeocoder(t)

	first, ok := g.Geocode("take me to victoria")
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, ok := g.Geocode("take me to victoria")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestGeocode_ArabicAnchor(t *testing.T) {
	// No generated alias of this stop overlaps the query; only the anchor
	// table links "الرمل" to the English name.
	stops := []gazetteer.Stop{
		{ID: "1", Name: "Raml Station", Lat: 31.2, Lon: 29.9, Aliases: []string{"raml station"}},
	}
	idx, err := gazetteer.NewIndex(stops)
	require.NoError(t, err)
	g := gazetteer.NewGeocoder(idx)

	m, ok := g.Geocode("محطة الرمل الكبيرة")
	require.True(t, ok)
	assert.Equal(t, "Raml Station", m.Name)
	assert.Equal(t, gazetteer.StrategyAnchor, m.Strategy)
}

func TestSearch(t *testing.T) {
	g := newDefaultGeocoder(t)

	hits := g.Search("victoria")
	require.NotEmpty(t, hits)

	seen := make(map[string]bool)
	for _, s := range hits {
		assert.False(t, seen[s.ID], "duplicate stop %s", s.ID)
		seen[s.ID] = true
		assert.Contains(t, strings.ToLower(s.Name), "victor")
	}
	require.Len(t, hits, 4)
	assert.ElementsMatch(t, []string{"261", "263", "440"}, []string{hits[0].ID, hits[1].ID, hits[2].ID})
	// "victor" is a shorter overlap, so Victor Emmanuel Square ranks last.
	assert.Equal(t, "320", hits[3].ID)

	assert.Empty(t, g.Search(""))
	assert.Empty(t, g.Search("xyzzy"))
}

func TestResolve_FallsBackToSearch(t *testing.T) {
	g := newDefaultGeocoder(t)

	m, ok := g.Resolve("Victoria")
	require.True(t, ok)
	assert.Equal(t, "Victoria Station", m.Name)

	_, ok = g.Resolve("xyzzy")
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	g := newDefaultGeocoder(t)

	// Sidi Gaber Station coordinates.
	nearby := g.Nearest(31.218117, 29.941997, 3)
	require.Len(t, nearby, 3)
	assert.Equal(t, "323", nearby[0].Stop.ID)
	assert.InDelta(t, 0, nearby[0].DistanceMeters, 0.5)
	assert.LessOrEqual(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	assert.LessOrEqual(t, nearby[1].DistanceMeters, nearby[2].DistanceMeters)

	assert.Empty(t, g.Nearest(31.2, 29.9, 0))
}

func TestLoadGTFSStops(t *testing.T) {
	data := "stop_id,stop_name,stop_lat,stop_lon,location_type,parent_station\n" +
		"900,Bibliotheca Alexandrina,31.2089,29.9092,0,\n" +
		"901,Bibliotheca Entrance,31.2090,29.9093,2,900\n" +
		"902,,31.2,29.9,0,\n" +
		"903,Kom El Dikka Station,31.1965,29.9040,1,\n"

	stops, err := gazetteer.LoadGTFSStops(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, stops, 2)

	assert.Equal(t, "900", stops[0].ID)
	assert.Equal(t, "Bibliotheca Alexandrina", stops[0].Name)
	assert.InDelta(t, 31.2089, stops[0].Lat, 1e-9)
	assert.Contains(t, stops[0].Aliases, "bibliotheca")

	assert.Equal(t, "903", stops[1].ID)
	assert.Contains(t, stops[1].Aliases, "محطة")
}
