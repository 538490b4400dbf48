package gazetteer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Strategy names the lookup stage that produced a match.
type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategySubstring Strategy = "substring"
	StrategyAnchor    Strategy = "anchor"
	StrategySearch    Strategy = "search"
)

// Match is a resolved place mention.
type Match struct {
	StopID   string
	Name     string
	Lat      float64
	Lon      float64
	Strategy Strategy
}

func newMatch(s Stop, strategy Strategy) Match {
	return Match{StopID: s.ID, Name: s.Name, Lat: s.Lat, Lon: s.Lon, Strategy: strategy}
}

// anchor maps a high-frequency Arabic place name to an English token that
// appears in canonical stop names.
type anchor struct {
	arabic  string
	english string
}

var arabicAnchors = []anchor{
	{"الفلكي", "falaki"},
	{"فلكي", "falaki"},
	{"السيوف", "seyouf"},
	{"سيوف", "seyouf"},
	{"سيدي جابر", "sidi gaber"},
	{"سيدى جابر", "sidi gaber"},
	{"فيكتوريا", "victoria"},
	{"المنتزه", "montazah"},
	{"منتزه", "montazah"},
	{"الرمل", "raml"},
	{"رمل", "raml"},
}

type matchKind int

const (
	kindSubstring matchKind = iota + 1
	kindPrefix
	kindExact
)

// candidate is one alias that overlaps the query.
type candidate struct {
	order    int
	stopIdx  int
	matchLen int
	kind     matchKind
	slack    int
}

// better ranks by overlap length, then match kind, then how little of the
// longer string is left over, then registration order.
func (c candidate) better(o candidate) bool {
	if c.matchLen != o.matchLen {
		return c.matchLen > o.matchLen
	}
	if c.kind != o.kind {
		return c.kind > o.kind
	}
	if c.slack != o.slack {
		return c.slack < o.slack
	}
	return c.order < o.order
}

// compare reports whether alias and query overlap by containment in either
// direction. Both arguments must already be lowercased.
func compare(alias, query string) (matchLen int, kind matchKind, slack int, ok bool) {
	aLen := utf8.RuneCountInString(alias)
	qLen := utf8.RuneCountInString(query)

	switch {
	case alias == query:
		return aLen, kindExact, 0, true
	case strings.Contains(query, alias):
		kind = kindSubstring
		if strings.HasPrefix(query, alias) {
			kind = kindPrefix
		}
		return aLen, kind, qLen - aLen, true
	case strings.Contains(alias, query):
		kind = kindSubstring
		if strings.HasPrefix(alias, query) {
			kind = kindPrefix
		}
		return qLen, kind, aLen - qLen, true
	}
	return 0, 0, 0, false
}

// Geocoder resolves free text to stops using an Index.
type Geocoder struct {
	index *Index
}

// NewGeocoder creates a geocoder over idx.
func NewGeocoder(idx *Index) *Geocoder {
	return &Geocoder{index: idx}
}

// Index returns the underlying alias index.
func (g *Geocoder) Index() *Index {
	return g.index
}

// Geocode resolves text by exact alias, then the best-ranked overlapping
// alias, then the Arabic anchor table.
func (g *Geocoder) Geocode(text string) (Match, bool) {
	query := normalizeKey(text)
	if query == "" {
		return Match{}, false
	}

	if s, ok := g.index.Lookup(query); ok {
		return newMatch(s, StrategyExact), true
	}

	if best, ok := g.bestCandidate(query); ok {
		return newMatch(g.index.stops[best.stopIdx], StrategySubstring), true
	}

	for _, a := range arabicAnchors {
		if !strings.Contains(query, a.arabic) {
			continue
		}
		for _, s := range g.index.stops {
			if strings.Contains(strings.ToLower(s.Name), a.english) {
				return newMatch(s, StrategyAnchor), true
			}
		}
	}

	return Match{}, false
}

func (g *Geocoder) bestCandidate(query string) (candidate, bool) {
	var best candidate
	found := false
	for i, e := range g.index.entries {
		n, kind, slack, ok := compare(e.alias, query)
		if !ok {
			continue
		}
		c := candidate{order: i, stopIdx: e.stopIdx, matchLen: n, kind: kind, slack: slack}
		if !found || c.better(best) {
			best = c
			found = true
		}
	}
	return best, found
}

// Search returns every stop with an alias overlapping query, best match
// first and each stop at most once.
func (g *Geocoder) Search(query string) []Stop {
	q := normalizeKey(query)
	if q == "" {
		return nil
	}

	var ranked []candidate
	for i, s := range g.index.stops {
		var best candidate
		found := false
		for _, a := range s.Aliases {
			n, kind, slack, ok := compare(normalizeKey(a), q)
			if !ok {
				continue
			}
			c := candidate{order: i, stopIdx: i, matchLen: n, kind: kind, slack: slack}
			if !found || c.better(best) {
				best = c
				found = true
			}
		}
		if found {
			ranked = append(ranked, best)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].better(ranked[j])
	})

	out := make([]Stop, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, g.index.stops[c.stopIdx])
	}
	return out
}

// Resolve geocodes text and falls back to the top search hit.
func (g *Geocoder) Resolve(text string) (Match, bool) {
	if m, ok := g.Geocode(text); ok {
		return m, true
	}
	if hits := g.Search(text); len(hits) > 0 {
		return newMatch(hits[0], StrategySearch), true
	}
	return Match{}, false
}

// NearbyStop is a stop with its distance from a reference point.
type NearbyStop struct {
	Stop           Stop
	DistanceMeters float64
}

// Nearest returns up to limit stops closest to (lat, lon).
func (g *Geocoder) Nearest(lat, lon float64, limit int) []NearbyStop {
	if limit <= 0 {
		return nil
	}

	origin := orb.Point{lon, lat}
	nearby := make([]NearbyStop, 0, len(g.index.stops))
	for _, s := range g.index.stops {
		nearby = append(nearby, NearbyStop{
			Stop:           s,
			DistanceMeters: geo.DistanceHaversine(origin, s.Point()),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby
}
