package gazetteer

import "strings"

// aliasTier orders competing registrations of the same alias.
type aliasTier int

const (
	tierDerived aliasTier = iota
	tierName
)

type indexEntry struct {
	alias   string
	stopIdx int
	tier    aliasTier
}

// Collision records an alias claimed by more than one stop.
type Collision struct {
	Alias     string
	KeptID    string
	DroppedID string
}

// Index maps lowercase aliases to stops. It is built once and is safe for
// concurrent readers.
//
// When two stops share an alias, the stop registered later owns it, with
// one exception: an alias that is some stop's full name is never taken over
// by a word or translation alias of another stop. Full-name collisions
// (duplicate stop names) also resolve to the later stop.
type Index struct {
	stops      []Stop
	byAlias    map[string]int
	entries    []indexEntry
	collisions []Collision
}

// NewIndex builds an index over stops in registration order.
func NewIndex(stops []Stop) (*Index, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyCatalog
	}

	idx := &Index{
		stops:   make([]Stop, len(stops)),
		byAlias: make(map[string]int),
	}
	copy(idx.stops, stops)

	for i := range idx.stops {
		s := &idx.stops[i]
		name := normalizeKey(s.Name)
		idx.register(name, i, tierName)
		for _, a := range s.Aliases {
			idx.register(normalizeKey(a), i, tierDerived)
		}
	}

	return idx, nil
}

func (idx *Index) register(alias string, stopIdx int, tier aliasTier) {
	if alias == "" {
		return
	}

	pos, ok := idx.byAlias[alias]
	if !ok {
		idx.byAlias[alias] = len(idx.entries)
		idx.entries = append(idx.entries, indexEntry{alias: alias, stopIdx: stopIdx, tier: tier})
		return
	}

	e := &idx.entries[pos]
	if e.stopIdx == stopIdx {
		if tier > e.tier {
			e.tier = tier
		}
		return
	}

	if e.tier > tier {
		idx.collisions = append(idx.collisions, Collision{
			Alias:     alias,
			KeptID:    idx.stops[e.stopIdx].ID,
			DroppedID: idx.stops[stopIdx].ID,
		})
		return
	}

	idx.collisions = append(idx.collisions, Collision{
		Alias:     alias,
		KeptID:    idx.stops[stopIdx].ID,
		DroppedID: idx.stops[e.stopIdx].ID,
	})
	e.stopIdx = stopIdx
	e.tier = tier
}

// Lookup returns the stop owning alias, if any.
func (idx *Index) Lookup(alias string) (Stop, bool) {
	pos, ok := idx.byAlias[normalizeKey(alias)]
	if !ok {
		return Stop{}, false
	}
	return idx.stops[idx.entries[pos].stopIdx], true
}

// Stops returns the indexed stops in registration order.
func (idx *Index) Stops() []Stop {
	out := make([]Stop, len(idx.stops))
	copy(out, idx.stops)
	return out
}

// Len returns the number of indexed stops.
func (idx *Index) Len() int {
	return len(idx.stops)
}

// AliasCount returns the number of distinct aliases.
func (idx *Index) AliasCount() int {
	return len(idx.entries)
}

// Collisions returns every alias contention resolved during construction.
func (idx *Index) Collisions() []Collision {
	out := make([]Collision, len(idx.collisions))
	copy(out, idx.collisions)
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
