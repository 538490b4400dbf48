package gazetteer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mention is an alias found verbatim inside a piece of text.
type Mention struct {
	Alias string
	Stop  Stop
	Start int
	End   int
}

// Mentions returns the aliases contained in text, ordered by where they
// occur. Overlapping hits keep the longer alias. Aliases that begin or end
// with a Latin letter must sit on word boundaries so that short names do not
// fire inside unrelated English words.
func (idx *Index) Mentions(text string) []Mention {
	lower := strings.ToLower(text)

	type hit struct {
		Mention
		order int
	}
	var hits []hit
	for i, e := range idx.entries {
		start, ok := findAlias(lower, e.alias)
		if !ok {
			continue
		}
		hits = append(hits, hit{
			Mention: Mention{
				Alias: e.alias,
				Stop:  idx.stops[e.stopIdx],
				Start: start,
				End:   start + len(e.alias),
			},
			order: i,
		})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		ha, hb := hits[a], hits[b]
		if ha.Start != hb.Start {
			return ha.Start < hb.Start
		}
		if la, lb := ha.End-ha.Start, hb.End-hb.Start; la != lb {
			return la > lb
		}
		return ha.order < hb.order
	})

	out := make([]Mention, 0, len(hits))
	end := 0
	for _, h := range hits {
		if h.Start < end {
			continue
		}
		out = append(out, h.Mention)
		end = h.End
	}
	return out
}

// findAlias returns the first boundary-respecting occurrence of alias.
func findAlias(text, alias string) (int, bool) {
	offset := 0
	for {
		i := strings.Index(text[offset:], alias)
		if i < 0 {
			return 0, false
		}
		start := offset + i
		end := start + len(alias)
		if onBoundary(text, alias, start, end) {
			return start, true
		}
		offset = start + 1
		for offset < len(text) && !utf8.RuneStart(text[offset]) {
			offset++
		}
	}
}

func onBoundary(text, alias string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(alias)
	if isLatin(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(alias)
	if isLatin(last) && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

func isLatin(r rune) bool {
	return r < utf8.RuneSelf && unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
