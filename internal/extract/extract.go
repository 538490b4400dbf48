// Package extract pulls an origin and destination out of a free-text trip
// request in Arabic, Egyptian Arabic or English.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/language"
)

// Source names how a location pair was obtained.
type Source string

const (
	SourceTemplate  Source = "template"
	SourceAliasScan Source = "alias_scan"
	SourceNER       Source = "ner"
)

// LocationPair is an extracted origin and destination. An empty pair means
// extraction failed.
type LocationPair struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Source Source `json:"source,omitempty"`
}

// Complete reports whether both endpoints are present.
func (p LocationPair) Complete() bool {
	return p.From != "" && p.To != ""
}

// matcher tries one template against normalized text.
type matcher func(text string) (LocationPair, bool)

// pairTemplates capture both endpoints, in priority order.
var pairTemplates = []string{
	// Standard Arabic.
	`أريد\s+الذهاب\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`كيف\s+أصل\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`من\s+(.+?)\s+إلى\s+(.+)`,
	`من\s+(.+?)\s+لـ\s*(.+)`,

	// Egyptian Arabic.
	`عايز\s+أروح\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`عايزة\s+أروح\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`عاوز\s+أروح\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`عاوزة\s+أروح\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`إزاي\s+أروح\s+من\s+(.+?)\s+إلى\s+(.+)`,
	`ازاي\s+أروح\s+من\s+(.+?)\s+لـ\s*(.+)`,

	// English.
	`how\s+do\s+i\s+go\s+from\s+(.+?)\s+to\s+(.+)`,
	`route\s+from\s+(.+?)\s+to\s+(.+)`,
	`from\s+(.+?)\s+to\s+(.+)`,
	`i\s+want\s+to\s+go\s+from\s+(.+?)\s+to\s+(.+)`,
	`travel\s+from\s+(.+?)\s+to\s+(.+)`,
}

// destination is a trailing "to <place>" phrase with the place it implies.
type destination struct {
	phrase string
	place  string
}

var impliedDestinations = []destination{
	{"لفيكتوريا", "فيكتوريا"},
	{"للمنتزه", "المنتزه"},
	{"لسيدي جابر", "سيدي جابر"},
	{"للرمل", "الرمل"},
	{"للفلكي", "الفلكي"},
	{"لسيدي بشر", "سيدي بشر"},
	{"لجليم", "جليم"},
	{"للسبورتنج", "السبورتنج"},
	{"لسموحة", "سموحة"},
	{"لكرموز", "كرموز"},
	{"للسيوف", "السيوف"},
	{"للمنشية", "المنشية"},
}

// defaultMatchers is built once. Template text passes through the same dialect
// normalization as queries so colloquial templates still line up with
// normalized input.
var defaultMatchers = buildMatchers()

func buildMatchers() []matcher {
	matchers := make([]matcher, 0, len(pairTemplates)+len(impliedDestinations))
	for _, src := range pairTemplates {
		matchers = append(matchers, pairMatcher(compileTemplate(src)))
	}
	for _, d := range impliedDestinations {
		phrase := regexp.QuoteMeta(language.NormalizeDialect(d.phrase))
		phrase = strings.ReplaceAll(phrase, " ", `\s+`)
		re := compileTemplate(`من\s+(.+?)\s+` + phrase)
		matchers = append(matchers, destinationMatcher(re, d.place))
	}
	return matchers
}

func compileTemplate(src string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + language.NormalizeDialect(src))
}

func pairMatcher(re *regexp.Regexp) matcher {
	return func(text string) (LocationPair, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return LocationPair{}, false
		}
		return LocationPair{From: cleanCapture(m[1]), To: cleanCapture(m[2]), Source: SourceTemplate}, true
	}
}

func destinationMatcher(re *regexp.Regexp, place string) matcher {
	return func(text string) (LocationPair, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return LocationPair{}, false
		}
		return LocationPair{From: cleanCapture(m[1]), To: place, Source: SourceTemplate}, true
	}
}

// cleanCapture trims whitespace and surrounding punctuation such as a
// trailing question mark.
func cleanCapture(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}

// Extractor applies the templates and, failing those, scans the gazetteer
// for place names mentioned in the query.
type Extractor struct {
	index    *gazetteer.Index
	matchers []matcher
}

// New creates an Extractor backed by idx.
func New(idx *gazetteer.Index) *Extractor {
	return &Extractor{
		index:    idx,
		matchers: defaultMatchers,
	}
}

// Extract returns the origin and destination mentioned in query, or an empty
// pair when none can be recovered.
func (e *Extractor) Extract(query string) LocationPair {
	normalized := language.NormalizeDialect(strings.TrimSpace(query))
	if normalized == "" {
		return LocationPair{}
	}

	for _, match := range e.matchers {
		pair, ok := match(normalized)
		if !ok {
			continue
		}
		if !pair.Complete() {
			return LocationPair{}
		}
		return pair
	}

	return e.scanAliases(normalized)
}

// scanAliases pairs the first two place names, naming different stops, in
// the order they appear in text.
func (e *Extractor) scanAliases(text string) LocationPair {
	if e.index == nil {
		return LocationPair{}
	}

	mentions := e.index.Mentions(text)
	if len(mentions) < 2 {
		return LocationPair{}
	}

	first := mentions[0]
	for _, m := range mentions[1:] {
		if m.Stop.ID != first.Stop.ID {
			return LocationPair{From: first.Alias, To: m.Alias, Source: SourceAliasScan}
		}
	}
	return LocationPair{}
}
