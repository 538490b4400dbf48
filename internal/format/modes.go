package format

import (
	"strings"

	"github.com/alextransit/alextransit/internal/language"
	"github.com/alextransit/alextransit/internal/planner"
)

const (
	microbusArabic  = "ميكروباص"
	microbusEnglish = "Microbus"
)

var arabicModes = map[planner.Mode]string{
	planner.ModeWalk:   "مشي",
	planner.ModeBus:    "أتوبيس",
	planner.ModeTram:   "ترام",
	planner.ModeRail:   "قطار",
	planner.ModeSubway: "مترو",
	planner.ModeFerry:  "عبّارة",
}

var englishModes = map[planner.Mode]string{
	planner.ModeWalk:   "Walk",
	planner.ModeBus:    "Bus",
	planner.ModeTram:   "Tram",
	planner.ModeRail:   "Train",
	planner.ModeSubway: "Metro",
	planner.ModeFerry:  "Ferry",
}

// microbusKeywords mark informal microbus services that the planner
// reports as ordinary buses.
var microbusKeywords = []string{
	"microbus",
	"micro bus",
	"ميكروباص",
	"توناية",
}

// IsMicrobus reports whether the leg's route or headsign names a microbus.
func IsMicrobus(leg planner.Leg) bool {
	text := strings.ToLower(leg.RouteLabel + " " + leg.RouteLongName + " " + leg.Headsign)
	for _, kw := range microbusKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func busLike(leg planner.Leg) bool {
	return leg.Mode == planner.ModeBus || (leg.Transit && !leg.Mode.IsTransit())
}

// ModeName localizes a mode. Unknown modes are returned as reported.
func ModeName(m planner.Mode, lang language.Language) string {
	table := englishModes
	if lang == language.Arabic {
		table = arabicModes
	}
	if name, ok := table[m]; ok {
		return name
	}
	return string(m)
}

// LegModeName is ModeName with the microbus override applied. The override
// only replaces the bus label and the label of transit legs whose mode the
// planner reports outside the standard set.
func LegModeName(leg planner.Leg, lang language.Language) string {
	if busLike(leg) && IsMicrobus(leg) {
		if lang == language.Arabic {
			return microbusArabic
		}
		return microbusEnglish
	}
	return ModeName(leg.Mode, lang)
}
