// Package format renders planner results and assistant messages as
// Arabic or English text.
package format

import (
	"fmt"
	"strings"

	"github.com/alextransit/alextransit/internal/language"
	"github.com/alextransit/alextransit/internal/planner"
)

// DefaultMaxOptions is how many itineraries are rendered by default.
const DefaultMaxOptions = 3

// Place is a resolved trip endpoint.
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Formatter renders trip plans.
type Formatter struct {
	maxOptions int
}

// New creates a Formatter that renders at most maxOptions itineraries.
// Zero or negative means DefaultMaxOptions.
func New(maxOptions int) *Formatter {
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}
	return &Formatter{maxOptions: maxOptions}
}

// Itineraries renders one numbered option per itinerary. With no
// itineraries it renders BasicOptions instead.
func (f *Formatter) Itineraries(its []planner.Itinerary, from, to Place, lang language.Language) string {
	if len(its) == 0 {
		return f.BasicOptions(from, to, lang)
	}
	if len(its) > f.maxOptions {
		its = its[:f.maxOptions]
	}

	var b strings.Builder
	if lang == language.Arabic {
		fmt.Fprintf(&b, "🚌 **خطة الرحلة من %s إلى %s**\n", from.Name, to.Name)
	} else {
		fmt.Fprintf(&b, "🚌 **Trip Plan from %s to %s**\n", from.Name, to.Name)
	}

	for i, it := range its {
		b.WriteString("\n")
		if len(its) > 1 {
			writeOptionHeader(&b, i+1, it, lang)
		}
		writeItinerary(&b, it, lang)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeOptionHeader(b *strings.Builder, n int, it planner.Itinerary, lang language.Language) {
	if lang == language.Arabic {
		fmt.Fprintf(b, "**الخيار %d** (%d دقيقة، %s)\n", n, it.DurationMinutes, transfersText(it.Transfers, lang))
		return
	}
	fmt.Fprintf(b, "**Option %d** (%d min, %s)\n", n, it.DurationMinutes, transfersText(it.Transfers, lang))
}

func transfersText(n int, lang language.Language) string {
	if lang == language.Arabic {
		switch n {
		case 0:
			return "بدون تبديل"
		case 1:
			return "تبديل واحد"
		default:
			return fmt.Sprintf("%d تبديلات", n)
		}
	}
	switch n {
	case 0:
		return "no transfers"
	case 1:
		return "1 transfer"
	default:
		return fmt.Sprintf("%d transfers", n)
	}
}

func writeItinerary(b *strings.Builder, it planner.Itinerary, lang language.Language) {
	if lang == language.Arabic {
		fmt.Fprintf(b, "⏱️ **الوقت الكلي:** %d دقيقة\n", it.DurationMinutes)
		fmt.Fprintf(b, "📏 **المسافة الكلية:** %.1f كم\n", it.DistanceKm)
		fmt.Fprintf(b, "🚶 **وقت المشي:** %d دقيقة\n", it.WalkingMinutes)
		b.WriteString("\n**تفاصيل الرحلة:**\n")
	} else {
		fmt.Fprintf(b, "⏱️ **Total Time:** %d minutes\n", it.DurationMinutes)
		fmt.Fprintf(b, "📏 **Total Distance:** %.1f km\n", it.DistanceKm)
		fmt.Fprintf(b, "🚶 **Walking Time:** %d minutes\n", it.WalkingMinutes)
		b.WriteString("\n**Trip Details:**\n")
	}

	for i, leg := range it.Legs {
		fmt.Fprintf(b, "%d. %s\n", i+1, LegLine(leg, lang))
	}

	modes := it.TransitModes()
	if len(modes) == 0 {
		return
	}
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, ModeName(m, lang))
	}
	if lang == language.Arabic {
		fmt.Fprintf(b, "\n**وسائل النقل المستخدمة:** %s\n", strings.Join(names, "، "))
	} else {
		fmt.Fprintf(b, "\n**Transit Modes Used:** %s\n", strings.Join(names, ", "))
	}
}

// LegLine renders a single leg without its number.
func LegLine(leg planner.Leg, lang language.Language) string {
	if !leg.IsTransit() {
		if lang == language.Arabic {
			return fmt.Sprintf("🚶 امشي من **%s** إلى **%s** (%d دق - %.1f كم)",
				leg.FromName, leg.ToName, leg.DurationMinutes, leg.DistanceKm)
		}
		return fmt.Sprintf("🚶 Walk from **%s** to **%s** (%d min - %.1f km)",
			leg.FromName, leg.ToName, leg.DurationMinutes, leg.DistanceKm)
	}

	if lang == language.Arabic {
		return fmt.Sprintf("🚌 اركب %s من **%s** إلى **%s** (~%d دق)",
			vehicleText(leg, lang), leg.FromName, leg.ToName, leg.DurationMinutes)
	}
	return fmt.Sprintf("🚌 Take %s from **%s** to **%s** (~%d min)",
		vehicleText(leg, lang), leg.FromName, leg.ToName, leg.DurationMinutes)
}

// vehicleText is the localized mode followed by the route label and, when
// known, the headsign.
func vehicleText(leg planner.Leg, lang language.Language) string {
	text := LegModeName(leg, lang)
	if leg.RouteLabel != "" {
		text += " " + leg.RouteLabel
	}
	if leg.Headsign != "" {
		if lang == language.Arabic {
			text += " (اتجاه " + leg.Headsign + ")"
		} else {
			text += " (towards " + leg.Headsign + ")"
		}
	}
	return text
}

// BasicOptions renders generic transport choices between two resolved
// places. It is used whenever the planner cannot provide itineraries.
func (f *Formatter) BasicOptions(from, to Place, lang language.Language) string {
	if lang == language.Arabic {
		return fmt.Sprintf(`🚌 **خطة الرحلة من %s إلى %s**

📍 **من:** %s (%.4f, %.4f)
📍 **إلى:** %s (%.4f, %.4f)

**الخيارات المتاحة:**
1. **أتوبيس:** استخدم شبكة الأتوبيسات العامة
2. **ترام:** استخدم ترام الإسكندرية (إذا كان متاحاً في المنطقة)
3. **ميكروباص:** وسيلة نقل سريعة ومرنة
4. **تاكسي:** للراحة والسرعة

📱 **نصائح:**
- استخدم تطبيق المواصلات الرسمي للمواعيد الدقيقة
- تحقق من مواعيد التشغيل قبل السفر
- احتفظ بخيارات بديلة للطوارئ

⚠️ **ملاحظة:** هذه معلومات أساسية. تفاصيل الطرق والمواعيد غير متاحة حالياً.`,
			from.Name, to.Name,
			from.Name, from.Lat, from.Lon,
			to.Name, to.Lat, to.Lon)
	}

	return fmt.Sprintf(`🚌 **Trip Plan from %s to %s**

📍 **From:** %s (%.4f, %.4f)
📍 **To:** %s (%.4f, %.4f)

**Available Options:**
1. **Bus:** Use the public bus network
2. **Tram:** Use the Alexandria tram system (if available in the area)
3. **Microbus:** Fast and flexible transport option
4. **Taxi:** For comfort and speed

📱 **Tips:**
- Use the official transport app for accurate schedules
- Check operating hours before traveling
- Keep backup options for emergencies

⚠️ **Note:** This is basic information. Detailed routes and schedules are unavailable right now.`,
		from.Name, to.Name,
		from.Name, from.Lat, from.Lon,
		to.Name, to.Lat, to.Lon)
}
