package language

import "strings"

// dialectTable lists colloquial forms and their standard replacements in
// priority order. Identity entries keep already-standard words from being
// rewritten by the shorter entries that follow them.
var dialectTable = []string{
	"عايز", "أريد",
	"عايزة", "أريد",
	"عاوز", "أريد",
	"عاوزة", "أريد",
	"روح", "اذهب",
	"روحة", "اذهب",
	"روحه", "اذهب",
	"إزاي", "كيف",
	"ازاي", "كيف",
	"إمتى", "متى",
	"منين", "من أين",
	"فين", "أين",
	"ليه", "لماذا",
	"المنشية", "المنشية",
	"منشية", "المنشية",
	"السيوف", "السيوف",
	"سيوف", "السيوف",
	"سيف", "السيوف",
}

var dialectReplacer = strings.NewReplacer(dialectTable...)

// maxNormalizePasses bounds the fixpoint loop in NormalizeDialect.
const maxNormalizePasses = 4

// NormalizeDialect rewrites Egyptian colloquial tokens to standard Arabic.
// Each pass scans left to right and never rescans replaced text; passes
// repeat until the text is stable, so normalizing twice changes nothing.
func NormalizeDialect(text string) string {
	out := text
	for i := 0; i < maxNormalizePasses; i++ {
		next := dialectReplacer.Replace(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}
