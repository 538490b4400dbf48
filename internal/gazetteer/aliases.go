package gazetteer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// translation maps an English name fragment to its Arabic renderings.
type translation struct {
	english string
	arabic  []string
}

// genericTranslations covers the common nouns found in stop names.
var genericTranslations = []translation{
	{"station", []string{"محطة", "استيشن"}},
	{"hospital", []string{"مستشفى", "هوسبيتال"}},
	{"school", []string{"مدرسة", "سكوله"}},
	{"club", []string{"نادي", "كلوب"}},
	{"bridge", []string{"كوبري", "جسر"}},
	{"square", []string{"ميدان", "سكوير"}},
	{"mosque", []string{"مسجد", "جامع"}},
	{"police", []string{"شرطة", "بوليس"}},
	{"university", []string{"جامعة", "يونيفرسيتي"}},
	{"post office", []string{"مكتب بريد", "بوسطة"}},
	{"gas station", []string{"محطة بنزين", "جازيره"}},
	{"tunnel", []string{"نفق", "تونيل"}},
	{"market", []string{"سوق", "ماركت"}},
	{"mall", []string{"مول", "سنتر"}},
	{"factory", []string{"مصنع", "فابريكا"}},
	{"gate", []string{"بوابة", "جيت"}},
	{"cafe", []string{"كافيه", "قهوة"}},
	{"restaurant", []string{"مطعم", "ريستوران"}},
}

// districtTranslations covers Alexandria district and landmark names.
var districtTranslations = []translation{
	{"victoria", []string{"فيكتوريا", "فيكتوري"}},
	{"montazah", []string{"المنتزه", "منتزه", "منتزة"}},
	{"sidi gaber", []string{"سيدي جابر", "سيدى جابر"}},
	{"raml", []string{"الرمل", "رمل"}},
	{"mansheya", []string{"المنشية", "منشية"}},
	{"sidi bishr", []string{"سيدي بشر", "سيدى بشر"}},
	{"gleem", []string{"جليم"}},
	{"sporting", []string{"السبورتنج", "سبورتنج"}},
	{"smouha", []string{"سموحة"}},
	{"karmouz", []string{"كرموز"}},
	{"abu qir", []string{"أبو قير", "ابو قير"}},
	{"agamy", []string{"العجمي"}},
	{"stanley", []string{"ستانلي"}},
	{"san stefano", []string{"سان ستيفانو"}},
	{"miami", []string{"ميامي"}},
	{"bahary", []string{"البحري"}},
	{"asafra", []string{"العصفرة"}},
	{"mandara", []string{"المندرة"}},
	{"amreya", []string{"العامرية"}},
	{"falaki", []string{"الفلكي", "فلكي"}},
	{"seyouf", []string{"السيوف"}},
	{"khorshid", []string{"خورشيد"}},
}

// minWordAliasLen keeps articles and abbreviations ("al", "el", "st") out of
// the per-word aliases.
const minWordAliasLen = 3

// commonWords are English words that appear in stop names but are too common
// in ordinary queries to identify a stop.
var commonWords = map[string]bool{
	"the": true,
	"and": true,
	"old": true,
	"new": true,
	"end": true,
	"car": true,
	"men": true,
	"sun": true,
	"red": true,
	"ice": true,
}

// GenerateAliases derives the lookup aliases for a stop name: the lowercased
// full name, each meaningful word, and the Arabic renderings of any known
// fragment. The result is deduplicated and keeps first-seen order.
func GenerateAliases(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}

	seen := make(map[string]bool)
	aliases := make([]string, 0, 8)
	add := func(a string) {
		if a == "" || seen[a] {
			return
		}
		seen[a] = true
		aliases = append(aliases, a)
	}

	add(lower)

	for _, word := range strings.Fields(lower) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if isWordAlias(word) {
			add(word)
		}
	}

	for _, table := range [][]translation{genericTranslations, districtTranslations} {
		for _, t := range table {
			if strings.Contains(lower, t.english) {
				for _, a := range t.arabic {
					add(a)
				}
			}
		}
	}

	return aliases
}

func isWordAlias(word string) bool {
	if utf8.RuneCountInString(word) < minWordAliasLen || commonWords[word] {
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
