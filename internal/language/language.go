// Package language classifies query text and rewrites colloquial Egyptian
// Arabic into the standard forms the extraction templates expect.
package language

import (
	"strings"
	"unicode"
)

// Language is a supported response language.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// arabicRatioThreshold is the share of Arabic characters above which text is
// treated as Arabic.
const arabicRatioThreshold = 0.3

// Parse maps a language code to a Language, defaulting to English.
func Parse(code string) Language {
	if strings.EqualFold(strings.TrimSpace(code), string(Arabic)) {
		return Arabic
	}
	return English
}

// Detect classifies text as Arabic or English by the number of characters
// from the Arabic block relative to the number of letters. Text with no
// letters is English, whatever digits or punctuation it carries.
func Detect(text string) Language {
	var arabic, total int
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			arabic++
		}
		if unicode.IsLetter(r) {
			total++
		}
	}

	if total == 0 {
		return English
	}
	if float64(arabic)/float64(total) > arabicRatioThreshold {
		return Arabic
	}
	return English
}
