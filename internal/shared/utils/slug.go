package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// diacritics folds common accented Latin characters to ASCII so titles
// like "Introdução ao Go" become slug-safe.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a', 'ä': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'õ': 'o', 'ô': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
}

// GenerateSlug derives a unique-key-friendly identifier from free text:
// accents folded, lowercased, spaces hyphenated, everything else dropped.
func GenerateSlug(input string) string {
	folded := make([]rune, 0, len(input))
	for _, r := range strings.ToLower(input) {
		if base, ok := diacritics[r]; ok {
			r = base
		}
		folded = append(folded, r)
	}

	slug := strings.ReplaceAll(string(folded), " ", "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugHyphens.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
