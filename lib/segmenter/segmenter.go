package segmenter

import "unicode"

// IsNumber, not IsDigit: word runs include every Unicode numeric form
// (fractions, Roman numerals), not just decimal digits.
func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c) || c == '_'
}

// Segment splits text into units: each maximal run of letters, numbers and
// underscores becomes one unit, every other non-whitespace rune becomes a
// single-rune unit, and whitespace is discarded. Letter and number classes
// follow the Unicode tables, so non-Latin scripts segment correctly.
func Segment(text string) []string {
	units := make([]string, 0)
	word := make([]rune, 0)

	for _, c := range text {
		if isWordRune(c) {
			word = append(word, c)
			continue
		}
		if len(word) > 0 {
			units = append(units, string(word))
			word = word[:0]
		}
		if !unicode.IsSpace(c) {
			units = append(units, string(c))
		}
	}
	if len(word) > 0 {
		units = append(units, string(word))
	}

	return units
}
