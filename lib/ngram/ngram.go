package ngram

import "strings"

// keySeparator joins units into a map key. Units from the segmenter are
// non-empty and never contain it, so joining is injective for a fixed n.
const keySeparator = "\x1f"

// Ngram is an ordered tuple of consecutive units. Two ngrams are equal iff
// all positions are equal.
type Ngram []string

func (g Ngram) Key() string {
	return strings.Join(g, keySeparator)
}

func (g Ngram) String() string {
	return strings.Join(g, " ")
}

func ngramFromKey(key string) Ngram {
	return Ngram(strings.Split(key, keySeparator))
}

// FromKey is the inverse of Key.
func FromKey(key string) Ngram {
	return ngramFromKey(key)
}

// Windows extracts every contiguous length-n window from units, sliding by
// one and preserving duplicates. A sequence shorter than n yields nothing.
func Windows(units []string, n int) []Ngram {
	if n < 1 || len(units) < n {
		return nil
	}
	grams := make([]Ngram, 0, len(units)-n+1)
	for i := 0; i+n <= len(units); i++ {
		grams = append(grams, Ngram(units[i:i+n]))
	}
	return grams
}
