package ngram

import "github.com/knagata/wordgram/lib/segmenter"

// WordTokenizer is the plain-words variant: every unit comes back as a
// 1-gram with no filtering, so it needs no training and owns no id space.
type WordTokenizer struct{}

var _ Tokenizer = (*WordTokenizer)(nil)

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

func (t *WordTokenizer) Train(corpus []string) {}

func (t *WordTokenizer) Tokenize(text string) []Ngram {
	units := segmenter.Segment(text)
	grams := make([]Ngram, len(units))
	for i, unit := range units {
		grams[i] = Ngram{unit}
	}
	return grams
}

func (t *WordTokenizer) TokenizeIDs(text string) []int {
	return []int{}
}

func (t *WordTokenizer) Size() int {
	return 0
}
