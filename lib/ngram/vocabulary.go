package ngram

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/knagata/wordgram/lib/segmenter"
)

// NoLimit disables the vocabulary size bound.
const NoLimit = -1

// Tokenizer is the capability surface shared by the tokenizer variants.
type Tokenizer interface {
	Train(corpus []string)
	Tokenize(text string) []Ngram
	TokenizeIDs(text string) []int
	Size() int
}

// Vocabulary maps the most frequent length-n windows of a training corpus
// to dense integer ids. Train rebuilds the whole mapping; Tokenize and
// TokenizeIDs only read it, so concurrent reads against a vocabulary with
// no training in flight are safe.
type Vocabulary struct {
	n         int
	maxSize   int
	tokenToID map[string]int
	idToToken []Ngram
	counts    map[string]int
}

var _ Tokenizer = (*Vocabulary)(nil)

func New(n, maxSize int) (*Vocabulary, error) {
	if n < 1 {
		return nil, errors.Errorf("invalid ngram size: %d", n)
	}
	if maxSize != NoLimit && maxSize < 1 {
		return nil, errors.Errorf("invalid max vocabulary size: %d", maxSize)
	}
	return &Vocabulary{
		n:         n,
		maxSize:   maxSize,
		tokenToID: make(map[string]int),
		counts:    make(map[string]int),
	}, nil
}

func (v *Vocabulary) N() int       { return v.n }
func (v *Vocabulary) MaxSize() int { return v.maxSize }

// Size returns the number of distinct vocabulary entries.
func (v *Vocabulary) Size() int {
	return len(v.tokenToID)
}

// Train rebuilds the vocabulary from corpus, discarding any previous
// mapping. Entries are ranked by descending frequency; equal frequencies
// keep the order of first occurrence across the corpus scan, so id
// assignment is reproducible for a given corpus.
func (v *Vocabulary) Train(corpus []string) {
	counts := make(map[string]int)
	ranked := make([]string, 0)

	for _, text := range corpus {
		units := segmenter.Segment(text)
		for _, gram := range Windows(units, v.n) {
			key := gram.Key()
			if _, ok := counts[key]; !ok {
				ranked = append(ranked, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if v.maxSize != NoLimit && len(ranked) > v.maxSize {
		ranked = ranked[:v.maxSize]
	}

	tokenToID := make(map[string]int, len(ranked))
	idToToken := make([]Ngram, len(ranked))
	kept := make(map[string]int, len(ranked))
	for id, key := range ranked {
		tokenToID[key] = id
		idToToken[id] = ngramFromKey(key)
		kept[key] = counts[key]
	}

	v.tokenToID = tokenToID
	v.idToToken = idToToken
	v.counts = kept
}

// Tokenize converts text to its in-vocabulary windows, in order. Windows
// unseen during training are dropped.
func (v *Vocabulary) Tokenize(text string) []Ngram {
	grams := Windows(segmenter.Segment(text), v.n)
	result := make([]Ngram, 0, len(grams))
	for _, gram := range grams {
		if _, ok := v.tokenToID[gram.Key()]; ok {
			result = append(result, gram)
		}
	}
	return result
}

// TokenizeIDs is Tokenize mapped through the vocabulary ids.
func (v *Vocabulary) TokenizeIDs(text string) []int {
	grams := Windows(segmenter.Segment(text), v.n)
	ids := make([]int, 0, len(grams))
	for _, gram := range grams {
		if id, ok := v.tokenToID[gram.Key()]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Lookup reports the id assigned to gram.
func (v *Vocabulary) Lookup(gram Ngram) (int, bool) {
	id, ok := v.tokenToID[gram.Key()]
	return id, ok
}

// Token returns the ngram holding id, for id in [0, Size()).
func (v *Vocabulary) Token(id int) (Ngram, bool) {
	if id < 0 || id >= len(v.idToToken) {
		return nil, false
	}
	return v.idToToken[id], true
}

// Frequency reports the training-time count of gram, if it was retained.
func (v *Vocabulary) Frequency(gram Ngram) (int, bool) {
	count, ok := v.counts[gram.Key()]
	return count, ok
}

// Entries calls fn for every vocabulary entry in id order.
func (v *Vocabulary) Entries(fn func(id int, gram Ngram, frequency int) error) error {
	for id, gram := range v.idToToken {
		if err := fn(id, gram, v.counts[gram.Key()]); err != nil {
			return err
		}
	}
	return nil
}

// Restore rebuilds a trained vocabulary from persisted entries. grams and
// frequencies are given in id order starting at 0.
func Restore(n, maxSize int, grams []Ngram, frequencies []int) (*Vocabulary, error) {
	v, err := New(n, maxSize)
	if err != nil {
		return nil, err
	}
	if len(grams) != len(frequencies) {
		return nil, errors.Errorf("mismatched entries: %d grams, %d frequencies", len(grams), len(frequencies))
	}
	if maxSize != NoLimit && len(grams) > maxSize {
		return nil, errors.Errorf("%d entries exceed max vocabulary size %d", len(grams), maxSize)
	}

	v.idToToken = make([]Ngram, len(grams))
	for id, gram := range grams {
		if len(gram) != n {
			return nil, errors.Errorf("ngram %q has length %d, want %d", gram, len(gram), n)
		}
		key := gram.Key()
		if _, ok := v.tokenToID[key]; ok {
			return nil, errors.Errorf("duplicate ngram %q", gram)
		}
		v.tokenToID[key] = id
		v.idToToken[id] = gram
		v.counts[key] = frequencies[id]
	}
	return v, nil
}
