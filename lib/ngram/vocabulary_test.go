package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_invalidConfig(t *testing.T) {
	_, err := New(0, NoLimit)
	assert.NotNil(t, err)

	_, err = New(-3, 10)
	assert.NotNil(t, err)

	_, err = New(1, 0)
	assert.NotNil(t, err)

	_, err = New(1, -2)
	assert.NotNil(t, err)

	_, err = New(1, NoLimit)
	assert.Nil(t, err)
}

func Test_Train_unigram(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)

	vocab.Train([]string{"This movie was good", "This movie was bad"})
	assert.Equal(t, 5, vocab.Size())

	// This/movie/was appear twice, good/bad once; ties keep first
	// occurrence order.
	for id, expected := range []Ngram{{"This"}, {"movie"}, {"was"}, {"good"}, {"bad"}} {
		actual, ok := vocab.Token(id)
		require.True(t, ok)
		assert.Equal(t, expected, actual)

		lookedUp, ok := vocab.Lookup(expected)
		require.True(t, ok)
		assert.Equal(t, id, lookedUp)
	}
}

func Test_Tokenize_dropsUnknown(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)
	vocab.Train([]string{"This movie was good", "This movie was bad"})

	grams := vocab.Tokenize("This movie was great")
	assert.Equal(t, []Ngram{{"This"}, {"movie"}, {"was"}}, grams)

	ids := vocab.TokenizeIDs("This movie was great")
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func Test_Tokenize_bigram(t *testing.T) {
	vocab, err := New(2, NoLimit)
	require.Nil(t, err)
	vocab.Train([]string{"the movie was bad", "the movie was fun"})

	assert.Equal(t, 4, vocab.Size())
	assert.Equal(t, []Ngram{{"the", "movie"}, {"movie", "was"}}, vocab.Tokenize("the movie was"))
}

func Test_Train_frequencyRanking(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)
	vocab.Train([]string{"b b b a a c"})

	assert.Equal(t, []int{1, 0, 2}, vocab.TokenizeIDs("a b c"))

	count, ok := vocab.Frequency(Ngram{"b"})
	require.True(t, ok)
	assert.Equal(t, 3, count)
}

func Test_Train_tieBreakIsFirstOccurrence(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)

	// Every unit occurs once; ids must follow the corpus scan order.
	vocab.Train([]string{"zebra apple", "mango"})
	assert.Equal(t, []int{0, 1, 2}, vocab.TokenizeIDs("zebra apple mango"))
}

func Test_Train_boundedVocabulary(t *testing.T) {
	vocab, err := New(1, 2)
	require.Nil(t, err)
	vocab.Train([]string{"a a a b b c"})

	assert.Equal(t, 2, vocab.Size())

	_, ok := vocab.Lookup(Ngram{"c"})
	assert.False(t, ok)
	_, ok = vocab.Frequency(Ngram{"c"})
	assert.False(t, ok)

	// The truncated entry is dropped at tokenize time like any unknown.
	assert.Equal(t, []Ngram{{"a"}, {"b"}}, vocab.Tokenize("a b c"))
}

func Test_Train_replacesState(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)

	vocab.Train([]string{"old words here"})
	_, ok := vocab.Lookup(Ngram{"old"})
	require.True(t, ok)

	vocab.Train([]string{"entirely new corpus"})
	assert.Equal(t, 3, vocab.Size())

	_, ok = vocab.Lookup(Ngram{"old"})
	assert.False(t, ok)
	assert.Empty(t, vocab.Tokenize("old words here"))
}

func Test_Train_emptyCorpus(t *testing.T) {
	vocab, err := New(2, NoLimit)
	require.Nil(t, err)

	vocab.Train(nil)
	assert.Equal(t, 0, vocab.Size())

	vocab.Train([]string{"", "   ", "a"})
	// No document reaches two units.
	assert.Equal(t, 0, vocab.Size())
}

func Test_Tokenize_beforeTrain(t *testing.T) {
	vocab, err := New(1, NoLimit)
	require.Nil(t, err)

	assert.Empty(t, vocab.Tokenize("anything at all"))
	assert.Empty(t, vocab.TokenizeIDs("anything at all"))
}

func Test_Tokenize_emptyAndShortInput(t *testing.T) {
	vocab, err := New(3, NoLimit)
	require.Nil(t, err)
	vocab.Train([]string{"one two three four"})

	assert.Empty(t, vocab.Tokenize(""))
	assert.Empty(t, vocab.TokenizeIDs(""))
	assert.Empty(t, vocab.Tokenize("one two"))
}

func Test_Restore_roundTrip(t *testing.T) {
	vocab, err := New(2, 100)
	require.Nil(t, err)
	vocab.Train([]string{"the movie was bad , but bad", "the movie was fun"})

	grams := make([]Ngram, 0, vocab.Size())
	frequencies := make([]int, 0, vocab.Size())
	err = vocab.Entries(func(id int, gram Ngram, frequency int) error {
		grams = append(grams, gram)
		frequencies = append(frequencies, frequency)
		return nil
	})
	require.Nil(t, err)

	restored, err := Restore(2, 100, grams, frequencies)
	require.Nil(t, err)

	assert.Equal(t, vocab.Size(), restored.Size())
	for id := 0; id < vocab.Size(); id++ {
		expected, _ := vocab.Token(id)
		actual, ok := restored.Token(id)
		require.True(t, ok)
		assert.Equal(t, expected, actual)
	}
}

func Test_Restore_rejectsCorruptEntries(t *testing.T) {
	_, err := Restore(2, NoLimit, []Ngram{{"a", "b"}}, []int{1, 2})
	assert.NotNil(t, err)

	_, err = Restore(2, NoLimit, []Ngram{{"only"}}, []int{1})
	assert.NotNil(t, err)

	_, err = Restore(1, NoLimit, []Ngram{{"a"}, {"a"}}, []int{2, 1})
	assert.NotNil(t, err)

	_, err = Restore(1, 1, []Ngram{{"a"}, {"b"}}, []int{2, 1})
	assert.NotNil(t, err)
}

func Test_WordTokenizer(t *testing.T) {
	var tok Tokenizer = NewWordTokenizer()

	tok.Train([]string{"training is a no-op"})
	assert.Equal(t, 0, tok.Size())

	grams := tok.Tokenize("This movie was really bad, but bad.")
	assert.Equal(t, []Ngram{
		{"This"}, {"movie"}, {"was"}, {"really"}, {"bad"},
		{","}, {"but"}, {"bad"}, {"."},
	}, grams)

	assert.Empty(t, tok.TokenizeIDs("no id space"))
}
