package corpus

import (
	"bufio"
	"encoding/json"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

type record struct {
	Text string `json:"text"`
}

// maxLineSize bounds a single corpus line. Review-length documents fit
// comfortably; anything past this is a malformed corpus.
const maxLineSize = 4 * 1024 * 1024

// Load reads a JSON-lines corpus: one object per line, each carrying the
// document under a "text" field. Blank lines are skipped.
func Load(filename string) ([]string, error) {
	return LoadLimit(filename, 0)
}

// LoadLimit reads at most limit documents from filename. limit <= 0 reads
// everything.
func LoadLimit(filename string, limit int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	docs := make([]string, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if limit > 0 && len(docs) >= limit {
			break
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, errors.Wrapf(err, "file: %s", filename)
		}
		docs = append(docs, rec.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "file: %s", filename)
	}

	return docs, nil
}

// Sample draws k documents without replacement, leaving docs untouched.
// k larger than the corpus returns a permutation of the whole corpus.
func Sample(docs []string, k int, rng *rand.Rand) []string {
	if k > len(docs) {
		k = len(docs)
	}
	if k < 0 {
		k = 0
	}
	perm := rng.Perm(len(docs))
	sampled := make([]string, k)
	for i := 0; i < k; i++ {
		sampled[i] = docs[perm[i]]
	}
	return sampled
}
