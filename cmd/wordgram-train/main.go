package main

import (
	"flag"
	"log"

	"github.com/knagata/wordgram/lib/corpus"
	"github.com/knagata/wordgram/lib/database"
	"github.com/knagata/wordgram/lib/ngram"
)

var (
	outputFile string
	n          int
	vocabSize  int
	limit      int
)

func init() {
	const usage = "Output database file"
	const value = "vocabulary.sqlite3"
	flag.StringVar(&outputFile, "output", value, usage)
	flag.StringVar(&outputFile, "o", value, usage)
	flag.IntVar(&n, "n", 2, "ngram size")
	flag.IntVar(&vocabSize, "vocab-size", ngram.NoLimit, "maximum vocabulary size (-1 for no limit)")
	flag.IntVar(&limit, "limit", 0, "read at most this many documents (0 for all)")
}

func main() {
	flag.Parse()
	corpusFile := flag.Arg(0)

	if corpusFile == "" {
		flag.Usage()
		return
	}

	docs, err := corpus.LoadLimit(corpusFile, limit)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("documents: %d\n", len(docs))

	vocab, err := ngram.New(n, vocabSize)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	vocab.Train(docs)
	log.Printf("vocabulary entries: %d\n", vocab.Size())

	db := database.New(outputFile)
	if err := db.InitTables(); err != nil {
		log.Fatalf("%+v", err)
	}
	if err := db.Connect(); err != nil {
		log.Fatalf("%+v", err)
	}
	if err := db.SaveVocabulary(vocab); err != nil {
		log.Fatalf("%+v", err)
	}
	if err := db.Close(); err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("wrote %s\n", outputFile)
}
