package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/knagata/wordgram/lib/database"
	"github.com/knagata/wordgram/lib/ngram"
)

var file string

func init() {
	flag.StringVar(&file, "d", "", "database file")
}

func main() {
	flag.Parse()

	if file == "" {
		flag.Usage()
		return
	}

	db := database.New(file)
	if err := db.Connect(); err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	run, err := db.ResolveTrainingRun()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	fmt.Printf("--- run %s n=%d max_vocab_size=%d\n", run.Id, run.N, run.MaxVocabSize)

	entries, err := db.ResolveAllEntries()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	for _, entry := range entries {
		fmt.Println(entry.Id, ngram.FromKey(entry.Ngram), entry.Frequency)
	}
}
