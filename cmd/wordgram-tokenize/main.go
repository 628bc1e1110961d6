package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/knagata/wordgram/lib/database"
)

var file string
var outputMode string

const (
	ngramMode = "ngrams"
	idMode    = "ids"
)

func init() {
	flag.StringVar(&file, "d", "", "database file")
	flag.StringVar(&outputMode, "m", ngramMode, "output mode (ngrams or ids)")
}

func main() {
	flag.Parse()
	text := flag.Arg(0)

	if file == "" {
		flag.Usage()
		return
	}

	if _, err := os.Stat(file); err != nil {
		log.Printf("%s not found", file)
		return
	}

	if text == "" {
		return
	}

	db := database.New(file)
	if err := db.Connect(); err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	vocab, err := db.LoadVocabulary()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	switch outputMode {
	case ngramMode:
		for _, gram := range vocab.Tokenize(text) {
			fmt.Println(gram)
		}
	case idMode:
		for _, id := range vocab.TokenizeIDs(text) {
			fmt.Println(id)
		}
	default:
		log.Fatalf("unknown output mode: %s", outputMode)
	}
}
