package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knagata/wordgram/lib/database"
	"github.com/knagata/wordgram/lib/ngram"
)

func createDatabaseFile(t *testing.T) string {
	databaseFile, err := os.CreateTemp("", "wordgram.sqlite3.*")
	require.Nil(t, err)
	defer databaseFile.Close()
	return databaseFile.Name()
}

// TrainAndSave trains a vocabulary on corpus and persists it to a fresh
// temporary database file, whose name it returns.
func TrainAndSave(t *testing.T, corpus []string, n, maxSize int) string {
	vocab, err := ngram.New(n, maxSize)
	require.Nil(t, err)
	vocab.Train(corpus)

	databaseFile := createDatabaseFile(t)
	db := database.New(databaseFile)
	require.Nil(t, db.InitTables())
	require.Nil(t, db.Connect())
	require.Nil(t, db.SaveVocabulary(vocab))
	require.Nil(t, db.Close())

	return databaseFile
}
