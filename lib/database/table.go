package database

type TrainingRun struct {
	Id           string  `db:"id"`
	N            int     `db:"n"`
	MaxVocabSize int     `db:"max_vocab_size"`
	TrainedTime  float64 `db:"trained_time"`
}

type VocabularyEntry struct {
	Id        int    `db:"id"`
	Ngram     string `db:"ngram"`
	Frequency int    `db:"frequency"`
}
