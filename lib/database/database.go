package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/knagata/wordgram/lib/ngram"
)

type Database struct {
	databaseFile string
	db           *sqlx.DB
	tx           *sqlx.Tx
	prepareStatements
}

type prepareStatements struct {
	insertTrainingRun     *sqlx.NamedStmt
	resolveLatestRun      *sqlx.Stmt
	insertVocabularyEntry *sqlx.Stmt
	resolveAllEntries     *sqlx.Stmt
	resolveEntryByNgram   *sqlx.Stmt
	deleteTrainingRuns    *sqlx.Stmt
	deleteVocabulary      *sqlx.Stmt
}

func New(databaseFile string) *Database {
	return &Database{databaseFile: databaseFile}
}

func connectSqlite3(databaseFile string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", databaseFile)
	if err != nil {
		return nil, errors.Wrapf(err, "file: %s", databaseFile)
	}
	return db, err
}

func (d *Database) InitTables() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	defer db.Close()
	db.MustExec(schema)

	return nil
}

func (d *Database) Connect() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	d.db = db

	tx, err := db.Beginx()
	if err != nil {
		return errors.WithStack(err)
	}
	d.tx = tx

	if err := d.initializePrepareStatements(); err != nil {
		return err
	}

	return nil
}

func (d *Database) Close() error {
	err := d.tx.Commit()
	if err != nil {
		return err
	}
	return d.db.Close()
}

func (d *Database) initializePrepareStatements() error {
	ctx := context.Background()

	namedStmt, err := d.tx.PrepareNamedContext(
		ctx,
		`INSERT INTO training_run (id, n, max_vocab_size, trained_time)
VALUES (:id, :n, :max_vocab_size, :trained_time)`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.insertTrainingRun = namedStmt

	stmt, err := d.tx.PreparexContext(
		ctx,
		`SELECT id, n, max_vocab_size, trained_time FROM training_run
ORDER BY trained_time DESC LIMIT 1`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveLatestRun = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`INSERT INTO vocabulary (id, ngram, frequency) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.insertVocabularyEntry = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT id, ngram, frequency FROM vocabulary ORDER BY id`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveAllEntries = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT id, ngram, frequency FROM vocabulary WHERE ngram = ? LIMIT 1`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveEntryByNgram = stmt

	stmt, err = d.tx.PreparexContext(ctx, `DELETE FROM training_run`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.deleteTrainingRuns = stmt

	stmt, err = d.tx.PreparexContext(ctx, `DELETE FROM vocabulary`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.deleteVocabulary = stmt

	return nil
}

// SaveVocabulary replaces whatever the database holds with the entries of
// vocab, one row per ngram in id order, plus a training_run row recording
// (n, max_vocab_size) and the save time.
func (d *Database) SaveVocabulary(vocab *ngram.Vocabulary) error {
	if _, err := d.deleteVocabulary.Exec(); err != nil {
		return errors.WithStack(err)
	}
	if _, err := d.deleteTrainingRuns.Exec(); err != nil {
		return errors.WithStack(err)
	}

	run := &TrainingRun{
		Id:           uuid.NewString(),
		N:            vocab.N(),
		MaxVocabSize: vocab.MaxSize(),
		TrainedTime:  float64(time.Now().UnixNano()) / float64(time.Second),
	}
	if _, err := d.insertTrainingRun.Exec(run); err != nil {
		return errors.WithStack(err)
	}

	return vocab.Entries(func(id int, gram ngram.Ngram, frequency int) error {
		if _, err := d.insertVocabularyEntry.Exec(id, gram.Key(), frequency); err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// LoadVocabulary reconstructs the vocabulary of the most recent training
// run. Ids, tuple ordering and frequencies come back exactly as saved.
func (d *Database) LoadVocabulary() (*ngram.Vocabulary, error) {
	run, err := d.ResolveTrainingRun()
	if err != nil {
		return nil, err
	}

	var rows []*VocabularyEntry
	if err := d.resolveAllEntries.Select(&rows); err != nil {
		return nil, errors.WithStack(err)
	}

	grams := make([]ngram.Ngram, len(rows))
	frequencies := make([]int, len(rows))
	for i, row := range rows {
		if row.Id != i {
			return nil, errors.Errorf("vocabulary ids are not dense: row %d has id %d", i, row.Id)
		}
		grams[i] = ngram.FromKey(row.Ngram)
		frequencies[i] = row.Frequency
	}

	return ngram.Restore(run.N, run.MaxVocabSize, grams, frequencies)
}

func (d *Database) ResolveTrainingRun() (*TrainingRun, error) {
	var run TrainingRun
	if err := d.resolveLatestRun.Get(&run); err != nil {
		return nil, errors.WithStack(err)
	}
	return &run, nil
}

func (d *Database) ResolveEntryByNgram(gram ngram.Ngram) (*VocabularyEntry, error) {
	var entries []VocabularyEntry
	if err := d.resolveEntryByNgram.Select(&entries, gram.Key()); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (d *Database) ResolveAllEntries() ([]*VocabularyEntry, error) {
	var entries []*VocabularyEntry
	if err := d.resolveAllEntries.Select(&entries); err != nil {
		return nil, errors.WithStack(err)
	}
	return entries, nil
}
