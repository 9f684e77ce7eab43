package main

import (
	"log/slog"
	"testing"
	"time"

	"toxic-lab/domain"
	"toxic-lab/repositories"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func firstEntry(t *testing.T, db *badger.DB, prefix string) (string, []byte) {
	t.Helper()
	var key string
	var value []byte
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		it.Seek([]byte(prefix))
		require.True(t, it.ValidForPrefix([]byte(prefix)))
		key = string(it.Item().KeyCopy(nil))
		var err error
		value, err = it.Item().ValueCopy(nil)
		return err
	})
	require.NoError(t, err)
	return key, value
}

func TestToRow_StoredVerdictAndSample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()

	// Given one stored sample and one stored verdict
	samples := repositories.NewSampleRepository(db, log)
	req.NoError(samples.StoreSamples([]domain.Sample{{Text: "Merci pour ces conseils.", Label: 0}}))
	verdicts := repositories.NewVerdictRepository(db, writer, log, nil)
	req.NoError(verdicts.Store(domain.Verdict{
		ID:           uuid.New(),
		Comment:      "connard vas travailler",
		Censored:     "******* vas travailler",
		Score:        0.31,
		Lang:         "fr",
		BlockedWords: []string{"connard"},
		At:           time.Now().UTC(),
	}))

	// Then both render as table rows and inspector rows
	sampleKey, sampleValue := firstEntry(t, db, repositories.SamplePrefix)
	row, err := toRow(repositories.SamplePrefix, sampleKey, sampleValue)
	req.NoError(err)
	req.Equal([]string{sampleKey, "0", "Merci pour ces conseils."}, row)
	mapped := VerdictMapper(sampleKey, sampleValue)
	req.Equal("SAMPLE", mapped.Type)
	req.Equal("Merci pour ces conseils.", mapped.Detail)

	verdictKey, verdictValue := firstEntry(t, db, repositories.VerdictPrefix)
	row, err = toRow(repositories.VerdictPrefix, verdictKey, verdictValue)
	req.NoError(err)
	req.Equal("TOXIC", row[2])
	req.Equal("0.3100", row[3])
	req.Equal("connard", row[5])
	mapped = VerdictMapper(verdictKey, verdictValue)
	req.Equal("BLOCKED", mapped.Type)
	req.Equal("******* vas travailler", mapped.Detail)

	_, err = toRow(repositories.VerdictPrefix, "verdict:broken", []byte{0xff, 0xff})
	req.Error(err)
}
