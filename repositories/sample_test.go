package repositories

import (
	"fmt"
	"log/slog"
	"testing"

	"toxic-lab/domain"
	"toxic-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSampleRepository_StoreAndLoad_KeepsOrder(t *testing.T) {
	req := require.New(t)
	repository := NewSampleRepository(openBadger(t), slog.Default())

	// Given more than ten samples so that unpadded keys would sort wrongly
	var samples []domain.Sample
	for i := 0; i < 12; i++ {
		samples = append(samples, domain.Sample{Text: fmt.Sprintf("comment %d", i), Label: i % 2})
	}
	req.NoError(repository.StoreSamples(samples[:5]))
	req.NoError(repository.StoreSamples(samples[5:]))

	dataset, err := repository.LoadDataset()
	req.NoError(err)
	stored, err := dataset.Samples()
	req.NoError(err)
	req.Equal(samples, stored)
}

func TestSampleRepository_ReplaceSamples(t *testing.T) {
	req := require.New(t)
	repository := NewSampleRepository(openBadger(t), slog.Default())

	req.NoError(repository.StoreSamples([]domain.Sample{{Text: "old", Label: 1}}))
	replacement := []domain.Sample{
		{Text: "Dégage d'ici, personne ne te supporte.", Label: 1},
		{Text: "Merci pour ces conseils.", Label: 0},
	}
	req.NoError(repository.ReplaceSamples(replacement))

	dataset, err := repository.LoadDataset()
	req.NoError(err)
	stored, err := dataset.Samples()
	req.NoError(err)
	req.Equal(replacement, stored)
}

func TestSampleRepository_EmptyCorpus(t *testing.T) {
	repository := NewSampleRepository(openBadger(t), slog.Default())

	_, err := repository.LoadDataset()
	require.ErrorIs(t, err, errors.ErrEmptyDataset)
}
