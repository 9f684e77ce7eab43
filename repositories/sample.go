//go:generate go run go.uber.org/mock/mockgen -source=sample.go -destination=../mocks/mock_sample_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"toxic-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	SamplePrefix   = "sample:"
	sampleSequence = "seq:sample"
)

type ISampleRepository interface {
	ReplaceSamples(samples []domain.Sample) error
	StoreSamples(samples []domain.Sample) error
	LoadDataset() (domain.Dataset, error)
}

type SampleRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSampleRepository(db *badger.DB, log *slog.Logger) SampleRepository {
	return SampleRepository{db: db, log: log}
}

// ReplaceSamples drops the stored corpus and stores samples in its place.
func (r SampleRepository) ReplaceSamples(samples []domain.Sample) error {
	if err := r.db.DropPrefix([]byte(SamplePrefix)); err != nil {
		return fmt.Errorf("drop corpus: %w", err)
	}
	return r.StoreSamples(samples)
}

// StoreSamples appends samples to the corpus.
// The key is formatted as "sample:{sequence_padded}:{uuid}" so a prefix scan
// returns samples in insertion order, which training depends on.
func (r SampleRepository) StoreSamples(samples []domain.Sample) error {
	seq, err := r.db.GetSequence([]byte(sampleSequence), uint64(len(samples))+1)
	if err != nil {
		return err
	}
	defer func() {
		if err := seq.Release(); err != nil {
			r.log.Warn("Failed to release sample sequence", "err", err)
		}
	}()

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, s := range samples {
		n, err := seq.Next()
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%019d:%s", SamplePrefix, n, uuid.New())
		value, err := encode(map[string]any{
			"text":  s.Text,
			"label": float64(s.Label),
		})
		if err != nil {
			return err
		}
		if err := wb.Set([]byte(key), value); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	r.log.Debug("Samples stored", "count", len(samples))
	return nil
}

// LoadDataset reads the whole corpus back in insertion order.
func (r SampleRepository) LoadDataset() (domain.Dataset, error) {
	var samples []domain.Sample
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(SamplePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				sample, err := ToSample(value)
				if err != nil {
					return err
				}
				samples = append(samples, sample)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Dataset{}, err
	}
	return domain.NewDataset(samples)
}

// ToSample decodes a stored sample value.
func ToSample(value []byte) (domain.Sample, error) {
	record, err := decode(value)
	if err != nil {
		return domain.Sample{}, err
	}
	return domain.Sample{
		Text:  stringField(record, "text"),
		Label: int(numberField(record, "label")),
	}, nil
}
