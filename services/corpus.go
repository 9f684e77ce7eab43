package services

import (
	"fmt"

	"toxic-lab/domain"
	"toxic-lab/repositories"
)

// SyncCorpus replaces the stored corpus with dataset and returns the corpus as
// read back from storage, so training sees exactly what was persisted.
func SyncCorpus(samples repositories.ISampleRepository, dataset domain.Dataset) (domain.Dataset, error) {
	rows, err := dataset.Samples()
	if err != nil {
		return domain.Dataset{}, err
	}
	if err := samples.ReplaceSamples(rows); err != nil {
		return domain.Dataset{}, fmt.Errorf("corpus storage failed: %w", err)
	}
	stored, err := samples.LoadDataset()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("corpus loading failed: %w", err)
	}
	return stored, nil
}
