// Package dataset reads labeled training corpora from disk.
// JSON files hold an array of {"text": ..., "label": 0|1} objects; CSV files hold
// text,label rows with an optional header. The format is sniffed from content.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"toxic-lab/domain"
	"toxic-lab/domain/mimetypes"
	"toxic-lab/errors"
)

// Load reads and validates the dataset stored at path.
func Load(path string) (domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	format := mimetypes.Detect(raw, path)
	if format != mimetypes.ApplicationJSON && format != mimetypes.TextCSV {
		return domain.Dataset{}, fmt.Errorf("%w: %s detected for %s", errors.ErrUnsupportedDataset, format, path)
	}
	return Decode(bytes.NewReader(raw), format)
}

// Decode parses r in the given mime format.
func Decode(r io.Reader, format mimetypes.MIME) (domain.Dataset, error) {
	var (
		samples []domain.Sample
		err     error
	)
	switch format {
	case mimetypes.ApplicationJSON:
		samples, err = decodeJSON(r)
	case mimetypes.TextCSV:
		samples, err = decodeCSV(r)
	default:
		return domain.Dataset{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedDataset, format)
	}
	if err != nil {
		return domain.Dataset{}, err
	}
	return domain.NewDataset(samples)
}

func decodeJSON(r io.Reader) ([]domain.Sample, error) {
	var samples []domain.Sample
	if err := json.NewDecoder(r).Decode(&samples); err != nil {
		return nil, fmt.Errorf("decode json dataset: %w", err)
	}
	return samples, nil
}

func decodeCSV(r io.Reader) ([]domain.Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv dataset: %w", err)
	}

	samples := make([]domain.Sample, 0, len(records))
	for i, record := range records {
		label, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		samples = append(samples, domain.Sample{Text: record[0], Label: label})
	}
	return samples, nil
}
