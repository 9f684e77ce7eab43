// Package domain contains core concepts of the toxicity detector.
// This file defines labeled samples, datasets and scoring verdicts.
package domain

import (
	"fmt"
	"time"

	"toxic-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// Label is the binary class of a comment.
type Label int

const (
	LabelClean Label = 0
	LabelToxic Label = 1
)

func (l Label) String() string {
	if l == LabelToxic {
		return "toxic"
	}
	return "clean"
}

// Sample is one labeled comment of a training corpus.
type Sample struct {
	Text  string `json:"text" validate:"required"`
	Label int    `json:"label" validate:"oneof=0 1"`
}

// Dataset is an ordered training corpus. Order is significant: training
// visits samples in this order.
type Dataset struct {
	Texts  []string
	Labels []int
}

// NewDataset validates every sample and keeps their order.
func NewDataset(samples []Sample) (Dataset, error) {
	if len(samples) == 0 {
		return Dataset{}, errors.ErrEmptyDataset
	}
	for i, s := range samples {
		if err := validate.Struct(s); err != nil {
			return Dataset{}, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return Dataset{
		Texts:  lo.Map(samples, func(s Sample, _ int) string { return s.Text }),
		Labels: lo.Map(samples, func(s Sample, _ int) int { return s.Label }),
	}, nil
}

// Samples zips texts and labels back together. Texts and labels of different
// lengths are rejected rather than padded.
func (d Dataset) Samples() ([]Sample, error) {
	if len(d.Texts) != len(d.Labels) {
		return nil, fmt.Errorf("%w: %d texts for %d labels", errors.ErrDimensionMismatch, len(d.Texts), len(d.Labels))
	}
	return lo.Map(lo.Zip2(d.Texts, d.Labels), func(t lo.Tuple2[string, int], _ int) Sample {
		return Sample{Text: t.A, Label: t.B}
	}), nil
}

func (d Dataset) Len() int {
	return len(d.Texts)
}

// Verdict is the outcome of scoring one comment.
type Verdict struct {
	ID           uuid.UUID
	Comment      string
	Normalized   string
	Censored     string
	Label        Label
	Score        float64
	Lang         string
	BlockedWords []string
	At           time.Time
}

// Toxic is true when either the model or the blocklist flagged the comment.
func (v Verdict) Toxic() bool {
	return v.Label == LabelToxic || len(v.BlockedWords) > 0
}
