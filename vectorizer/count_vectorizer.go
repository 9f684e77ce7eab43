// Package vectorizer turns normalized comments into bag-of-words count vectors.
package vectorizer

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"toxic-lab/errors"

	"github.com/samber/lo"
)

// CountVectorizer maps documents onto a frequency-ranked vocabulary.
// It is not safe for concurrent use.
type CountVectorizer struct {
	stopwords   map[string]struct{}
	maxFeatures int
	vocabulary  map[string]int
	terms       []string
	fitted      bool
	log         *slog.Logger
}

type termCount struct {
	term  string
	count int
}

// NewCountVectorizer builds an unfitted vectorizer keeping at most maxFeatures terms.
func NewCountVectorizer(stopwords []string, maxFeatures int, log *slog.Logger) (*CountVectorizer, error) {
	if maxFeatures <= 0 {
		return nil, fmt.Errorf("%w: max features must be positive, got %d", errors.ErrInvalidConfig, maxFeatures)
	}
	return &CountVectorizer{
		stopwords: lo.SliceToMap(stopwords, func(w string) (string, struct{}) {
			return w, struct{}{}
		}),
		maxFeatures: maxFeatures,
		log:         log,
	}, nil
}

// Fit rebuilds the vocabulary from docs, discarding any previous one.
// Terms are ranked by corpus frequency, most frequent first, and equal
// frequencies are ordered by ascending term so two fits on the same corpus
// always give the same indices.
func (v *CountVectorizer) Fit(docs []string) error {
	freq := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range tokenize(doc) {
			if _, stop := v.stopwords[tok]; stop {
				continue
			}
			freq[tok]++
		}
	}

	ranked := lo.Map(lo.Entries(freq), func(e lo.Entry[string, int], _ int) termCount {
		return termCount{term: e.Key, count: e.Value}
	})
	slices.SortFunc(ranked, func(a, b termCount) int {
		if a.count != b.count {
			return cmp.Compare(b.count, a.count)
		}
		return strings.Compare(a.term, b.term)
	})

	size := min(v.maxFeatures, len(ranked))
	v.terms = make([]string, size)
	v.vocabulary = make(map[string]int, size)
	for i, tc := range ranked[:size] {
		v.terms[i] = tc.term
		v.vocabulary[tc.term] = i
	}
	v.fitted = true

	v.log.Debug("Vocabulary built",
		"documents", len(docs),
		"distinct_terms", len(ranked),
		"vocabulary_size", size)
	if size == 0 {
		v.log.Warn("Vocabulary is empty, no feature can be produced")
	}
	return nil
}

// FitTransform fits the vocabulary on docs and returns their count matrix.
func (v *CountVectorizer) FitTransform(docs []string) ([][]int, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Transform counts vocabulary terms in every document.
// Unknown terms are dropped and the vocabulary is never extended.
func (v *CountVectorizer) Transform(docs []string) ([][]int, error) {
	if !v.fitted {
		return nil, errors.ErrNotFitted
	}
	features := make([][]int, len(docs))
	for i, doc := range docs {
		row := make([]int, len(v.terms))
		for _, tok := range tokenize(doc) {
			if idx, ok := v.vocabulary[tok]; ok {
				row[idx]++
			}
		}
		features[i] = row
	}
	return features, nil
}

// Vocabulary returns a copy of the term to index mapping.
func (v *CountVectorizer) Vocabulary() map[string]int {
	out := make(map[string]int, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		out[term] = idx
	}
	return out
}

// Terms returns the vocabulary terms in index order.
func (v *CountVectorizer) Terms() []string {
	return slices.Clone(v.terms)
}

// Size is the feature width produced by Transform.
func (v *CountVectorizer) Size() int {
	return len(v.terms)
}

func (v *CountVectorizer) Fitted() bool {
	return v.fitted
}

func tokenize(doc string) []string {
	return strings.Fields(doc)
}
