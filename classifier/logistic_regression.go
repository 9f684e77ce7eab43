// Package classifier holds the binary toxicity model trained on count vectors.
package classifier

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"toxic-lab/errors"

	"github.com/samber/lo"
)

// Threshold is the probability a sample must strictly exceed to be labeled 1.
const Threshold = 0.5

// LogisticRegression is a bias-free logistic model trained with per-sample
// gradient ascent. Samples are visited in input order, so the update of
// sample i sees the weights left by sample i-1. It is not safe for concurrent use.
type LogisticRegression struct {
	learningRate float64
	maxIter      int
	weights      []float64
	fitted       bool
	log          *slog.Logger
}

// NewLogisticRegression creates an unfitted model.
func NewLogisticRegression(learningRate float64, maxIter int, log *slog.Logger) (*LogisticRegression, error) {
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: max iterations must not be negative, got %d", errors.ErrInvalidConfig, maxIter)
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return nil, fmt.Errorf("%w: learning rate must be finite", errors.ErrInvalidConfig)
	}
	return &LogisticRegression{learningRate: learningRate, maxIter: maxIter, log: log}, nil
}

// Fit resets the weights to zero and runs maxIter passes over (X, y).
func (m *LogisticRegression) Fit(X [][]int, y []int) error {
	width, err := checkTrainingSet(X, y)
	if err != nil {
		return err
	}

	weights := make([]float64, width)
	for iter := 0; iter < m.maxIter; iter++ {
		weights = lo.Reduce(X, func(w []float64, x []int, i int) []float64 {
			return m.step(w, x, y[i])
		}, weights)
	}
	m.weights = weights
	m.fitted = true

	m.log.Debug("Logistic regression fitted",
		"samples", len(X),
		"features", width,
		"iterations", m.maxIter,
		"updates", m.maxIter*len(X))
	return nil
}

// step applies one gradient update for a single sample and returns the weights.
func (m *LogisticRegression) step(w []float64, x []int, label int) []float64 {
	residual := float64(label) - Sigmoid(dot(w, x))
	for j := range w {
		w[j] += m.learningRate * residual * float64(x[j])
	}
	return w
}

// PredictProba returns sigmoid(w.x) for every row.
func (m *LogisticRegression) PredictProba(X [][]int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.ErrNotFitted
	}
	probas := make([]float64, len(X))
	for i, x := range X {
		if len(x) != len(m.weights) {
			return nil, fmt.Errorf("%w: row %d has %d features, model expects %d",
				errors.ErrDimensionMismatch, i, len(x), len(m.weights))
		}
		probas[i] = Sigmoid(dot(m.weights, x))
	}
	return probas, nil
}

// Predict labels a row 1 when its probability is strictly above Threshold.
// A probability of exactly 0.5 gives 0.
func (m *LogisticRegression) Predict(X [][]int) ([]int, error) {
	probas, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return lo.Map(probas, func(p float64, _ int) int {
		if p > Threshold {
			return 1
		}
		return 0
	}), nil
}

// Weights returns a copy of the learned weights.
func (m *LogisticRegression) Weights() []float64 {
	return slices.Clone(m.weights)
}

func (m *LogisticRegression) Fitted() bool {
	return m.fitted
}

// Sigmoid is 1 / (1 + e^-z) without clamping; large |z| saturates to exactly 0 or 1.
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func dot(w []float64, x []int) float64 {
	z := 0.0
	for i := range w {
		z += w[i] * float64(x[i])
	}
	return z
}

func checkTrainingSet(X [][]int, y []int) (int, error) {
	if len(X) != len(y) {
		return 0, fmt.Errorf("%w: %d rows for %d labels", errors.ErrDimensionMismatch, len(X), len(y))
	}
	if len(X) == 0 {
		return 0, fmt.Errorf("%w: no training rows", errors.ErrEmptyInput)
	}
	width := len(X[0])
	if width == 0 {
		return 0, fmt.Errorf("%w: zero feature width", errors.ErrEmptyInput)
	}
	for i, x := range X {
		if len(x) != width {
			return 0, fmt.Errorf("%w: row %d has %d features, expected %d",
				errors.ErrDimensionMismatch, i, len(x), width)
		}
		if y[i] != 0 && y[i] != 1 {
			return 0, fmt.Errorf("%w: got %d at row %d", errors.ErrInvalidLabel, y[i], i)
		}
	}
	return width, nil
}
