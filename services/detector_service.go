package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"toxic-lab/domain"
	"toxic-lab/domain/search"
	"toxic-lab/errors"
	"toxic-lab/moderation"
	"toxic-lab/normalize"
	"toxic-lab/observability"
	"toxic-lab/repositories"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type Stage string

const (
	StageVectorize Stage = "vectorize"
	StageTrain     Stage = "train"
	StagePredict   Stage = "predict"
	StageStore     Stage = "store"
	StageSearch    Stage = "search"
)

// StageError tells the caller which pipeline stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// FeatureExtractor is the vectorizer contract the detector depends on.
type FeatureExtractor interface {
	FitTransform(docs []string) ([][]int, error)
	Transform(docs []string) ([][]int, error)
	Terms() []string
}

// Model is the binary classifier contract the detector depends on.
type Model interface {
	Fit(X [][]int, y []int) error
	Predict(X [][]int) ([]int, error)
	PredictProba(X [][]int) ([]float64, error)
}

type IDetectorService interface {
	Train(dataset domain.Dataset) (TrainReport, error)
	Score(comments []string) ([]domain.Verdict, error)
	History(cursor *string) ([]domain.Verdict, *string, error)
	Search(ctx context.Context, input string) ([]domain.Verdict, uint64, error)
}

var _ IDetectorService = (*DetectorService)(nil)

// TrainReport summarizes a training run. Accuracy is measured on the training
// corpus itself, there is no held-out set.
type TrainReport struct {
	Samples   int
	Features  int
	Terms     []string
	Accuracy  float64
	Duration  time.Duration
	Resources observability.Snapshot
}

// DetectorService wires normalizer, vectorizer, classifier and blocklist into
// the train and score pipelines. Train and Score may be called from several
// goroutines; the underlying components are only ever used under the lock.
type DetectorService struct {
	mu         sync.RWMutex
	log        *slog.Logger
	normalizer normalize.Normalizer
	extractor  FeatureExtractor
	model      Model
	moderator  moderation.Moderator
	verdicts   repositories.IVerdictRepository
	monitor    *observability.Monitor
	trained    bool
	now        func() time.Time
}

// NewDetectorService builds the detector. verdicts may be nil to disable persistence.
func NewDetectorService(
	log *slog.Logger,
	normalizer normalize.Normalizer,
	extractor FeatureExtractor,
	model Model,
	moderator moderation.Moderator,
	verdicts repositories.IVerdictRepository,
	monitor *observability.Monitor,
) *DetectorService {
	return &DetectorService{
		log:        log,
		normalizer: normalizer,
		extractor:  extractor,
		model:      model,
		moderator:  moderator,
		verdicts:   verdicts,
		monitor:    monitor,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Train normalizes the corpus, rebuilds the vocabulary and fits the model.
func (s *DetectorService) Train(dataset domain.Dataset) (TrainReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A failed run leaves vocabulary and weights out of step, scoring stays
	// refused until a run completes.
	s.trained = false
	start := time.Now()
	normalized := normalize.All(s.normalizer, dataset.Texts)

	X, err := s.extractor.FitTransform(normalized)
	if err != nil {
		return TrainReport{}, stageErr(StageVectorize, err)
	}
	if err := s.model.Fit(X, dataset.Labels); err != nil {
		return TrainReport{}, stageErr(StageTrain, err)
	}
	predictions, err := s.model.Predict(X)
	if err != nil {
		return TrainReport{}, stageErr(StagePredict, err)
	}

	report := TrainReport{
		Samples:  len(X),
		Features: len(X[0]),
		Terms:    s.extractor.Terms(),
		Accuracy: accuracy(predictions, dataset.Labels),
		Duration: time.Since(start),
	}
	if s.monitor != nil {
		report.Resources = s.monitor.Report(string(StageTrain))
	}
	s.trained = true

	s.log.Info("Detector trained",
		"samples", report.Samples,
		"features", report.Features,
		"training_accuracy", report.Accuracy,
		"duration", report.Duration)
	return report, nil
}

// Score runs every comment through the trained pipeline and the blocklist.
func (s *DetectorService) Score(comments []string) ([]domain.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(comments) == 0 {
		return nil, errors.ErrNoComments
	}
	if !s.trained {
		return nil, stageErr(StagePredict, errors.ErrNotFitted)
	}
	normalized := normalize.All(s.normalizer, comments)

	X, err := s.extractor.Transform(normalized)
	if err != nil {
		return nil, stageErr(StageVectorize, err)
	}
	labels, err := s.model.Predict(X)
	if err != nil {
		return nil, stageErr(StagePredict, err)
	}
	probas, err := s.model.PredictProba(X)
	if err != nil {
		return nil, stageErr(StagePredict, err)
	}

	verdicts := make([]domain.Verdict, len(comments))
	for i, comment := range comments {
		censored, blocked := s.moderator.Censor(comment)
		verdicts[i] = domain.Verdict{
			ID:           uuid.New(),
			Comment:      comment,
			Normalized:   normalized[i],
			Censored:     censored,
			Label:        domain.Label(labels[i]),
			Score:        probas[i],
			Lang:         whatlanggo.Detect(comment).Lang.Iso6391(),
			BlockedWords: blocked,
			At:           s.now(),
		}
		if verdicts[i].Toxic() {
			s.log.Warn("Toxic comment detected",
				"score", probas[i],
				"lang", verdicts[i].Lang,
				"blocked_words", blocked)
		}
	}

	if s.verdicts != nil {
		for _, v := range verdicts {
			if err := s.verdicts.Store(v); err != nil {
				return verdicts, stageErr(StageStore, err)
			}
		}
	}
	return verdicts, nil
}

// History pages through stored verdicts, newest first.
func (s *DetectorService) History(cursor *string) ([]domain.Verdict, *string, error) {
	if s.verdicts == nil {
		return nil, nil, errors.ErrStorageDisabled
	}
	verdicts, next, err := s.verdicts.GetVerdicts(cursor)
	if err != nil {
		return nil, nil, stageErr(StageSearch, err)
	}
	return verdicts, next, nil
}

// Search looks up stored verdicts. input holds the words to match followed by
// optional --label, --lang and --limit filters; without any criterion every
// stored verdict matches.
func (s *DetectorService) Search(ctx context.Context, input string) ([]domain.Verdict, uint64, error) {
	if s.verdicts == nil {
		return nil, 0, errors.ErrStorageDisabled
	}
	query := search.NewSearchQuery(input)
	s.log.Debug("Searching verdicts", "terms", query.Terms, "label", query.Label, "lang", query.Lang, "limit", query.Limit)
	verdicts, total, err := s.verdicts.Search(ctx, query)
	if err != nil {
		return nil, 0, stageErr(StageSearch, err)
	}
	return verdicts, total, nil
}

func accuracy(predictions, labels []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	correct := 0
	for i := range labels {
		if predictions[i] == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels))
}
