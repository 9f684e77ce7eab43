package e2e

import (
	"context"
	"os"
	"strings"
	"testing"

	"toxic-lab/dataset"
	"toxic-lab/domain"
	"toxic-lab/services"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testPipelineSuite struct {
	BasePipelineSuite
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, &testPipelineSuite{})
}

func (s *testPipelineSuite) TestTrainScoreAndSearch() {
	var corpus domain.Dataset
	var comments []string

	// --- STEP 1: CORPUS ROUND TRIP ---
	s.Step("Step 1: Store the labeled corpus and read it back", func() {
		loaded, err := dataset.Load(s.Config.DatasetPath)
		s.Require().NoError(err)
		corpus, err = services.SyncCorpus(s.Samples, loaded)
		s.Require().NoError(err)
		// Training depends on sample order, storage must preserve it
		s.Require().Equal(loaded, corpus)
	})

	// --- STEP 2: TRAINING ---
	s.Step("Step 2: Train on the stored corpus", func() {
		report, err := s.Detector.Train(corpus)
		s.Require().NoError(err)
		s.Require().Equal(corpus.Len(), report.Samples)
		s.Require().Positive(report.Features)
		s.Require().Greater(report.Accuracy, 0.5)
	})

	// --- STEP 3: SCORING ---
	s.Step("Step 3: Score unseen comments", func() {
		raw, err := os.ReadFile(s.Config.CommentsPath)
		s.Require().NoError(err)
		comments = lo.Compact(strings.Split(strings.TrimSpace(string(raw)), "\n"))

		verdicts, err := s.Detector.Score(comments)
		s.Require().NoError(err)
		s.Require().Len(verdicts, len(comments))

		blocked := lo.Filter(verdicts, func(v domain.Verdict, _ int) bool { return len(v.BlockedWords) > 0 })
		s.Require().Len(blocked, 2)
		for _, v := range blocked {
			s.Require().True(v.Toxic())
			s.Require().Contains(v.Censored, "*")
		}
	})

	// --- STEP 4: HISTORY & SEARCH ---
	s.Step("Step 4: Page through history and search stored verdicts", func() {
		page, cursor, err := s.Detector.History(nil)
		s.Require().NoError(err)
		s.Require().Len(page, 2)

		seen := len(page)
		for len(page) > 0 {
			page, cursor, err = s.Detector.History(cursor)
			s.Require().NoError(err)
			seen += len(page)
		}
		s.Require().Equal(len(comments), seen)

		found, total, err := s.Detector.Search(context.Background(), "connard")
		s.Require().NoError(err)
		s.Require().Equal(uint64(1), total)
		s.Require().Equal("connard vas travailler", found[0].Comment)

		_, total, err = s.Detector.Search(context.Background(), "--limit 1")
		s.Require().NoError(err)
		s.Require().Equal(uint64(len(comments)), total)
	})
}
