package e2e

import (
	"fmt"
	"log/slog"

	"toxic-lab/classifier"
	"toxic-lab/moderation"
	"toxic-lab/normalize"
	"toxic-lab/observability"
	"toxic-lab/repositories"
	"toxic-lab/services"
	"toxic-lab/vectorizer"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

var (
	stopwords = []string{"le", "la", "les", "un", "une", "des", "du", "de", "dans"}
	blocklist = []string{"connard", "imbécile", "va te faire"}
)

// BasePipelineSuite runs the detector against real Badger and Bluge stores
// living in the test's temporary directory.
type BasePipelineSuite struct {
	suite.Suite
	Config   Config
	Log      *slog.Logger
	DB       *badger.DB
	Index    *bluge.Writer
	Samples  repositories.SampleRepository
	Detector *services.DetectorService
}

// SetupSuite loads the environment configuration and opens the stores
func (s *BasePipelineSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromLevel(slog.LevelInfo)

	s.DB, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.WARNING))
	s.Require().NoError(err)
	s.Index, err = bluge.OpenWriter(bluge.DefaultConfig(s.T().TempDir()))
	s.Require().NoError(err)

	extractor, err := vectorizer.NewCountVectorizer(stopwords, 100, s.Log)
	s.Require().NoError(err)
	model, err := classifier.NewLogisticRegression(0.01, s.Config.MaxIter, s.Log)
	s.Require().NoError(err)
	moderator, err := moderation.NewModerator(blocklist, '*', s.Log)
	s.Require().NoError(err)

	limit := 2
	s.Samples = repositories.NewSampleRepository(s.DB, s.Log)
	verdicts := repositories.NewVerdictRepository(s.DB, s.Index, s.Log, &limit)
	s.Detector = services.NewDetectorService(
		s.Log, normalize.NewDefault(), extractor, model, moderator, verdicts, observability.NewMonitor(s.Log),
	)
}

func (s *BasePipelineSuite) TearDownSuite() {
	_ = s.Index.Close()
	_ = s.DB.Close()
}

// Step prints a header then runs fn as a named subtest
func (s *BasePipelineSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}
