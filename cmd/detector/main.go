package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"toxic-lab/classifier"
	"toxic-lab/dataset"
	"toxic-lab/internal"
	"toxic-lab/moderation"
	"toxic-lab/normalize"
	"toxic-lab/observability"
	"toxic-lab/repositories"
	"toxic-lab/services"
	"toxic-lab/vectorizer"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell or CI job.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detector terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, storage and the detector, then either scores the
// given comments or queries stored verdicts. Returning instead of exiting lets
// the deferred Badger and Bluge cleanups run.
func run() (int, error) {
	search := flag.String("search", "", "Search stored verdicts instead of scoring, e.g. 'connard --label toxic --lang fr --limit 5'")
	history := flag.Bool("history", false, "List stored verdicts, newest first")
	input := flag.String("input", "", "File with one comment per line (default: arguments, then stdin)")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Optional storage (BadgerDB + Bluge)
	var (
		samples  repositories.ISampleRepository
		verdicts repositories.IVerdictRepository
	)
	if config.EnableStorage {
		db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()

		blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
		}
		defer func() {
			logger.Info("Closing Bluge...")
			_ = blugeWriter.Close()
		}()

		samples = repositories.NewSampleRepository(db, logger)
		verdicts = repositories.NewVerdictRepository(db, blugeWriter, logger, config.LimitVerdicts)
	}

	// 3. Detector
	detector, err := buildDetector(config, logger, config.CharacterReplacement(), verdicts)
	if err != nil {
		return exitConfig, err
	}

	switch {
	case *search != "":
		found, total, err := detector.Search(ctx, *search)
		if err != nil {
			return exitRuntime, reportFailure(logger, err)
		}
		fmt.Printf("%d verdict(s) match %q\n", total, *search)
		renderVerdicts(os.Stdout, found)
		return exitOK, nil
	case *history:
		page, _, err := detector.History(nil)
		if err != nil {
			return exitRuntime, reportFailure(logger, err)
		}
		renderVerdicts(os.Stdout, page)
		return exitOK, nil
	}

	// 4. Labeled corpus, only needed to train
	if err := config.RequireDataset(); err != nil {
		return exitConfig, err
	}
	corpus, err := dataset.Load(config.DatasetPath)
	if err != nil {
		return exitRuntime, fmt.Errorf("dataset loading failed: %w", err)
	}
	if samples != nil {
		// The stored corpus mirrors the dataset file, training reads it back.
		if corpus, err = services.SyncCorpus(samples, corpus); err != nil {
			return exitRuntime, err
		}
	}

	// 5. Train, then score
	report, err := detector.Train(corpus)
	if err != nil {
		return exitRuntime, reportFailure(logger, err)
	}
	renderReport(os.Stdout, report)

	comments, err := readComments(flag.Args(), *input, os.Stdin)
	if err != nil {
		return exitRuntime, err
	}
	scored, err := detector.Score(comments)
	if err != nil {
		return exitRuntime, reportFailure(logger, err)
	}
	renderVerdicts(os.Stdout, scored)
	return exitOK, nil
}

func buildDetector(
	config internal.Config,
	logger *slog.Logger,
	charReplacement rune,
	verdicts repositories.IVerdictRepository,
) (*services.DetectorService, error) {
	extractor, err := vectorizer.NewCountVectorizer(config.StopwordList(), config.MaxFeatures, logger)
	if err != nil {
		return nil, err
	}
	model, err := classifier.NewLogisticRegression(config.LearningRate, config.MaxIter, logger)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(config.BlocklistWords(), charReplacement, logger)
	if err != nil {
		return nil, err
	}
	return services.NewDetectorService(
		logger,
		normalize.NewDefault(),
		extractor,
		model,
		moderator,
		verdicts,
		observability.NewMonitor(logger),
	), nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// reportFailure logs the stage that stopped the pipeline. Stage-less errors
// are returned untouched.
func reportFailure(logger *slog.Logger, err error) error {
	var stageErr *services.StageError
	if errors.As(err, &stageErr) {
		logger.Error("Pipeline stage failed", "stage", stageErr.Stage, "error", stageErr.Err)
	}
	return err
}
