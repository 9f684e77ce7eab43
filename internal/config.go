package internal

import (
	"fmt"
	"strings"

	"toxic-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type Config struct {
	LogLevel    string `env:"LOG_LEVEL,default=INFO"`
	// Needed to train, search and history only read the stores.
	DatasetPath string `env:"DATASET_PATH" validate:"required_without=EnableStorage"`

	// Space separated, in normalized form.
	Stopwords string `env:"STOPWORDS,default=le la les un une des du de dans"`
	// Comma separated, entries may span several words.
	Blocklist string `env:"BLOCKLIST"`

	MaxFeatures     int     `env:"MAX_FEATURES,default=100" validate:"gt=0"`
	LearningRate    float64 `env:"LEARNING_RATE,default=0.01" validate:"gt=0"`
	MaxIter         int     `env:"MAX_ITER,default=1000" validate:"gte=0"`
	CharReplacement string  `env:"CHARACTER_REPLACEMENT,default=*"`

	EnableStorage  bool   `env:"ENABLE_STORAGE,default=false"`
	BadgerFilepath string `env:"BADGER_FILEPATH" validate:"required_if=EnableStorage true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH" validate:"required_if=EnableStorage true"`
	LimitVerdicts  *int   `env:"LIMIT_VERDICTS"`
}

// Validate checks the struct tags after the environment has been decoded.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

// RequireDataset fails when no corpus is configured for training.
func (c Config) RequireDataset() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("%w: DATASET_PATH is required to train", errors.ErrInvalidConfig)
	}
	return nil
}

// CharacterReplacement is the censoring rune. Only meaningful once Validate passed.
func (c Config) CharacterReplacement() rune {
	return []rune(c.CharReplacement)[0]
}

func (c Config) StopwordList() []string {
	return strings.Fields(c.Stopwords)
}

func (c Config) BlocklistWords() []string {
	return lo.Compact(lo.Map(strings.Split(c.Blocklist, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"%w: CHARACTER_REPLACEMENT must be a single character, got %q",
			errors.ErrInvalidConfig, str,
		)
	}
	return r[0], nil
}
