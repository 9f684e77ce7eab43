package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatasetPath  string `envconfig:"E2E_DATASET_PATH" default:"../data/comments.json"`
	CommentsPath string `envconfig:"E2E_COMMENTS_PATH" default:"../data/new_comments.txt"`
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_MAX_ITER lets slow machines shorten training
	MaxIter int `envconfig:"E2E_MAX_ITER" default:"1000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
