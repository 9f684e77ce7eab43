package errors

import "fmt"

var (
	ErrNotFitted         = fmt.Errorf("model is not fitted")
	ErrDimensionMismatch = fmt.Errorf("dimension mismatch")
	ErrEmptyInput        = fmt.Errorf("empty input")
	ErrInvalidLabel      = fmt.Errorf("label must be 0 or 1")

	ErrEmptyDataset       = fmt.Errorf("dataset contains no samples")
	ErrUnsupportedDataset = fmt.Errorf("unsupported dataset format")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrNoComments         = fmt.Errorf("no comments to score")
	ErrStorageDisabled    = fmt.Errorf("verdict storage is disabled")
)
