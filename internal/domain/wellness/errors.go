package wellness

import "errors"

var (
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")
	ErrMissingBedTimes = errors.New("bed time and wake time are required")
)
