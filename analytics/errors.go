package analytics

import "errors"

var (
	// ErrFeedbackRepositoryRequired is returned when a feedback repository is not provided.
	ErrFeedbackRepositoryRequired = errors.New("feedback repository required")

	// ErrImpressionRepositoryRequired is returned when an impression repository is not provided.
	ErrImpressionRepositoryRequired = errors.New("impression repository required")

	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")
)
