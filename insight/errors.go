package insight

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrTopicRepositoryRequired is returned when a topic repository is not provided.
	ErrTopicRepositoryRequired = errors.New("topic repository required")

	// ErrAdvisorRequired is returned when an insight advisor is not provided.
	ErrAdvisorRequired = errors.New("insight advisor required")

	// ErrCandidateRequired is returned when a nil match candidate is passed in.
	ErrCandidateRequired = errors.New("match candidate required")
)
