package embed

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrTopicRepositoryRequired is returned when a topic repository is not provided.
	ErrTopicRepositoryRequired = errors.New("topic repository required")

	// ErrEmbeddingRepositoryRequired is returned when an embedding repository is not provided.
	ErrEmbeddingRepositoryRequired = errors.New("embedding repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmptyVector is returned when the embedder produces an empty vector.
	ErrEmptyVector = errors.New("embedder produced an empty vector")
)
