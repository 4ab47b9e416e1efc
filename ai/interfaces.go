package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity matching.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// InsightAdvisor produces a qualitative read on a proposed introduction.
// The advisor is advisory only: its output never changes which candidates
// are surfaced or how they rank.
// Implementations must be thread-safe for concurrent use.
type InsightAdvisor interface {
	// Advise analyzes a proposed match and returns a rationale, a suggested
	// outreach angle, and any risk flags the model identified.
	// Returns an error if the underlying model call or parsing fails.
	Advise(ctx context.Context, summary MatchSummary) (*InsightBundle, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and InsightAdvisor instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// InsightAdvisor returns the match insight service.
	// The returned InsightAdvisor is safe for concurrent use.
	InsightAdvisor() InsightAdvisor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
