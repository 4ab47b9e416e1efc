package storage

import (
	"context"

	"github.com/poiesic/matchwire/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProfileRepository provides read and write access to matchable profiles.
// The engine treats profiles as read-only; writes exist for the profile
// management collaborator and for seeding test data.
type ProfileRepository interface {
	Repository

	// PutProfiles inserts or replaces profiles keyed by their ID.
	// For profiles with ID=0, generates a deterministic ID from role and name.
	// Sets InsertedAt if not already set and updates UpdatedAt.
	PutProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// GetProfileByUser retrieves the profile owned by a user with the given role.
	// Returns ErrNotFound if the user has no such profile.
	GetProfileByUser(ctx context.Context, userId core.ID, role core.Role) (*core.Profile, error)

	// ListEligibleCandidates retrieves all profiles of the given role whose
	// eligibility flag is set, ordered by ID ascending.
	ListEligibleCandidates(ctx context.Context, role core.Role) ([]*core.Profile, error)

	// ListProfiles retrieves every stored profile, ordered by ID ascending.
	ListProfiles(ctx context.Context) ([]*core.Profile, error)
}

// TopicRepository provides access to the topic taxonomy.
type TopicRepository interface {
	Repository

	// PutTopics inserts or replaces topics.
	// Uses content-based IDs (IDFromContent of the topic tuple) when ID=0.
	// Sets InsertedAt if not already set.
	PutTopics(ctx context.Context, topics ...*core.Topic) ([]*core.Topic, error)

	// GetTopic retrieves a single topic by ID.
	// Returns ErrNotFound if the topic doesn't exist.
	GetTopic(ctx context.Context, id core.ID) (*core.Topic, error)

	// GetTopics retrieves multiple topics by their IDs.
	// Returns only the topics that exist (no error for missing topics).
	GetTopics(ctx context.Context, ids ...core.ID) ([]*core.Topic, error)
}

// EmbeddingRepository provides access to cached profile embeddings.
// Embeddings are generated asynchronously, so absence is an ordinary state.
type EmbeddingRepository interface {
	Repository

	// PutEmbedding inserts or replaces the embedding for a profile.
	// A profile has at most one stored embedding; the previous one is overwritten.
	PutEmbedding(ctx context.Context, embedding *core.ProfileEmbedding) error

	// GetEmbedding retrieves the embedding for a profile if its model version
	// matches. Returns ErrNotFound when the embedding is absent or was
	// generated by a different model version.
	GetEmbedding(ctx context.Context, profileId core.ID, modelVersion string) (*core.ProfileEmbedding, error)
}

// FeedbackRepository is the append-only ledger of match feedback.
// Records are never deleted; a resubmission for the same (user, pair)
// overwrites the existing record under the store's transaction guarantee.
type FeedbackRepository interface {
	Repository

	// UpsertFeedback stores feedback keyed by core.FeedbackKey.
	// If a record for the same (user, pair) exists, its Helpful, Outcome,
	// Notes, and UpdatedAt are overwritten while InsertedAt is preserved.
	// Returns the stored record.
	UpsertFeedback(ctx context.Context, feedback *core.MatchFeedback) (*core.MatchFeedback, error)

	// GetFeedback retrieves a single feedback record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetFeedback(ctx context.Context, id core.ID) (*core.MatchFeedback, error)

	// GetFeedbackByUser retrieves all feedback submitted by a user,
	// newest first.
	GetFeedbackByUser(ctx context.Context, userId core.ID) ([]*core.MatchFeedback, error)

	// GetFeedbackForPair retrieves all feedback for a specific match pair,
	// newest first.
	GetFeedbackForPair(ctx context.Context, requesterId, candidateId core.ID) ([]*core.MatchFeedback, error)

	// AllFeedback retrieves every stored feedback record.
	// Analytics recomputes metrics from this scan on every request.
	AllFeedback(ctx context.Context) ([]*core.MatchFeedback, error)
}

// ImpressionRepository logs which matches were surfaced to callers.
type ImpressionRepository interface {
	Repository

	// AddImpressions stores surfaced-match records keyed by core.ImpressionKey.
	// Re-surfacing the same pair updates ShownAt instead of adding a row.
	AddImpressions(ctx context.Context, impressions ...*core.MatchImpression) error

	// AllImpressions retrieves every stored impression record.
	AllImpressions(ctx context.Context) ([]*core.MatchImpression, error)

	// ImpressionsForRequester retrieves impressions for matches surfaced to
	// the given requester profile.
	ImpressionsForRequester(ctx context.Context, requesterId core.ID) ([]*core.MatchImpression, error)
}
