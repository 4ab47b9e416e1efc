package analytics

import (
	"context"
	"testing"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator(t *testing.T) (*Aggregator, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	aggregator, err := NewAggregator(repos.Feedback, repos.Impressions, repos.Profiles)
	require.NoError(t, err)

	return aggregator, repos
}

func TestNewAggregator(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	t.Run("valid configuration", func(t *testing.T) {
		aggregator, err := NewAggregator(repos.Feedback, repos.Impressions, repos.Profiles)
		require.NoError(t, err)
		assert.NotNil(t, aggregator)
	})

	t.Run("nil feedback repository", func(t *testing.T) {
		_, err := NewAggregator(nil, repos.Impressions, repos.Profiles)
		assert.Equal(t, ErrFeedbackRepositoryRequired, err)
	})

	t.Run("nil impression repository", func(t *testing.T) {
		_, err := NewAggregator(repos.Feedback, nil, repos.Profiles)
		assert.Equal(t, ErrImpressionRepositoryRequired, err)
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewAggregator(repos.Feedback, repos.Impressions, nil)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})
}

func TestPlatformMetrics_Empty(t *testing.T) {
	aggregator, _ := newTestAggregator(t)

	metrics, err := aggregator.PlatformMetrics(context.Background())
	require.NoError(t, err)

	assert.Zero(t, metrics.FeedbackTotal)
	// No feedback means a zero rate, not a division error
	assert.Zero(t, metrics.HelpfulnessRate)
	assert.Zero(t, metrics.MatchesSurfaced)
}

func TestPlatformMetrics(t *testing.T) {
	aggregator, repos := newTestAggregator(t)
	ctx := context.Background()

	records := []*core.MatchFeedback{
		{UserId: 1, RequesterId: 10, CandidateId: 20, Helpful: true, Outcome: core.OutcomeContacted},
		{UserId: 1, RequesterId: 10, CandidateId: 21, Helpful: true, Outcome: core.OutcomeSuccessful},
		{UserId: 2, RequesterId: 11, CandidateId: 20, Helpful: false, Outcome: core.OutcomeNone},
		{UserId: 3, RequesterId: 12, CandidateId: 22, Helpful: false, Outcome: core.OutcomeNone},
	}
	for _, fb := range records {
		_, err := repos.Feedback.UpsertFeedback(ctx, fb)
		require.NoError(t, err)
	}

	impressions := []*core.MatchImpression{
		{RequesterId: 10, CandidateId: 20, Kind: core.MatchKindRule},
		// The same pair surfaced by both strategies counts once
		{RequesterId: 10, CandidateId: 20, Kind: core.MatchKindSimilarity},
		{RequesterId: 10, CandidateId: 21, Kind: core.MatchKindRule},
		{RequesterId: 11, CandidateId: 23, Kind: core.MatchKindSimilarity},
	}
	require.NoError(t, repos.Impressions.AddImpressions(ctx, impressions...))

	metrics, err := aggregator.PlatformMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, metrics.FeedbackTotal)
	assert.Equal(t, 2, metrics.HelpfulCount)
	assert.Equal(t, 2, metrics.NotHelpfulCount)
	assert.Equal(t, 1, metrics.ContactedCount)
	assert.Equal(t, 1, metrics.SuccessfulCount)
	assert.InDelta(t, 0.5, metrics.HelpfulnessRate, 0.001)

	assert.Equal(t, 3, metrics.MatchesSurfaced)
	// Pairs (10,20) and (10,21) got feedback; (11,23) did not
	assert.Equal(t, 2, metrics.MatchesWithFeedback)
}

func TestUserMetrics(t *testing.T) {
	aggregator, repos := newTestAggregator(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 10, Role: core.RoleRequester, UserId: 1, Name: "Acme", Eligible: true},
		{Id: 11, Role: core.RoleRequester, UserId: 2, Name: "Brightleaf", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	records := []*core.MatchFeedback{
		{UserId: 1, RequesterId: 10, CandidateId: 20, Helpful: true, Outcome: core.OutcomeContacted},
		{UserId: 2, RequesterId: 11, CandidateId: 20, Helpful: false, Outcome: core.OutcomeNone},
	}
	for _, fb := range records {
		_, err := repos.Feedback.UpsertFeedback(ctx, fb)
		require.NoError(t, err)
	}

	impressions := []*core.MatchImpression{
		{RequesterId: 10, CandidateId: 20, Kind: core.MatchKindRule},
		{RequesterId: 10, CandidateId: 21, Kind: core.MatchKindRule},
		{RequesterId: 11, CandidateId: 20, Kind: core.MatchKindRule},
	}
	require.NoError(t, repos.Impressions.AddImpressions(ctx, impressions...))

	metrics, err := aggregator.UserMetrics(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.FeedbackTotal)
	assert.Equal(t, 1, metrics.HelpfulCount)
	assert.InDelta(t, 1.0, metrics.HelpfulnessRate, 0.001)
	assert.Equal(t, 2, metrics.MatchesSurfaced)
	assert.Equal(t, 1, metrics.MatchesWithFeedback)
}

func TestUserMetrics_NoProfiles(t *testing.T) {
	aggregator, _ := newTestAggregator(t)

	metrics, err := aggregator.UserMetrics(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, metrics.FeedbackTotal)
	assert.Zero(t, metrics.MatchesSurfaced)
}
