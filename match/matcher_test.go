package match

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
	"github.com/poiesic/matchwire/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, opts ...Option) (*Matcher, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	matcher, err := NewMatcher(repos.Profiles, repos.Topics, repos.Embeddings, opts...)
	require.NoError(t, err)

	return matcher, repos
}

func TestNewMatcher(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	t.Run("valid configuration", func(t *testing.T) {
		matcher, err := NewMatcher(repos.Profiles, repos.Topics, repos.Embeddings)
		require.NoError(t, err)
		assert.NotNil(t, matcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		matcher, err := NewMatcher(repos.Profiles, repos.Topics, repos.Embeddings, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, matcher)
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewMatcher(nil, repos.Topics, repos.Embeddings)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil topic repository", func(t *testing.T) {
		_, err := NewMatcher(repos.Profiles, nil, repos.Embeddings)
		assert.Equal(t, ErrTopicRepositoryRequired, err)
	})

	t.Run("nil embedding repository", func(t *testing.T) {
		_, err := NewMatcher(repos.Profiles, repos.Topics, nil)
		assert.Equal(t, ErrEmbeddingRepositoryRequired, err)
	})

	t.Run("invalid max candidates", func(t *testing.T) {
		_, err := NewMatcher(repos.Profiles, repos.Topics, repos.Embeddings, WithMaxCandidates(0))
		assert.Error(t, err)
	})

	t.Run("invalid min similarity", func(t *testing.T) {
		_, err := NewMatcher(repos.Profiles, repos.Topics, repos.Embeddings, WithMinSimilarity(1.5))
		assert.Error(t, err)
	})
}

func seedTopics(t *testing.T, repos *badger.Repositories) map[string]core.ID {
	t.Helper()
	ctx := context.Background()

	topics := []*core.Topic{
		{Name: "robotics", Category: "technology"},
		{Name: "manufacturing", Category: "industry"},
		{Name: "healthcare", Category: "industry"},
	}
	added, err := repos.Topics.PutTopics(ctx, topics...)
	require.NoError(t, err)

	byName := make(map[string]core.ID, len(added))
	for _, topic := range added {
		byName[topic.Name] = topic.Id
	}
	return byName
}

func TestMatchByRules(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()
	topics := seedTopics(t, repos)

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme Robotics",
			TopicIds: []core.ID{topics["robotics"], topics["manufacturing"]}, Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Dana Wu",
			TopicIds: []core.ID{topics["robotics"], topics["manufacturing"]}, Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Omar Haddad",
			TopicIds: []core.ID{topics["robotics"]}, Eligible: true},
		{Id: 4, Role: core.RoleCandidate, UserId: 400, Name: "Priya Nair",
			TopicIds: []core.ID{topics["healthcare"]}, Eligible: true},
		{Id: 5, Role: core.RoleCandidate, UserId: 500, Name: "Ineligible",
			TopicIds: []core.ID{topics["robotics"]}, Eligible: false},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	results, err := matcher.MatchByRules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Larger overlap ranks first
	assert.Equal(t, core.ID(2), results[0].CandidateId)
	assert.Equal(t, 1, results[0].Rank)
	assert.Len(t, results[0].MatchedTopicIds, 2)
	assert.Equal(t, core.MatchKindRule, results[0].Kind)

	assert.Equal(t, core.ID(3), results[1].CandidateId)
	assert.Equal(t, 2, results[1].Rank)
	assert.Len(t, results[1].MatchedTopicIds, 1)
}

func TestMatchByRules_Explanation(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()
	topics := seedTopics(t, repos)

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme Robotics",
			TopicIds: []core.ID{topics["robotics"], topics["manufacturing"]}, Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Dana Wu",
			TopicIds: []core.ID{topics["robotics"], topics["manufacturing"]}, Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	results, err := matcher.MatchByRules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Contains(t, results[0].Explanation, "Dana Wu covers")
	assert.Contains(t, results[0].Explanation, "aligns with Acme Robotics's focus on")
}

func TestMatchByRules_Errors(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "No Topics", Eligible: true},
		{Id: 2, Role: core.RoleRequester, UserId: 101, Name: "Paused", TopicIds: []core.ID{9}, Eligible: false},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	t.Run("unknown requester", func(t *testing.T) {
		_, err := matcher.MatchByRules(ctx, 9999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("requester without topics", func(t *testing.T) {
		_, err := matcher.MatchByRules(ctx, 1)
		assert.ErrorIs(t, err, ErrIncompleteProfile)
	})

	t.Run("ineligible requester", func(t *testing.T) {
		_, err := matcher.MatchByRules(ctx, 2)
		assert.ErrorIs(t, err, ErrIneligibleProfile)
	})
}

func TestMatchByRules_SkipsSameOwner(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()
	topics := seedTopics(t, repos)

	// Both profiles belong to user 100; matching them would introduce a
	// user to themselves.
	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme",
			TopicIds: []core.ID{topics["robotics"]}, Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 100, Name: "Acme Founder",
			TopicIds: []core.ID{topics["robotics"]}, Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	results, err := matcher.MatchByRules(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchBySimilarity(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Close", Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Closer", Eligible: true},
		{Id: 4, Role: core.RoleCandidate, UserId: 400, Name: "Distant", Eligible: true},
		{Id: 5, Role: core.RoleCandidate, UserId: 500, Name: "Unembedded", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	embeddings := []*core.ProfileEmbedding{
		{ProfileId: 1, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}},
		{ProfileId: 2, ModelVersion: core.DefaultModelVersion, Vector: []float32{0.8, 0.6}},
		{ProfileId: 3, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}},
		{ProfileId: 4, ModelVersion: core.DefaultModelVersion, Vector: []float32{0, 1}},
	}
	for _, embedding := range embeddings {
		require.NoError(t, repos.Embeddings.PutEmbedding(ctx, embedding))
	}

	results, err := matcher.MatchBySimilarity(ctx, 1, 0)
	require.NoError(t, err)

	// Distant is below the floor; Unembedded has no vector
	require.Len(t, results, 2)

	assert.Equal(t, core.ID(3), results[0].CandidateId)
	assert.InDelta(t, 1.0, results[0].Score, 0.001)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, core.MatchKindSimilarity, results[0].Kind)

	assert.Equal(t, core.ID(2), results[1].CandidateId)
	assert.InDelta(t, 0.8, results[1].Score, 0.001)
	assert.Equal(t, 2, results[1].Rank)

	assert.Contains(t, results[0].Explanation, "similarity")
}

func TestMatchBySimilarity_MissingRequesterEmbedding(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profile := &core.Profile{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true}
	_, err := repos.Profiles.PutProfiles(ctx, profile)
	require.NoError(t, err)

	_, err = matcher.MatchBySimilarity(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestMatchBySimilarity_StaleModelVersion(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profile := &core.Profile{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true}
	_, err := repos.Profiles.PutProfiles(ctx, profile)
	require.NoError(t, err)

	stale := &core.ProfileEmbedding{ProfileId: 1, ModelVersion: "v0", Vector: []float32{1, 0}}
	require.NoError(t, repos.Embeddings.PutEmbedding(ctx, stale))

	// An embedding from an earlier model version reads the same as none at all
	_, err = matcher.MatchBySimilarity(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestMatchBySimilarity_ZeroMagnitude(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Close", Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Degenerate", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	embeddings := []*core.ProfileEmbedding{
		{ProfileId: 1, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}},
		{ProfileId: 2, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}},
		{ProfileId: 3, ModelVersion: core.DefaultModelVersion, Vector: []float32{0, 0}},
	}
	for _, embedding := range embeddings {
		require.NoError(t, repos.Embeddings.PutEmbedding(ctx, embedding))
	}

	// A zero vector makes similarity undefined, so the candidate is excluded
	results, err := matcher.MatchBySimilarity(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(2), results[0].CandidateId)

	// A zero requester vector reads the same as no embedding at all
	zero := &core.ProfileEmbedding{ProfileId: 1, ModelVersion: core.DefaultModelVersion, Vector: []float32{0, 0}}
	require.NoError(t, repos.Embeddings.PutEmbedding(ctx, zero))
	_, err = matcher.MatchBySimilarity(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestMatchBySimilarity_MaxCandidates(t *testing.T) {
	matcher, repos := newTestMatcher(t, WithMaxCandidates(1))
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "First", Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Second", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	for _, id := range []core.ID{1, 2, 3} {
		embedding := &core.ProfileEmbedding{ProfileId: id, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}}
		require.NoError(t, repos.Embeddings.PutEmbedding(ctx, embedding))
	}

	results, err := matcher.MatchBySimilarity(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestMatchBySimilarity_CallerLimit(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "First", Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Second", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	for _, id := range []core.ID{1, 2, 3} {
		embedding := &core.ProfileEmbedding{ProfileId: id, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}}
		require.NoError(t, repos.Embeddings.PutEmbedding(ctx, embedding))
	}

	results, err := matcher.MatchBySimilarity(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// An oversized k falls back to the configured maximum
	results, err = matcher.MatchBySimilarity(ctx, 1, 1000)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

type recordingMonitor struct {
	started  bool
	listed   []core.ID
	skipped  []string
	finished int
}

func (r *recordingMonitor) Start(_ core.ID)                      { r.started = true }
func (r *recordingMonitor) AfterCandidateListing(ids []core.ID)  { r.listed = ids }
func (r *recordingMonitor) RuleHit(_ *core.Profile, _ []core.ID) {}
func (r *recordingMonitor) SimilarityHit(_ *core.Profile, _ float32) {}
func (r *recordingMonitor) SkippedCandidate(_ core.ID, reason string) {
	r.skipped = append(r.skipped, reason)
}
func (r *recordingMonitor) Finish(results []*core.MatchCandidate) { r.finished = len(results) }

func TestMatchBySimilarity_Monitor(t *testing.T) {
	matcher, repos := newTestMatcher(t)
	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Close", Eligible: true},
		{Id: 3, Role: core.RoleCandidate, UserId: 300, Name: "Unembedded", Eligible: true},
	}
	_, err := repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	for _, id := range []core.ID{1, 2} {
		embedding := &core.ProfileEmbedding{ProfileId: id, ModelVersion: core.DefaultModelVersion, Vector: []float32{1, 0}}
		require.NoError(t, repos.Embeddings.PutEmbedding(ctx, embedding))
	}

	monitor := &recordingMonitor{}
	results, err := matcher.MatchBySimilarityWithMonitor(ctx, 1, 0, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Len(t, monitor.listed, 2)
	assert.Contains(t, monitor.skipped, "no embedding")
	assert.Equal(t, len(results), monitor.finished)
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 0.001)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.001)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 0.001)
	})

	t.Run("zero magnitude", func(t *testing.T) {
		assert.Equal(t, float32(0), cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		assert.Equal(t, float32(0), cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	})
}

func TestClipScore(t *testing.T) {
	assert.Equal(t, float32(0), clipScore(-0.2))
	assert.Equal(t, float32(0.5), clipScore(0.5))
	assert.Equal(t, float32(1), clipScore(1.00001))
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "robotics", joinNames([]string{"robotics"}))
	assert.Equal(t, "robotics and healthcare", joinNames([]string{"robotics", "healthcare"}))
	assert.Equal(t, "a, b, and c", joinNames([]string{"a", "b", "c"}))
}

func TestRuleExplanation(t *testing.T) {
	got := RuleExplanation("Acme", "Dana", []string{"robotics"})
	assert.Equal(t, "Dana covers robotics, which aligns with Acme's focus on robotics.", got)
}
