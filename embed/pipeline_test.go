package embed

import (
	"context"
	"testing"

	"github.com/poiesic/matchwire/ai/mock"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
	"github.com/poiesic/matchwire/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, embedder *mock.MockEmbedder, opts ...Option) (*Pipeline, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	// Pool size 1 keeps mock call counting deterministic
	opts = append([]Option{WithPoolSize(1)}, opts...)
	pipeline, err := NewPipeline(repos.Profiles, repos.Topics, repos.Embeddings, embedder, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repos
}

func TestNewPipeline(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(repos.Profiles, repos.Topics, repos.Embeddings, embedder)
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewPipeline(nil, repos.Topics, repos.Embeddings, embedder)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil topic repository", func(t *testing.T) {
		_, err := NewPipeline(repos.Profiles, nil, repos.Embeddings, embedder)
		assert.Equal(t, ErrTopicRepositoryRequired, err)
	})

	t.Run("nil embedding repository", func(t *testing.T) {
		_, err := NewPipeline(repos.Profiles, repos.Topics, nil, embedder)
		assert.Equal(t, ErrEmbeddingRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(repos.Profiles, repos.Topics, repos.Embeddings, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("empty model version", func(t *testing.T) {
		_, err := NewPipeline(repos.Profiles, repos.Topics, repos.Embeddings, embedder, WithModelVersion(""))
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	pipeline, repos := newTestPipeline(t, embedder)
	ctx := context.Background()

	topics, err := repos.Topics.PutTopics(ctx, &core.Topic{Name: "robotics", Category: "technology"})
	require.NoError(t, err)

	profiles := []*core.Profile{
		{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme",
			Description: "Robot arms", TopicIds: []core.ID{topics[0].Id}, Eligible: true},
		{Id: 2, Role: core.RoleCandidate, UserId: 200, Name: "Dana", Eligible: true},
	}
	_, err = repos.Profiles.PutProfiles(ctx, profiles...)
	require.NoError(t, err)

	refreshed, err := pipeline.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)

	for _, id := range []core.ID{1, 2} {
		embedding, err := repos.Embeddings.GetEmbedding(ctx, id, core.DefaultModelVersion)
		require.NoError(t, err)
		assert.NotEmpty(t, embedding.Vector)
		assert.False(t, embedding.GeneratedAt.IsZero())
	}
}

func TestRefresh_SkipsCurrentVersion(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	pipeline, repos := newTestPipeline(t, embedder)
	ctx := context.Background()

	profile := &core.Profile{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true}
	_, err := repos.Profiles.PutProfiles(ctx, profile)
	require.NoError(t, err)

	refreshed, err := pipeline.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, refreshed)
	callsAfterFirst := embedder.CallCount()

	// Second run finds a current embedding and embeds nothing
	refreshed, err = pipeline.Refresh(ctx)
	require.NoError(t, err)
	assert.Zero(t, refreshed)
	assert.Equal(t, callsAfterFirst, embedder.CallCount())
}

func TestRefresh_ReembedsStaleVersion(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	pipeline, repos := newTestPipeline(t, embedder, WithModelVersion("v2"))
	ctx := context.Background()

	profile := &core.Profile{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true}
	_, err := repos.Profiles.PutProfiles(ctx, profile)
	require.NoError(t, err)

	stale := &core.ProfileEmbedding{ProfileId: 1, ModelVersion: "v1", Vector: []float32{1, 0}}
	require.NoError(t, repos.Embeddings.PutEmbedding(ctx, stale))

	refreshed, err := pipeline.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)

	embedding, err := repos.Embeddings.GetEmbedding(ctx, 1, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", embedding.ModelVersion)

	// The stale vector is gone; a profile has one embedding at a time
	_, err = repos.Embeddings.GetEmbedding(ctx, 1, "v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRefreshProfile(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	pipeline, repos := newTestPipeline(t, embedder)
	ctx := context.Background()

	profile := &core.Profile{Id: 1, Role: core.RoleRequester, UserId: 100, Name: "Acme", Eligible: true}
	_, err := repos.Profiles.PutProfiles(ctx, profile)
	require.NoError(t, err)

	require.NoError(t, pipeline.RefreshProfile(ctx, 1))

	embedding, err := repos.Embeddings.GetEmbedding(ctx, 1, core.DefaultModelVersion)
	require.NoError(t, err)
	assert.NotEmpty(t, embedding.Vector)

	t.Run("unknown profile", func(t *testing.T) {
		err := pipeline.RefreshProfile(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestSourceText(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	pipeline, repos := newTestPipeline(t, embedder)
	ctx := context.Background()

	topics, err := repos.Topics.PutTopics(ctx,
		&core.Topic{Name: "robotics", Category: "technology"},
		&core.Topic{Name: "manufacturing", Category: "industry"},
	)
	require.NoError(t, err)

	profile := &core.Profile{
		Name:        "Acme",
		Description: "Robot arms",
		TopicIds:    []core.ID{topics[0].Id, topics[1].Id},
	}

	text, err := pipeline.sourceText(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, "Acme. Robot arms. Topics: robotics, manufacturing", text)
}
