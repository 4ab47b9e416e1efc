package embed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/matchwire/ai"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// Pipeline generates and refreshes profile embeddings.
type Pipeline struct {
	profiles     storage.ProfileRepository
	topics       storage.TopicRepository
	embeddings   storage.EmbeddingRepository
	embedder     ai.Embedder
	pool         *ants.Pool
	modelVersion string
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithModelVersion sets the version tag stored with generated embeddings.
// Default is core.DefaultModelVersion.
func WithModelVersion(version string) Option {
	return func(p *Pipeline) error {
		if version == "" {
			return errors.New("model version must not be empty")
		}
		p.modelVersion = version
		return nil
	}
}

// NewPipeline creates a new embedding pipeline.
func NewPipeline(
	profiles storage.ProfileRepository,
	topics storage.TopicRepository,
	embeddings storage.EmbeddingRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if topics == nil {
		return nil, ErrTopicRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profiles:     profiles,
		topics:       topics,
		embeddings:   embeddings,
		embedder:     embedder,
		pool:         pool,
		modelVersion: core.DefaultModelVersion,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Refresh embeds every profile whose cached embedding is missing or was
// generated by a different model version. Returns the number of profiles
// refreshed. Failures for individual profiles are logged and skipped.
func (p *Pipeline) Refresh(ctx context.Context) (int, error) {
	profiles, err := p.profiles.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}

	var refreshed atomic.Int64
	var wg sync.WaitGroup

	for _, profile := range profiles {
		_, err := p.embeddings.GetEmbedding(ctx, profile.Id, p.modelVersion)
		if err == nil {
			// Current-version embedding already cached
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return int(refreshed.Load()), err
		}

		profile := profile
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.embedProfile(ctx, profile); err != nil {
				p.logger.Error("error embedding profile", "profile", profile.Id, "err", err)
				return
			}
			refreshed.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			return int(refreshed.Load()), submitErr
		}
	}

	wg.Wait()
	p.logger.Info("embedding refresh complete",
		"profiles", len(profiles),
		"refreshed", refreshed.Load(),
		"modelVersion", p.modelVersion)

	return int(refreshed.Load()), nil
}

// RefreshProfile synchronously re-embeds a single profile, replacing any
// cached embedding regardless of version. Intended for the write path after
// a profile changes.
func (p *Pipeline) RefreshProfile(ctx context.Context, profileId core.ID) error {
	profile, err := p.profiles.GetProfile(ctx, profileId)
	if err != nil {
		return err
	}
	return p.embedProfile(ctx, profile)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// embedProfile renders, embeds, and stores one profile.
func (p *Pipeline) embedProfile(ctx context.Context, profile *core.Profile) error {
	text, err := p.sourceText(ctx, profile)
	if err != nil {
		return err
	}

	vector, err := p.embedder.EmbedText(ctx, text)
	if err != nil {
		return err
	}
	if len(vector) == 0 {
		return fmt.Errorf("%w: profile %d", ErrEmptyVector, profile.Id)
	}

	return p.embeddings.PutEmbedding(ctx, &core.ProfileEmbedding{
		ProfileId:    profile.Id,
		ModelVersion: p.modelVersion,
		Vector:       vector,
		GeneratedAt:  time.Now().UTC(),
	})
}

// sourceText renders the profile fields the embedding should capture.
func (p *Pipeline) sourceText(ctx context.Context, profile *core.Profile) (string, error) {
	var b strings.Builder
	b.WriteString(profile.Name)

	if profile.Description != "" {
		b.WriteString(". ")
		b.WriteString(profile.Description)
	}

	if len(profile.TopicIds) > 0 {
		topics, err := p.topics.GetTopics(ctx, profile.TopicIds...)
		if err != nil {
			return "", err
		}
		if len(topics) > 0 {
			names := make([]string, 0, len(topics))
			for _, topic := range topics {
				names = append(names, topic.Name)
			}
			b.WriteString(". Topics: ")
			b.WriteString(strings.Join(names, ", "))
		}
	}

	return b.String(), nil
}
