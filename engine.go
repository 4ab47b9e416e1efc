// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package matchwire recommends introductions between requester and candidate
// profiles, collects feedback on the recommendations, and summarizes how well
// they perform.
//
// The Engine type is the facade over the storage, matching, insight,
// feedback, and analytics layers. Embedders and the Engine itself are safe
// for concurrent use.
package matchwire

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/poiesic/matchwire/ai"
	"github.com/poiesic/matchwire/ai/mock"
	"github.com/poiesic/matchwire/ai/openai"
	"github.com/poiesic/matchwire/analytics"
	"github.com/poiesic/matchwire/config"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/embed"
	"github.com/poiesic/matchwire/feedback"
	"github.com/poiesic/matchwire/insight"
	"github.com/poiesic/matchwire/match"
	"github.com/poiesic/matchwire/storage/badger"
)

// ErrConfigRequired is returned when NewEngine is called without a config.
var ErrConfigRequired = errors.New("config required")

// Engine wires the matching, insight, feedback, and analytics services over
// one shared store and AI provider.
type Engine struct {
	cfg        *config.Config
	store      *badger.Repositories
	provider   ai.AIProvider
	matcher    *match.Matcher
	insights   *insight.Service
	ledger     *feedback.Ledger
	aggregator *analytics.Aggregator
	embeds     *embed.Pipeline
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	provider ai.AIProvider
	logger   *slog.Logger
}

// WithProvider injects a pre-built AI provider, overriding the config's
// provider selection. Mainly useful for tests.
func WithProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine creates an engine from the given configuration.
func NewEngine(cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	// Open the store
	var store *badger.Repositories
	var err error
	if cfg.InMemory {
		store, err = badger.NewMemoryRepositories()
	} else {
		store, err = badger.NewRepositories(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}

	// Select the AI provider
	provider := options.provider
	if provider == nil {
		if cfg.MockAI {
			provider = mock.NewMockProvider()
		} else {
			provider, err = openai.NewProvider(cfg.AIConfig())
			if err != nil {
				store.Close()
				return nil, err
			}
		}
	}

	matcher, err := match.NewMatcher(store.Profiles, store.Topics, store.Embeddings,
		match.WithLogger(options.logger),
		match.WithMaxCandidates(cfg.MaxCandidates),
		match.WithMinSimilarity(float32(cfg.MinSimilarity)),
		match.WithModelVersion(cfg.ModelVersion),
	)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	insights, err := insight.NewService(store.Profiles, store.Topics, provider.InsightAdvisor(),
		insight.WithLogger(options.logger),
		insight.WithTimeout(cfg.InsightTimeout()),
		insight.WithPoolSize(cfg.WorkerCount),
	)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	ledger, err := feedback.NewLedger(store.Feedback, store.Profiles,
		feedback.WithLogger(options.logger))
	if err != nil {
		insights.Release()
		provider.Close()
		store.Close()
		return nil, err
	}

	aggregator, err := analytics.NewAggregator(store.Feedback, store.Impressions, store.Profiles,
		analytics.WithLogger(options.logger))
	if err != nil {
		insights.Release()
		provider.Close()
		store.Close()
		return nil, err
	}

	embeds, err := embed.NewPipeline(store.Profiles, store.Topics, store.Embeddings, provider.Embedder(),
		embed.WithLogger(options.logger),
		embed.WithModelVersion(cfg.ModelVersion),
		embed.WithPoolSize(cfg.WorkerCount),
	)
	if err != nil {
		insights.Release()
		provider.Close()
		store.Close()
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		store:      store,
		provider:   provider,
		matcher:    matcher,
		insights:   insights,
		ledger:     ledger,
		aggregator: aggregator,
		embeds:     embeds,
		logger:     options.logger,
	}, nil
}

// Close releases worker pools, the AI provider, and the store.
func (e *Engine) Close() error {
	e.insights.Release()
	e.embeds.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	return e.store.Close()
}

// Store exposes the underlying repositories, mainly for profile and topic
// management and for seeding.
func (e *Engine) Store() *badger.Repositories {
	return e.store
}

// MatchByRules recommends candidates sharing declared topics with the requester.
func (e *Engine) MatchByRules(ctx context.Context, requesterId core.ID) ([]*core.MatchCandidate, error) {
	return e.matcher.MatchByRules(ctx, requesterId)
}

// MatchBySimilarity recommends candidates by embedding similarity. k caps
// the result count and is clamped to the configured maximum; k <= 0 means
// the maximum.
func (e *Engine) MatchBySimilarity(ctx context.Context, requesterId core.ID, k int) ([]*core.MatchCandidate, error) {
	return e.matcher.MatchBySimilarity(ctx, requesterId, k)
}

// RecordImpressions logs that the given candidates were shown to their
// requester. Callers invoke this after actually rendering the matches, so
// abandoned requests don't inflate the surfaced count.
func (e *Engine) RecordImpressions(ctx context.Context, candidates ...*core.MatchCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	now := time.Now().UTC()
	impressions := make([]*core.MatchImpression, len(candidates))
	for i, candidate := range candidates {
		impressions[i] = &core.MatchImpression{
			RequesterId: candidate.RequesterId,
			CandidateId: candidate.CandidateId,
			Kind:        candidate.Kind,
			ShownAt:     now,
		}
	}

	return e.store.Impressions.AddImpressions(ctx, impressions...)
}

// ExplainMatch produces the advisor's assessment for one candidate.
func (e *Engine) ExplainMatch(ctx context.Context, candidate *core.MatchCandidate) (*insight.Insight, error) {
	return e.insights.Explain(ctx, candidate)
}

// ExplainMatches produces assessments for candidates concurrently.
func (e *Engine) ExplainMatches(ctx context.Context, candidates []*core.MatchCandidate) ([]*insight.Insight, error) {
	return e.insights.ExplainBatch(ctx, candidates)
}

// ExplainPair produces an assessment for an arbitrary requester/candidate
// pair, without requiring a prior match run.
func (e *Engine) ExplainPair(ctx context.Context, requesterId, candidateId core.ID) (*insight.Insight, error) {
	return e.insights.ExplainPair(ctx, requesterId, candidateId)
}

// SubmitFeedback records a user's opinion about a match pair.
func (e *Engine) SubmitFeedback(ctx context.Context, fb *core.MatchFeedback) (*core.MatchFeedback, error) {
	return e.ledger.Submit(ctx, fb)
}

// MyFeedback returns all feedback the user has submitted, newest first.
func (e *Engine) MyFeedback(ctx context.Context, userId core.ID) ([]*core.MatchFeedback, error) {
	return e.ledger.MyFeedback(ctx, userId)
}

// PlatformMetrics summarizes all feedback and surfaced matches.
func (e *Engine) PlatformMetrics(ctx context.Context) (*analytics.Metrics, error) {
	return e.aggregator.PlatformMetrics(ctx)
}

// UserMetrics summarizes one user's feedback and surfaced matches.
func (e *Engine) UserMetrics(ctx context.Context, userId core.ID) (*analytics.Metrics, error) {
	return e.aggregator.UserMetrics(ctx, userId)
}

// RefreshEmbeddings embeds profiles missing a current-version embedding.
// Returns the number of profiles refreshed.
func (e *Engine) RefreshEmbeddings(ctx context.Context) (int, error) {
	return e.embeds.Refresh(ctx)
}

// RefreshProfileEmbedding re-embeds a single profile after it changes.
func (e *Engine) RefreshProfileEmbedding(ctx context.Context, profileId core.ID) error {
	return e.embeds.RefreshProfile(ctx, profileId)
}
