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


package insight

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/matchwire/ai"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/match"
	"github.com/poiesic/matchwire/storage"
)

// DefaultTimeout bounds a single advisor call.
const DefaultTimeout = 10 * time.Second

// Insight is a match candidate together with the advisor's assessment.
type Insight struct {
	Candidate *core.MatchCandidate

	// Bundle is the advisor's assessment. When Degraded is set, the bundle
	// is a deterministic fallback built from the candidate's explanation.
	Bundle *ai.InsightBundle

	// Degraded reports that the advisor failed or timed out for this pair.
	Degraded bool
}

// Service produces insights for match candidates.
type Service struct {
	profiles storage.ProfileRepository
	topics   storage.TopicRepository
	advisor  ai.InsightAdvisor
	pool     *ants.Pool
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithTimeout bounds each advisor call.
// Default is DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) error {
		if timeout > 0 {
			s.timeout = timeout
		}
		return nil
	}
}

// WithPoolSize sets the worker pool size for batch enrichment.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Service) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewService creates a new insight service.
func NewService(
	profiles storage.ProfileRepository,
	topics storage.TopicRepository,
	advisor ai.InsightAdvisor,
	opts ...Option,
) (*Service, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if topics == nil {
		return nil, ErrTopicRepositoryRequired
	}
	if advisor == nil {
		return nil, ErrAdvisorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Service{
		profiles: profiles,
		topics:   topics,
		advisor:  advisor,
		pool:     pool,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Explain produces the advisor's assessment for a single candidate.
// Advisor failures and timeouts yield a degraded result, not an error;
// errors are reserved for invalid input such as unknown profiles.
func (s *Service) Explain(ctx context.Context, candidate *core.MatchCandidate) (*Insight, error) {
	if candidate == nil {
		return nil, ErrCandidateRequired
	}

	summary, err := s.buildSummary(ctx, candidate)
	if err != nil {
		return nil, err
	}

	return s.advise(ctx, candidate, summary), nil
}

// ExplainPair produces an assessment for an arbitrary requester/candidate
// pair without a prior match result. The deterministic explanation is
// recomputed from the pair's topic overlap, so degraded results still carry
// a usable rationale.
func (s *Service) ExplainPair(ctx context.Context, requesterId, candidateId core.ID) (*Insight, error) {
	requester, err := s.profiles.GetProfile(ctx, requesterId)
	if err != nil {
		return nil, err
	}
	counterpart, err := s.profiles.GetProfile(ctx, candidateId)
	if err != nil {
		return nil, err
	}

	requesterTopics := make(map[core.ID]bool, len(requester.TopicIds))
	for _, id := range requester.TopicIds {
		requesterTopics[id] = true
	}
	var shared []core.ID
	for _, id := range counterpart.TopicIds {
		if requesterTopics[id] {
			shared = append(shared, id)
		}
	}

	explanation := fmt.Sprintf("%s and %s have no declared topics in common.",
		requester.Name, counterpart.Name)
	if len(shared) > 0 {
		topics, err := s.topics.GetTopics(ctx, shared...)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(topics))
		for _, topic := range topics {
			names = append(names, topic.Name)
		}
		explanation = match.RuleExplanation(requester.Name, counterpart.Name, names)
	}

	return s.Explain(ctx, &core.MatchCandidate{
		RequesterId:     requesterId,
		CandidateId:     candidateId,
		Kind:            core.MatchKindRule,
		Explanation:     explanation,
		MatchedTopicIds: shared,
	})
}

// ExplainBatch produces assessments for candidates concurrently.
// Results are returned in input order. Each pair degrades independently:
// one advisor failure never affects the others.
func (s *Service) ExplainBatch(ctx context.Context, candidates []*core.MatchCandidate) ([]*Insight, error) {
	// Build summaries serially; an unknown profile is a caller error
	summaries := make([]ai.MatchSummary, len(candidates))
	for i, candidate := range candidates {
		if candidate == nil {
			return nil, ErrCandidateRequired
		}
		summary, err := s.buildSummary(ctx, candidate)
		if err != nil {
			return nil, err
		}
		summaries[i] = summary
	}

	results := make([]*Insight, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		i := i
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			results[i] = s.advise(ctx, candidates[i], summaries[i])
		})
		if err != nil {
			// Pool rejected the task; run inline rather than drop the pair
			s.logger.Warn("insight pool rejected task, running inline", "err", err)
			results[i] = s.advise(ctx, candidates[i], summaries[i])
			wg.Done()
		}
	}
	wg.Wait()

	return results, nil
}

// Release releases the worker pool.
// The service should not be used after calling Release.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// advise runs one bounded advisor call, degrading on failure.
func (s *Service) advise(ctx context.Context, candidate *core.MatchCandidate, summary ai.MatchSummary) *Insight {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bundle, err := s.advisor.Advise(callCtx, summary)
	if err != nil {
		s.logger.Warn("advisor unavailable, returning degraded insight",
			"requester", candidate.RequesterId,
			"candidate", candidate.CandidateId,
			"err", err)
		return &Insight{
			Candidate: candidate,
			Bundle: &ai.InsightBundle{
				Rationale: candidate.Explanation,
				Provider:  "fallback",
			},
			Degraded: true,
		}
	}

	return &Insight{Candidate: candidate, Bundle: bundle}
}

// buildSummary assembles the advisor's view of a match from stored profiles.
func (s *Service) buildSummary(ctx context.Context, candidate *core.MatchCandidate) (ai.MatchSummary, error) {
	requester, err := s.profiles.GetProfile(ctx, candidate.RequesterId)
	if err != nil {
		return ai.MatchSummary{}, err
	}
	counterpart, err := s.profiles.GetProfile(ctx, candidate.CandidateId)
	if err != nil {
		return ai.MatchSummary{}, err
	}

	var sharedTopics []string
	if len(candidate.MatchedTopicIds) > 0 {
		topics, err := s.topics.GetTopics(ctx, candidate.MatchedTopicIds...)
		if err != nil {
			return ai.MatchSummary{}, err
		}
		for _, topic := range topics {
			sharedTopics = append(sharedTopics, topic.Name)
		}
	}

	return ai.MatchSummary{
		RequesterName:        requester.Name,
		RequesterDescription: requester.Description,
		CandidateName:        counterpart.Name,
		CandidateDescription: counterpart.Description,
		SharedTopics:         sharedTopics,
		Kind:                 candidate.Kind.String(),
		Score:                candidate.Score,
	}, nil
}
