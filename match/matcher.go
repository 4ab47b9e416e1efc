package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// DefaultMaxCandidates caps how many candidates a single match request returns.
const DefaultMaxCandidates = 20

// DefaultMinSimilarity is the floor below which similarity matches are discarded.
const DefaultMinSimilarity = 0.3

// Matcher produces ranked introduction candidates for requester profiles.
type Matcher struct {
	profiles      storage.ProfileRepository
	topics        storage.TopicRepository
	embeddings    storage.EmbeddingRepository
	logger        *slog.Logger
	maxCandidates int
	minSimilarity float32
	modelVersion  string
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithMaxCandidates caps the number of returned candidates.
// Default is DefaultMaxCandidates.
func WithMaxCandidates(max int) Option {
	return func(m *Matcher) error {
		if max < 1 {
			return fmt.Errorf("max candidates must be positive, got %d", max)
		}
		m.maxCandidates = max
		return nil
	}
}

// WithMinSimilarity sets the similarity floor for embedding matches.
// Default is DefaultMinSimilarity.
func WithMinSimilarity(min float32) Option {
	return func(m *Matcher) error {
		if min < 0 || min > 1 {
			return fmt.Errorf("min similarity must be in [0,1], got %f", min)
		}
		m.minSimilarity = min
		return nil
	}
}

// WithModelVersion sets the embedding model version to match against.
// Default is core.DefaultModelVersion.
func WithModelVersion(version string) Option {
	return func(m *Matcher) error {
		if version == "" {
			return errors.New("model version must not be empty")
		}
		m.modelVersion = version
		return nil
	}
}

// NewMatcher creates a new matcher.
func NewMatcher(
	profiles storage.ProfileRepository,
	topics storage.TopicRepository,
	embeddings storage.EmbeddingRepository,
	opts ...Option,
) (*Matcher, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if topics == nil {
		return nil, ErrTopicRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}

	m := &Matcher{
		profiles:      profiles,
		topics:        topics,
		embeddings:    embeddings,
		logger:        slog.Default(),
		maxCandidates: DefaultMaxCandidates,
		minSimilarity: DefaultMinSimilarity,
		modelVersion:  core.DefaultModelVersion,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MatchByRules recommends candidates that share declared topics with the requester.
// Returns candidates ranked by overlap size, then by candidate ID for stability.
func (m *Matcher) MatchByRules(ctx context.Context, requesterId core.ID) ([]*core.MatchCandidate, error) {
	return m.MatchByRulesWithMonitor(ctx, requesterId, nil)
}

// MatchByRulesWithMonitor is MatchByRules with stage callbacks for observability.
func (m *Matcher) MatchByRulesWithMonitor(ctx context.Context, requesterId core.ID, monitor MatchMonitor) ([]*core.MatchCandidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(requesterId)

	requester, candidates, err := m.loadMatchParties(ctx, requesterId, monitor)
	if err != nil {
		return nil, err
	}
	if len(requester.TopicIds) == 0 {
		return nil, ErrIncompleteProfile
	}

	requesterTopics := make(map[core.ID]bool, len(requester.TopicIds))
	for _, id := range requester.TopicIds {
		requesterTopics[id] = true
	}

	type ruleHit struct {
		candidate *core.Profile
		shared    []core.ID
	}
	hits := make([]ruleHit, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.UserId == requester.UserId {
			monitor.SkippedCandidate(candidate.Id, "same owner")
			continue
		}

		var shared []core.ID
		for _, id := range candidate.TopicIds {
			if requesterTopics[id] {
				shared = append(shared, id)
			}
		}
		if len(shared) == 0 {
			continue
		}

		monitor.RuleHit(candidate, shared)
		hits = append(hits, ruleHit{candidate: candidate, shared: shared})
	}

	// Rank by overlap size; candidate ID breaks ties so ordering is stable
	sort.Slice(hits, func(i, j int) bool {
		if len(hits[i].shared) != len(hits[j].shared) {
			return len(hits[i].shared) > len(hits[j].shared)
		}
		return hits[i].candidate.Id < hits[j].candidate.Id
	})
	if len(hits) > m.maxCandidates {
		hits = hits[:m.maxCandidates]
	}

	results := make([]*core.MatchCandidate, 0, len(hits))
	for rank, hit := range hits {
		explanation, err := m.explainRuleHit(ctx, requester, hit.candidate, hit.shared)
		if err != nil {
			return nil, err
		}
		results = append(results, &core.MatchCandidate{
			RequesterId:     requester.Id,
			CandidateId:     hit.candidate.Id,
			Kind:            core.MatchKindRule,
			Explanation:     explanation,
			Rank:            rank + 1,
			MatchedTopicIds: hit.shared,
		})
	}

	m.logger.Debug("rule matching complete",
		"requester", requester.Id,
		"candidates", len(candidates),
		"matches", len(results))
	monitor.Finish(results)

	return results, nil
}

// MatchBySimilarity recommends candidates whose profile embeddings are close
// to the requester's. Candidates without a current-version embedding are
// skipped; scores below the similarity floor are discarded. k caps the
// result count and is clamped to the matcher's maximum; k <= 0 means the
// maximum.
func (m *Matcher) MatchBySimilarity(ctx context.Context, requesterId core.ID, k int) ([]*core.MatchCandidate, error) {
	return m.MatchBySimilarityWithMonitor(ctx, requesterId, k, nil)
}

// MatchBySimilarityWithMonitor is MatchBySimilarity with stage callbacks for observability.
func (m *Matcher) MatchBySimilarityWithMonitor(ctx context.Context, requesterId core.ID, k int, monitor MatchMonitor) ([]*core.MatchCandidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(requesterId)

	requester, candidates, err := m.loadMatchParties(ctx, requesterId, monitor)
	if err != nil {
		return nil, err
	}

	requesterEmbedding, err := m.embeddings.GetEmbedding(ctx, requester.Id, m.modelVersion)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEmbeddingUnavailable
		}
		return nil, err
	}
	if zeroMagnitude(requesterEmbedding.Vector) {
		// Similarity against a zero vector is undefined
		return nil, ErrEmbeddingUnavailable
	}

	type simHit struct {
		candidate *core.Profile
		score     float32
	}
	hits := make([]simHit, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.UserId == requester.UserId {
			monitor.SkippedCandidate(candidate.Id, "same owner")
			continue
		}

		candidateEmbedding, err := m.embeddings.GetEmbedding(ctx, candidate.Id, m.modelVersion)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				monitor.SkippedCandidate(candidate.Id, "no embedding")
				continue
			}
			return nil, err
		}
		if zeroMagnitude(candidateEmbedding.Vector) {
			monitor.SkippedCandidate(candidate.Id, "zero magnitude embedding")
			continue
		}

		score := cosineSimilarity(requesterEmbedding.Vector, candidateEmbedding.Vector)
		if score < m.minSimilarity {
			monitor.SkippedCandidate(candidate.Id, "below similarity floor")
			continue
		}

		monitor.SimilarityHit(candidate, score)
		hits = append(hits, simHit{candidate: candidate, score: score})
	}

	// Sort by score descending; candidate ID breaks ties so ordering is stable
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].candidate.Id < hits[j].candidate.Id
	})
	limit := m.maxCandidates
	if k > 0 && k < limit {
		limit = k
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]*core.MatchCandidate, 0, len(hits))
	for rank, hit := range hits {
		score := clipScore(hit.score)
		results = append(results, &core.MatchCandidate{
			RequesterId: requester.Id,
			CandidateId: hit.candidate.Id,
			Kind:        core.MatchKindSimilarity,
			Explanation: similarityExplanation(requester.Name, hit.candidate.Name, score),
			Score:       score,
			Rank:        rank + 1,
		})
	}

	m.logger.Debug("similarity matching complete",
		"requester", requester.Id,
		"candidates", len(candidates),
		"matches", len(results))
	monitor.Finish(results)

	return results, nil
}

// loadMatchParties fetches the requester and the eligible counterpart pool.
func (m *Matcher) loadMatchParties(ctx context.Context, requesterId core.ID, monitor MatchMonitor) (*core.Profile, []*core.Profile, error) {
	requester, err := m.profiles.GetProfile(ctx, requesterId)
	if err != nil {
		return nil, nil, err
	}
	if !requester.Eligible {
		return nil, nil, ErrIneligibleProfile
	}

	candidates, err := m.profiles.ListEligibleCandidates(ctx, requester.Role.Opposite())
	if err != nil {
		return nil, nil, err
	}

	ids := make([]core.ID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.Id)
	}
	monitor.AfterCandidateListing(ids)

	return requester, candidates, nil
}

// explainRuleHit builds the overlap explanation using topic display names.
// Topics missing from the taxonomy fall back to their numeric ID.
func (m *Matcher) explainRuleHit(ctx context.Context, requester, candidate *core.Profile, shared []core.ID) (string, error) {
	topics, err := m.topics.GetTopics(ctx, shared...)
	if err != nil {
		return "", err
	}

	known := make(map[core.ID]string, len(topics))
	for _, topic := range topics {
		known[topic.Id] = topic.Name
	}

	names := make([]string, 0, len(shared))
	for _, id := range shared {
		if name, ok := known[id]; ok {
			names = append(names, name)
		} else {
			m.logger.Warn("shared topic missing from taxonomy", "topic", id)
			names = append(names, fmt.Sprintf("topic %d", id))
		}
	}

	return RuleExplanation(requester.Name, candidate.Name, names), nil
}
