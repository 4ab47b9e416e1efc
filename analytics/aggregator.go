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


package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// Metrics is a point-in-time summary of feedback and surfaced matches.
type Metrics struct {
	FeedbackTotal   int
	HelpfulCount    int
	NotHelpfulCount int
	ContactedCount  int
	SuccessfulCount int

	// HelpfulnessRate is HelpfulCount over FeedbackTotal, 0 when no
	// feedback exists.
	HelpfulnessRate float64

	// MatchesSurfaced counts distinct pairs shown to requesters.
	MatchesSurfaced int

	// MatchesWithFeedback counts surfaced pairs that received any feedback.
	MatchesWithFeedback int
}

// Aggregator recomputes metrics from the ledger and impression log.
type Aggregator struct {
	feedback    storage.FeedbackRepository
	impressions storage.ImpressionRepository
	profiles    storage.ProfileRepository
	logger      *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAggregator creates a new analytics aggregator.
func NewAggregator(
	feedbackRepo storage.FeedbackRepository,
	impressions storage.ImpressionRepository,
	profiles storage.ProfileRepository,
	opts ...Option,
) (*Aggregator, error) {
	if feedbackRepo == nil {
		return nil, ErrFeedbackRepositoryRequired
	}
	if impressions == nil {
		return nil, ErrImpressionRepositoryRequired
	}
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}

	a := &Aggregator{
		feedback:    feedbackRepo,
		impressions: impressions,
		profiles:    profiles,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// PlatformMetrics summarizes all feedback and impressions.
func (a *Aggregator) PlatformMetrics(ctx context.Context) (*Metrics, error) {
	records, err := a.feedback.AllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	impressions, err := a.impressions.AllImpressions(ctx)
	if err != nil {
		return nil, err
	}

	return compute(records, impressions), nil
}

// UserMetrics summarizes one user's feedback and the matches surfaced to
// the profiles they own.
func (a *Aggregator) UserMetrics(ctx context.Context, userId core.ID) (*Metrics, error) {
	records, err := a.feedback.GetFeedbackByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	var impressions []*core.MatchImpression
	for _, role := range []core.Role{core.RoleRequester, core.RoleCandidate} {
		profile, err := a.profiles.GetProfileByUser(ctx, userId, role)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}

		shown, err := a.impressions.ImpressionsForRequester(ctx, profile.Id)
		if err != nil {
			return nil, err
		}
		impressions = append(impressions, shown...)
	}

	return compute(records, impressions), nil
}

// compute folds ledger records and impressions into a Metrics value.
func compute(records []*core.MatchFeedback, impressions []*core.MatchImpression) *Metrics {
	m := &Metrics{FeedbackTotal: len(records)}

	feedbackPairs := make(map[string]bool, len(records))
	for _, record := range records {
		if record.Helpful {
			m.HelpfulCount++
		} else {
			m.NotHelpfulCount++
		}
		switch record.Outcome {
		case core.OutcomeContacted:
			m.ContactedCount++
		case core.OutcomeSuccessful:
			m.SuccessfulCount++
		}
		feedbackPairs[pairKey(record.RequesterId, record.CandidateId)] = true
	}

	if m.FeedbackTotal > 0 {
		m.HelpfulnessRate = float64(m.HelpfulCount) / float64(m.FeedbackTotal)
	}

	// An impression exists per (pair, kind); metrics count distinct pairs
	surfacedPairs := make(map[string]bool, len(impressions))
	for _, impression := range impressions {
		surfacedPairs[pairKey(impression.RequesterId, impression.CandidateId)] = true
	}
	m.MatchesSurfaced = len(surfacedPairs)

	for pair := range surfacedPairs {
		if feedbackPairs[pair] {
			m.MatchesWithFeedback++
		}
	}

	return m
}

func pairKey(requesterId, candidateId core.ID) string {
	return fmt.Sprintf("%d:%d", requesterId, candidateId)
}
