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


package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// Ledger is the write path for match feedback.
type Ledger struct {
	feedback storage.FeedbackRepository
	profiles storage.ProfileRepository
	logger   *slog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLedger creates a new feedback ledger.
func NewLedger(
	feedbackRepo storage.FeedbackRepository,
	profiles storage.ProfileRepository,
	opts ...Option,
) (*Ledger, error) {
	if feedbackRepo == nil {
		return nil, ErrFeedbackRepositoryRequired
	}
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}

	l := &Ledger{
		feedback: feedbackRepo,
		profiles: profiles,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Submit records a user's opinion about a match pair.
//
// Both profiles must exist, and the submitting user must own one of them.
// A resubmission for the same (user, requester, candidate) replaces the
// earlier opinion and preserves the original submission time.
func (l *Ledger) Submit(ctx context.Context, fb *core.MatchFeedback) (*core.MatchFeedback, error) {
	if err := core.ValidateFeedback(fb); err != nil {
		return nil, err
	}

	requester, err := l.profiles.GetProfile(ctx, fb.RequesterId)
	if err != nil {
		return nil, fmt.Errorf("requester profile %d: %w", fb.RequesterId, err)
	}
	candidate, err := l.profiles.GetProfile(ctx, fb.CandidateId)
	if err != nil {
		return nil, fmt.Errorf("candidate profile %d: %w", fb.CandidateId, err)
	}
	if requester.UserId != fb.UserId && candidate.UserId != fb.UserId {
		return nil, ErrForbidden
	}

	stored, err := l.feedback.UpsertFeedback(ctx, fb)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("feedback recorded",
		"user", stored.UserId,
		"requester", stored.RequesterId,
		"candidate", stored.CandidateId,
		"helpful", stored.Helpful,
		"outcome", stored.Outcome.String())

	return stored, nil
}

// MyFeedback returns all feedback the user has submitted, newest first.
func (l *Ledger) MyFeedback(ctx context.Context, userId core.ID) ([]*core.MatchFeedback, error) {
	return l.feedback.GetFeedbackByUser(ctx, userId)
}

// PairHistory returns all feedback recorded for a match pair, newest first.
func (l *Ledger) PairHistory(ctx context.Context, requesterId, candidateId core.ID) ([]*core.MatchFeedback, error) {
	return l.feedback.GetFeedbackForPair(ctx, requesterId, candidateId)
}
