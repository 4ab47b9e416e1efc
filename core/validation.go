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


package core

import "fmt"

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Role must be valid (Requester or Candidate)
//   - TopicIds must not contain duplicates
//
// NOT validated:
//   - TopicIds may be empty (matching rejects topic-less requesters itself,
//     so the profile store can hold profiles that are still being filled in)
//   - ID (0 is valid from database sequences)
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}

	if err := ValidateRole(profile.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	seen := make(map[ID]struct{}, len(profile.TopicIds))
	for _, id := range profile.TopicIds {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %w: %d", ErrInvalidProfile, ErrDuplicateTopicId, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// ValidateTopic validates a Topic according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Category must not be empty
func ValidateTopic(topic *Topic) error {
	if topic == nil {
		return fmt.Errorf("%w: topic is nil", ErrInvalidTopic)
	}

	if topic.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTopic, ErrEmptyTopicName)
	}

	if topic.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTopic, ErrEmptyTopicCategory)
	}

	return nil
}

// ValidateFeedback validates a MatchFeedback according to domain rules.
//
// Validation rules:
//   - UserId, RequesterId, and CandidateId must all be set
//   - Outcome must be one of the enumerated values
func ValidateFeedback(feedback *MatchFeedback) error {
	if feedback == nil {
		return fmt.Errorf("%w: feedback is nil", ErrInvalidFeedback)
	}

	if feedback.UserId == 0 || feedback.RequesterId == 0 || feedback.CandidateId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrMissingParty)
	}

	if err := ValidateOutcome(feedback.Outcome); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}

	return nil
}

// ValidateRole validates that a Role has a valid value.
func ValidateRole(role Role) error {
	if role != RoleRequester && role != RoleCandidate {
		return fmt.Errorf("%w: value %d", ErrInvalidRole, role)
	}
	return nil
}

// ValidateOutcome validates that an Outcome has a valid value.
func ValidateOutcome(outcome Outcome) error {
	if outcome != OutcomeNone && outcome != OutcomeContacted && outcome != OutcomeSuccessful {
		return fmt.Errorf("%w: value %d", ErrInvalidOutcome, outcome)
	}
	return nil
}

// ValidateMatchKind validates that a MatchKind has a valid value.
func ValidateMatchKind(kind MatchKind) error {
	if kind != MatchKindRule && kind != MatchKindSimilarity {
		return fmt.Errorf("%w: value %d", ErrInvalidMatchKind, kind)
	}
	return nil
}
