package core

import (
	"errors"
	"testing"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{
			name: "valid requester",
			profile: &Profile{
				Name:     "Acme Robotics",
				Role:     RoleRequester,
				TopicIds: []ID{1, 2},
			},
			wantErr: nil,
		},
		{
			name: "valid candidate without topics",
			profile: &Profile{
				Name: "Jordan Lee",
				Role: RoleCandidate,
			},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "empty name",
			profile: &Profile{Role: RoleRequester},
			wantErr: ErrEmptyName,
		},
		{
			name:    "invalid role",
			profile: &Profile{Name: "Acme", Role: Role(99)},
			wantErr: ErrInvalidRole,
		},
		{
			name: "duplicate topic",
			profile: &Profile{
				Name:     "Acme",
				Role:     RoleRequester,
				TopicIds: []ID{1, 2, 1},
			},
			wantErr: ErrDuplicateTopicId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTopic(t *testing.T) {
	tests := []struct {
		name    string
		topic   *Topic
		wantErr error
	}{
		{
			name:    "valid topic",
			topic:   &Topic{Name: "climate", Category: "environment"},
			wantErr: nil,
		},
		{
			name:    "nil topic",
			topic:   nil,
			wantErr: ErrInvalidTopic,
		},
		{
			name:    "empty name",
			topic:   &Topic{Category: "environment"},
			wantErr: ErrEmptyTopicName,
		},
		{
			name:    "empty category",
			topic:   &Topic{Name: "climate"},
			wantErr: ErrEmptyTopicCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopic(tt.topic)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTopic() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTopic() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name     string
		feedback *MatchFeedback
		wantErr  error
	}{
		{
			name: "valid feedback",
			feedback: &MatchFeedback{
				UserId:      1,
				RequesterId: 2,
				CandidateId: 3,
				Helpful:     true,
				Outcome:     OutcomeContacted,
			},
			wantErr: nil,
		},
		{
			name:     "nil feedback",
			feedback: nil,
			wantErr:  ErrInvalidFeedback,
		},
		{
			name: "missing user",
			feedback: &MatchFeedback{
				RequesterId: 2,
				CandidateId: 3,
				Outcome:     OutcomeNone,
			},
			wantErr: ErrMissingParty,
		},
		{
			name: "missing candidate",
			feedback: &MatchFeedback{
				UserId:      1,
				RequesterId: 2,
				Outcome:     OutcomeNone,
			},
			wantErr: ErrMissingParty,
		},
		{
			name: "unknown outcome",
			feedback: &MatchFeedback{
				UserId:      1,
				RequesterId: 2,
				CandidateId: 3,
				Outcome:     Outcome(42),
			},
			wantErr: ErrInvalidOutcome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedback(tt.feedback)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFeedback() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFeedback() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	if err := ValidateRole(RoleRequester); err != nil {
		t.Errorf("ValidateRole(RoleRequester) = %v", err)
	}
	if err := ValidateRole(RoleCandidate); err != nil {
		t.Errorf("ValidateRole(RoleCandidate) = %v", err)
	}
	if err := ValidateRole(Role(0)); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("ValidateRole(0) = %v, want ErrInvalidRole", err)
	}
}

func TestValidateOutcome(t *testing.T) {
	for _, o := range []Outcome{OutcomeNone, OutcomeContacted, OutcomeSuccessful} {
		if err := ValidateOutcome(o); err != nil {
			t.Errorf("ValidateOutcome(%v) = %v", o, err)
		}
	}
	if err := ValidateOutcome(Outcome(0)); !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("ValidateOutcome(0) = %v, want ErrInvalidOutcome", err)
	}
}

func TestValidateMatchKind(t *testing.T) {
	for _, k := range []MatchKind{MatchKindRule, MatchKindSimilarity} {
		if err := ValidateMatchKind(k); err != nil {
			t.Errorf("ValidateMatchKind(%v) = %v", k, err)
		}
	}
	if err := ValidateMatchKind(MatchKind(9)); !errors.Is(err, ErrInvalidMatchKind) {
		t.Errorf("ValidateMatchKind(9) = %v, want ErrInvalidMatchKind", err)
	}
}
