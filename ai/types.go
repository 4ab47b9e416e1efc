package ai

// MatchSummary is the advisor's view of one proposed introduction.
// It carries display fields only; storage identifiers never cross this boundary.
type MatchSummary struct {
	// RequesterName is the display name of the profile asking for matches.
	RequesterName string

	// RequesterDescription is the requester's free-text self description.
	RequesterDescription string

	// CandidateName is the display name of the proposed counterpart.
	CandidateName string

	// CandidateDescription is the candidate's free-text self description.
	CandidateDescription string

	// SharedTopics lists the topic names both parties declared, if any.
	SharedTopics []string

	// Kind describes how the match was produced, e.g. "rule" or "similarity".
	Kind string

	// Score is the similarity score for similarity matches, zero otherwise.
	Score float32
}

// RiskFlag is a single concern the advisor raised about an introduction.
type RiskFlag struct {
	// Kind categorizes the risk. Must match one of the predefined risk kinds.
	Kind string

	// Detail is a one-sentence explanation of the concern.
	Detail string

	// Severity is a score from 1-10 indicating how serious the concern is.
	// Higher scores = more serious.
	Severity int
}

// InsightBundle is the advisor's full assessment of a proposed match.
type InsightBundle struct {
	// Rationale explains in prose why the introduction could work.
	Rationale string

	// OutreachAngle suggests how the requester might open the conversation.
	OutreachAngle string

	// Risks lists concerns sorted by descending severity. May be empty.
	Risks []RiskFlag

	// Provider identifies the model that produced this assessment.
	Provider string
}

// RiskKinds defines the valid categories for advisor risk flags.
var RiskKinds = []string{
	"capacity",
	"conflict_of_interest",
	"expertise_gap",
	"geography",
	"low_signal",
	"stage_mismatch",
	"timing",
}
