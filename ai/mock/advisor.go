package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/matchwire/ai"
)

// MockInsightAdvisor is a test double for ai.InsightAdvisor.
// It allows custom behavior injection via function fields.
type MockInsightAdvisor struct {
	// AdviseFunc is called by Advise if set.
	// If nil, uses default deterministic behavior.
	AdviseFunc func(ctx context.Context, summary ai.MatchSummary) (*ai.InsightBundle, error)

	callCount int
}

// NewMockInsightAdvisor creates a mock advisor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAdvisor().
func NewMockInsightAdvisor() *MockInsightAdvisor {
	return &MockInsightAdvisor{}
}

// Advise composes a deterministic assessment from the summary's fields.
// A match with no shared topics gets a low_signal risk flag.
func (m *MockInsightAdvisor) Advise(ctx context.Context, summary ai.MatchSummary) (*ai.InsightBundle, error) {
	m.callCount++

	if m.AdviseFunc != nil {
		return m.AdviseFunc(ctx, summary)
	}

	bundle := &ai.InsightBundle{
		Provider: "mock",
	}

	if len(summary.SharedTopics) > 0 {
		topics := strings.Join(summary.SharedTopics, ", ")
		bundle.Rationale = fmt.Sprintf("%s and %s share declared interest in %s.",
			summary.RequesterName, summary.CandidateName, topics)
		bundle.OutreachAngle = fmt.Sprintf("Open with your work on %s.", summary.SharedTopics[0])
	} else {
		bundle.Rationale = fmt.Sprintf("%s and %s were paired on overall profile similarity.",
			summary.RequesterName, summary.CandidateName)
		bundle.OutreachAngle = "Open by describing what you are building and why it might interest them."
		bundle.Risks = []ai.RiskFlag{
			{Kind: "low_signal", Detail: "No shared topics between the profiles.", Severity: 5},
		}
	}

	return bundle, nil
}

// CallCount returns the number of times Advise was called.
func (m *MockInsightAdvisor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockInsightAdvisor) Reset() {
	m.callCount = 0
	m.AdviseFunc = nil
}
