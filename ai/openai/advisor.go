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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/matchwire/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// InsightAdvisor implements ai.InsightAdvisor using OpenAI-compatible chat APIs.
type InsightAdvisor struct {
	client      llms.Model
	model       string
	minSeverity int
	logger      *slog.Logger
}

// risk is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type risk struct {
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
	Severity int    `json:"severity"`
}

// assessment is the wrapper structure for the LLM's JSON response.
type assessment struct {
	Rationale     string `json:"rationale"`
	OutreachAngle string `json:"outreach_angle"`
	Risks         []risk `json:"risks"`
}

// newInsightAdvisor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newInsightAdvisor(config *ai.Config) (*InsightAdvisor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.AdvisorHost),
		openai.WithToken("none"),
		openai.WithModel(config.AdvisorModel),
	)
	if err != nil {
		return nil, err
	}

	return &InsightAdvisor{
		client:      client,
		model:       config.AdvisorModel,
		minSeverity: config.MinSeverity,
		logger:      slog.Default().With("component", "openai-advisor"),
	}, nil
}

// NewInsightAdvisor creates a new advisor using the provided configuration.
//
// Returns ai.InsightAdvisor interface to enforce abstraction.
func NewInsightAdvisor(config *ai.Config) (ai.InsightAdvisor, error) {
	return newInsightAdvisor(config)
}

// Advise assesses a proposed introduction using an LLM.
// Risk flags below the minimum severity threshold are filtered out.
func (a *InsightAdvisor) Advise(ctx context.Context, summary ai.MatchSummary) (*ai.InsightBundle, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAdvisorPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(renderSummary(summary)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result assessment
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return &ai.InsightBundle{Provider: a.model}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing advisor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse advisor response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Filter by severity and convert to ai.RiskFlag
	risks := make([]ai.RiskFlag, 0, len(result.Risks))
	for _, r := range result.Risks {
		if r.Severity >= a.minSeverity {
			risks = append(risks, ai.RiskFlag{
				Kind:     strings.ReplaceAll(r.Kind, " ", "_"),
				Detail:   r.Detail,
				Severity: r.Severity,
			})
		}
	}

	// Sort by severity (descending)
	slices.SortFunc(risks, func(x, y ai.RiskFlag) int {
		if x.Severity == y.Severity {
			return 0
		}
		if x.Severity < y.Severity {
			return 1
		}
		return -1
	})

	a.logger.Debug("assessed match",
		"raised", len(result.Risks),
		"kept", len(risks))

	return &ai.InsightBundle{
		Rationale:     strings.TrimSpace(result.Rationale),
		OutreachAngle: strings.TrimSpace(result.OutreachAngle),
		Risks:         risks,
		Provider:      a.model,
	}, nil
}
