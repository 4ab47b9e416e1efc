package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/matchwire/ai"
)

const insightResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "rationale": {
      "type": "string"
    },
    "outreach_angle": {
      "type": "string"
    },
    "risks": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "kind": {
            "type": "string"
          },
          "detail": {
            "type": "string"
          },
          "severity": {
            "type": "integer",
            "minimum": 1,
            "maximum": 10
          }
        },
        "required": ["kind", "detail", "severity"],
        "additionalProperties": false
      }
    }
  },
  "required": ["rationale", "outreach_angle", "risks"],
  "additionalProperties": false
}`

const insightPromptTemplate = `You assess proposed professional introductions. Given two profiles and how they
were matched, explain whether the introduction is promising and return your assessment as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "rationale" is 1-3 sentences explaining why the introduction could work, grounded only in the profile text.
- "outreach_angle" is one sentence the requester could use to open the conversation.
- Each risk's "kind" must match exactly one of the listed values: %s.
- Severity is an integer from 1 (minor) to 10 (introduction likely wasted). Rate based on how much the concern undermines the match.
- Raise risks only for concerns visible in the profiles. Do not hallucinate.
- If nothing concerns you, return "risks": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input:
Requester: Acme Robotics. Industrial robot arms for mid-size factories.
Candidate: Dana Wu. 20 years in factory automation, advises early hardware teams.
Shared topics: robotics, manufacturing
Matched by: rule
Output:
{
  "rationale": "Acme builds industrial robot arms and Dana has two decades of factory automation experience, so the shared robotics and manufacturing focus gives them concrete common ground.",
  "outreach_angle": "Ask Dana how she would approach selling robot arms into mid-size factories.",
  "risks": []
}

Example (weak overlap):
Input:
Requester: Brightleaf. Subscription houseplant boxes.
Candidate: Omar Haddad. Kernel engineer, distributed storage systems.
Shared topics: (none)
Matched by: similarity (score 0.34)
Output:
{
  "rationale": "The profiles overlap only in general startup vocabulary, not in subject matter.",
  "outreach_angle": "Ask Omar whether he has advised consumer subscription businesses before.",
  "risks": [
    {"kind":"expertise_gap","detail":"Omar's storage systems background has no visible connection to a houseplant subscription business.","severity":8},
    {"kind":"low_signal","detail":"The pairing rests on a low similarity score with no shared topics.","severity":6}
  ]
}`

// buildAdvisorPrompt creates the system prompt with risk kinds embedded.
func buildAdvisorPrompt() string {
	return fmt.Sprintf(insightPromptTemplate,
		insightResponseSchema,
		strings.Join(ai.RiskKinds, ", "))
}

// renderSummary formats a match summary as the advisor's user message.
func renderSummary(summary ai.MatchSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Requester: %s. %s\n", summary.RequesterName, summary.RequesterDescription)
	fmt.Fprintf(&b, "Candidate: %s. %s\n", summary.CandidateName, summary.CandidateDescription)

	if len(summary.SharedTopics) > 0 {
		fmt.Fprintf(&b, "Shared topics: %s\n", strings.Join(summary.SharedTopics, ", "))
	} else {
		b.WriteString("Shared topics: (none)\n")
	}

	if summary.Score > 0 {
		fmt.Fprintf(&b, "Matched by: %s (score %.2f)", summary.Kind, summary.Score)
	} else {
		fmt.Fprintf(&b, "Matched by: %s", summary.Kind)
	}

	return b.String()
}
