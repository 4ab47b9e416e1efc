package match

import (
	"fmt"
	"strings"
)

// joinNames renders a list of names for prose: "A", "A and B",
// or "A, B, and C" for three or more.
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// RuleExplanation describes a topic-overlap match in one sentence. Exported
// so pair-level insight can recompute the same wording without a match run.
func RuleExplanation(requesterName, candidateName string, topics []string) string {
	list := joinNames(topics)
	return fmt.Sprintf("%s covers %s, which aligns with %s's focus on %s.",
		candidateName, list, requesterName, list)
}

// similarityExplanation describes an embedding match in one sentence.
func similarityExplanation(requesterName, candidateName string, score float32) string {
	return fmt.Sprintf("%s's profile closely matches %s's focus areas (similarity %.2f).",
		requesterName, candidateName, score)
}
