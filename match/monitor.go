package match

import "github.com/poiesic/matchwire/core"

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to track intermediate steps and results during matching.
type MatchMonitor interface {
	Start(requesterId core.ID)
	AfterCandidateListing(ids []core.ID)
	RuleHit(candidate *core.Profile, sharedTopicIds []core.ID)
	SimilarityHit(candidate *core.Profile, score float32)
	SkippedCandidate(candidateId core.ID, reason string)
	Finish(results []*core.MatchCandidate)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.ID)                            {}
func (n *noopMonitor) AfterCandidateListing(_ []core.ID)          {}
func (n *noopMonitor) RuleHit(_ *core.Profile, _ []core.ID)       {}
func (n *noopMonitor) SimilarityHit(_ *core.Profile, _ float32)   {}
func (n *noopMonitor) SkippedCandidate(_ core.ID, _ string)       {}
func (n *noopMonitor) Finish(_ []*core.MatchCandidate)            {}
