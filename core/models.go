package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Role identifies which side of a match a profile belongs to.
type Role int

const (
	// RoleRequester represents a profile publishing information and seeking coverage.
	RoleRequester Role = iota + 1
	// RoleCandidate represents a profile discovering information and seeking stories.
	RoleCandidate
)

// Opposite returns the role a profile is matched against.
func (r Role) Opposite() Role {
	if r == RoleRequester {
		return RoleCandidate
	}
	return RoleRequester
}

// Topic is a taxonomy entry profiles declare interest in.
// Match explanations embed topic names at generation time, so a later rename
// never rewrites the stated reason for a historical match.
type Topic struct {
	Id         ID
	Name       string
	Category   string
	InsertedAt time.Time
}

// Tuple returns a string representation of the topic as "(Category,Name)".
// This is used for generating deterministic IDs.
func (t *Topic) Tuple() string {
	return "(" + t.Category + "," + t.Name + ")"
}

// Profile represents one matchable party.
// Profiles are created and maintained by the profile-management collaborator;
// the engine only reads them.
type Profile struct {
	Id          ID
	Role        Role
	UserId      ID
	Name        string
	Description string // Free text used as embedding input
	TopicIds    []ID   // Unordered, unique
	Eligible    bool   // Hard gate: ineligible profiles are never surfaced
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// HasTopic reports whether the profile declares the given topic.
func (p *Profile) HasTopic(id ID) bool {
	for _, t := range p.TopicIds {
		if t == id {
			return true
		}
	}
	return false
}

// DefaultModelVersion tags embeddings when no explicit version is configured.
const DefaultModelVersion = "v1"

// ProfileEmbedding is the cached vector for a profile's description.
// Generation is asynchronous, so an embedding may be absent or carry a stale
// model version; consumers must skip such profiles rather than error.
type ProfileEmbedding struct {
	ProfileId    ID
	ModelVersion string
	Vector       []float32
	GeneratedAt  time.Time
}

// MatchKind tags how a match was produced.
type MatchKind int

const (
	// MatchKindRule marks a deterministic topic-overlap match.
	MatchKindRule MatchKind = iota + 1
	// MatchKindSimilarity marks an embedding-similarity match.
	MatchKindSimilarity
)

func (k MatchKind) String() string {
	switch k {
	case MatchKindRule:
		return "rule"
	case MatchKindSimilarity:
		return "similarity"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// MatchCandidate is one ranked, explained recommendation.
// It exists only for the duration of a request and is never stored.
type MatchCandidate struct {
	RequesterId     ID
	CandidateId     ID
	Kind            MatchKind
	Explanation     string
	Score           float32 // Clipped to [0,1] for display; zero for rule matches
	Rank            int     // 1-based position within the returned list
	MatchedTopicIds []ID    // Overlapping topics; empty for similarity-only matches
}

// Outcome tags what a match led to, as reported by the user.
type Outcome int

const (
	// OutcomeNone means no action was taken yet.
	OutcomeNone Outcome = iota + 1
	// OutcomeContacted means the user reached out based on the match.
	OutcomeContacted
	// OutcomeSuccessful means the introduction worked out.
	OutcomeSuccessful
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeContacted:
		return "contacted"
	case OutcomeSuccessful:
		return "successful"
	}
	return fmt.Sprintf("unknown(%d)", int(o))
}

// MatchFeedback is one user's current opinion of one match pair.
// The ID is derived from (user, requester, candidate), so a resubmission
// overwrites the earlier record instead of duplicating it.
type MatchFeedback struct {
	Id          ID
	UserId      ID
	RequesterId ID
	CandidateId ID
	Helpful     bool
	Outcome     Outcome
	Notes       string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// FeedbackKey generates the deterministic ID for a (user, pair) feedback record.
func FeedbackKey(userId, requesterId, candidateId ID) ID {
	return IDFromContent(fmt.Sprintf("(%d,%d,%d)", userId, requesterId, candidateId))
}

// MatchImpression records that a match pair was surfaced to a user.
// The ID is derived from the pair and kind, so re-showing the same match
// updates ShownAt rather than inflating the surfaced count.
type MatchImpression struct {
	Id          ID
	RequesterId ID
	CandidateId ID
	Kind        MatchKind
	ShownAt     time.Time
}

// ImpressionKey generates the deterministic ID for a surfaced match record.
func ImpressionKey(requesterId, candidateId ID, kind MatchKind) ID {
	return IDFromContent(fmt.Sprintf("(%d,%d,%d)", requesterId, candidateId, int(kind)))
}
