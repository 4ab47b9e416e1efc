package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/matchwire/core"
)

// Key prefixes for different data types
const (
	profilePrefix        = "prorec"
	profileRolePrefix    = "prorol"
	profileUserPrefix    = "prousr"
	topicPrefix          = "toprec"
	embeddingPrefix      = "embrec"
	feedbackPrefix       = "fbkrec"
	feedbackUserPrefix   = "fbkusr"
	feedbackPairPrefix   = "fbkpai"
	impressionPrefix     = "imprec"
	impressionReqPrefix  = "impreq"
)

// makeProfileKey generates a key for a profile by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profilePrefix, id))
}

// makeProfileRoleKey generates a composite key for the eligible-by-role index.
// Format: prefix:role:id
func makeProfileRoleKey(role core.Role, id core.ID) []byte {
	prefix := profileRolePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+9) // 1 byte for role + 8 bytes for ID
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(role)
	offset++
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialProfileRoleKey generates a partial key for role listing.
func makePartialProfileRoleKey(role core.Role) []byte {
	prefix := profileRolePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+1)
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(role)
	return buf
}

// makeProfileUserKey generates a composite key for the owner index.
// Format: prefix:userId:role
func makeProfileUserKey(userId core.ID, role core.Role) []byte {
	prefix := profileUserPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+9) // 8 bytes for userId + 1 byte for role
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(userId))
	offset += 8
	buf[offset] = byte(role)
	return buf
}

// makeTopicKey generates a key for a topic by ID.
func makeTopicKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", topicPrefix, id))
}

// makeEmbeddingKey generates a key for a profile's embedding.
// A profile owns at most one embedding, so the profile ID is the whole key.
func makeEmbeddingKey(profileId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, profileId))
}

// makeFeedbackKey generates a key for a feedback record by ID.
func makeFeedbackKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", feedbackPrefix, id))
}

// makeFeedbackUserKey generates a composite key for the submitter index.
// Format: prefix:userId:feedbackId
func makeFeedbackUserKey(userId, feedbackId core.ID) []byte {
	prefix := feedbackUserPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(feedbackId))
	return buf
}

// makePartialFeedbackUserKey generates a partial key for submitter queries.
func makePartialFeedbackUserKey(userId core.ID) []byte {
	prefix := feedbackUserPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(userId))
	return buf
}

// makeFeedbackPairKey generates a composite key for the match-pair index.
// Format: prefix:requesterId:candidateId:feedbackId
func makeFeedbackPairKey(requesterId, candidateId, feedbackId core.ID) []byte {
	prefix := feedbackPairPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+24)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(requesterId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(candidateId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(feedbackId))
	return buf
}

// makePartialFeedbackPairKey generates a partial key for match-pair queries.
func makePartialFeedbackPairKey(requesterId, candidateId core.ID) []byte {
	prefix := feedbackPairPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(requesterId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(candidateId))
	return buf
}

// makeImpressionKey generates a key for an impression record by ID.
func makeImpressionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", impressionPrefix, id))
}

// makeImpressionReqKey generates a composite key for the requester index.
// Format: prefix:requesterId:impressionId
func makeImpressionReqKey(requesterId, impressionId core.ID) []byte {
	prefix := impressionReqPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(requesterId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(impressionId))
	return buf
}

// makePartialImpressionReqKey generates a partial key for requester queries.
func makePartialImpressionReqKey(requesterId core.ID) []byte {
	prefix := impressionReqPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(requesterId))
	return buf
}
