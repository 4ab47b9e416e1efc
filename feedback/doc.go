// Package feedback records user opinions about surfaced matches.
//
// The Ledger type is the write path for match feedback. It verifies that the
// submitting user owns the requester profile the feedback refers to, then
// upserts the record: one user keeps exactly one opinion per match pair, and
// resubmitting replaces the earlier opinion rather than stacking a new one.
// Reads expose a user's own history and the history of a pair.
package feedback
