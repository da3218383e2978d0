package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote values. Zero removes an existing vote.
const (
	VoteDown = -1
	VoteNone = 0
	VoteUp   = 1
)

// VoteTally is the vote state of a document after a vote was cast.
type VoteTally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	MyVote    int `json:"myVote"`
}

// FlagID uniquely identifies a report against a document.
type FlagID uuid.UUID

// Flag is a user report that a document is wrong, offensive or spam.
type Flag struct {
	ID         FlagID     `json:"id"`
	DocumentID DocumentID `json:"documentId"`
	UserID     UserID     `json:"userId"`
	Reason     string     `json:"reason"`
	ResolvedAt time.Time  `json:"resolvedAt,omitzero"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SystemUserID files flags raised by the automatic review.
const SystemUserID UserID = "system"
