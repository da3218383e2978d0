package storage

import (
	"context"
	"studyshare/pkg/domain"
)

// VoteStorage keeps one vote per user and document and the denormalized
// counters on the document row in sync.
type VoteStorage interface {
	// SetVote stores value (-1 or 1) for the user, or removes the vote when
	// value is 0, then recomputes the document counters. It must run inside a
	// transaction.
	SetVote(ctx context.Context, documentID domain.DocumentID, userID domain.UserID, value int) (domain.VoteTally, error)
	// ResetVotes removes every vote of a document and zeroes its counters.
	ResetVotes(ctx context.Context, documentID domain.DocumentID) error
}

// FlagStorage stores user reports against documents.
type FlagStorage interface {
	// StoreFlag files a report. created is false when the user already has an
	// open report on the document. flag_count is recomputed.
	StoreFlag(ctx context.Context, flag domain.Flag) (stored *domain.Flag, created bool, err error)
	// OpenFlags lists unresolved reports of a document, oldest first.
	OpenFlags(ctx context.Context, documentID domain.DocumentID) ([]domain.Flag, error)
	// ResolveFlags resolves every open report and zeroes flag_count. It returns
	// the number of resolved reports.
	ResolveFlags(ctx context.Context, documentID domain.DocumentID) (int64, error)
}
