package moderation

import (
	"context"
	"studyshare/pkg/domain"
)

// Action is an admin decision on a document.
type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionDismissFlags Action = "dismiss_flags"
	ActionResetVotes   Action = "reset_votes"
	ActionUnpublish    Action = "unpublish"
	ActionDelete       Action = "delete"
)

// Dashboard is one page of a dashboard section plus the size of every
// section.
type Dashboard struct {
	Section domain.Section         `json:"section"`
	Items   []domain.Document      `json:"items"`
	Next    string                 `json:"nextCursor,omitempty"`
	Counts  map[domain.Section]int `json:"counts"`
}

//go:generate mockgen -package mockmoderation -source=interface.go -destination=mock/mockmoderation.go *
type Moderation interface {
	Dashboard(ctx context.Context,
		admin *domain.User,
		section domain.Section,
		cursor string,
		limit int) (*Dashboard, error)
	// Flags lists the open reports of a document.
	Flags(ctx context.Context, admin *domain.User, documentID domain.DocumentID) ([]domain.Flag, error)
	// Act applies action to a document and returns its new state. reason is
	// required for rejections.
	Act(ctx context.Context,
		admin *domain.User,
		documentID domain.DocumentID,
		action Action,
		reason string) (*domain.Document, error)
}
