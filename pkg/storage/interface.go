// Package storage declares the persistence ports of StudyShare. Services
// depend on these interfaces; pkg/storage/postgres implements them.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go studyshare/pkg/storage AllStorage,TxStorage,Storage
package storage

import "context"

// AllStorage is everything a service can read or write, in or out of a
// transaction.
type AllStorage interface {
	UserStorage
	DocumentStorage
	VoteStorage
	FlagStorage
	MessageStorage
	RecommendationStorage
	NotificationStorage
	JobStorage
}

// TxStorage is a handle bound to an open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the pool-backed handle services are constructed with.
type Storage interface {
	AllStorage

	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
