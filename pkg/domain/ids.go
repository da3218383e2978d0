package domain

import (
	"github.com/google/uuid"
)

// The id types below encode as canonical uuid strings in JSON and text.

func (id DocumentID) String() string { return uuid.UUID(id).String() }

func (id DocumentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *DocumentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id NotificationID) String() string { return uuid.UUID(id).String() }

func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *NotificationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id RecommendationID) String() string { return uuid.UUID(id).String() }

func (id RecommendationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RecommendationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id FlagID) String() string { return uuid.UUID(id).String() }

func (id FlagID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *FlagID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id MessageID) String() string { return uuid.UUID(id).String() }

func (id MessageID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *MessageID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
