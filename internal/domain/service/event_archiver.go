package service

import (
	"context"
	"time"
)

// EventArchiver keeps a durable history of ledger events.
type EventArchiver interface {
	// Archive appends event to its guild's history. Archiving an event id twice is a no-op.
	Archive(ctx context.Context, event *LedgerEvent) error

	// Events returns the archived events of a guild for the UTC day of day, oldest first.
	Events(ctx context.Context, guildID string, day time.Time) ([]*LedgerEvent, error)
}
