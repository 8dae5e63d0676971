package service

import (
	"context"
	"time"

	"guildbook/internal/domain/entity"
)

// LedgerEvent is emitted after a ledger command has been applied to a guild.
type LedgerEvent struct {
	RequestID  string             `json:"request_id,omitempty"` // For distributed tracing
	EventID    string             `json:"event_id"`
	GuildID    string             `json:"guild_id"`
	GuildName  string             `json:"guild_name"`
	Operation  string             `json:"operation"`
	Persisted  bool               `json:"persisted"`
	Entries    []*entity.LogEntry `json:"entries,omitempty"` // Log entries written by the command
	Wallet     entity.Wallet      `json:"wallet"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async processing
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
