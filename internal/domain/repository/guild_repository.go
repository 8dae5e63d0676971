// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"guildbook/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for guild persistence.
var (
	// ErrGuildNotFound is returned when no guild document exists for an id.
	ErrGuildNotFound = errors.New("guild not found")
)

// GuildRepository defines the interface for guild document persistence. A
// guild is stored as one whole snapshot next to its password hash.
type GuildRepository interface {
	// FindByID loads a guild record including its password hash and state.
	FindByID(ctx context.Context, id string) (*entity.GuildRecord, error)

	// Save inserts or replaces the record identified by record.ID.
	Save(ctx context.Context, record *entity.GuildRecord) error

	// SaveState replaces the name and state of an existing guild and leaves its
	// password hash untouched. A missing guild returns ErrGuildNotFound.
	SaveState(ctx context.Context, id, guildName string, state *entity.GuildState) error

	// Delete removes a guild. Deleting a missing guild returns ErrGuildNotFound.
	Delete(ctx context.Context, id string) error

	// ListRecent returns at most limit guild summaries, most recently updated first.
	ListRecent(ctx context.Context, limit int) ([]*entity.GuildSummary, error)
}
