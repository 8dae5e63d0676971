// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"guildbook/internal/domain/entity"
)

// --- Input DTOs ---

// CreateGuildInput defines the data required to found a new guild.
type CreateGuildInput struct {
	Name     string
	Password string
}

// SaveGuildInput carries a full guild snapshot to store.
type SaveGuildInput struct {
	State    *entity.GuildState
	Password string
}

// GuildUsecase defines guild document access guarded by guild or admin passwords.
type GuildUsecase interface {
	// GetGuild returns the guild when password matches the guild or the admin password.
	GetGuild(ctx context.Context, id, password string) (*entity.GuildState, error)
	// ListGuilds returns the most recently updated guilds.
	ListGuilds(ctx context.Context) ([]*entity.GuildSummary, error)
	// SaveGuild creates or replaces a guild. The first save of an id fixes its password.
	SaveGuild(ctx context.Context, input SaveGuildInput) (*entity.GuildState, error)
	// CreateGuild founds a new guild with empty defaults.
	CreateGuild(ctx context.Context, input CreateGuildInput) (*entity.GuildState, error)
	// DeleteGuild removes a guild when password matches the guild or the admin password.
	DeleteGuild(ctx context.Context, id, password string) error
}
