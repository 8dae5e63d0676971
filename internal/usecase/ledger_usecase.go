package usecase

import (
	"context"
	"time"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"
)

// LoginOutput is returned when a guild session is opened.
type LoginOutput struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	State     *entity.GuildState
}

// Mutation is one ledger operation run inside a session.
type Mutation func(l *ledger.Ledger) error

// LedgerUsecase runs ledger operations inside authenticated guild sessions.
// Each session owns its ledger; requests on one session are serialized.
type LedgerUsecase interface {
	// Login opens a session on a guild using its password or the admin password.
	Login(ctx context.Context, guildID, password string) (*LoginOutput, error)
	// Logout closes a session. Closing an unknown session is a no-op.
	Logout(ctx context.Context, sessionID string) error
	// State returns a copy of the session's guild state.
	State(ctx context.Context, sessionID string) (*entity.GuildState, error)
	// Apply runs fn against the session's ledger, then saves and publishes the result.
	// The returned state reflects fn's changes even when the save failed.
	Apply(ctx context.Context, sessionID, operation string, fn Mutation) (*entity.GuildState, error)
}
