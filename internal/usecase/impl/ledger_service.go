package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guildbook/config"
	deliverycontext "guildbook/internal/delivery/context"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/ledger"
	"guildbook/internal/domain/repository"
	"guildbook/internal/domain/service"
	"guildbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSaveRetries  = 1
	defaultRetryBackoff = 200 * time.Millisecond
)

// ledgerSession is one open guild session and the ledger it owns.
type ledgerSession struct {
	mu        sync.Mutex
	id        string
	guildID   string
	expiresAt time.Time
	ledger    *ledger.Ledger
}

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	guildRepo    repository.GuildRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
	publisher    service.EventPublisher
	admin        usecase.AdminUsecase
	saveRetries  int
	retryBackoff time.Duration
	now          func() time.Time
	wait         func(ctx context.Context, d time.Duration) error
	logger       *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*ledgerSession
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	GuildRepo repository.GuildRepository
	Hasher    service.PasswordHasher
	TokenSvc  service.TokenService
	Publisher service.EventPublisher
	Admin     usecase.AdminUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	saveRetries := defaultSaveRetries
	retryBackoff := defaultRetryBackoff
	if params.Config != nil && params.Config.Persistence != nil {
		saveRetries = max(params.Config.Persistence.SaveRetries, 0)
		if params.Config.Persistence.RetryBackoff > 0 {
			retryBackoff = params.Config.Persistence.RetryBackoff
		}
	}

	return &ledgerService{
		guildRepo:    params.GuildRepo,
		hasher:       params.Hasher,
		tokenSvc:     params.TokenSvc,
		publisher:    params.Publisher,
		admin:        params.Admin,
		saveRetries:  saveRetries,
		retryBackoff: retryBackoff,
		now:          time.Now,
		wait:         waitFor,
		logger:       params.Logger,
		sessions:     make(map[string]*ledgerSession),
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login opens a session on a guild.
func (srv *ledgerService) Login(ctx context.Context, guildID, password string) (*usecase.LoginOutput, error) {
	record, err := srv.guildRepo.FindByID(ctx, guildID)
	if err != nil {
		if errors.Is(err, repository.ErrGuildNotFound) {
			return nil, errors.WithStack(domainerrors.ErrGuildNotFound)
		}

		return nil, errors.Wrap(err, "failed to find guild")
	}
	if err := checkGuildAccess(ctx, srv.hasher, srv.admin, record, password); err != nil {
		srv.log(ctx).Warn("Rejected guild login", slog.String("guild_id", guildID))

		return nil, err
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := srv.tokenSvc.GenerateToken(guildID, sessionID, entity.Roles{entity.RoleGuild}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	sess := &ledgerSession{
		id:        sessionID,
		guildID:   guildID,
		expiresAt: expiresAt,
		ledger:    ledger.New(record.State),
	}

	srv.mu.Lock()
	srv.sessions[sessionID] = sess
	srv.mu.Unlock()

	srv.log(ctx).Info("Guild session opened",
		slog.String("guild_id", guildID),
		slog.String("session_id", sessionID),
	)

	return &usecase.LoginOutput{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
		State:     sess.ledger.State(),
	}, nil
}

// Logout drops the session and its ledger.
func (srv *ledgerService) Logout(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	_, ok := srv.sessions[sessionID]
	delete(srv.sessions, sessionID)
	srv.mu.Unlock()

	if ok {
		srv.log(ctx).Info("Guild session closed", slog.String("session_id", sessionID))
	}

	return nil
}

// State returns a copy of the session's guild state.
func (srv *ledgerService) State(ctx context.Context, sessionID string) (*entity.GuildState, error) {
	sess, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.ledger.State(), nil
}

// Apply runs fn on the session's ledger. A rejected operation changes nothing.
// An accepted one is kept in memory even when every save attempt fails, unless
// the guild was deleted meanwhile, which closes the session.
func (srv *ledgerService) Apply(ctx context.Context, sessionID, operation string, fn usecase.Mutation) (*entity.GuildState, error) {
	sess, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	before := sess.ledger.LogCount()
	if err := fn(sess.ledger); err != nil {
		return nil, err
	}

	state := sess.ledger.State()
	entries := state.Logs[:max(len(state.Logs)-before, 0)]

	saveErr := srv.save(ctx, sess, state)
	if errors.Is(saveErr, repository.ErrGuildNotFound) {
		srv.drop(sess.id)
		srv.log(ctx).Warn("Guild vanished under an open session",
			slog.String("guild_id", sess.guildID),
			slog.String("session_id", sess.id),
		)

		return nil, errors.WithStack(domainerrors.ErrGuildNotFound)
	}
	srv.publish(ctx, sess, operation, state, entries, saveErr == nil)

	if saveErr != nil {
		srv.log(ctx).Error("Failed to save guild snapshot",
			slog.String("guild_id", sess.guildID),
			slog.String("operation", operation),
			slog.Any("error", saveErr),
		)

		return state, errors.Wrap(domainerrors.ErrSaveFailed, saveErr.Error())
	}

	return state, nil
}

func (srv *ledgerService) session(sessionID string) (*ledgerSession, error) {
	srv.mu.RLock()
	sess, ok := srv.sessions[sessionID]
	srv.mu.RUnlock()

	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}
	if !sess.expiresAt.IsZero() && srv.now().After(sess.expiresAt) {
		srv.drop(sessionID)

		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	return sess, nil
}

func (srv *ledgerService) drop(sessionID string) {
	srv.mu.Lock()
	delete(srv.sessions, sessionID)
	srv.mu.Unlock()
}

// save writes the snapshot, retrying with exponential backoff. Only name and
// state are written, so a password reset made meanwhile survives. A deleted
// guild is reported at once and never recreated.
func (srv *ledgerService) save(ctx context.Context, sess *ledgerSession, state *entity.GuildState) error {
	backoff := srv.retryBackoff
	var lastErr error
	for attempt := 0; attempt <= srv.saveRetries; attempt++ {
		if attempt > 0 {
			if err := srv.wait(ctx, backoff); err != nil {
				return errors.Wrap(lastErr, err.Error())
			}
			backoff *= 2
		}

		lastErr = srv.guildRepo.SaveState(ctx, sess.guildID, state.GuildName, state)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, repository.ErrGuildNotFound) {
			return lastErr
		}

		srv.log(ctx).Warn("Guild save attempt failed",
			slog.String("guild_id", sess.guildID),
			slog.Int("attempt", attempt+1),
			slog.Any("error", lastErr),
		)
	}

	return lastErr
}

func (srv *ledgerService) publish(
	ctx context.Context,
	sess *ledgerSession,
	operation string,
	state *entity.GuildState,
	entries []*entity.LogEntry,
	persisted bool,
) {
	if srv.publisher == nil {
		return
	}

	event := &service.LedgerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		GuildID:    sess.guildID,
		GuildName:  state.GuildName,
		Operation:  operation,
		Persisted:  persisted,
		Entries:    entries,
		Wallet:     state.Wallet,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish ledger event",
			slog.String("guild_id", sess.guildID),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
