package impl

import (
	"context"
	"testing"
	"time"

	"guildbook/config"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/ledger"
	"guildbook/internal/domain/repository"
	"guildbook/internal/domain/service"
	mockRepo "guildbook/internal/mocks/repository"
	mockService "guildbook/internal/mocks/service"
	mockUsecase "guildbook/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	svc       *ledgerService
	guildRepo *mockRepo.MockGuildRepository
	hasher    *mockService.MockPasswordHasher
	tokenSvc  *mockService.MockTokenService
	publisher *mockService.MockEventPublisher
	admin     *mockUsecase.MockAdminUsecase
	waits     []time.Duration
}

func newLedgerFixture(t *testing.T, saveRetries int) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		guildRepo: mockRepo.NewMockGuildRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		tokenSvc:  mockService.NewMockTokenService(t),
		publisher: mockService.NewMockEventPublisher(t),
		admin:     mockUsecase.NewMockAdminUsecase(t),
	}
	svc := NewLedgerService(LedgerServiceParams{
		GuildRepo: f.guildRepo,
		Hasher:    f.hasher,
		TokenSvc:  f.tokenSvc,
		Publisher: f.publisher,
		Admin:     f.admin,
		Config: &config.Config{Persistence: &config.PersistenceConfig{
			SaveRetries:  saveRetries,
			RetryBackoff: 100 * time.Millisecond,
		}},
		Logger: discardLogger(),
	})
	f.svc = svc.(*ledgerService)
	f.svc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	f.svc.wait = func(_ context.Context, d time.Duration) error {
		f.waits = append(f.waits, d)
		return nil
	}

	return f
}

// login opens a session on a guild holding 100 TS.
func (f *ledgerFixture) login(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	record := storedGuild("g-1")
	record.State.Wallet.TS = 100
	f.guildRepo.EXPECT().FindByID(ctx, "g-1").Return(record, nil).Once()
	f.hasher.EXPECT().Check("pw", "h-guild").Return(true).Once()
	f.tokenSvc.EXPECT().
		GenerateToken("g-1", mock.AnythingOfType("string"), []string{"guild"}).
		Return("tok", time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC), nil).
		Once()

	out, err := f.svc.Login(ctx, "g-1", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", out.Token)
	require.Equal(t, 100.0, out.State.Wallet.TS)

	return out.SessionID
}

func deposit(amount float64) func(l *ledger.Ledger) error {
	return func(l *ledger.Ledger) error {
		return l.Deposit("", amount, entity.CurrencyTS, "loot")
	}
}

func TestLedgerService_ApplySavesAndPublishes(t *testing.T) {
	f := newLedgerFixture(t, 1)
	ctx := context.Background()
	sessionID := f.login(t)

	f.guildRepo.EXPECT().SaveState(ctx, "g-1", "Lanternas", mock.MatchedBy(func(s *entity.GuildState) bool {
		return s.Wallet.TS == 150
	})).Return(nil).Once()
	f.publisher.EXPECT().PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
		return e.GuildID == "g-1" && e.Operation == "deposit" && e.Persisted &&
			len(e.Entries) == 1 && e.Entries[0].Category == entity.LogDeposito
	})).Return(nil).Once()

	state, err := f.svc.Apply(ctx, sessionID, "deposit", deposit(50))

	require.NoError(t, err)
	assert.Equal(t, 150.0, state.Wallet.TS)
	assert.Empty(t, f.waits)
}

func TestLedgerService_ApplyRejectedOperationSkipsSave(t *testing.T) {
	f := newLedgerFixture(t, 1)
	ctx := context.Background()
	sessionID := f.login(t)

	_, err := f.svc.Apply(ctx, sessionID, "withdraw", func(l *ledger.Ledger) error {
		return l.Withdraw("", 500, entity.CurrencyTS, "too much")
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))

	state, err := f.svc.State(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, state.Wallet.TS)
	assert.Empty(t, state.Logs)
}

func TestLedgerService_ApplyKeepsChangeWhenSaveFails(t *testing.T) {
	f := newLedgerFixture(t, 2)
	ctx := context.Background()
	sessionID := f.login(t)

	f.guildRepo.EXPECT().SaveState(ctx, "g-1", mock.Anything, mock.Anything).Return(errors.New("db down")).Times(3)
	f.publisher.EXPECT().PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
		return !e.Persisted
	})).Return(nil).Once()

	state, err := f.svc.Apply(ctx, sessionID, "deposit", deposit(10))

	assert.True(t, errors.Is(err, domainerrors.ErrSaveFailed))
	require.NotNil(t, state)
	assert.Equal(t, 110.0, state.Wallet.TS)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, f.waits)

	current, err := f.svc.State(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 110.0, current.Wallet.TS)
}

func TestLedgerService_ApplyRetrySucceeds(t *testing.T) {
	f := newLedgerFixture(t, 1)
	ctx := context.Background()
	sessionID := f.login(t)

	f.guildRepo.EXPECT().SaveState(ctx, "g-1", mock.Anything, mock.Anything).Return(errors.New("blip")).Once()
	f.guildRepo.EXPECT().SaveState(ctx, "g-1", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishLedgerEvent(ctx, mock.Anything).Return(nil).Once()

	_, err := f.svc.Apply(ctx, sessionID, "deposit", deposit(10))

	require.NoError(t, err)
	assert.Len(t, f.waits, 1)
}

func TestLedgerService_PublishFailureIsNotFatal(t *testing.T) {
	f := newLedgerFixture(t, 0)
	ctx := context.Background()
	sessionID := f.login(t)

	f.guildRepo.EXPECT().SaveState(ctx, "g-1", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishLedgerEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := f.svc.Apply(ctx, sessionID, "deposit", deposit(10))

	require.NoError(t, err)
}

func TestLedgerService_ApplyOnDeletedGuildClosesSession(t *testing.T) {
	f := newLedgerFixture(t, 2)
	ctx := context.Background()
	sessionID := f.login(t)

	f.guildRepo.EXPECT().SaveState(ctx, "g-1", mock.Anything, mock.Anything).
		Return(errors.WithStack(repository.ErrGuildNotFound)).Once()

	state, err := f.svc.Apply(ctx, sessionID, "deposit", deposit(10))

	assert.Nil(t, state)
	assert.True(t, errors.Is(err, domainerrors.ErrGuildNotFound))
	assert.Empty(t, f.waits)

	_, err = f.svc.State(ctx, sessionID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestLedgerService_UnknownSession(t *testing.T) {
	f := newLedgerFixture(t, 1)

	_, err := f.svc.State(context.Background(), "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestLedgerService_ExpiredSession(t *testing.T) {
	f := newLedgerFixture(t, 1)
	sessionID := f.login(t)

	f.svc.now = func() time.Time { return time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC) }
	_, err := f.svc.State(context.Background(), sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestLedgerService_Logout(t *testing.T) {
	f := newLedgerFixture(t, 1)
	ctx := context.Background()
	sessionID := f.login(t)

	require.NoError(t, f.svc.Logout(ctx, sessionID))
	require.NoError(t, f.svc.Logout(ctx, sessionID))

	_, err := f.svc.State(ctx, sessionID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestLedgerService_LoginDenied(t *testing.T) {
	f := newLedgerFixture(t, 1)
	ctx := context.Background()

	f.guildRepo.EXPECT().FindByID(ctx, "g-1").Return(storedGuild("g-1"), nil)
	f.hasher.EXPECT().Check("bad", "h-guild").Return(false)
	f.admin.EXPECT().VerifyPassword(ctx, "bad").Return(false, nil)

	_, err := f.svc.Login(ctx, "g-1", "bad")

	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}
