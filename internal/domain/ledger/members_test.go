package ledger

import (
	"testing"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMember(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	m, err := l.AddMember(" Ana ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", m.Name)
	assert.Equal(t, entity.MemberStatusAtivo, m.Status)
	assert.Empty(t, m.Inventory)

	s := l.State()
	require.Len(t, s.Members, 1)
	assert.Equal(t, entity.LogMembro, s.Logs[0].Category)

	_, err = l.AddMember("")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRemoveMember(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})
	m, err := l.AddMember("Ana")
	require.NoError(t, err)

	require.NoError(t, l.RemoveMember(m.ID))
	assert.Empty(t, l.State().Members)
	assert.Equal(t, entity.LogSistema, l.State().Logs[0].Category)

	count := l.LogCount()
	require.NoError(t, l.RemoveMember("missing"))
	assert.Equal(t, count, l.LogCount())
}

func TestUpdateMember(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})
	m, err := l.AddMember("Ana")
	require.NoError(t, err)

	level := 5
	role := "Clériga"
	require.NoError(t, l.UpdateMember(m.ID, MemberPatch{Level: &level, Role: &role}))

	got := l.State().FindMember(m.ID)
	assert.Equal(t, 5, got.Level)
	assert.Equal(t, "Clériga", got.Role)
	assert.Equal(t, "Ana", got.Name)

	status := entity.MemberStatus("Aposentado")
	err = l.UpdateMember(m.ID, MemberPatch{Status: &status})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	status = entity.MemberStatusFerido
	require.NoError(t, l.UpdateMember(m.ID, MemberPatch{Status: &status}))
	assert.Equal(t, entity.MemberStatusFerido, l.State().FindMember(m.ID).Status)

	err = l.UpdateMember("missing", MemberPatch{Level: &level})
	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestTransferGold(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TO: 10})
	m, err := l.AddMember("Ana")
	require.NoError(t, err)

	require.NoError(t, l.TransferGoldToMember(m.ID, 4, entity.CurrencyTO))
	s := l.State()
	assert.Equal(t, float64(6), s.Wallet.TO)
	assert.Equal(t, float64(4), s.FindMember(m.ID).Wallet.TO)
	assert.Equal(t, entity.LogSaque, s.Logs[0].Category)
	assert.Equal(t, float64(-40), s.Logs[0].Value)

	require.NoError(t, l.TransferGoldFromMember(m.ID, 1, entity.CurrencyTO))
	s = l.State()
	assert.Equal(t, float64(7), s.Wallet.TO)
	assert.Equal(t, float64(3), s.FindMember(m.ID).Wallet.TO)
	assert.Equal(t, entity.LogDeposito, s.Logs[0].Category)
	assert.Equal(t, float64(10), s.Logs[0].Value)

	err = l.TransferGoldFromMember(m.ID, 4, entity.CurrencyTO)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))
	err = l.TransferGoldToMember(m.ID, 8, entity.CurrencyTO)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))
	err = l.TransferGoldToMember("missing", 1, entity.CurrencyTO)
	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestUpdateMemberWallet(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 100})
	m, err := l.AddMember("Ana")
	require.NoError(t, err)

	require.NoError(t, l.UpdateMemberWallet(m.ID, 30, entity.CurrencyTS, WalletAdd))
	require.NoError(t, l.UpdateMemberWallet(m.ID, 50, entity.CurrencyTS, WalletRemove))

	s := l.State()
	assert.Zero(t, s.FindMember(m.ID).Wallet.TS)
	assert.Equal(t, float64(100), s.Wallet.TS)
	assert.Equal(t, entity.LogMembro, s.Logs[0].Category)
	assert.Zero(t, s.Logs[0].Value)

	err = l.UpdateMemberWallet(m.ID, 1, entity.CurrencyTS, WalletOp("steal"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
