package ledger

import (
	"testing"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	require.NoError(t, l.Deposit("", 3, entity.CurrencyTO, "tesouro"))

	s := l.State()
	assert.Equal(t, float64(3), s.Wallet.TO)
	require.Len(t, s.Logs, 1)
	assert.Equal(t, entity.LogDeposito, s.Logs[0].Category)
	assert.Equal(t, float64(30), s.Logs[0].Value)
}

func TestDeposit_RejectsBadInput(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	tests := []struct {
		name     string
		amount   float64
		currency entity.Currency
	}{
		{"zero", 0, entity.CurrencyTS},
		{"negative", -5, entity.CurrencyTS},
		{"unknown currency", 5, entity.Currency("XP")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Deposit("", tt.amount, tt.currency, "")
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
	assert.Zero(t, l.LogCount())
}

func TestWithdraw(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{LO: 2})

	require.NoError(t, l.Withdraw("", 1, entity.CurrencyLO, "feudo"))

	s := l.State()
	assert.Equal(t, float64(1), s.Wallet.LO)
	assert.Equal(t, entity.LogSaque, s.Logs[0].Category)
	assert.Equal(t, float64(-1000), s.Logs[0].Value)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 10})

	err := l.Withdraw("", 10.5, entity.CurrencyTS, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))
	assert.Equal(t, float64(10), l.State().Wallet.TS)
	assert.Zero(t, l.LogCount())
}

func TestConvertWallet_KeepsRemainder(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 25})

	res, err := l.ConvertWallet(25, entity.CurrencyTS, entity.CurrencyTO)
	require.NoError(t, err)
	assert.Equal(t, float64(2), res.Converted)
	assert.Equal(t, float64(20), res.Cost)

	s := l.State()
	assert.Equal(t, float64(5), s.Wallet.TS)
	assert.Equal(t, float64(2), s.Wallet.TO)
	assert.Equal(t, entity.LogConversao, s.Logs[0].Category)
	assert.Zero(t, s.Logs[0].Value)
}

func TestConvertWallet_Downward(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{LO: 1})

	res, err := l.ConvertWallet(1, entity.CurrencyLO, entity.CurrencyTC)
	require.NoError(t, err)
	assert.Equal(t, float64(10000), res.Converted)

	s := l.State()
	assert.Zero(t, s.Wallet.LO)
	assert.Equal(t, float64(10000), s.Wallet.TC)
}

func TestConvertWallet_PreservesValue(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TC: 1234})
	before := l.State().Wallet.TotalTS()

	_, err := l.ConvertWallet(1234, entity.CurrencyTC, entity.CurrencyTO)
	require.NoError(t, err)

	s := l.State()
	assert.Equal(t, float64(34), s.Wallet.TC)
	assert.Equal(t, float64(12), s.Wallet.TO)
	assert.InDelta(t, before, s.Wallet.TotalTS(), 1e-9)
}

func TestConvertWallet_Errors(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 5})

	_, err := l.ConvertWallet(5, entity.CurrencyTS, entity.CurrencyTO)
	assert.True(t, errors.Is(err, domainerrors.ErrConversionTooSmall))

	_, err = l.ConvertWallet(6, entity.CurrencyTS, entity.CurrencyTC)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))

	_, err = l.ConvertWallet(1, entity.CurrencyTS, entity.CurrencyTS)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	assert.Equal(t, float64(5), l.State().Wallet.TS)
	assert.Zero(t, l.LogCount())
}
