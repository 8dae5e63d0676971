package ledger

import (
	"testing"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBase_Paid(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 600})

	b, err := l.AddBase("Torre", entity.PorteMinima, entity.BaseTypeResidencia, true)
	require.NoError(t, err)
	assert.Empty(t, b.Rooms)

	s := l.State()
	assert.Equal(t, float64(100), s.Wallet.TS)
	assert.Equal(t, entity.LogInvestimento, s.Logs[0].Category)
	assert.Equal(t, float64(-500), s.Logs[0].Value)

	_, err = l.AddBase("Castelo", entity.PorteSuprema, entity.BaseTypeFortificacao, true)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))
	assert.Len(t, l.State().Bases, 1)
}

func TestAddBase_Reward(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	_, err := l.AddBase("Castelo", entity.PorteSuprema, entity.BaseTypeFortificacao, false)
	require.NoError(t, err)
	assert.Len(t, l.State().Bases, 1)
	assert.Zero(t, l.LogCount())

	_, err = l.AddBase("X", entity.Porte("Colossal"), entity.BaseTypeMovel, false)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUpgradeBase(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 3000})
	b, err := l.AddBase("Torre", entity.PorteModesta, entity.BaseTypeResidencia, false)
	require.NoError(t, err)

	require.NoError(t, l.UpgradeBase(b.ID, entity.PorteBasica))
	s := l.State()
	assert.Equal(t, entity.PorteBasica, s.FindBase(b.ID).Porte)
	assert.Equal(t, float64(0), s.Wallet.TS)
	assert.Equal(t, float64(-3000), s.Logs[0].Value)
}

func TestUpgradeBase_DowngradeIsFree(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 7})
	b, err := l.AddBase("Torre", entity.PorteGrandiosa, entity.BaseTypeResidencia, false)
	require.NoError(t, err)
	_, err = l.AddRoom(b.ID, "Salão", 0, false)
	require.NoError(t, err)
	_, err = l.AddRoom(b.ID, "Cozinha", 0, false)
	require.NoError(t, err)

	require.NoError(t, l.UpgradeBase(b.ID, entity.PorteMinima))

	s := l.State()
	assert.Equal(t, float64(7), s.Wallet.TS)
	assert.Len(t, s.FindBase(b.ID).Rooms, 2)

	used, slots, err := l.RoomCapacity(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, used)
	assert.Equal(t, 1, slots)
}

func TestUpgradeBase_InsufficientFunds(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 100})
	b, err := l.AddBase("Torre", entity.PorteMinima, entity.BaseTypeResidencia, false)
	require.NoError(t, err)

	err = l.UpgradeBase(b.ID, entity.PorteModesta)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))
	assert.Equal(t, entity.PorteMinima, l.State().FindBase(b.ID).Porte)

	err = l.UpgradeBase("missing", entity.PorteModesta)
	assert.True(t, errors.Is(err, domainerrors.ErrBaseNotFound))
}

func TestBaseMaintenanceAndIncome(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 30})
	b, err := l.AddBase("Taverna", entity.PorteModesta, entity.BaseTypeEmpreendimento, false)
	require.NoError(t, err)

	require.NoError(t, l.PayBaseMaintenance(b.ID, "Mensal", 25))
	assert.Equal(t, float64(5), l.State().Wallet.TS)
	assert.Equal(t, entity.LogManutencao, l.State().Logs[0].Category)

	err = l.PayBaseMaintenance(b.ID, "Mensal", 25)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))

	require.NoError(t, l.CollectBaseIncome(b.ID, 3))
	s := l.State()
	assert.Equal(t, float64(3), s.Wallet.TO)
	assert.Equal(t, entity.LogBase, s.Logs[0].Category)
	assert.Equal(t, float64(30), s.Logs[0].Value)
}

func TestRoomsAndFurniture(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 100})
	b, err := l.AddBase("Torre", entity.PorteBasica, entity.BaseTypeResidencia, false)
	require.NoError(t, err)

	r, err := l.AddRoom(b.ID, "Biblioteca", 60, true)
	require.NoError(t, err)
	assert.Equal(t, float64(40), l.State().Wallet.TS)
	assert.Equal(t, entity.LogBase, l.State().Logs[0].Category)

	_, err = l.AddFurniture(b.ID, r.ID, "Estante", 50, true)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))

	f, err := l.AddFurniture(b.ID, r.ID, "Estante", 50, false)
	require.NoError(t, err)
	assert.Equal(t, float64(40), l.State().Wallet.TS)

	_, err = l.AddFurniture(b.ID, "missing", "Mesa", 1, false)
	assert.True(t, errors.Is(err, domainerrors.ErrRoomNotFound))

	require.NoError(t, l.RemoveFurniture(b.ID, r.ID, f.ID))
	assert.Empty(t, l.State().FindBase(b.ID).FindRoom(r.ID).Furnitures)

	require.NoError(t, l.RemoveRoom(b.ID, r.ID))
	assert.Empty(t, l.State().FindBase(b.ID).Rooms)
}

func TestRenameAndDemolishBase(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{TS: 10})
	b, err := l.AddBase("Torre", entity.PorteMinima, entity.BaseTypeResidencia, false)
	require.NoError(t, err)

	require.NoError(t, l.RenameBase(b.ID, "Torre Alta"))
	assert.Equal(t, "Torre Alta", l.State().FindBase(b.ID).Name)

	require.NoError(t, l.DemolishBase(b.ID))
	s := l.State()
	assert.Empty(t, s.Bases)
	assert.Equal(t, float64(10), s.Wallet.TS)
	assert.Equal(t, entity.LogSistema, s.Logs[0].Category)
}
