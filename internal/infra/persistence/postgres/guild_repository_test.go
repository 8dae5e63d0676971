package postgres

import (
	"testing"
	"time"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestGuildRecordMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := entity.NewGuildState("g-1", "Lanternas")
	state.Wallet.TS = 120
	record := &entity.GuildRecord{
		ID:           "g-1",
		GuildName:    "Lanternas",
		PasswordHash: "hash",
		State:        state,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	guildModel := fromGuildRecord(record)
	assert.Equal(t, "g-1", guildModel.ID)
	assert.Equal(t, "hash", guildModel.PasswordHash)

	back := toGuildRecord(guildModel)
	require.NotNil(t, back.State)
	assert.Equal(t, "Lanternas", back.GuildName)
	assert.Equal(t, 120.0, back.State.Wallet.TS)
	assert.Equal(t, now, back.UpdatedAt)
}

func TestFromGuildRecord_NilStateGetsFreshState(t *testing.T) {
	guildModel := fromGuildRecord(&entity.GuildRecord{ID: "g-2", GuildName: "Corvos"})

	state := guildModel.State.Data()
	assert.Equal(t, "g-2", state.ID)
	assert.Equal(t, "Corvos", state.GuildName)
}

func TestTranslateWriteError(t *testing.T) {
	err := translateWriteError(gorm.ErrDuplicatedKey, "save")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = translateWriteError(errors.New(`null value in column "state" violates not-null constraint`), "save")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = translateWriteError(errors.New("connection reset"), "save")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "save", dbErr.Details())
}

func TestStateColumns_LeavePasswordHashAlone(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := entity.NewGuildState("g-1", "Lanternas")
	state.Wallet.TO = 4

	columns := stateColumns("Lanternas", state, now)

	assert.NotContains(t, columns, "password_hash")
	assert.NotContains(t, columns, "created_at")
	assert.Equal(t, "Lanternas", columns["guild_name"])
	assert.Equal(t, now, columns["updated_at"])

	stored, ok := columns["state"].(datatypes.JSONType[entity.GuildState])
	require.True(t, ok)
	assert.Equal(t, 4.0, stored.Data().Wallet.TO)
}
