package ledger

import (
	"testing"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		from entity.CalendarState
		days int
		want entity.CalendarState
	}{
		{
			name: "same month",
			from: entity.CalendarState{Day: 1, Month: 0, Year: 1420},
			days: 5,
			want: entity.CalendarState{Day: 6, Month: 0, Year: 1420, DayOfWeek: 5},
		},
		{
			name: "month rollover",
			from: entity.CalendarState{Day: 1, Month: 0, Year: 1420},
			days: 31,
			want: entity.CalendarState{Day: 2, Month: 1, Year: 1420, DayOfWeek: 3},
		},
		{
			name: "last day of month",
			from: entity.CalendarState{Day: 29, Month: 4, Year: 1420},
			days: 1,
			want: entity.CalendarState{Day: 30, Month: 4, Year: 1420, DayOfWeek: 1},
		},
		{
			name: "year rollover",
			from: entity.CalendarState{Day: 30, Month: 11, Year: 1420, DayOfWeek: 6},
			days: 1,
			want: entity.CalendarState{Day: 1, Month: 0, Year: 1421, DayOfWeek: 0},
		},
		{
			name: "rewind across year",
			from: entity.CalendarState{Day: 1, Month: 0, Year: 1420},
			days: -1,
			want: entity.CalendarState{Day: 30, Month: 11, Year: 1419, DayOfWeek: 6},
		},
		{
			name: "long rewind",
			from: entity.CalendarState{Day: 15, Month: 2, Year: 1420, DayOfWeek: 2},
			days: -400,
			want: entity.CalendarState{Day: 5, Month: 1, Year: 1419, DayOfWeek: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advance(tt.from, tt.days))
		})
	}
}

func TestAdvanceDate_Logs(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	require.NoError(t, l.AdvanceDate(7))

	s := l.State()
	assert.Equal(t, 8, s.Calendar.Day)
	assert.Equal(t, 0, s.Calendar.DayOfWeek)
	assert.Equal(t, entity.LogCalendario, s.Logs[0].Category)
	assert.Zero(t, s.Logs[0].Value)
}

func TestSetGameDate(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	require.NoError(t, l.SetGameDate(12, 6, 1422))
	c := l.State().Calendar
	assert.Equal(t, 12, c.Day)
	assert.Equal(t, 6, c.Month)
	assert.Equal(t, 1422, c.Year)

	err := l.SetGameDate(31, 0, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	err = l.SetGameDate(1, 12, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestToggleNimbDay(t *testing.T) {
	l := newTestLedger(t, entity.Wallet{})

	require.NoError(t, l.ToggleNimbDay(true))
	assert.True(t, l.State().Calendar.IsNimbDay)

	require.NoError(t, l.AdvanceDate(1))
	assert.Equal(t, 2, l.State().Calendar.Day)
	assert.True(t, l.State().Calendar.IsNimbDay)

	require.NoError(t, l.ToggleNimbDay(false))
	assert.False(t, l.State().Calendar.IsNimbDay)
}
