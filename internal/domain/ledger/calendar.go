package ledger

import (
	"fmt"

	"guildbook/internal/domain/entity"
)

// AdvanceDate moves the calendar by days, which may be negative. Months and
// the weekday roll over independently of each other.
func (l *Ledger) AdvanceDate(days int) error {
	return l.apply(func(s *entity.GuildState) error {
		s.Calendar = advance(s.Calendar, days)
		l.record(s, entity.LogCalendario,
			fmt.Sprintf("Tempo avançou %d dia(s): %s", days, formatDate(s.Calendar)), 0, entity.SystemActorID)

		return nil
	})
}

// SetGameDate overwrites the date. The weekday is left as is.
func (l *Ledger) SetGameDate(day, month, year int) error {
	if day < 1 || day > entity.DaysPerMonth {
		return invalid(fmt.Sprintf("day must be between 1 and %d", entity.DaysPerMonth))
	}
	if month < 0 || month >= entity.MonthsPerYear {
		return invalid(fmt.Sprintf("month must be between 0 and %d", entity.MonthsPerYear-1))
	}

	return l.apply(func(s *entity.GuildState) error {
		s.Calendar.Day = day
		s.Calendar.Month = month
		s.Calendar.Year = year
		l.record(s, entity.LogCalendario, "Data ajustada para "+formatDate(s.Calendar), 0, entity.SystemActorID)

		return nil
	})
}

// ToggleNimbDay sets the Nimb day marker. It has no effect on date arithmetic.
func (l *Ledger) ToggleNimbDay(on bool) error {
	return l.apply(func(s *entity.GuildState) error {
		s.Calendar.IsNimbDay = on

		return nil
	})
}

func advance(c entity.CalendarState, days int) entity.CalendarState {
	idx := c.Day - 1 + days
	monthIdx := c.Month + floorDiv(idx, entity.DaysPerMonth)

	c.Day = floorMod(idx, entity.DaysPerMonth) + 1
	c.Year += floorDiv(monthIdx, entity.MonthsPerYear)
	c.Month = floorMod(monthIdx, entity.MonthsPerYear)
	c.DayOfWeek = floorMod(c.DayOfWeek+days, entity.DaysPerWeek)

	return c
}

func formatDate(c entity.CalendarState) string {
	return fmt.Sprintf("%02d/%02d/%d", c.Day, c.Month+1, c.Year)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
