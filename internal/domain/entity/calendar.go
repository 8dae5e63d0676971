package entity

const (
	// DaysPerMonth is fixed; the calendar has no variable month lengths.
	DaysPerMonth = 30
	// MonthsPerYear is fixed.
	MonthsPerYear = 12
	// DaysPerWeek drives the weekday cycle.
	DaysPerWeek = 7
	// DefaultYear is the starting year of a newly founded guild.
	DefaultYear = 1420
)

// CalendarState is the in-game date. Month is zero-based.
type CalendarState struct {
	Day       int  `json:"day"`
	Month     int  `json:"month"`
	Year      int  `json:"year"`
	DayOfWeek int  `json:"dayOfWeek"`
	IsNimbDay bool `json:"isNimbDay"`
}

// DefaultCalendar returns the first day of DefaultYear.
func DefaultCalendar() CalendarState {
	return CalendarState{Day: 1, Month: 0, Year: DefaultYear, DayOfWeek: 0}
}
