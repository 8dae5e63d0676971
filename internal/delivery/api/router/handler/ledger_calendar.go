package handler

import (
	"net/http"

	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// AdvanceDateRequest moves the calendar by a signed number of days.
type AdvanceDateRequest struct {
	Days int `json:"days" validate:"ne=0"`
}

// SetDateRequest overwrites the in-game date.
type SetDateRequest struct {
	Day   int `json:"day" validate:"gte=1,lte=30"`
	Month int `json:"month" validate:"gte=1,lte=12"`
	Year  int `json:"year"`
}

// NimbDayRequest sets the Nimb day marker.
type NimbDayRequest struct {
	On bool `json:"on"`
}

// AdvanceDate moves the calendar forward or back.
func (h *LedgerHandler) AdvanceDate(c echo.Context) error {
	var req AdvanceDateRequest

	return h.bindRun(c, &req, "calendar.advance", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.AdvanceDate(req.Days)
	})
}

// SetGameDate overwrites the calendar date.
func (h *LedgerHandler) SetGameDate(c echo.Context) error {
	var req SetDateRequest

	return h.bindRun(c, &req, "calendar.set", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.SetGameDate(req.Day, req.Month, req.Year)
	})
}

// ToggleNimbDay flags or clears the Nimb day.
func (h *LedgerHandler) ToggleNimbDay(c echo.Context) error {
	var req NimbDayRequest

	return h.bindRun(c, &req, "calendar.nimb", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.ToggleNimbDay(req.On)
	})
}

