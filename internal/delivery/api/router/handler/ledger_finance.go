package handler

import (
	"net/http"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// MoneyRequest moves an amount of one currency in or out of the guild wallet.
type MoneyRequest struct {
	MemberID string          `json:"memberId"`
	Amount   float64         `json:"amount" validate:"gt=0"`
	Currency entity.Currency `json:"currency" validate:"required,oneof=TC TS TO LO"`
	Reason   string          `json:"reason"`
}

// ConvertRequest is the body of POST /ledger/finance/convert.
type ConvertRequest struct {
	Amount float64         `json:"amount" validate:"gt=0"`
	From   entity.Currency `json:"from" validate:"required,oneof=TC TS TO LO"`
	To     entity.Currency `json:"to" validate:"required,oneof=TC TS TO LO"`
}

// Deposit credits the guild wallet.
func (h *LedgerHandler) Deposit(c echo.Context) error {
	var req MoneyRequest

	return h.bindRun(c, &req, "finance.deposit", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.Deposit(req.MemberID, req.Amount, req.Currency, req.Reason)
	})
}

// Withdraw debits the guild wallet.
func (h *LedgerHandler) Withdraw(c echo.Context) error {
	var req MoneyRequest

	return h.bindRun(c, &req, "finance.withdraw", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.Withdraw(req.MemberID, req.Amount, req.Currency, req.Reason)
	})
}

// Convert exchanges one currency for another inside the guild wallet.
func (h *LedgerHandler) Convert(c echo.Context) error {
	var req ConvertRequest

	return h.bindRun(c, &req, "finance.convert", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return l.ConvertWallet(req.Amount, req.From, req.To)
	})
}
