package handler

import (
	"net/http"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// AddMemberRequest is the body of POST /ledger/members.
type AddMemberRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateMemberRequest carries the member fields to change. Absent fields are kept.
type UpdateMemberRequest struct {
	Name   *string              `json:"name"`
	Status *entity.MemberStatus `json:"status"`
	Role   *string              `json:"role"`
	Level  *int                 `json:"level" validate:"omitempty,gte=0"`
	Notes  *string              `json:"notes"`
}

// MemberGoldRequest moves gold between the guild and a member.
type MemberGoldRequest struct {
	Amount   float64         `json:"amount" validate:"gt=0"`
	Currency entity.Currency `json:"currency" validate:"required,oneof=TC TS TO LO"`
}

// MemberWalletRequest corrects a member's purse directly.
type MemberWalletRequest struct {
	Amount    float64         `json:"amount" validate:"gt=0"`
	Currency  entity.Currency `json:"currency" validate:"required,oneof=TC TS TO LO"`
	Operation ledger.WalletOp `json:"operation" validate:"required,oneof=add remove"`
}

// AddMember enrolls a member.
func (h *LedgerHandler) AddMember(c echo.Context) error {
	var req AddMemberRequest

	return h.bindRun(c, &req, "members.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddMember(req.Name)
	})
}

// UpdateMember edits a member's profile.
func (h *LedgerHandler) UpdateMember(c echo.Context) error {
	var req UpdateMemberRequest
	id := c.Param("memberId")

	return h.bindRun(c, &req, "members.update", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateMember(id, ledger.MemberPatch{
			Name:   req.Name,
			Status: req.Status,
			Role:   req.Role,
			Level:  req.Level,
			Notes:  req.Notes,
		})
	})
}

// RemoveMember removes a member from the roster.
func (h *LedgerHandler) RemoveMember(c echo.Context) error {
	id := c.Param("memberId")

	return h.run(c, "members.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveMember(id)
	})
}

// TransferGoldToMember pays a member out of the guild wallet.
func (h *LedgerHandler) TransferGoldToMember(c echo.Context) error {
	var req MemberGoldRequest
	id := c.Param("memberId")

	return h.bindRun(c, &req, "members.transfer_to", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.TransferGoldToMember(id, req.Amount, req.Currency)
	})
}

// TransferGoldFromMember collects gold from a member into the guild wallet.
func (h *LedgerHandler) TransferGoldFromMember(c echo.Context) error {
	var req MemberGoldRequest
	id := c.Param("memberId")

	return h.bindRun(c, &req, "members.transfer_from", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.TransferGoldFromMember(id, req.Amount, req.Currency)
	})
}

// UpdateMemberWallet adds to or removes from a member's purse without touching the guild wallet.
func (h *LedgerHandler) UpdateMemberWallet(c echo.Context) error {
	var req MemberWalletRequest
	id := c.Param("memberId")

	return h.bindRun(c, &req, "members.wallet", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateMemberWallet(id, req.Amount, req.Currency, req.Operation)
	})
}
