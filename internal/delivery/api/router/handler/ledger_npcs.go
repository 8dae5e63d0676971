package handler

import (
	"net/http"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// NPCRequest describes an NPC to hire or befriend.
type NPCRequest struct {
	Name         string              `json:"name" validate:"required"`
	Role         string              `json:"role"`
	MonthlyCost  float64             `json:"monthlyCost" validate:"gte=0"`
	LocationType entity.LocationType `json:"locationType"`
	LocationID   string              `json:"locationId"`
	Relationship entity.Relationship `json:"relationship"`
	Notes        string              `json:"notes"`
}

// UpdateNPCRequest carries the NPC fields to change. Absent fields are kept.
type UpdateNPCRequest struct {
	Name         *string              `json:"name"`
	Role         *string              `json:"role"`
	MonthlyCost  *float64             `json:"monthlyCost" validate:"omitempty,gte=0"`
	Relationship *entity.Relationship `json:"relationship"`
	Notes        *string              `json:"notes"`
}

// PayrollResult reports the TS spent on a payroll run.
type PayrollResult struct {
	Total float64 `json:"total"`
}

// AddNPC hires or befriends an NPC.
func (h *LedgerHandler) AddNPC(c echo.Context) error {
	var req NPCRequest

	return h.bindRun(c, &req, "npcs.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddNPC(entity.NPC{
			Name:         req.Name,
			Role:         req.Role,
			MonthlyCost:  req.MonthlyCost,
			LocationType: req.LocationType,
			LocationID:   req.LocationID,
			Relationship: req.Relationship,
			Notes:        req.Notes,
		})
	})
}

// UpdateNPC edits an NPC.
func (h *LedgerHandler) UpdateNPC(c echo.Context) error {
	var req UpdateNPCRequest
	id := c.Param("npcId")

	return h.bindRun(c, &req, "npcs.update", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateNPC(id, ledger.NPCPatch{
			Name:         req.Name,
			Role:         req.Role,
			MonthlyCost:  req.MonthlyCost,
			Relationship: req.Relationship,
			Notes:        req.Notes,
		})
	})
}

// RemoveNPC dismisses an NPC.
func (h *LedgerHandler) RemoveNPC(c echo.Context) error {
	id := c.Param("npcId")

	return h.run(c, "npcs.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveNPC(id)
	})
}

// PayAllNPCs pays the monthly payroll.
func (h *LedgerHandler) PayAllNPCs(c echo.Context) error {
	return h.run(c, "npcs.pay_all", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		total, err := l.PayAllNPCs()

		return PayrollResult{Total: total}, err
	})
}

// PaySingleNPC pays one NPC's monthly salary.
func (h *LedgerHandler) PaySingleNPC(c echo.Context) error {
	id := c.Param("npcId")

	return h.run(c, "npcs.pay", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.PaySingleNPC(id)
	})
}
