package handler

import (
	"net/http"

	"guildbook/internal/delivery/api/middleware"
	"guildbook/internal/delivery/api/response"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// AddBaseRequest founds a base. Rewards are not charged.
type AddBaseRequest struct {
	Name   string          `json:"name" validate:"required"`
	Porte  entity.Porte    `json:"porte" validate:"required"`
	Type   entity.BaseType `json:"type" validate:"required"`
	Reward bool            `json:"reward"`
}

// UpgradeBaseRequest is the body of PUT /ledger/bases/:baseId/porte.
type UpgradeBaseRequest struct {
	Porte entity.Porte `json:"porte" validate:"required"`
}

// MaintenanceRequest pays a flat TS upkeep for a base.
type MaintenanceRequest struct {
	Kind string  `json:"kind" validate:"required"`
	Cost float64 `json:"cost" validate:"gt=0"`
}

// AmountRequest carries a single positive amount.
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

// BuildRequest adds a room or a piece of furniture. Free builds are not charged.
type BuildRequest struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"gte=0"`
	Free bool    `json:"free"`
}

// CapacityResponse reports how many room slots a base uses.
type CapacityResponse struct {
	Used  int `json:"used"`
	Slots int `json:"slots"`
}

// AddBase founds a base.
func (h *LedgerHandler) AddBase(c echo.Context) error {
	var req AddBaseRequest

	return h.bindRun(c, &req, "bases.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddBase(req.Name, req.Porte, req.Type, !req.Reward)
	})
}

// UpgradeBase changes a base's porte.
func (h *LedgerHandler) UpgradeBase(c echo.Context) error {
	var req UpgradeBaseRequest
	id := c.Param("baseId")

	return h.bindRun(c, &req, "bases.upgrade", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpgradeBase(id, req.Porte)
	})
}

// RenameBase changes a base's name.
func (h *LedgerHandler) RenameBase(c echo.Context) error {
	var req RenameGuildRequest
	id := c.Param("baseId")

	return h.bindRun(c, &req, "bases.rename", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RenameBase(id, req.Name)
	})
}

// PayBaseMaintenance debits a base's upkeep.
func (h *LedgerHandler) PayBaseMaintenance(c echo.Context) error {
	var req MaintenanceRequest
	id := c.Param("baseId")

	return h.bindRun(c, &req, "bases.maintenance", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.PayBaseMaintenance(id, req.Kind, req.Cost)
	})
}

// CollectBaseIncome credits TO earned by a base.
func (h *LedgerHandler) CollectBaseIncome(c echo.Context) error {
	var req AmountRequest
	id := c.Param("baseId")

	return h.bindRun(c, &req, "bases.income", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.CollectBaseIncome(id, req.Amount)
	})
}

// DemolishBase removes a base.
func (h *LedgerHandler) DemolishBase(c echo.Context) error {
	id := c.Param("baseId")

	return h.run(c, "bases.demolish", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.DemolishBase(id)
	})
}

// AddRoom builds a room in a base.
func (h *LedgerHandler) AddRoom(c echo.Context) error {
	var req BuildRequest
	id := c.Param("baseId")

	return h.bindRun(c, &req, "bases.rooms.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddRoom(id, req.Name, req.Cost, !req.Free)
	})
}

// RemoveRoom tears a room down without refund.
func (h *LedgerHandler) RemoveRoom(c echo.Context) error {
	baseID, roomID := c.Param("baseId"), c.Param("roomId")

	return h.run(c, "bases.rooms.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveRoom(baseID, roomID)
	})
}

// AddFurniture furnishes a room.
func (h *LedgerHandler) AddFurniture(c echo.Context) error {
	var req BuildRequest
	baseID, roomID := c.Param("baseId"), c.Param("roomId")

	return h.bindRun(c, &req, "bases.furniture.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddFurniture(baseID, roomID, req.Name, req.Cost, !req.Free)
	})
}

// RemoveFurniture removes a piece of furniture from a room.
func (h *LedgerHandler) RemoveFurniture(c echo.Context) error {
	baseID, roomID, furnitureID := c.Param("baseId"), c.Param("roomId"), c.Param("furnitureId")

	return h.run(c, "bases.furniture.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveFurniture(baseID, roomID, furnitureID)
	})
}

// RoomCapacity reports used and available room slots of a base.
func (h *LedgerHandler) RoomCapacity(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionExpired)
	}

	state, err := h.ledgerUC.State(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	used, slots, err := ledger.New(state).RoomCapacity(c.Param("baseId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CapacityResponse{Used: used, Slots: slots})
}
