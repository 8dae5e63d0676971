package handler

import (
	"net/http"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// CreateDomainRequest founds a domain. Rewards are not charged.
type CreateDomainRequest struct {
	Name    string `json:"name" validate:"required"`
	Regent  string `json:"regent"`
	Terrain string `json:"terrain"`
	Reward  bool   `json:"reward"`
}

// TreasuryRequest adjusts a domain treasury directly.
type TreasuryRequest struct {
	Amount    float64           `json:"amount" validate:"gt=0"`
	Operation ledger.TreasuryOp `json:"operation" validate:"required,oneof=Income Expense"`
	Reason    string            `json:"reason"`
}

// GovernRequest carries the governance roll total.
type GovernRequest struct {
	Roll int `json:"roll"`
}

// PopularityRequest shifts popularity by delta steps.
type PopularityRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// UpdateDomainRequest carries the domain fields to change. Absent fields are kept.
type UpdateDomainRequest struct {
	Name          *string       `json:"name"`
	Regent        *string       `json:"regent"`
	Terrain       *string       `json:"terrain"`
	Court         *entity.Court `json:"court"`
	Fortification *int          `json:"fortification" validate:"omitempty,gte=0"`
}

// DomainBuildingRequest adds a building paid from the domain treasury.
type DomainBuildingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	CostLO      float64 `json:"costLO" validate:"gte=0"`
	Benefit     string  `json:"benefit"`
	Free        bool    `json:"free"`
}

// DomainUnitRequest adds a unit paid from the domain treasury.
type DomainUnitRequest struct {
	Name   string  `json:"name" validate:"required"`
	Type   string  `json:"type"`
	Power  int     `json:"power" validate:"gte=0"`
	CostLO float64 `json:"costLO" validate:"gte=0"`
	Free   bool    `json:"free"`
}

// CreateDomain founds a domain.
func (h *LedgerHandler) CreateDomain(c echo.Context) error {
	var req CreateDomainRequest

	return h.bindRun(c, &req, "domains.create", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.CreateDomain(req.Name, req.Regent, req.Terrain, !req.Reward)
	})
}

// InvestDomain moves LO from the guild into a domain treasury.
func (h *LedgerHandler) InvestDomain(c echo.Context) error {
	var req AmountRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.invest", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.InvestDomain(id, req.Amount)
	})
}

// WithdrawDomain moves LO from a domain treasury back to the guild.
func (h *LedgerHandler) WithdrawDomain(c echo.Context) error {
	var req AmountRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.withdraw", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.WithdrawDomain(id, req.Amount)
	})
}

// ManageDomainTreasury records treasury income or expense.
func (h *LedgerHandler) ManageDomainTreasury(c echo.Context) error {
	var req TreasuryRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.treasury", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.ManageDomainTreasury(id, req.Amount, req.Operation, req.Reason)
	})
}

// GovernDomain resolves a monthly governance roll.
func (h *LedgerHandler) GovernDomain(c echo.Context) error {
	var req GovernRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.govern", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return l.GovernDomain(id, req.Roll)
	})
}

// ShiftPopularity moves a domain's popularity along the scale.
func (h *LedgerHandler) ShiftPopularity(c echo.Context) error {
	var req PopularityRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.popularity", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.ShiftPopularity(id, req.Delta)
	})
}

// LevelUpDomain raises a domain's level.
func (h *LedgerHandler) LevelUpDomain(c echo.Context) error {
	id := c.Param("domainId")

	return h.run(c, "domains.level_up", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.LevelUpDomain(id)
	})
}

// UpdateDomain edits a domain.
func (h *LedgerHandler) UpdateDomain(c echo.Context) error {
	var req UpdateDomainRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.update", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateDomain(id, ledger.DomainPatch{
			Name:          req.Name,
			Regent:        req.Regent,
			Terrain:       req.Terrain,
			Court:         req.Court,
			Fortification: req.Fortification,
		})
	})
}

// AddDomainBuilding constructs a building in a domain.
func (h *LedgerHandler) AddDomainBuilding(c echo.Context) error {
	var req DomainBuildingRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.buildings.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddDomainBuilding(id, entity.DomainBuilding{
			Name:        req.Name,
			Description: req.Description,
			CostLO:      req.CostLO,
			Benefit:     req.Benefit,
		}, !req.Free)
	})
}

// RemoveDomainBuilding demolishes a domain building.
func (h *LedgerHandler) RemoveDomainBuilding(c echo.Context) error {
	id, buildingID := c.Param("domainId"), c.Param("buildingId")

	return h.run(c, "domains.buildings.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveDomainBuilding(id, buildingID)
	})
}

// AddDomainUnit recruits a unit for a domain.
func (h *LedgerHandler) AddDomainUnit(c echo.Context) error {
	var req DomainUnitRequest
	id := c.Param("domainId")

	return h.bindRun(c, &req, "domains.units.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddDomainUnit(id, entity.DomainUnit{
			Name:   req.Name,
			Type:   req.Type,
			Power:  req.Power,
			CostLO: req.CostLO,
		}, !req.Free)
	})
}

// RemoveDomainUnit disbands a domain unit.
func (h *LedgerHandler) RemoveDomainUnit(c echo.Context) error {
	id, unitID := c.Param("domainId"), c.Param("unitId")

	return h.run(c, "domains.units.remove", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RemoveDomainUnit(id, unitID)
	})
}

// DemolishDomain abandons a domain.
func (h *LedgerHandler) DemolishDomain(c echo.Context) error {
	id := c.Param("domainId")

	return h.run(c, "domains.demolish", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.DemolishDomain(id)
	})
}
