package handler

import (
	"net/http"

	"guildbook/internal/delivery/api/response"
	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// ItemRequest describes a new inventory entry.
type ItemRequest struct {
	Name            string          `json:"name" validate:"required"`
	Type            entity.ItemType `json:"type"`
	Rarity          entity.Rarity   `json:"rarity"`
	Quantity        int             `json:"quantity" validate:"gte=0"`
	Value           float64         `json:"value" validate:"gte=0"`
	Origin          string          `json:"origin"`
	Encounter       string          `json:"encounter"`
	IsQuestItem     bool            `json:"isQuestItem"`
	IsNonNegotiable bool            `json:"isNonNegotiable"`
}

func (r ItemRequest) item() entity.Item {
	return entity.Item{
		Name:            r.Name,
		Type:            r.Type,
		Rarity:          r.Rarity,
		Quantity:        r.Quantity,
		Value:           r.Value,
		Origin:          r.Origin,
		Encounter:       r.Encounter,
		IsQuestItem:     r.IsQuestItem,
		IsNonNegotiable: r.IsNonNegotiable,
	}
}

// BuyItemRequest is an item bought with guild TS on behalf of a member.
type BuyItemRequest struct {
	ItemRequest
	MemberID string `json:"memberId"`
}

// UpdateItemRequest carries the item fields to change. Absent fields are kept.
type UpdateItemRequest struct {
	Name            *string          `json:"name"`
	Type            *entity.ItemType `json:"type"`
	Rarity          *entity.Rarity   `json:"rarity"`
	Quantity        *int             `json:"quantity"`
	Value           *float64         `json:"value"`
	Origin          *string          `json:"origin"`
	Encounter       *string          `json:"encounter"`
	IsQuestItem     *bool            `json:"isQuestItem"`
	IsNonNegotiable *bool            `json:"isNonNegotiable"`
}

// ItemMoveRequest moves units of an item between the guild pool and a member.
type ItemMoveRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Reason   string `json:"reason"`
}

// SellItemRequest is the body of POST /ledger/items/:itemId/sell.
type SellItemRequest struct {
	Quantity int      `json:"quantity" validate:"gt=0"`
	MemberID string   `json:"memberId"`
	Percent  *float64 `json:"percent" validate:"required,gte=0"`
}

// SellBatchRequest is the body of POST /ledger/items/sell-batch.
type SellBatchRequest struct {
	IDs      []string `json:"ids" validate:"required,min=1"`
	MemberID string   `json:"memberId"`
	Percent  *float64 `json:"percent" validate:"required,gte=0"`
}

// DeleteBatchRequest is the body of POST /ledger/items/delete-batch.
type DeleteBatchRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// SaleResult reports the TS credited by a sale.
type SaleResult struct {
	Proceeds float64 `json:"proceeds"`
}

// AddItem adds an item to the guild pool without charging for it.
func (h *LedgerHandler) AddItem(c echo.Context) error {
	var req ItemRequest

	return h.bindRun(c, &req, "items.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddItem(req.item())
	})
}

// BuyItem pays for an item with guild TS and stocks it.
func (h *LedgerHandler) BuyItem(c echo.Context) error {
	var req BuyItemRequest

	return h.bindRun(c, &req, "items.buy", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.BuyItem(req.item(), req.MemberID)
	})
}

// UpdateItem edits an item in the guild pool.
func (h *LedgerHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	id := c.Param("itemId")

	return h.bindRun(c, &req, "items.update", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateItem(id, ledger.ItemPatch{
			Name:            req.Name,
			Type:            req.Type,
			Rarity:          req.Rarity,
			Quantity:        req.Quantity,
			Value:           req.Value,
			Origin:          req.Origin,
			Encounter:       req.Encounter,
			IsQuestItem:     req.IsQuestItem,
			IsNonNegotiable: req.IsNonNegotiable,
		})
	})
}

// TransferItemFromMember returns a member's item to the guild pool.
func (h *LedgerHandler) TransferItemFromMember(c echo.Context) error {
	var req ItemMoveRequest
	id := c.Param("itemId")

	return h.bindRun(c, &req, "items.transfer_from", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.TransferItemFromMember(id, req.MemberID, req.Quantity)
	})
}

// WithdrawItem hands guild items to a member.
func (h *LedgerHandler) WithdrawItem(c echo.Context) error {
	var req ItemMoveRequest
	id := c.Param("itemId")

	return h.bindRun(c, &req, "items.withdraw", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.WithdrawItem(id, req.MemberID, req.Reason, req.Quantity)
	})
}

// SellItem sells units of a guild item.
func (h *LedgerHandler) SellItem(c echo.Context) error {
	var req SellItemRequest
	id := c.Param("itemId")

	return h.bindRun(c, &req, "items.sell", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		proceeds, err := l.SellItem(id, req.Quantity, req.MemberID, *req.Percent)

		return SaleResult{Proceeds: proceeds}, err
	})
}

// SellBatchItems sells the full stock of several items.
func (h *LedgerHandler) SellBatchItems(c echo.Context) error {
	var req SellBatchRequest

	return h.bindRun(c, &req, "items.sell_batch", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		proceeds, err := l.SellBatchItems(req.IDs, req.MemberID, *req.Percent)

		return SaleResult{Proceeds: proceeds}, err
	})
}

// DeleteItem discards qty units of an item, one when the query is absent.
func (h *LedgerHandler) DeleteItem(c echo.Context) error {
	qty, err := queryInt(c, "qty", 1)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id := c.Param("itemId")

	return h.run(c, "items.delete", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.DeleteItem(id, qty)
	})
}

// DeleteBatchItems discards several items entirely.
func (h *LedgerHandler) DeleteBatchItems(c echo.Context) error {
	var req DeleteBatchRequest

	return h.bindRun(c, &req, "items.delete_batch", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.DeleteBatchItems(req.IDs)
	})
}
