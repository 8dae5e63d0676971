package handler

import (
	"net/http"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// QuestRequest posts a quest on the board.
type QuestRequest struct {
	Title             string          `json:"title" validate:"required"`
	Description       string          `json:"description"`
	RewardGold        float64         `json:"rewardGold" validate:"gte=0"`
	RewardCurrency    entity.Currency `json:"rewardCurrency" validate:"omitempty,oneof=TC TS TO LO"`
	RewardXP          string          `json:"rewardXP"`
	AssignedMemberIDs []string        `json:"assignedMemberIds"`
}

// UpdateQuestRequest carries the quest fields to change. Absent fields are kept.
type UpdateQuestRequest struct {
	Title             *string          `json:"title"`
	Description       *string          `json:"description"`
	RewardGold        *float64         `json:"rewardGold" validate:"omitempty,gte=0"`
	RewardCurrency    *entity.Currency `json:"rewardCurrency" validate:"omitempty,oneof=TC TS TO LO"`
	RewardXP          *string          `json:"rewardXP"`
	AssignedMemberIDs []string         `json:"assignedMemberIds"`
}

// QuestStatusRequest is the body of PUT /ledger/quests/:questId/status.
type QuestStatusRequest struct {
	Status entity.QuestStatus `json:"status" validate:"required,oneof=Disponivel EmAndamento Concluida Falha"`
}

// AddQuest posts a quest.
func (h *LedgerHandler) AddQuest(c echo.Context) error {
	var req QuestRequest

	return h.bindRun(c, &req, "quests.add", http.StatusCreated, func(l *ledger.Ledger) (any, error) {
		return l.AddQuest(entity.Quest{
			Title:             req.Title,
			Description:       req.Description,
			RewardGold:        req.RewardGold,
			RewardCurrency:    req.RewardCurrency,
			RewardXP:          req.RewardXP,
			AssignedMemberIDs: req.AssignedMemberIDs,
		})
	})
}

// UpdateQuest edits a quest.
func (h *LedgerHandler) UpdateQuest(c echo.Context) error {
	var req UpdateQuestRequest
	id := c.Param("questId")

	return h.bindRun(c, &req, "quests.update", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateQuest(id, ledger.QuestPatch{
			Title:             req.Title,
			Description:       req.Description,
			RewardGold:        req.RewardGold,
			RewardCurrency:    req.RewardCurrency,
			RewardXP:          req.RewardXP,
			AssignedMemberIDs: req.AssignedMemberIDs,
		})
	})
}

// UpdateQuestStatus moves a quest along its lifecycle.
func (h *LedgerHandler) UpdateQuestStatus(c echo.Context) error {
	var req QuestStatusRequest
	id := c.Param("questId")

	return h.bindRun(c, &req, "quests.status", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.UpdateQuestStatus(id, req.Status)
	})
}

// DeleteQuest removes a quest from the board.
func (h *LedgerHandler) DeleteQuest(c echo.Context) error {
	id := c.Param("questId")

	return h.run(c, "quests.delete", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.DeleteQuest(id)
	})
}
