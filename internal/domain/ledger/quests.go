package ledger

import (
	"slices"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
)

// QuestPatch lists the quest fields to overwrite. Nil fields are untouched.
type QuestPatch struct {
	Title             *string
	Description       *string
	RewardGold        *float64
	RewardCurrency    *entity.Currency
	RewardXP          *string
	AssignedMemberIDs []string
}

// AddQuest posts a quest on the board. New quests always start Disponivel.
// Assigned member ids are not checked against the roster.
func (l *Ledger) AddQuest(quest entity.Quest) (*entity.Quest, error) {
	title, err := validateName(quest.Title, "quest title")
	if err != nil {
		return nil, err
	}
	if quest.RewardCurrency == "" {
		quest.RewardCurrency = entity.CurrencyTS
	}
	if !quest.RewardCurrency.IsValid() {
		return nil, invalid("unknown currency " + string(quest.RewardCurrency))
	}
	if quest.RewardGold < 0 {
		return nil, invalid("reward cannot be negative")
	}
	quest.Title = title

	var added *entity.Quest
	err = l.apply(func(s *entity.GuildState) error {
		q := quest.Clone()
		q.ID = l.newID()
		q.Status = entity.QuestDisponivel
		s.Quests = append(s.Quests, q)
		added = q.Clone()

		return nil
	})

	return added, err
}

// UpdateQuest patches a quest. A non-nil AssignedMemberIDs replaces the list.
func (l *Ledger) UpdateQuest(id string, patch QuestPatch) error {
	if patch.RewardCurrency != nil && !patch.RewardCurrency.IsValid() {
		return invalid("unknown currency " + string(*patch.RewardCurrency))
	}
	if patch.RewardGold != nil && *patch.RewardGold < 0 {
		return invalid("reward cannot be negative")
	}
	if patch.Title != nil {
		title, err := validateName(*patch.Title, "quest title")
		if err != nil {
			return err
		}
		patch.Title = &title
	}

	return l.apply(func(s *entity.GuildState) error {
		q := s.FindQuest(id)
		if q == nil {
			return notFound(domainerrors.ErrQuestNotFound, id)
		}
		if patch.Title != nil {
			q.Title = *patch.Title
		}
		if patch.Description != nil {
			q.Description = *patch.Description
		}
		if patch.RewardGold != nil {
			q.RewardGold = *patch.RewardGold
		}
		if patch.RewardCurrency != nil {
			q.RewardCurrency = *patch.RewardCurrency
		}
		if patch.RewardXP != nil {
			q.RewardXP = *patch.RewardXP
		}
		if patch.AssignedMemberIDs != nil {
			q.AssignedMemberIDs = slices.Clone(patch.AssignedMemberIDs)
		}

		return nil
	})
}

// UpdateQuestStatus moves a quest along its lifecycle. Finishing a quest,
// either way, is logged. Rewards are paid separately.
func (l *Ledger) UpdateQuestStatus(id string, status entity.QuestStatus) error {
	if !status.IsValid() {
		return invalid("unknown quest status " + string(status))
	}

	return l.apply(func(s *entity.GuildState) error {
		q := s.FindQuest(id)
		if q == nil {
			return notFound(domainerrors.ErrQuestNotFound, id)
		}
		q.Status = status

		switch status {
		case entity.QuestConcluida:
			l.record(s, entity.LogQuest, "Missão concluída: "+q.Title, 0, entity.SystemActorID)
		case entity.QuestFalha:
			l.record(s, entity.LogQuest, "Missão fracassada: "+q.Title, 0, entity.SystemActorID)
		}

		return nil
	})
}

// DeleteQuest takes a quest off the board. Unknown ids are ignored.
func (l *Ledger) DeleteQuest(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		s.Quests = slices.DeleteFunc(s.Quests, func(q *entity.Quest) bool { return q.ID == id })

		return nil
	})
}
