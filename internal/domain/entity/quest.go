package entity

// QuestStatus is the progress of a quest.
type QuestStatus string

const (
	QuestDisponivel  QuestStatus = "Disponivel"
	QuestEmAndamento QuestStatus = "EmAndamento"
	QuestConcluida   QuestStatus = "Concluida"
	QuestFalha       QuestStatus = "Falha"
)

// IsValid checks if the QuestStatus is a valid value.
func (s QuestStatus) IsValid() bool {
	switch s {
	case QuestDisponivel, QuestEmAndamento, QuestConcluida, QuestFalha:
		return true
	default:
		return false
	}
}

// Quest is a job board entry.
type Quest struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Status            QuestStatus `json:"status"`
	RewardGold        float64     `json:"rewardGold"`
	RewardCurrency    Currency    `json:"rewardCurrency"`
	RewardXP          string      `json:"rewardXP"`
	AssignedMemberIDs []string    `json:"assignedMemberIds"`
}

// Clone returns a deep copy of the quest.
func (q *Quest) Clone() *Quest {
	c := *q
	c.AssignedMemberIDs = append([]string{}, q.AssignedMemberIDs...)

	return &c
}
