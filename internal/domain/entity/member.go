package entity

// MemberStatus is a member's current condition.
type MemberStatus string

const (
	MemberStatusAtivo    MemberStatus = "Ativo"
	MemberStatusInativo  MemberStatus = "Inativo"
	MemberStatusFerido   MemberStatus = "Ferido"
	MemberStatusMorto    MemberStatus = "Morto"
	MemberStatusEmMissao MemberStatus = "EmMissao"
	MemberStatusViajando MemberStatus = "Viajando"
)

// IsValid checks if the MemberStatus is a valid value.
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusAtivo, MemberStatusInativo, MemberStatusFerido,
		MemberStatusMorto, MemberStatusEmMissao, MemberStatusViajando:
		return true
	default:
		return false
	}
}

// Member is an enrolled guild member with a personal purse and inventory.
type Member struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    MemberStatus `json:"status"`
	Role      string       `json:"role,omitempty"`
	Level     int          `json:"level,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Wallet    Wallet       `json:"wallet"`
	Inventory Items        `json:"inventory"`
}

// Clone returns a deep copy of the member.
func (m *Member) Clone() *Member {
	c := *m
	c.Inventory = m.Inventory.Clone()

	return &c
}
