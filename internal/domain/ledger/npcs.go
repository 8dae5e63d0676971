package ledger

import (
	"fmt"
	"slices"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
)

// NPCPatch lists the NPC fields to overwrite. Nil fields are untouched.
type NPCPatch struct {
	Name         *string
	Role         *string
	MonthlyCost  *float64
	Relationship *entity.Relationship
	Notes        *string
}

// AddNPC hires or befriends an NPC. The location name is captured from the
// referenced base or domain at this moment and is never refreshed.
func (l *Ledger) AddNPC(npc entity.NPC) (*entity.NPC, error) {
	name, err := validateName(npc.Name, "npc name")
	if err != nil {
		return nil, err
	}
	if npc.MonthlyCost < 0 {
		return nil, invalid("monthly cost cannot be negative")
	}
	if !npc.Relationship.IsValid() {
		return nil, invalid("unknown npc relationship " + string(npc.Relationship))
	}
	if !npc.LocationType.IsValid() {
		return nil, invalid("unknown npc location type " + string(npc.LocationType))
	}
	npc.Name = name

	var added *entity.NPC
	err = l.apply(func(s *entity.GuildState) error {
		n := npc
		n.ID = l.newID()
		if n.LocationName == "" && n.LocationID != "" {
			n.LocationName = locationName(s, n.LocationType, n.LocationID)
		}
		s.NPCs = append(s.NPCs, &n)
		l.record(s, entity.LogNPC, "NPC adicionado: "+n.Name, 0, entity.SystemActorID)
		nc := n
		added = &nc

		return nil
	})

	return added, err
}

func locationName(s *entity.GuildState, kind entity.LocationType, id string) string {
	switch kind {
	case entity.LocationBase:
		if b := s.FindBase(id); b != nil {
			return b.Name
		}
	case entity.LocationDominio:
		if d := s.FindDomain(id); d != nil {
			return d.Name
		}
	}

	return ""
}

// UpdateNPC patches an NPC.
func (l *Ledger) UpdateNPC(id string, patch NPCPatch) error {
	if patch.MonthlyCost != nil && *patch.MonthlyCost < 0 {
		return invalid("monthly cost cannot be negative")
	}
	if patch.Relationship != nil && !patch.Relationship.IsValid() {
		return invalid("unknown npc relationship " + string(*patch.Relationship))
	}
	if patch.Name != nil {
		name, err := validateName(*patch.Name, "npc name")
		if err != nil {
			return err
		}
		patch.Name = &name
	}

	return l.apply(func(s *entity.GuildState) error {
		n := s.FindNPC(id)
		if n == nil {
			return notFound(domainerrors.ErrNPCNotFound, id)
		}
		if patch.Name != nil {
			n.Name = *patch.Name
		}
		if patch.Role != nil {
			n.Role = *patch.Role
		}
		if patch.MonthlyCost != nil {
			n.MonthlyCost = *patch.MonthlyCost
		}
		if patch.Relationship != nil {
			n.Relationship = *patch.Relationship
		}
		if patch.Notes != nil {
			n.Notes = *patch.Notes
		}

		return nil
	})
}

// RemoveNPC dismisses an NPC. Unknown ids are ignored.
func (l *Ledger) RemoveNPC(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		s.NPCs = slices.DeleteFunc(s.NPCs, func(n *entity.NPC) bool { return n.ID == id })

		return nil
	})
}

// PayAllNPCs pays the monthly salary of every hired NPC in one TS debit. It
// pays nobody when the wallet cannot cover the whole payroll.
func (l *Ledger) PayAllNPCs() (float64, error) {
	var total float64
	err := l.apply(func(s *entity.GuildState) error {
		paid := 0
		for _, n := range s.NPCs {
			if n.OnPayroll() {
				total += n.MonthlyCost
				paid++
			}
		}
		if total == 0 {
			return nil
		}
		if !s.Wallet.Has(entity.CurrencyTS, total) {
			return insufficientFunds(entity.CurrencyTS, total, s.Wallet.TS)
		}
		s.Wallet.TS -= total
		l.record(s, entity.LogNPC,
			fmt.Sprintf("Folha de pagamento: %d NPCs, %s TS", paid, formatAmount(total)), -total, entity.SystemActorID)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// PaySingleNPC pays one NPC's monthly salary.
func (l *Ledger) PaySingleNPC(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		n := s.FindNPC(id)
		if n == nil {
			return notFound(domainerrors.ErrNPCNotFound, id)
		}
		if n.MonthlyCost == 0 {
			return nil
		}
		if !s.Wallet.Has(entity.CurrencyTS, n.MonthlyCost) {
			return insufficientFunds(entity.CurrencyTS, n.MonthlyCost, s.Wallet.TS)
		}
		s.Wallet.TS -= n.MonthlyCost
		l.record(s, entity.LogNPC,
			fmt.Sprintf("Pagamento de %s: %s TS", n.Name, formatAmount(n.MonthlyCost)), -n.MonthlyCost, entity.SystemActorID)

		return nil
	})
}
