package ledger

import (
	"fmt"
	"slices"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
)

// WalletOp selects the direction of a member wallet correction.
type WalletOp string

const (
	WalletAdd    WalletOp = "add"
	WalletRemove WalletOp = "remove"
)

// MemberPatch lists the member fields to overwrite. Nil fields are untouched.
type MemberPatch struct {
	Name   *string
	Status *entity.MemberStatus
	Role   *string
	Level  *int
	Notes  *string
}

// AddMember enrolls a new member with an empty purse and inventory.
func (l *Ledger) AddMember(name string) (*entity.Member, error) {
	name, err := validateName(name, "member name")
	if err != nil {
		return nil, err
	}

	var added *entity.Member
	err = l.apply(func(s *entity.GuildState) error {
		m := &entity.Member{
			ID:        l.newID(),
			Name:      name,
			Status:    entity.MemberStatusAtivo,
			Inventory: entity.Items{},
		}
		s.Members = append(s.Members, m)
		l.record(s, entity.LogMembro, "Novo membro: "+name, 0, entity.SystemActorID)
		added = m.Clone()

		return nil
	})

	return added, err
}

// RemoveMember deletes a member from the roster. Existing log entries keep
// the member's name. Unknown ids are ignored.
func (l *Ledger) RemoveMember(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(id)
		if m == nil {
			return nil
		}
		s.Members = slices.DeleteFunc(s.Members, func(x *entity.Member) bool { return x.ID == id })
		l.record(s, entity.LogSistema, "Membro removido: "+m.Name, 0, entity.SystemActorID)

		return nil
	})
}

// UpdateMember patches a member's profile fields.
func (l *Ledger) UpdateMember(id string, patch MemberPatch) error {
	if patch.Status != nil && !patch.Status.IsValid() {
		return invalid("unknown member status " + string(*patch.Status))
	}
	if patch.Name != nil {
		name, err := validateName(*patch.Name, "member name")
		if err != nil {
			return err
		}
		patch.Name = &name
	}
	if patch.Level != nil && *patch.Level < 0 {
		return invalid("member level cannot be negative")
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(id)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, id)
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.Level != nil {
			m.Level = *patch.Level
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}

		return nil
	})
}

// TransferGoldToMember pays amount from the guild wallet into a member's purse.
func (l *Ledger) TransferGoldToMember(memberID string, amount float64, currency entity.Currency) error {
	if err := validateMoney(amount, currency); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(memberID)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, memberID)
		}
		if !s.Wallet.Has(currency, amount) {
			return insufficientFunds(currency, amount, s.Wallet.Get(currency))
		}
		s.Wallet.Add(currency, -amount)
		m.Wallet.Add(currency, amount)
		l.record(s, entity.LogSaque,
			fmt.Sprintf("Transferência de %s %s para %s", formatAmount(amount), currency, m.Name),
			-entity.ToTS(amount, currency), memberID)

		return nil
	})
}

// TransferGoldFromMember moves amount from a member's purse into the guild wallet.
func (l *Ledger) TransferGoldFromMember(memberID string, amount float64, currency entity.Currency) error {
	if err := validateMoney(amount, currency); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(memberID)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, memberID)
		}
		if !m.Wallet.Has(currency, amount) {
			return insufficientFunds(currency, amount, m.Wallet.Get(currency))
		}
		m.Wallet.Add(currency, -amount)
		s.Wallet.Add(currency, amount)
		l.record(s, entity.LogDeposito,
			fmt.Sprintf("Contribuição de %s %s por %s", formatAmount(amount), currency, m.Name),
			entity.ToTS(amount, currency), memberID)

		return nil
	})
}

// UpdateMemberWallet corrects a member's purse without touching the guild
// wallet. Removing more than the balance empties it instead of failing.
func (l *Ledger) UpdateMemberWallet(memberID string, amount float64, currency entity.Currency, op WalletOp) error {
	if err := validateMoney(amount, currency); err != nil {
		return err
	}
	if op != WalletAdd && op != WalletRemove {
		return invalid("unknown wallet operation " + string(op))
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(memberID)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, memberID)
		}

		delta := amount
		if op == WalletRemove {
			delta = -min(amount, m.Wallet.Get(currency))
		}
		m.Wallet.Add(currency, delta)
		l.record(s, entity.LogMembro,
			fmt.Sprintf("Ajuste na carteira de %s: %s %s", m.Name, formatSigned(delta), currency),
			0, memberID)

		return nil
	})
}
