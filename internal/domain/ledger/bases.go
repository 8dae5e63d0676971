package ledger

import (
	"fmt"
	"slices"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
)

// AddBase founds a base. When payCost is false the base is a reward and
// leaves no trace in the wallet or the log.
func (l *Ledger) AddBase(name string, porte entity.Porte, baseType entity.BaseType, payCost bool) (*entity.Base, error) {
	name, err := validateName(name, "base name")
	if err != nil {
		return nil, err
	}
	if !porte.IsValid() {
		return nil, invalid("unknown porte " + string(porte))
	}
	if !baseType.IsValid() {
		return nil, invalid("unknown base type " + string(baseType))
	}

	var added *entity.Base
	err = l.apply(func(s *entity.GuildState) error {
		b := &entity.Base{
			ID:      l.newID(),
			Name:    name,
			Porte:   porte,
			Type:    baseType,
			Rooms:   []*entity.Room{},
			History: []string{},
		}
		if payCost {
			cost := porte.Info().Cost
			if !s.Wallet.Has(entity.CurrencyTS, cost) {
				return insufficientFunds(entity.CurrencyTS, cost, s.Wallet.TS)
			}
			s.Wallet.TS -= cost
			l.record(s, entity.LogInvestimento,
				fmt.Sprintf("Fundação da base %s (%s)", name, porte), -cost, entity.SystemActorID)
		}
		s.Bases = append(s.Bases, b)
		added = b.Clone()

		return nil
	})

	return added, err
}

// UpgradeBase moves a base to another porte, paying the cost difference.
// Downgrades are free and never refunded, and rooms above the new capacity stay.
func (l *Ledger) UpgradeBase(id string, porte entity.Porte) error {
	if !porte.IsValid() {
		return invalid("unknown porte " + string(porte))
	}

	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(id)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, id)
		}

		diff := porte.Info().Cost - b.Porte.Info().Cost
		if diff > 0 {
			if !s.Wallet.Has(entity.CurrencyTS, diff) {
				return insufficientFunds(entity.CurrencyTS, diff, s.Wallet.TS)
			}
			s.Wallet.TS -= diff
			l.record(s, entity.LogInvestimento,
				fmt.Sprintf("Melhoria da base %s: %s para %s", b.Name, b.Porte, porte), -diff, entity.SystemActorID)
		}
		b.Porte = porte

		return nil
	})
}

// RenameBase changes a base's display name. NPCs keep the name they were
// hired under.
func (l *Ledger) RenameBase(id, name string) error {
	name, err := validateName(name, "base name")
	if err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(id)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, id)
		}
		b.Name = name

		return nil
	})
}

// PayBaseMaintenance debits a flat upkeep cost in TS for a base.
func (l *Ledger) PayBaseMaintenance(id, kind string, cost float64) error {
	if err := validateAmount(cost); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(id)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, id)
		}
		if !s.Wallet.Has(entity.CurrencyTS, cost) {
			return insufficientFunds(entity.CurrencyTS, cost, s.Wallet.TS)
		}
		s.Wallet.TS -= cost
		l.record(s, entity.LogManutencao,
			fmt.Sprintf("Manutenção (%s) da base %s", kind, b.Name), -cost, entity.SystemActorID)

		return nil
	})
}

// CollectBaseIncome credits amount TO earned by a base to the guild wallet.
func (l *Ledger) CollectBaseIncome(id string, amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(id)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, id)
		}
		s.Wallet.TO += amount
		l.record(s, entity.LogBase,
			fmt.Sprintf("Renda da base %s: %s TO", b.Name, formatAmount(amount)),
			entity.ToTS(amount, entity.CurrencyTO), entity.SystemActorID)

		return nil
	})
}

// DemolishBase removes a base without refund.
func (l *Ledger) DemolishBase(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(id)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, id)
		}
		s.Bases = slices.DeleteFunc(s.Bases, func(x *entity.Base) bool { return x.ID == id })
		l.record(s, entity.LogSistema, "Base demolida: "+b.Name, 0, entity.SystemActorID)

		return nil
	})
}

// AddRoom builds a room in a base. Porte capacity is not enforced; see RoomCapacity.
func (l *Ledger) AddRoom(baseID, name string, cost float64, pay bool) (*entity.Room, error) {
	name, err := validateName(name, "room name")
	if err != nil {
		return nil, err
	}
	if cost < 0 {
		return nil, invalid("cost cannot be negative")
	}

	var added *entity.Room
	err = l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(baseID)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, baseID)
		}
		if err := l.payTS(s, pay, cost, fmt.Sprintf("Construção do cômodo %s na base %s", name, b.Name)); err != nil {
			return err
		}
		r := &entity.Room{ID: l.newID(), Name: name, Furnitures: []*entity.Furniture{}}
		b.Rooms = append(b.Rooms, r)
		added = &entity.Room{ID: r.ID, Name: r.Name, Furnitures: []*entity.Furniture{}}

		return nil
	})

	return added, err
}

// RemoveRoom tears down a room. Missing rooms are ignored.
func (l *Ledger) RemoveRoom(baseID, roomID string) error {
	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(baseID)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, baseID)
		}
		b.Rooms = slices.DeleteFunc(b.Rooms, func(r *entity.Room) bool { return r.ID == roomID })

		return nil
	})
}

// AddFurniture fits a room with a piece of furniture.
func (l *Ledger) AddFurniture(baseID, roomID, name string, cost float64, pay bool) (*entity.Furniture, error) {
	name, err := validateName(name, "furniture name")
	if err != nil {
		return nil, err
	}
	if cost < 0 {
		return nil, invalid("cost cannot be negative")
	}

	var added *entity.Furniture
	err = l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(baseID)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, baseID)
		}
		r := b.FindRoom(roomID)
		if r == nil {
			return notFound(domainerrors.ErrRoomNotFound, roomID)
		}
		if err := l.payTS(s, pay, cost, fmt.Sprintf("Mobília %s em %s (%s)", name, r.Name, b.Name)); err != nil {
			return err
		}
		f := &entity.Furniture{ID: l.newID(), Name: name, Cost: cost}
		r.Furnitures = append(r.Furnitures, f)
		fc := *f
		added = &fc

		return nil
	})

	return added, err
}

// RemoveFurniture takes a piece of furniture out of a room. Missing
// furniture is ignored.
func (l *Ledger) RemoveFurniture(baseID, roomID, furnitureID string) error {
	return l.apply(func(s *entity.GuildState) error {
		b := s.FindBase(baseID)
		if b == nil {
			return notFound(domainerrors.ErrBaseNotFound, baseID)
		}
		r := b.FindRoom(roomID)
		if r == nil {
			return notFound(domainerrors.ErrRoomNotFound, roomID)
		}
		r.Furnitures = slices.DeleteFunc(r.Furnitures, func(f *entity.Furniture) bool { return f.ID == furnitureID })

		return nil
	})
}

// RoomCapacity returns how many rooms a base has and how many its porte allows.
func (l *Ledger) RoomCapacity(baseID string) (used, slots int, err error) {
	b := l.state.FindBase(baseID)
	if b == nil {
		return 0, 0, notFound(domainerrors.ErrBaseNotFound, baseID)
	}

	return len(b.Rooms), b.Porte.Info().Slots, nil
}

// payTS debits cost TS and logs a Base entry when pay is set and cost is positive.
func (l *Ledger) payTS(s *entity.GuildState, pay bool, cost float64, details string) error {
	if !pay || cost == 0 {
		return nil
	}
	if !s.Wallet.Has(entity.CurrencyTS, cost) {
		return insufficientFunds(entity.CurrencyTS, cost, s.Wallet.TS)
	}
	s.Wallet.TS -= cost
	l.record(s, entity.LogBase, details, -cost, entity.SystemActorID)

	return nil
}
