package ledger

import (
	"fmt"
	"math"
	"strings"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
)

// ItemPatch lists the item fields to overwrite. Nil fields are untouched.
type ItemPatch struct {
	Name            *string
	Type            *entity.ItemType
	Rarity          *entity.Rarity
	Quantity        *int
	Value           *float64
	Origin          *string
	Encounter       *string
	IsQuestItem     *bool
	IsNonNegotiable *bool
}

func (l *Ledger) prepareItem(item entity.Item) (*entity.Item, error) {
	name, err := validateName(item.Name, "item name")
	if err != nil {
		return nil, err
	}
	if !item.Type.IsValid() {
		return nil, invalid("unknown item type " + string(item.Type))
	}
	if !item.Rarity.IsValid() {
		return nil, invalid("unknown item rarity " + string(item.Rarity))
	}
	if item.Quantity <= 0 {
		return nil, invalid("item quantity must be positive")
	}
	if item.Value < 0 {
		return nil, invalid("item value cannot be negative")
	}

	out := item
	out.Name = name
	if out.ID == "" {
		out.ID = l.newID()
	}

	return &out, nil
}

// AddItem stores item in the guild inventory, stacking it onto an existing
// record with the same name, type and rarity. It returns the resulting stack.
func (l *Ledger) AddItem(item entity.Item) (*entity.Item, error) {
	it, err := l.prepareItem(item)
	if err != nil {
		return nil, err
	}

	var stored *entity.Item
	err = l.apply(func(s *entity.GuildState) error {
		if s.Items.Find(it.ID) != nil && s.Items.FindIdentity(it) == nil {
			it.ID = l.newID()
		}
		var stack *entity.Item
		s.Items, stack = s.Items.Merge(it)
		l.record(s, entity.LogEstoque,
			fmt.Sprintf("Adicionado ao estoque: %d x %s", it.Quantity, it.Name), 0, entity.SystemActorID)
		stored = stack.Clone()

		return nil
	})

	return stored, err
}

// BuyItem pays value*quantity TS and stores the item in the guild inventory.
func (l *Ledger) BuyItem(item entity.Item, memberID string) (*entity.Item, error) {
	it, err := l.prepareItem(item)
	if err != nil {
		return nil, err
	}
	cost := it.Value * float64(it.Quantity)

	var stored *entity.Item
	err = l.apply(func(s *entity.GuildState) error {
		if !s.Wallet.Has(entity.CurrencyTS, cost) {
			return insufficientFunds(entity.CurrencyTS, cost, s.Wallet.TS)
		}
		s.Wallet.TS -= cost
		var stack *entity.Item
		s.Items, stack = s.Items.Merge(it)
		l.record(s, entity.LogCompra,
			fmt.Sprintf("Compra de %d x %s por %s TS", it.Quantity, it.Name, formatAmount(cost)),
			-cost, memberID)
		stored = stack.Clone()

		return nil
	})

	return stored, err
}

// UpdateItem patches a guild item. Setting the quantity to zero removes it.
// A patch that gives the item the identity of another stack folds its units
// into that stack.
func (l *Ledger) UpdateItem(id string, patch ItemPatch) error {
	if patch.Type != nil && !patch.Type.IsValid() {
		return invalid("unknown item type " + string(*patch.Type))
	}
	if patch.Rarity != nil && !patch.Rarity.IsValid() {
		return invalid("unknown item rarity " + string(*patch.Rarity))
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return invalid("item quantity cannot be negative")
	}
	if patch.Value != nil && *patch.Value < 0 {
		return invalid("item value cannot be negative")
	}
	if patch.Name != nil {
		name, err := validateName(*patch.Name, "item name")
		if err != nil {
			return err
		}
		patch.Name = &name
	}

	return l.apply(func(s *entity.GuildState) error {
		it := s.Items.Find(id)
		if it == nil {
			return notFound(domainerrors.ErrItemNotFound, id)
		}
		if patch.Name != nil {
			it.Name = *patch.Name
		}
		if patch.Type != nil {
			it.Type = *patch.Type
		}
		if patch.Rarity != nil {
			it.Rarity = *patch.Rarity
		}
		if patch.Quantity != nil {
			it.Quantity = *patch.Quantity
		}
		if patch.Value != nil {
			it.Value = *patch.Value
		}
		if patch.Origin != nil {
			it.Origin = *patch.Origin
		}
		if patch.Encounter != nil {
			it.Encounter = *patch.Encounter
		}
		if patch.IsQuestItem != nil {
			it.IsQuestItem = *patch.IsQuestItem
		}
		if patch.IsNonNegotiable != nil {
			it.IsNonNegotiable = *patch.IsNonNegotiable
		}
		if it.Quantity == 0 {
			s.Items = s.Items.Remove(id)

			return nil
		}
		if stack := s.Items.FindIdentityExcept(it); stack != nil {
			stack.Quantity += it.Quantity
			s.Items = s.Items.Remove(id)
		}

		return nil
	})
}

// TransferItemFromMember returns qty units of a member's item to the guild pool.
func (l *Ledger) TransferItemFromMember(itemID, memberID string, qty int) error {
	if qty <= 0 {
		return invalid("quantity must be positive")
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(memberID)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, memberID)
		}
		it := m.Inventory.Find(itemID)
		if it == nil {
			return notFound(domainerrors.ErrItemNotFound, itemID)
		}
		if it.Quantity < qty {
			return insufficientStock(it.Name, qty, it.Quantity)
		}

		moved := it.Clone()
		moved.ID = l.newID()
		moved.Quantity = qty
		s.Items, _ = s.Items.Merge(moved)
		m.Inventory = m.Inventory.Take(itemID, qty)
		l.record(s, entity.LogEstoque,
			fmt.Sprintf("%s devolveu %d x %s ao estoque da guilda", m.Name, qty, it.Name), 0, memberID)

		return nil
	})
}

// WithdrawItem hands qty units of a guild item to a member.
func (l *Ledger) WithdrawItem(itemID, memberID, reason string, qty int) error {
	if qty <= 0 {
		return invalid("quantity must be positive")
	}

	return l.apply(func(s *entity.GuildState) error {
		m := s.FindMember(memberID)
		if m == nil {
			return notFound(domainerrors.ErrMemberNotFound, memberID)
		}
		it := s.Items.Find(itemID)
		if it == nil {
			return notFound(domainerrors.ErrItemNotFound, itemID)
		}
		if it.Quantity < qty {
			return insufficientStock(it.Name, qty, it.Quantity)
		}

		moved := it.Clone()
		moved.ID = l.newID()
		moved.Quantity = qty
		m.Inventory, _ = m.Inventory.Merge(moved)
		s.Items = s.Items.Take(itemID, qty)
		l.record(s, entity.LogEstoque,
			fmt.Sprintf("%s retirou %d x %s: %s", m.Name, qty, it.Name, reason), 0, memberID)

		return nil
	})
}

// SellItem sells qty units at percent of their value and credits the TS
// proceeds, floored, to the guild wallet. Percent may exceed 100.
func (l *Ledger) SellItem(itemID string, qty int, memberID string, percent float64) (float64, error) {
	if qty <= 0 {
		return 0, invalid("quantity must be positive")
	}
	if percent < 0 {
		return 0, invalid("percent cannot be negative")
	}

	var proceeds float64
	err := l.apply(func(s *entity.GuildState) error {
		it := s.Items.Find(itemID)
		if it == nil {
			return notFound(domainerrors.ErrItemNotFound, itemID)
		}
		if it.Quantity < qty {
			return insufficientStock(it.Name, qty, it.Quantity)
		}

		proceeds = saleProceeds(it.Value, qty, percent)
		s.Wallet.TS += proceeds
		s.Items = s.Items.Take(itemID, qty)
		l.record(s, entity.LogVenda,
			fmt.Sprintf("Venda de %d x %s (%s%%) por %s TS", qty, it.Name, formatAmount(percent), formatAmount(proceeds)),
			proceeds, memberID)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return proceeds, nil
}

// SellBatchItems sells the whole stack of every listed item under a single
// log entry. Unknown ids are skipped.
func (l *Ledger) SellBatchItems(ids []string, memberID string, percent float64) (float64, error) {
	if percent < 0 {
		return 0, invalid("percent cannot be negative")
	}

	var total float64
	err := l.apply(func(s *entity.GuildState) error {
		var sold []string
		for _, id := range ids {
			it := s.Items.Find(id)
			if it == nil {
				continue
			}
			total += saleProceeds(it.Value, it.Quantity, percent)
			sold = append(sold, fmt.Sprintf("%d x %s", it.Quantity, it.Name))
			s.Items = s.Items.Remove(id)
		}
		if len(sold) == 0 {
			return nil
		}

		s.Wallet.TS += total
		l.record(s, entity.LogVenda,
			fmt.Sprintf("Venda em lote (%s%%): %s", formatAmount(percent), strings.Join(sold, ", ")),
			total, memberID)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// DeleteItem writes off qty units of a guild item.
func (l *Ledger) DeleteItem(id string, qty int) error {
	if qty <= 0 {
		return invalid("quantity must be positive")
	}

	return l.apply(func(s *entity.GuildState) error {
		it := s.Items.Find(id)
		if it == nil {
			return notFound(domainerrors.ErrItemNotFound, id)
		}
		if it.Quantity < qty {
			return insufficientStock(it.Name, qty, it.Quantity)
		}
		s.Items = s.Items.Take(id, qty)
		l.record(s, entity.LogEstoque, fmt.Sprintf("Descartado: %d x %s", qty, it.Name), 0, entity.SystemActorID)

		return nil
	})
}

// DeleteBatchItems writes off every listed item entirely. Unknown ids are skipped.
func (l *Ledger) DeleteBatchItems(ids []string) error {
	return l.apply(func(s *entity.GuildState) error {
		var removed []string
		for _, id := range ids {
			it := s.Items.Find(id)
			if it == nil {
				continue
			}
			removed = append(removed, fmt.Sprintf("%d x %s", it.Quantity, it.Name))
			s.Items = s.Items.Remove(id)
		}
		if len(removed) > 0 {
			l.record(s, entity.LogEstoque, "Descarte em lote: "+strings.Join(removed, ", "), 0, entity.SystemActorID)
		}

		return nil
	})
}

func saleProceeds(value float64, qty int, percent float64) float64 {
	return math.Floor(value * float64(qty) * percent / 100)
}
