package entity

import "slices"

// ItemType classifies an inventory item.
type ItemType string

const (
	ItemTypeConsumivel  ItemType = "Consumivel"
	ItemTypeEquipamento ItemType = "Equipamento"
	ItemTypeTesouro     ItemType = "Tesouro"
	ItemTypeArma        ItemType = "Arma"
	ItemTypeRiqueza     ItemType = "Riqueza"
)

// IsValid checks if the ItemType is a valid value.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeConsumivel, ItemTypeEquipamento, ItemTypeTesouro, ItemTypeArma, ItemTypeRiqueza:
		return true
	default:
		return false
	}
}

// Rarity grades an inventory item.
type Rarity string

const (
	RarityComum     Rarity = "Comum"
	RaritySuperior  Rarity = "Superior"
	RarityMagico    Rarity = "Magico"
	RarityLiturgico Rarity = "Liturgico"
	RarityArtefato  Rarity = "Artefato"
)

// IsValid checks if the Rarity is a valid value.
func (r Rarity) IsValid() bool {
	switch r {
	case RarityComum, RaritySuperior, RarityMagico, RarityLiturgico, RarityArtefato:
		return true
	default:
		return false
	}
}

// Item is a stack of identical goods held by the guild or by a member.
type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            ItemType `json:"type"`
	Rarity          Rarity   `json:"rarity"`
	Quantity        int      `json:"quantity"`
	Value           float64  `json:"value"` // TS per unit
	Origin          string   `json:"origin"`
	Encounter       string   `json:"encounter"`
	IsQuestItem     bool     `json:"isQuestItem"`
	IsNonNegotiable bool     `json:"isNonNegotiable"`
}

// SameIdentity reports whether two items stack together. Only name, type and
// rarity take part; value and provenance of the existing stack win.
func (i *Item) SameIdentity(other *Item) bool {
	return i.Name == other.Name && i.Type == other.Type && i.Rarity == other.Rarity
}

// Items is an ordered item collection.
type Items []*Item

// Find returns the item with the given id.
func (items Items) Find(id string) *Item {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}

	return nil
}

// FindIdentity returns the stack matching item's identity triple.
func (items Items) FindIdentity(item *Item) *Item {
	for _, it := range items {
		if it.SameIdentity(item) {
			return it
		}
	}

	return nil
}

// FindIdentityExcept returns a stack sharing item's identity other than item itself.
func (items Items) FindIdentityExcept(item *Item) *Item {
	for _, it := range items {
		if it.ID != item.ID && it.SameIdentity(item) {
			return it
		}
	}

	return nil
}

// Merge adds item to the collection, summing into an existing stack when one
// shares its identity. It returns the collection and the stack now holding the units.
func (items Items) Merge(item *Item) (Items, *Item) {
	if existing := items.FindIdentity(item); existing != nil {
		existing.Quantity += item.Quantity

		return items, existing
	}

	return append(items, item), item
}

// Take removes qty units from the stack with the given id, dropping the stack
// once it is empty. The caller checks availability first.
func (items Items) Take(id string, qty int) Items {
	it := items.Find(id)
	if it == nil {
		return items
	}
	it.Quantity -= qty
	if it.Quantity <= 0 {
		return items.Remove(id)
	}

	return items
}

// Remove drops the stack with the given id.
func (items Items) Remove(id string) Items {
	return slices.DeleteFunc(items, func(it *Item) bool { return it.ID == id })
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	c := *i

	return &c
}

// Clone returns a deep copy of the collection.
func (items Items) Clone() Items {
	out := make(Items, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}

	return out
}
