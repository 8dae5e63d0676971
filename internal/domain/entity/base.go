package entity

// Porte is a base's size tier.
type Porte string

const (
	PorteMinima     Porte = "Minima"
	PorteModesta    Porte = "Modesta"
	PorteBasica     Porte = "Basica"
	PorteFormidavel Porte = "Formidavel"
	PorteGrandiosa  Porte = "Grandiosa"
	PorteSuprema    Porte = "Suprema"
)

// PorteInfo is the static cost table row of a porte, amounts in TS.
type PorteInfo struct {
	Cost        float64 `json:"cost"`
	Maintenance float64 `json:"maintenance"`
	Slots       int     `json:"slots"`
}

// PorteData is the fixed founding cost, monthly upkeep and room capacity per porte.
var PorteData = map[Porte]PorteInfo{
	PorteMinima:     {Cost: 500, Maintenance: 10, Slots: 1},
	PorteModesta:    {Cost: 2000, Maintenance: 25, Slots: 2},
	PorteBasica:     {Cost: 5000, Maintenance: 50, Slots: 4},
	PorteFormidavel: {Cost: 15000, Maintenance: 100, Slots: 6},
	PorteGrandiosa:  {Cost: 40000, Maintenance: 250, Slots: 9},
	PorteSuprema:    {Cost: 100000, Maintenance: 500, Slots: 12},
}

// IsValid checks if the Porte is a valid value.
func (p Porte) IsValid() bool {
	_, ok := PorteData[p]

	return ok
}

// Info returns the porte's table row.
func (p Porte) Info() PorteInfo {
	return PorteData[p]
}

// BaseType is cosmetic and has no mechanical effect.
type BaseType string

const (
	BaseTypeCentroDePoder  BaseType = "CentroDePoder"
	BaseTypeEmpreendimento BaseType = "Empreendimento"
	BaseTypeEsconderijo    BaseType = "Esconderijo"
	BaseTypeFortificacao   BaseType = "Fortificacao"
	BaseTypeMovel          BaseType = "Movel"
	BaseTypeResidencia     BaseType = "Residencia"
)

// IsValid checks if the BaseType is a valid value.
func (t BaseType) IsValid() bool {
	switch t {
	case BaseTypeCentroDePoder, BaseTypeEmpreendimento, BaseTypeEsconderijo,
		BaseTypeFortificacao, BaseTypeMovel, BaseTypeResidencia:
		return true
	default:
		return false
	}
}

// Furniture is a purchasable fitting inside a room.
type Furniture struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Room is one slot of a base.
type Room struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Furnitures []*Furniture `json:"furnitures"`
}

// Base is a property owned by the guild.
type Base struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Porte   Porte    `json:"porte"`
	Type    BaseType `json:"type"`
	Rooms   []*Room  `json:"rooms"`
	History []string `json:"history"`
}

// FindRoom returns the room with the given id.
func (b *Base) FindRoom(id string) *Room {
	for _, r := range b.Rooms {
		if r.ID == id {
			return r
		}
	}

	return nil
}

// Clone returns a deep copy of the base.
func (b *Base) Clone() *Base {
	c := *b
	c.Rooms = make([]*Room, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rc := *r
		rc.Furnitures = make([]*Furniture, 0, len(r.Furnitures))
		for _, f := range r.Furnitures {
			fc := *f
			rc.Furnitures = append(rc.Furnitures, &fc)
		}
		c.Rooms = append(c.Rooms, &rc)
	}
	c.History = append([]string{}, b.History...)

	return &c
}
