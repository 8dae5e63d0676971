package entity

// Court is a domain's administrative tier.
type Court string

const (
	CourtInexistente Court = "Inexistente"
	CourtPobre       Court = "Pobre"
	CourtComum       Court = "Comum"
	CourtRica        Court = "Rica"
)

// CourtInfo is the static table row of a court tier.
type CourtInfo struct {
	Maintenance int `json:"maintenance"` // LO per month
}

// CourtData is the fixed monthly LO upkeep of each court tier.
var CourtData = map[Court]CourtInfo{
	CourtInexistente: {Maintenance: 0},
	CourtPobre:       {Maintenance: 1},
	CourtComum:       {Maintenance: 3},
	CourtRica:        {Maintenance: 5},
}

// IsValid checks if the Court is a valid value.
func (c Court) IsValid() bool {
	_, ok := CourtData[c]

	return ok
}

// Popularity is the ordered five-step standing of a domain's regent.
type Popularity string

const (
	PopularityOdiado    Popularity = "Odiado"
	PopularityImpopular Popularity = "Impopular"
	PopularityTolerado  Popularity = "Tolerado"
	PopularityPopular   Popularity = "Popular"
	PopularityAdorado   Popularity = "Adorado"
)

// PopularityScale lists popularity levels from lowest to highest.
var PopularityScale = []Popularity{
	PopularityOdiado,
	PopularityImpopular,
	PopularityTolerado,
	PopularityPopular,
	PopularityAdorado,
}

// Index returns the position of p on the scale, or -1 if unknown.
func (p Popularity) Index() int {
	for i, v := range PopularityScale {
		if v == p {
			return i
		}
	}

	return -1
}

// IsValid checks if the Popularity is a valid value.
func (p Popularity) IsValid() bool {
	return p.Index() >= 0
}

// Shift moves p by delta steps, clamped to the ends of the scale.
func (p Popularity) Shift(delta int) Popularity {
	idx := p.Index()
	if idx < 0 {
		idx = PopularityTolerado.Index()
	}
	idx = max(0, min(len(PopularityScale)-1, idx+delta))

	return PopularityScale[idx]
}

// DomainBuilding is a construction inside a domain.
type DomainBuilding struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CostLO      float64 `json:"costLO"`
	Benefit     string  `json:"benefit"`
}

// DomainUnit is a military unit raised by a domain.
type DomainUnit struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Power  int     `json:"power"`
	CostLO float64 `json:"costLO"`
}

// Domain is a territory with its own LO treasury.
type Domain struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Regent        string            `json:"regent"`
	Level         int               `json:"level"`
	Terrain       string            `json:"terrain"`
	Court         Court             `json:"court"`
	Treasury      float64           `json:"treasury"`
	Popularity    Popularity        `json:"popularity"`
	Fortification int               `json:"fortification"`
	Buildings     []*DomainBuilding `json:"buildings"`
	Units         []*DomainUnit     `json:"units"`
}

// Clone returns a deep copy of the domain.
func (d *Domain) Clone() *Domain {
	c := *d
	c.Buildings = make([]*DomainBuilding, 0, len(d.Buildings))
	for _, b := range d.Buildings {
		bc := *b
		c.Buildings = append(c.Buildings, &bc)
	}
	c.Units = make([]*DomainUnit, 0, len(d.Units))
	for _, u := range d.Units {
		uc := *u
		c.Units = append(c.Units, &uc)
	}

	return &c
}
