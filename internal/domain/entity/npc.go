package entity

// LocationType tells what kind of place an NPC is attached to.
type LocationType string

const (
	LocationBase       LocationType = "Base"
	LocationDominio    LocationType = "Dominio"
	LocationConstrucao LocationType = "Construcao"
	LocationGrupo      LocationType = "Grupo"
)

// IsValid checks if the LocationType is a valid value. Empty means unplaced.
func (t LocationType) IsValid() bool {
	switch t {
	case "", LocationBase, LocationDominio, LocationConstrucao, LocationGrupo:
		return true
	default:
		return false
	}
}

// Relationship is the bond between an NPC and the guild.
type Relationship string

const (
	RelationshipContratado Relationship = "Contratado"
	RelationshipAliado     Relationship = "Aliado"
	RelationshipParceiro   Relationship = "Parceiro"
	RelationshipRecrutado  Relationship = "Recrutado"
)

// IsValid checks if the Relationship is a valid value. Empty is read as Contratado.
func (r Relationship) IsValid() bool {
	switch r {
	case "", RelationshipContratado, RelationshipAliado, RelationshipParceiro, RelationshipRecrutado:
		return true
	default:
		return false
	}
}

// NPC is a non-player character tied to the guild.
type NPC struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	MonthlyCost  float64      `json:"monthlyCost"`
	LocationType LocationType `json:"locationType"`
	LocationID   string       `json:"locationId,omitempty"`
	LocationName string       `json:"locationName"`
	Relationship Relationship `json:"relationship,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

// OnPayroll reports whether the NPC draws a salary. Records predating the
// relationship field count as hired.
func (n *NPC) OnPayroll() bool {
	return n.Relationship == "" || n.Relationship == RelationshipContratado
}
