// Package entity holds the guild state and the records persisted for it.
package entity

import "slices"

// GuildState is the root aggregate holding everything a guild owns.
type GuildState struct {
	ID        string        `json:"id"`
	GuildName string        `json:"guildName"`
	Wallet    Wallet        `json:"wallet"`
	Members   []*Member     `json:"members"`
	Items     Items         `json:"items"`
	Bases     []*Base       `json:"bases"`
	Domains   []*Domain     `json:"domains"`
	NPCs      []*NPC        `json:"npcs"`
	Logs      []*LogEntry   `json:"logs"` // newest first
	Calendar  CalendarState `json:"calendar"`
	Quests    []*Quest      `json:"quests"`
}

// NewGuildState returns a freshly founded guild with all-empty defaults.
func NewGuildState(id, name string) *GuildState {
	s := &GuildState{ID: id, GuildName: name, Calendar: DefaultCalendar()}
	Normalize(s)

	return s
}

// Normalize fills every collection a partial or older document may lack so
// that callers never see nil slices. Null elements are dropped. Wallet fields
// already decode to zero.
func Normalize(s *GuildState) {
	s.Members = dropNil(s.Members)
	if s.Members == nil {
		s.Members = []*Member{}
	}
	for _, m := range s.Members {
		m.Inventory = dropNil(m.Inventory)
		if m.Inventory == nil {
			m.Inventory = Items{}
		}
		if m.Status == "" {
			m.Status = MemberStatusAtivo
		}
	}
	s.Items = dropNil(s.Items)
	if s.Items == nil {
		s.Items = Items{}
	}
	s.Bases = dropNil(s.Bases)
	if s.Bases == nil {
		s.Bases = []*Base{}
	}
	for _, b := range s.Bases {
		b.Rooms = dropNil(b.Rooms)
		if b.Rooms == nil {
			b.Rooms = []*Room{}
		}
		for _, r := range b.Rooms {
			r.Furnitures = dropNil(r.Furnitures)
			if r.Furnitures == nil {
				r.Furnitures = []*Furniture{}
			}
		}
		if b.History == nil {
			b.History = []string{}
		}
	}
	s.Domains = dropNil(s.Domains)
	if s.Domains == nil {
		s.Domains = []*Domain{}
	}
	for _, d := range s.Domains {
		d.Buildings = dropNil(d.Buildings)
		if d.Buildings == nil {
			d.Buildings = []*DomainBuilding{}
		}
		d.Units = dropNil(d.Units)
		if d.Units == nil {
			d.Units = []*DomainUnit{}
		}
		if d.Level < 1 {
			d.Level = 1
		}
		if d.Popularity == "" {
			d.Popularity = PopularityTolerado
		}
		if d.Court == "" {
			d.Court = CourtInexistente
		}
	}
	s.NPCs = dropNil(s.NPCs)
	if s.NPCs == nil {
		s.NPCs = []*NPC{}
	}
	s.Logs = dropNil(s.Logs)
	if s.Logs == nil {
		s.Logs = []*LogEntry{}
	}
	s.Quests = dropNil(s.Quests)
	if s.Quests == nil {
		s.Quests = []*Quest{}
	}
	for _, q := range s.Quests {
		if q.AssignedMemberIDs == nil {
			q.AssignedMemberIDs = []string{}
		}
	}
	if s.Calendar.Day == 0 {
		s.Calendar = DefaultCalendar()
	}
}

func dropNil[S ~[]*E, E any](items S) S {
	return slices.DeleteFunc(items, func(e *E) bool { return e == nil })
}

// Clone returns a deep copy of the state. Log entries are shared because they
// are never mutated after insertion.
func (s *GuildState) Clone() *GuildState {
	c := *s
	c.Members = make([]*Member, 0, len(s.Members))
	for _, m := range s.Members {
		c.Members = append(c.Members, m.Clone())
	}
	c.Items = s.Items.Clone()
	c.Bases = make([]*Base, 0, len(s.Bases))
	for _, b := range s.Bases {
		c.Bases = append(c.Bases, b.Clone())
	}
	c.Domains = make([]*Domain, 0, len(s.Domains))
	for _, d := range s.Domains {
		c.Domains = append(c.Domains, d.Clone())
	}
	c.NPCs = make([]*NPC, 0, len(s.NPCs))
	for _, n := range s.NPCs {
		nc := *n
		c.NPCs = append(c.NPCs, &nc)
	}
	c.Logs = append([]*LogEntry{}, s.Logs...)
	c.Quests = make([]*Quest, 0, len(s.Quests))
	for _, q := range s.Quests {
		c.Quests = append(c.Quests, q.Clone())
	}

	return &c
}

// FindMember returns the member with the given id.
func (s *GuildState) FindMember(id string) *Member {
	for _, m := range s.Members {
		if m.ID == id {
			return m
		}
	}

	return nil
}

// FindBase returns the base with the given id.
func (s *GuildState) FindBase(id string) *Base {
	for _, b := range s.Bases {
		if b.ID == id {
			return b
		}
	}

	return nil
}

// FindDomain returns the domain with the given id.
func (s *GuildState) FindDomain(id string) *Domain {
	for _, d := range s.Domains {
		if d.ID == id {
			return d
		}
	}

	return nil
}

// FindNPC returns the NPC with the given id.
func (s *GuildState) FindNPC(id string) *NPC {
	for _, n := range s.NPCs {
		if n.ID == id {
			return n
		}
	}

	return nil
}

// FindQuest returns the quest with the given id.
func (s *GuildState) FindQuest(id string) *Quest {
	for _, q := range s.Quests {
		if q.ID == id {
			return q
		}
	}

	return nil
}
