package ledger

import (
	"fmt"
	"slices"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"
)

const (
	// DomainFoundingCost is the TS price of a paid domain.
	DomainFoundingCost = 5000
	// GovernanceDifficulty is the total a governance roll must reach.
	GovernanceDifficulty = 15
	// adoredBonus is added to governance rolls of an Adorado regent.
	adoredBonus = 2
	// levelUpCostPerLevel is the LO paid from the treasury per current level.
	levelUpCostPerLevel = 20
)

// TreasuryOp selects the direction of a direct treasury adjustment.
type TreasuryOp string

const (
	TreasuryIncome  TreasuryOp = "Income"
	TreasuryExpense TreasuryOp = "Expense"
)

// GovernanceResult is the outcome of a monthly governance roll. The
// popularity change is only suggested; ShiftPopularity applies it.
type GovernanceResult struct {
	Income           int      `json:"income"`
	Maintenance      int      `json:"maintenance"`
	Net              int      `json:"net"`
	Success          bool     `json:"success"`
	PopularityChange int      `json:"popularityChange"`
	TotalResult      int      `json:"totalResult"`
	Details          []string `json:"details"`
}

// DomainPatch lists the domain fields to overwrite. Nil fields are untouched.
type DomainPatch struct {
	Name          *string
	Regent        *string
	Terrain       *string
	Court         *entity.Court
	Fortification *int
}

// CreateDomain founds a level 1 domain. When payCost is false the domain is a
// reward and costs nothing.
func (l *Ledger) CreateDomain(name, regent, terrain string, payCost bool) (*entity.Domain, error) {
	name, err := validateName(name, "domain name")
	if err != nil {
		return nil, err
	}

	var added *entity.Domain
	err = l.apply(func(s *entity.GuildState) error {
		d := &entity.Domain{
			ID:         l.newID(),
			Name:       name,
			Regent:     regent,
			Level:      1,
			Terrain:    terrain,
			Court:      entity.CourtInexistente,
			Popularity: entity.PopularityTolerado,
			Buildings:  []*entity.DomainBuilding{},
			Units:      []*entity.DomainUnit{},
		}
		if payCost {
			if !s.Wallet.Has(entity.CurrencyTS, DomainFoundingCost) {
				return insufficientFunds(entity.CurrencyTS, DomainFoundingCost, s.Wallet.TS)
			}
			s.Wallet.TS -= DomainFoundingCost
			l.record(s, entity.LogDominio, "Fundação do domínio "+name, -DomainFoundingCost, entity.SystemActorID)
		}
		s.Domains = append(s.Domains, d)
		added = d.Clone()

		return nil
	})

	return added, err
}

// InvestDomain moves amount LO from the guild wallet into a domain treasury.
func (l *Ledger) InvestDomain(id string, amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if !s.Wallet.Has(entity.CurrencyLO, amount) {
			return insufficientFunds(entity.CurrencyLO, amount, s.Wallet.LO)
		}
		s.Wallet.LO -= amount
		d.Treasury += amount
		l.record(s, entity.LogDominio,
			fmt.Sprintf("Investimento de %s LO no domínio %s", formatAmount(amount), d.Name),
			-entity.ToTS(amount, entity.CurrencyLO), entity.SystemActorID)

		return nil
	})
}

// WithdrawDomain moves amount LO from a domain treasury into the guild wallet.
func (l *Ledger) WithdrawDomain(id string, amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if d.Treasury < amount {
			return insufficientFunds(entity.CurrencyLO, amount, d.Treasury)
		}
		d.Treasury -= amount
		s.Wallet.LO += amount
		l.record(s, entity.LogDominio,
			fmt.Sprintf("Retirada de %s LO do domínio %s", formatAmount(amount), d.Name),
			entity.ToTS(amount, entity.CurrencyLO), entity.SystemActorID)

		return nil
	})
}

// ManageDomainTreasury adjusts a treasury without a guild wallet counterpart.
// Expenses larger than the treasury empty it.
func (l *Ledger) ManageDomainTreasury(id string, amount float64, op TreasuryOp, reason string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if op != TreasuryIncome && op != TreasuryExpense {
		return invalid("unknown treasury operation " + string(op))
	}

	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}

		label := "Receita"
		if op == TreasuryIncome {
			d.Treasury += amount
		} else {
			label = "Despesa"
			d.Treasury = max(0, d.Treasury-amount)
		}
		l.record(s, entity.LogDominio,
			fmt.Sprintf("%s de %s LO no domínio %s: %s", label, formatAmount(amount), d.Name, reason),
			0, entity.SystemActorID)

		return nil
	})
}

// GovernDomain resolves a month of rule over a domain with the given d20 roll.
// The treasury absorbs losses down to zero. Popularity is left untouched.
func (l *Ledger) GovernDomain(id string, roll int) (*GovernanceResult, error) {
	var res *GovernanceResult
	err := l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return errors.Wrapf(domainerrors.ErrPreconditionViolated, "govern unknown domain %q", id)
		}

		res = governance(d, roll)
		d.Treasury = max(0, d.Treasury+float64(res.Net))
		l.record(s, entity.LogDominio,
			fmt.Sprintf("Governo de %s: %s", d.Name, res.Details[0]),
			entity.ToTS(float64(res.Net), entity.CurrencyLO), entity.SystemActorID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func governance(d *entity.Domain, roll int) *GovernanceResult {
	bonus := 0
	if d.Popularity == entity.PopularityAdorado {
		bonus = adoredBonus
	}
	total := roll + d.Level + bonus
	success := total >= GovernanceDifficulty

	income := d.Level * 2
	if success {
		income += d.Level
	}
	maintenance := entity.CourtData[d.Court].Maintenance + len(d.Units) + len(d.Buildings)/2

	res := &GovernanceResult{
		Income:      income,
		Maintenance: maintenance,
		Net:         income - maintenance,
		Success:     success,
		TotalResult: total,
	}
	if !success {
		res.PopularityChange = -1
	}

	res.Details = []string{
		fmt.Sprintf("rolagem %d + nível %d + bônus %d = %d (CD %d)", roll, d.Level, bonus, total, GovernanceDifficulty),
		fmt.Sprintf("receita %d LO, manutenção %d LO, saldo %d LO", income, maintenance, res.Net),
	}
	if success {
		res.Details = append(res.Details, "O povo prospera sob o governo de "+regentName(d)+".")
	} else {
		res.Details = append(res.Details, "Murmúrios de descontentamento correm pelas ruas.")
	}

	return res
}

func regentName(d *entity.Domain) string {
	if d.Regent == "" {
		return "ninguém"
	}

	return d.Regent
}

// ShiftPopularity moves a domain's popularity by delta steps, clamped to the
// ends of the scale. It is the second half of a governance turn.
func (l *Ledger) ShiftPopularity(id string, delta int) error {
	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if delta == 0 {
			return nil
		}
		old := d.Popularity
		d.Popularity = d.Popularity.Shift(delta)
		l.record(s, entity.LogDominio,
			fmt.Sprintf("Popularidade em %s: %s para %s", d.Name, old, d.Popularity), 0, entity.SystemActorID)

		return nil
	})
}

// LevelUpDomain raises a domain one level, paying level*20 LO from its treasury.
func (l *Ledger) LevelUpDomain(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		cost := float64(d.Level * levelUpCostPerLevel)
		if d.Treasury < cost {
			return insufficientFunds(entity.CurrencyLO, cost, d.Treasury)
		}
		d.Treasury -= cost
		d.Level++
		l.record(s, entity.LogDominio,
			fmt.Sprintf("%s subiu para o nível %d (%s LO do tesouro)", d.Name, d.Level, formatAmount(cost)),
			0, entity.SystemActorID)

		return nil
	})
}

// UpdateDomain patches a domain's descriptive fields.
func (l *Ledger) UpdateDomain(id string, patch DomainPatch) error {
	if patch.Court != nil && !patch.Court.IsValid() {
		return invalid("unknown court " + string(*patch.Court))
	}
	if patch.Fortification != nil && *patch.Fortification < 0 {
		return invalid("fortification cannot be negative")
	}
	if patch.Name != nil {
		name, err := validateName(*patch.Name, "domain name")
		if err != nil {
			return err
		}
		patch.Name = &name
	}

	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Regent != nil {
			d.Regent = *patch.Regent
		}
		if patch.Terrain != nil {
			d.Terrain = *patch.Terrain
		}
		if patch.Court != nil {
			d.Court = *patch.Court
		}
		if patch.Fortification != nil {
			d.Fortification = *patch.Fortification
		}

		return nil
	})
}

// AddDomainBuilding raises a building. When pay is set its LO cost comes
// out of the domain treasury.
func (l *Ledger) AddDomainBuilding(id string, building entity.DomainBuilding, pay bool) (*entity.DomainBuilding, error) {
	name, err := validateName(building.Name, "building name")
	if err != nil {
		return nil, err
	}
	if building.CostLO < 0 {
		return nil, invalid("cost cannot be negative")
	}
	building.Name = name

	var added *entity.DomainBuilding
	err = l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if err := l.payTreasury(s, d, pay, building.CostLO, "Construção de "+name+" em "+d.Name); err != nil {
			return err
		}
		b := building
		b.ID = l.newID()
		d.Buildings = append(d.Buildings, &b)
		bc := b
		added = &bc

		return nil
	})

	return added, err
}

// RemoveDomainBuilding tears a building down. Missing buildings are ignored.
func (l *Ledger) RemoveDomainBuilding(id, buildingID string) error {
	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		d.Buildings = slices.DeleteFunc(d.Buildings, func(b *entity.DomainBuilding) bool { return b.ID == buildingID })

		return nil
	})
}

// AddDomainUnit raises a military unit. When pay is set its LO cost comes
// out of the domain treasury.
func (l *Ledger) AddDomainUnit(id string, unit entity.DomainUnit, pay bool) (*entity.DomainUnit, error) {
	name, err := validateName(unit.Name, "unit name")
	if err != nil {
		return nil, err
	}
	if unit.CostLO < 0 {
		return nil, invalid("cost cannot be negative")
	}
	unit.Name = name

	var added *entity.DomainUnit
	err = l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		if err := l.payTreasury(s, d, pay, unit.CostLO, "Recrutamento de "+name+" em "+d.Name); err != nil {
			return err
		}
		u := unit
		u.ID = l.newID()
		d.Units = append(d.Units, &u)
		uc := u
		added = &uc

		return nil
	})

	return added, err
}

// RemoveDomainUnit disbands a unit. Missing units are ignored.
func (l *Ledger) RemoveDomainUnit(id, unitID string) error {
	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		d.Units = slices.DeleteFunc(d.Units, func(u *entity.DomainUnit) bool { return u.ID == unitID })

		return nil
	})
}

// DemolishDomain abandons a domain and whatever is left in its treasury.
func (l *Ledger) DemolishDomain(id string) error {
	return l.apply(func(s *entity.GuildState) error {
		d := s.FindDomain(id)
		if d == nil {
			return notFound(domainerrors.ErrDomainNotFound, id)
		}
		s.Domains = slices.DeleteFunc(s.Domains, func(x *entity.Domain) bool { return x.ID == id })
		l.record(s, entity.LogSistema, "Domínio abandonado: "+d.Name, 0, entity.SystemActorID)

		return nil
	})
}

// payTreasury debits cost LO from d's treasury when pay is set.
func (l *Ledger) payTreasury(s *entity.GuildState, d *entity.Domain, pay bool, cost float64, details string) error {
	if !pay || cost == 0 {
		return nil
	}
	if d.Treasury < cost {
		return insufficientFunds(entity.CurrencyLO, cost, d.Treasury)
	}
	d.Treasury -= cost
	l.record(s, entity.LogDominio, fmt.Sprintf("%s (%s LO do tesouro)", details, formatAmount(cost)), 0, entity.SystemActorID)

	return nil
}
