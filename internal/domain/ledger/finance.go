package ledger

import (
	"fmt"
	"math"

	"guildbook/internal/domain/entity"
)

// ConversionResult reports the outcome of a wallet conversion.
type ConversionResult struct {
	Converted float64 `json:"converted"` // units credited in the destination currency
	Cost      float64 `json:"cost"`      // units debited from the source currency
}

// Deposit adds amount of currency to the guild wallet.
func (l *Ledger) Deposit(memberID string, amount float64, currency entity.Currency, reason string) error {
	if err := validateMoney(amount, currency); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		s.Wallet.Add(currency, amount)
		l.record(s, entity.LogDeposito,
			fmt.Sprintf("Depósito de %s %s: %s", formatAmount(amount), currency, reason),
			entity.ToTS(amount, currency), memberID)

		return nil
	})
}

// Withdraw removes amount of currency from the guild wallet.
func (l *Ledger) Withdraw(memberID string, amount float64, currency entity.Currency, reason string) error {
	if err := validateMoney(amount, currency); err != nil {
		return err
	}

	return l.apply(func(s *entity.GuildState) error {
		if !s.Wallet.Has(currency, amount) {
			return insufficientFunds(currency, amount, s.Wallet.Get(currency))
		}
		s.Wallet.Add(currency, -amount)
		l.record(s, entity.LogSaque,
			fmt.Sprintf("Saque de %s %s: %s", formatAmount(amount), currency, reason),
			-entity.ToTS(amount, currency), memberID)

		return nil
	})
}

// ConvertWallet exchanges amount of from into whole units of to. Only the
// exact price of the whole units is debited; the remainder stays in from.
func (l *Ledger) ConvertWallet(amount float64, from, to entity.Currency) (*ConversionResult, error) {
	if err := validateMoney(amount, from); err != nil {
		return nil, err
	}
	if !to.IsValid() {
		return nil, invalid("unknown currency " + string(to))
	}
	if from == to {
		return nil, invalid("source and destination currencies must differ")
	}

	var result ConversionResult
	err := l.apply(func(s *entity.GuildState) error {
		if !s.Wallet.Has(from, amount) {
			return insufficientFunds(from, amount, s.Wallet.Get(from))
		}

		converted := math.Floor(entity.Exchange(amount, from, to))
		if converted == 0 {
			return conversionTooSmall(amount, from, to)
		}
		cost := entity.Exchange(converted, to, from)

		s.Wallet.Add(from, -cost)
		s.Wallet.Add(to, converted)
		l.record(s, entity.LogConversao,
			fmt.Sprintf("Conversão de %s %s em %s %s", formatAmount(cost), from, formatAmount(converted), to),
			0, entity.SystemActorID)

		result = ConversionResult{Converted: converted, Cost: cost}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
