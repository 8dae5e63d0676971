// Package ledger implements the state transitions of a single guild. A Ledger
// owns one GuildState; every operation runs against a clone of it and the
// clone replaces the state only when the operation succeeds, so a rejected
// operation never leaves a partial mutation behind.
//
// A Ledger is not safe for concurrent use.
package ledger

import (
	"math"
	"strconv"
	"strings"
	"time"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/errors"

	"github.com/google/uuid"
)

// Ledger applies operations to a guild state.
type Ledger struct {
	state *entity.GuildState
	now   func() time.Time
	newID func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used to date log entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator sets the generator used for new entity and log ids.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// New wraps state in a Ledger. The state is normalized so that documents
// written by older versions load with empty collections instead of nils.
func New(state *entity.GuildState, opts ...Option) *Ledger {
	if state == nil {
		state = entity.NewGuildState("", "")
	}
	entity.Normalize(state)

	l := &Ledger{
		state: state,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State returns a deep copy of the current state.
func (l *Ledger) State() *entity.GuildState {
	return l.state.Clone()
}

// ID returns the guild id.
func (l *Ledger) ID() string {
	return l.state.ID
}

// LogCount returns the number of log entries recorded so far.
func (l *Ledger) LogCount() int {
	return len(l.state.Logs)
}

// apply runs fn on a clone of the state and swaps the clone in on success.
func (l *Ledger) apply(fn func(s *entity.GuildState) error) error {
	next := l.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	l.state = next

	return nil
}

// record prepends a log entry to s. The actor's name is resolved now and never
// refreshed afterwards.
func (l *Ledger) record(s *entity.GuildState, category entity.LogCategory, details string, value float64, actorID string) {
	entry := &entity.LogEntry{
		ID:       l.newID(),
		Date:     l.now(),
		Category: category,
		Details:  details,
		Value:    value,
	}

	switch {
	case actorID == "" || actorID == entity.SystemActorID:
		entry.MemberID = entity.SystemActorID
		entry.MemberName = entity.SystemActorName
	default:
		entry.MemberID = actorID
		entry.MemberName = entity.UnknownActorName
		if m := s.FindMember(actorID); m != nil {
			entry.MemberName = m.Name
		}
	}

	s.Logs = append([]*entity.LogEntry{entry}, s.Logs...)
}

// RenameGuild changes the guild's display name.
func (l *Ledger) RenameGuild(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("guild name is required")
	}

	return l.apply(func(s *entity.GuildState) error {
		old := s.GuildName
		s.GuildName = name
		l.record(s, entity.LogSistema, "Guilda renomeada de "+old+" para "+name, 0, entity.SystemActorID)

		return nil
	})
}

func invalid(msg string) error {
	return domainerrors.ErrValidationFailed.WrapMessage(msg)
}

func insufficientFunds(currency entity.Currency, need, have float64) error {
	return errors.Wrapf(domainerrors.ErrInsufficientFunds, "need %s %s, have %s",
		formatAmount(need), currency, formatAmount(have))
}

func insufficientStock(name string, need, have int) error {
	return errors.Wrapf(domainerrors.ErrInsufficientStock, "%s: need %d, have %d", name, need, have)
}

func notFound(kind *domainerrors.BaseError, id string) error {
	return errors.Wrapf(kind, "id %q", id)
}

func validateAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return invalid("amount must be a positive number")
	}

	return nil
}

func validateMoney(amount float64, currency entity.Currency) error {
	if !currency.IsValid() {
		return invalid("unknown currency " + string(currency))
	}

	return validateAmount(amount)
}

func validateName(name, field string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid(field + " is required")
	}

	return name, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSigned(v float64) string {
	if v >= 0 {
		return "+" + formatAmount(v)
	}

	return formatAmount(v)
}

func conversionTooSmall(amount float64, from, to entity.Currency) error {
	return errors.Wrapf(domainerrors.ErrConversionTooSmall, "%s %s does not buy one %s",
		formatAmount(amount), from, to)
}
