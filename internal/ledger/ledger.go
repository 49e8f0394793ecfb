// Package ledger owns the ordered in-memory collection of recorded bets.
package ledger

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/bet-tracker/internal/metrics"
	"github.com/yourusername/bet-tracker/internal/models"
)

// Ledger is the exclusive owner of all bet records. Insertion order is
// preserved and meaningful: it determines display order. The ledger is
// mutated by one sequential control flow only; it carries no locking.
type Ledger struct {
	bets     []*models.Bet
	byID     map[uuid.UUID]*models.Bet
	validate *validator.Validate
	logger   *logrus.Logger
}

// New creates an empty ledger
func New(logger *logrus.Logger) *Ledger {
	return &Ledger{
		byID:     make(map[uuid.UUID]*models.Bet),
		validate: newValidator(),
		logger:   logger,
	}
}

// newValidator builds a validator that understands decimal.Decimal
// fields, so numeric tags like gt=0 apply to wager amounts.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Add validates and appends a new pending bet. On validation failure
// the ledger is left untouched and the error wraps models.ErrValidation.
func (l *Ledger) Add(sport, team string, odds int64, wager decimal.Decimal) (*models.Bet, error) {
	bet := models.NewBet(sport, team, odds, wager)
	if err := l.validate.Struct(bet); err != nil {
		metrics.RecordValidationFailure()
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	l.bets = append(l.bets, bet)
	l.byID[bet.ID] = bet

	wagerFloat, _ := bet.Wager.Float64()
	metrics.RecordBetRecorded(wagerFloat)
	l.logger.WithFields(logrus.Fields{
		"bet_id": bet.ID,
		"sport":  bet.Sport,
		"team":   bet.Team,
		"odds":   bet.Odds,
		"wager":  bet.Wager.StringFixed(2),
	}).Debug("Bet recorded")

	return bet, nil
}

// SetOutcome settles the identified bet as won or lost. It fails with
// models.ErrNotFound for an unknown id and models.ErrAlreadySettled for
// a bet that has left the pending state; either way the ledger is
// unchanged.
func (l *Ledger) SetOutcome(id uuid.UUID, won bool) (*models.Bet, error) {
	bet, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if err := bet.Settle(won); err != nil {
		return nil, err
	}

	profitFloat, _ := bet.Profit().Float64()
	metrics.RecordBetSettled(won, profitFloat)
	l.logger.WithFields(logrus.Fields{
		"bet_id":  bet.ID,
		"outcome": bet.Outcome,
		"profit":  bet.Profit().StringFixed(2),
	}).Debug("Bet settled")

	return bet, nil
}

// Get retrieves a bet by id
func (l *Ledger) Get(id uuid.UUID) (*models.Bet, error) {
	bet, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return bet, nil
}

// All returns a snapshot of every bet in insertion order
func (l *Ledger) All() []*models.Bet {
	out := make([]*models.Bet, len(l.bets))
	copy(out, l.bets)
	return out
}

// PendingBets returns a snapshot of unsettled bets in insertion order
func (l *Ledger) PendingBets() []*models.Bet {
	var out []*models.Bet
	for _, bet := range l.bets {
		if !bet.IsSettled() {
			out = append(out, bet)
		}
	}
	return out
}

// Len returns the number of recorded bets
func (l *Ledger) Len() int {
	return len(l.bets)
}
