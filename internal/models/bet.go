package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome represents the settlement state of a bet
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
)

// Bet represents a single recorded wager
type Bet struct {
	ID           uuid.UUID       `json:"id" validate:"required"`
	Sport        string          `json:"sport"`
	Team         string          `json:"team"`
	Odds         int64           `json:"odds" validate:"ne=0"` // American odds, nonzero
	Wager        decimal.Decimal `json:"wager" validate:"gt=0"`
	Outcome      Outcome         `json:"outcome" validate:"required,oneof=pending win loss"`
	PotentialWin decimal.Decimal `json:"potential_win"`
	PlacedAt     time.Time       `json:"placed_at" validate:"required"`
	SettledAt    *time.Time      `json:"settled_at"`
}

// NewBet constructs a pending bet with its potential win precomputed
func NewBet(sport, team string, odds int64, wager decimal.Decimal) *Bet {
	return &Bet{
		ID:           uuid.New(),
		Sport:        sport,
		Team:         team,
		Odds:         odds,
		Wager:        wager,
		Outcome:      OutcomePending,
		PotentialWin: AmericanProfit(odds, wager),
		PlacedAt:     time.Now(),
	}
}

// AmericanProfit returns the profit earned by a winning wager at the
// given American odds. Positive odds pay odds/100 per unit staked,
// negative odds pay 100/|odds| per unit staked.
func AmericanProfit(odds int64, wager decimal.Decimal) decimal.Decimal {
	if odds == 0 {
		// Zero odds never reach here through the ledger; guard the division.
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if odds > 0 {
		return wager.Mul(decimal.NewFromInt(odds)).Div(hundred)
	}
	return wager.Mul(hundred).Div(decimal.NewFromInt(-odds))
}

// Settle records the final outcome of the bet. A bet settles exactly
// once; settling again fails with ErrAlreadySettled.
func (b *Bet) Settle(won bool) error {
	if b.Outcome != OutcomePending {
		return fmt.Errorf("%w: bet %s is already %s", ErrAlreadySettled, b.ID, b.Outcome)
	}
	if won {
		b.Outcome = OutcomeWin
	} else {
		b.Outcome = OutcomeLoss
	}
	now := time.Now()
	b.SettledAt = &now
	return nil
}

// IsSettled checks if the bet has left the pending state
func (b *Bet) IsSettled() bool {
	return b.Outcome != OutcomePending
}

// Profit returns the realised profit or loss on the bet. Pending bets
// contribute zero.
func (b *Bet) Profit() decimal.Decimal {
	switch b.Outcome {
	case OutcomeWin:
		return b.PotentialWin
	case OutcomeLoss:
		return b.Wager.Neg()
	default:
		return decimal.Zero
	}
}
