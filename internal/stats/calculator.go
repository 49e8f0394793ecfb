// Package stats derives aggregate statistics from a ledger snapshot.
package stats

import (
	"github.com/yourusername/bet-tracker/internal/models"
)

// Summarize computes the full statistics for a snapshot of bets. It is
// a pure function: no stored state, recomputed from scratch each call.
func Summarize(bets []*models.Bet) models.Statistics {
	var s models.Statistics

	for _, bet := range bets {
		s.TotalBets++
		s.TotalWagered = s.TotalWagered.Add(bet.Wager)

		switch bet.Outcome {
		case models.OutcomeWin:
			s.Wins++
			s.CompletedWagered = s.CompletedWagered.Add(bet.Wager)
			s.ProfitLoss = s.ProfitLoss.Add(bet.Profit())
		case models.OutcomeLoss:
			s.Losses++
			s.CompletedWagered = s.CompletedWagered.Add(bet.Wager)
			s.ProfitLoss = s.ProfitLoss.Add(bet.Profit())
		default:
			s.Pending++
			s.PendingWagered = s.PendingWagered.Add(bet.Wager)
		}
	}

	s.Completed = s.Wins + s.Losses
	if s.Completed > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Completed) * 100
	}
	if s.ProfitLoss.IsNegative() {
		s.BreakEven = s.ProfitLoss.Abs()
	}

	return s
}
