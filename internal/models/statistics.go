package models

import "github.com/shopspring/decimal"

// Statistics represents aggregated betting statistics derived from a
// snapshot of the ledger. All monetary fields are exact decimals;
// rounding happens only at display time.
type Statistics struct {
	TotalBets int `json:"total_bets"`
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`

	// WinRate is a percentage over completed bets, 0 when none are completed.
	WinRate float64 `json:"win_rate"`

	TotalWagered     decimal.Decimal `json:"total_wagered"`
	PendingWagered   decimal.Decimal `json:"pending_wagered"`
	CompletedWagered decimal.Decimal `json:"completed_wagered"`
	ProfitLoss       decimal.Decimal `json:"profit_loss"`

	// BreakEven is the additional profit needed to reach zero net
	// profit/loss. Zero whenever ProfitLoss is non-negative.
	BreakEven decimal.Decimal `json:"break_even"`
}

// NeedsBreakEven reports whether the ledger sits below break-even
func (s *Statistics) NeedsBreakEven() bool {
	return s.ProfitLoss.IsNegative()
}
