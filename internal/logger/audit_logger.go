// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/bet-tracker/internal/models"
)

// AuditLogger provides a dedicated audit trail for ledger mutations.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBetRecorded logs a new bet entering the ledger.
func (al *AuditLogger) LogBetRecorded(bet *models.Bet) {
	al.WithFields(logrus.Fields{
		"bet_id":        bet.ID.String(),
		"sport":         bet.Sport,
		"team":          bet.Team,
		"odds":          bet.Odds,
		"wager":         bet.Wager.StringFixed(2),
		"potential_win": bet.PotentialWin.StringFixed(2),
		"placed_at":     bet.PlacedAt.Unix(),
	}).Info("Bet recorded")
}

// LogBetSettled logs a bet settlement with its realised profit.
func (al *AuditLogger) LogBetSettled(bet *models.Bet) {
	al.WithFields(logrus.Fields{
		"bet_id":  bet.ID.String(),
		"outcome": string(bet.Outcome),
		"profit":  bet.Profit().StringFixed(2),
	}).Info("Bet settled")
}

// LogSessionEnd logs the final session totals on exit.
func (al *AuditLogger) LogSessionEnd(stats models.Statistics) {
	al.WithFields(logrus.Fields{
		"total_bets":    stats.TotalBets,
		"completed":     stats.Completed,
		"pending":       stats.Pending,
		"total_wagered": stats.TotalWagered.StringFixed(2),
		"profit_loss":   stats.ProfitLoss.StringFixed(2),
	}).Info("Session ended")
}
