package ledger

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/bet-tracker/internal/models"
)

func newTestLedger() *Ledger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestAddAppendsInOrder(t *testing.T) {
	l := newTestLedger()

	first, err := l.Add("NFL", "Eagles", 150, decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := l.Add("NBA", "Celtics", -110, decimal.NewFromInt(55))
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, models.OutcomePending, all[0].Outcome)
	assert.True(t, decimal.NewFromInt(150).Equal(all[0].PotentialWin))
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		odds  int64
		wager string
	}{
		{"zero odds", 0, "100"},
		{"zero wager", 150, "0"},
		{"negative wager", 150, "-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			_, err := l.Add("NFL", "Eagles", tt.odds, decimal.RequireFromString(tt.wager))
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrValidation))
			assert.Equal(t, 0, l.Len(), "failed add must not append")
		})
	}
}

func TestSetOutcome(t *testing.T) {
	l := newTestLedger()
	bet, err := l.Add("NFL", "Eagles", -110, decimal.NewFromInt(110))
	require.NoError(t, err)

	settled, err := l.SetOutcome(bet.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWin, settled.Outcome)
	assert.True(t, decimal.NewFromInt(100).Equal(settled.Profit()))
}

func TestSetOutcomeNotFound(t *testing.T) {
	l := newTestLedger()
	_, err := l.SetOutcome(uuid.New(), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestSetOutcomeTwiceFails(t *testing.T) {
	l := newTestLedger()
	bet, err := l.Add("NHL", "Bruins", 120, decimal.NewFromInt(40))
	require.NoError(t, err)

	_, err = l.SetOutcome(bet.ID, false)
	require.NoError(t, err)

	_, err = l.SetOutcome(bet.ID, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrAlreadySettled))

	got, err := l.Get(bet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeLoss, got.Outcome, "failed settle must not change the outcome")
}

func TestPendingBets(t *testing.T) {
	l := newTestLedger()
	first, err := l.Add("NFL", "Eagles", 150, decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := l.Add("NBA", "Celtics", -110, decimal.NewFromInt(55))
	require.NoError(t, err)

	_, err = l.SetOutcome(first.ID, true)
	require.NoError(t, err)

	pending := l.PendingBets()
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestAllReturnsSnapshotCopy(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add("NFL", "Eagles", 150, decimal.NewFromInt(100))
	require.NoError(t, err)

	all := l.All()
	all[0] = nil

	require.Len(t, l.All(), 1)
	assert.NotNil(t, l.All()[0], "mutating the snapshot must not affect the ledger")
}
