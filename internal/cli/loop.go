// Package cli implements the interactive menu loop for the bet tracker.
// It speaks to the ledger and the statistics calculator over plain
// io.Reader/io.Writer so sessions can be scripted in tests.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/bet-tracker/internal/ledger"
	"github.com/yourusername/bet-tracker/internal/logger"
	"github.com/yourusername/bet-tracker/internal/stats"
)

// Loop drives the interactive menu session.
type Loop struct {
	ledger *ledger.Ledger
	audit  *logger.AuditLogger
	symbol string
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a menu loop bound to the given ledger and streams.
func New(l *ledger.Ledger, audit *logger.AuditLogger, currencySymbol string, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		ledger: l,
		audit:  audit,
		symbol: currencySymbol,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run executes the menu loop until the user exits or input is
// exhausted. Ledger errors are reported and the loop continues; none
// are fatal.
func (lp *Loop) Run() error {
	defer func() {
		lp.audit.LogSessionEnd(stats.Summarize(lp.ledger.All()))
	}()

	fmt.Fprintln(lp.out, "Welcome to the Sports Betting Tracker!")

	for {
		fmt.Fprintln(lp.out, "\nWhat would you like to do?")
		fmt.Fprintln(lp.out, "1. Enter a new bet")
		fmt.Fprintln(lp.out, "2. Update bet result")
		fmt.Fprintln(lp.out, "3. View statistics")
		fmt.Fprintln(lp.out, "4. Exit")

		choice, ok := lp.prompt("\nEnter your choice (1-4): ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if !lp.enterBet() {
				return nil
			}
		case "2":
			if !lp.updateResult() {
				return nil
			}
		case "3":
			lp.showStatistics()
		case "4":
			fmt.Fprintln(lp.out, "\nThank you for using Sports Betting Tracker!")
			return nil
		default:
			fmt.Fprintln(lp.out, "\nInvalid choice. Please try again.")
		}
	}
}

// enterBet collects a new bet from the user. It returns false only
// when input is exhausted mid-dialog.
func (lp *Loop) enterBet() bool {
	fmt.Fprintln(lp.out, "\nEnter bet details:")

	sport, ok := lp.prompt("Sport: ")
	if !ok {
		return false
	}
	team, ok := lp.prompt("Team: ")
	if !ok {
		return false
	}
	odds, ok := lp.readOdds("Odds (use +150 or -110 format): ")
	if !ok {
		return false
	}
	amount, ok := lp.readAmount("Amount wagered: " + lp.symbol)
	if !ok {
		return false
	}

	bet, err := lp.ledger.Add(sport, team, odds, amount)
	if err != nil {
		fmt.Fprintf(lp.out, "\nCould not record bet: %v\n", err)
		return true
	}
	lp.audit.LogBetRecorded(bet)

	fmt.Fprintf(lp.out, "\nBet recorded! Potential win: %s%s\n", lp.symbol, bet.PotentialWin.StringFixed(2))
	return true
}

// updateResult lets the user settle one of the pending bets.
func (lp *Loop) updateResult() bool {
	if lp.ledger.Len() == 0 {
		fmt.Fprintln(lp.out, "\nNo bets to update!")
		return true
	}

	pending := lp.ledger.PendingBets()
	if len(pending) == 0 {
		fmt.Fprintln(lp.out, "No pending bets to update!")
		return true
	}

	fmt.Fprintln(lp.out, "\nPending bets:")
	for i, bet := range pending {
		fmt.Fprintf(lp.out, "%d. %s - %s (%s%s @ %+d)\n",
			i+1, bet.Sport, bet.Team, lp.symbol, bet.Wager.StringFixed(2), bet.Odds)
	}

	choice, ok := lp.prompt("\nEnter bet number to update: ")
	if !ok {
		return false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(pending) {
		fmt.Fprintln(lp.out, "Invalid bet number!")
		return true
	}

	won, ok := lp.readYesNo("Did the bet win? (y/n): ")
	if !ok {
		return false
	}

	bet, err := lp.ledger.SetOutcome(pending[idx-1].ID, won)
	if err != nil {
		fmt.Fprintf(lp.out, "Could not update bet: %v\n", err)
		return true
	}
	lp.audit.LogBetSettled(bet)

	fmt.Fprintln(lp.out, "Bet updated successfully!")
	return true
}

// showStatistics renders the aggregate report for the current ledger.
func (lp *Loop) showStatistics() {
	if lp.ledger.Len() == 0 {
		fmt.Fprintln(lp.out, "\nNo bets recorded yet!")
		return
	}

	s := stats.Summarize(lp.ledger.All())

	fmt.Fprintln(lp.out, "\nBetting Statistics:")
	fmt.Fprintf(lp.out, "Total bets placed: %d\n", s.TotalBets)
	fmt.Fprintf(lp.out, "Completed bets: %d (%d wins, %d losses)\n", s.Completed, s.Wins, s.Losses)
	fmt.Fprintf(lp.out, "Win rate: %.1f%%\n", s.WinRate)

	fmt.Fprintln(lp.out, "\nFinancial Summary:")
	fmt.Fprintf(lp.out, "Total amount wagered: %s%s\n", lp.symbol, s.TotalWagered.StringFixed(2))
	fmt.Fprintf(lp.out, "Pending wagers: %s%s\n", lp.symbol, s.PendingWagered.StringFixed(2))
	fmt.Fprintf(lp.out, "Completed wagers: %s%s\n", lp.symbol, s.CompletedWagered.StringFixed(2))
	fmt.Fprintf(lp.out, "Total profit/loss: %s%s\n", lp.symbol, s.ProfitLoss.StringFixed(2))
	if s.NeedsBreakEven() {
		fmt.Fprintf(lp.out, "Amount needed to break even: %s%s\n", lp.symbol, s.BreakEven.StringFixed(2))
	}
}

// prompt writes the prompt text and reads one line of input.
func (lp *Loop) prompt(text string) (string, bool) {
	fmt.Fprint(lp.out, text)
	if !lp.in.Scan() {
		return "", false
	}
	return lp.in.Text(), true
}

// readOdds re-prompts until the user enters a nonzero integer.
func (lp *Loop) readOdds(text string) (int64, bool) {
	for {
		line, ok := lp.prompt(text)
		if !ok {
			return 0, false
		}
		odds, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil || odds == 0 {
			fmt.Fprintln(lp.out, "Please enter nonzero odds in +150 or -110 format.")
			continue
		}
		return odds, true
	}
}

// readAmount re-prompts until the user enters a positive decimal amount.
func (lp *Loop) readAmount(text string) (decimal.Decimal, bool) {
	for {
		line, ok := lp.prompt(text)
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(lp.out, "Please enter a valid number.")
			continue
		}
		if !amount.IsPositive() {
			fmt.Fprintln(lp.out, "Please enter a positive number.")
			continue
		}
		return amount, true
	}
}

// readYesNo re-prompts until the user answers y/yes or n/no.
func (lp *Loop) readYesNo(text string) (bool, bool) {
	for {
		line, ok := lp.prompt(text)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			fmt.Fprintln(lp.out, "Please enter 'y' or 'n'.")
		}
	}
}
