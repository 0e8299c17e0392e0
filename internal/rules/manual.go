package rules

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/ledger"
)

// ManualEntryInput carries journal lines supplied directly by the caller.
type ManualEntryInput struct {
	Date        time.Time
	Description string
	Lines       []ledger.Line
}

func (ManualEntryInput) TransactionType() TransactionType { return TxManualEntry }

// buildManualEntry only re-validates the balance invariant; the posting
// engine repeats the full structural check independently.
func buildManualEntry(env Env, in ManualEntryInput) (Draft, []string) {
	var reasons []string
	if in.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if len(in.Lines) < 2 {
		reasons = append(reasons, "at least two lines are required")
	}
	for idx, line := range in.Lines {
		if _, err := env.Chart.Lookup(line.Account); err != nil {
			reasons = append(reasons, fmt.Sprintf("line %d: unknown account %s", idx+1, line.Account))
		}
	}
	candidate := ledger.Candidate{
		Date:         in.Date,
		Description:  describe(in.Description, "Manual journal entry"),
		Lines:        in.Lines,
		EventType:    string(TxManualEntry),
		SourceModule: "rules",
		DocType:      ledger.DocTypeJournal,
	}
	if !candidate.Balanced() {
		reasons = append(reasons, fmt.Sprintf("lines do not balance: debit %.2f, credit %.2f",
			candidate.TotalDebit(), candidate.TotalCredit()))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}
	return Draft{
		Candidate:   candidate,
		Explanation: fmt.Sprintf("Manual journal entry for %.0f.", candidate.TotalDebit()),
	}, nil
}
