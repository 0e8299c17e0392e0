package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
)

// AccountDirectory resolves account codes during posting validation.
type AccountDirectory interface {
	Lookup(code string) (coa.Account, error)
}

// Engine validates and commits candidate journal entries. It is the only
// writer of the ledger store; the owning workspace serializes calls.
type Engine struct {
	chart    AccountDirectory
	store    *Store
	periods  *PeriodControl
	numberer Numberer
	trail    *audit.Trail
	now      func() time.Time
}

// NewEngine wires a posting engine over its collaborators.
func NewEngine(chart AccountDirectory, store *Store, periods *PeriodControl, numberer Numberer, trail *audit.Trail) *Engine {
	return &Engine{
		chart:    chart,
		store:    store,
		periods:  periods,
		numberer: numberer,
		trail:    trail,
		now:      time.Now,
	}
}

// WithNow overrides the clock for deterministic tests.
func (e *Engine) WithNow(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// Post validates a candidate and commits it. Structural failures are
// collected into one PostingError; a locked period returns ErrPeriodLocked
// verbatim. Validation failures leave the store, the period control, and
// the number allocator untouched.
func (e *Engine) Post(c Candidate) (JournalEntry, Document, error) {
	if reasons := e.structuralReasons(c); len(reasons) > 0 {
		return JournalEntry{}, Document{}, &PostingError{Reasons: reasons}
	}
	if !c.Balanced() {
		return JournalEntry{}, Document{}, fmt.Errorf("%w: debit %.2f credit %.2f",
			ErrBalanceInvariant, c.TotalDebit(), c.TotalCredit())
	}
	if e.periods.IsLocked(c.Date) {
		return JournalEntry{}, Document{}, fmt.Errorf("%w: %s", ErrPeriodLocked, PeriodIDFromDate(c.Date))
	}

	docNumber := e.numberer.Next(c.DocType)
	entry := JournalEntry{
		ID:           uuid.New(),
		DocumentID:   docNumber,
		Date:         c.Date,
		Description:  c.Description,
		Lines:        append([]Line(nil), c.Lines...),
		EventType:    c.EventType,
		SourceModule: c.SourceModule,
		PostedBy:     c.PostedBy,
		PostedAt:     e.now(),
	}
	amount := c.Amount
	if amount == 0 {
		amount = entry.TotalDebit()
	}
	doc := Document{
		DocNumber:      docNumber,
		DocType:        c.DocType,
		Date:           c.Date,
		Description:    c.Description,
		Amount:         amount,
		PartnerID:      c.PartnerID,
		Status:         DocStatusPosted,
		JournalEntryID: entry.ID,
	}
	e.store.Append(entry, doc)
	if e.trail != nil {
		e.trail.Record(audit.Record{
			Action:     audit.ActionPost,
			DocumentID: docNumber,
			Actor:      c.PostedBy,
			Details: map[string]any{
				"event_type": c.EventType,
				"module":     c.SourceModule,
				"debit":      entry.TotalDebit(),
				"credit":     entry.TotalCredit(),
			},
		})
	}
	return entry, doc, nil
}

// TotalDebit sums the candidate's debit column.
func (c Candidate) TotalDebit() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Debit
	}
	return sum
}

// TotalCredit sums the candidate's credit column.
func (c Candidate) TotalCredit() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Credit
	}
	return sum
}

func (e *Engine) structuralReasons(c Candidate) []string {
	var reasons []string
	if len(c.Lines) < 2 {
		reasons = append(reasons, "journal entry requires at least two lines")
	}
	if c.DocType == "" {
		reasons = append(reasons, "document type required")
	}
	if c.Date.IsZero() {
		reasons = append(reasons, "posting date required")
	}
	for idx, line := range c.Lines {
		if _, err := e.chart.Lookup(line.Account); err != nil {
			reasons = append(reasons, fmt.Sprintf("line %d: unknown account %s", idx+1, line.Account))
		}
		if line.Debit < 0 || line.Credit < 0 {
			reasons = append(reasons, fmt.Sprintf("line %d: negative amount", idx+1))
		}
		if line.Debit > 0 && line.Credit > 0 {
			reasons = append(reasons, fmt.Sprintf("line %d: debit and credit cannot both be set", idx+1))
		}
		if math.Abs(line.Debit) < 1e-9 && math.Abs(line.Credit) < 1e-9 {
			reasons = append(reasons, fmt.Sprintf("line %d: amount required", idx+1))
		}
	}
	return reasons
}
