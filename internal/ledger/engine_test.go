package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
)

func newTestEngine(t *testing.T) (*Engine, *Store, *PeriodControl, *audit.Trail) {
	t.Helper()
	chart := coa.DomesticChart()
	trail := audit.NewTrail()
	store := NewStore()
	periods := NewPeriodControl(trail)
	engine := NewEngine(chart, store, periods, NewSequentialNumberer(), trail)
	return engine, store, periods, trail
}

func balancedCandidate(date time.Time) Candidate {
	return Candidate{
		Date:         date,
		Description:  "cash sale",
		DocType:      DocTypeCashReceipt,
		EventType:    "cash_receipt",
		SourceModule: "rules",
		PostedBy:     "student",
		Lines: []Line{
			{Account: "101", Debit: 500000},
			{Account: "401", Credit: 500000},
		},
	}
}

func TestPostAssignsSequentialDocumentNumbers(t *testing.T) {
	engine, store, _, trail := newTestEngine(t)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	entry, doc, err := engine.Post(balancedCandidate(date))
	require.NoError(t, err)
	require.Equal(t, "CR0001", doc.DocNumber)
	require.Equal(t, doc.DocNumber, entry.DocumentID)
	require.Equal(t, DocStatusPosted, doc.Status)
	require.Equal(t, entry.ID, doc.JournalEntryID)

	_, doc2, err := engine.Post(balancedCandidate(date))
	require.NoError(t, err)
	require.Equal(t, "CR0002", doc2.DocNumber)

	require.Equal(t, 2, store.Len())
	records := trail.Records()
	require.Len(t, records, 2)
	require.Equal(t, audit.ActionPost, records[0].Action)
	require.Equal(t, "CR0001", records[0].DocumentID)
}

func TestPostCollectsStructuralReasons(t *testing.T) {
	engine, store, _, _ := newTestEngine(t)
	c := Candidate{
		Date:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		DocType: DocTypeJournal,
		Lines: []Line{
			{Account: "999", Debit: -10, Credit: 10},
		},
	}
	_, _, err := engine.Post(c)
	var perr *PostingError
	require.ErrorAs(t, err, &perr)
	require.GreaterOrEqual(t, len(perr.Reasons), 3)
	require.Equal(t, 0, store.Len())
}

func TestPostRejectsUnbalancedEntry(t *testing.T) {
	engine, store, _, _ := newTestEngine(t)
	c := balancedCandidate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	c.Lines[1].Credit = 400000
	_, _, err := engine.Post(c)
	require.ErrorIs(t, err, ErrBalanceInvariant)
	require.Equal(t, 0, store.Len())
}

func TestPostToleratesRoundingResidue(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	c := balancedCandidate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	c.Lines[1].Credit = 500000.009
	_, _, err := engine.Post(c)
	require.NoError(t, err)
}

func TestPostRejectsLockedPeriod(t *testing.T) {
	engine, store, periods, _ := newTestEngine(t)
	periods.Lock("2024-12", "admin")

	c := Candidate{
		Date:        time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		Description: "late adjustment",
		DocType:     DocTypeJournal,
		EventType:   "manual_entry",
		PostedBy:    "student",
		Lines: []Line{
			{Account: "820", Debit: 500000},
			{Account: "101", Credit: 500000},
		},
	}
	_, _, err := engine.Post(c)
	require.ErrorIs(t, err, ErrPeriodLocked)
	require.Equal(t, 0, store.Len())

	// Account balances unchanged.
	require.Zero(t, store.AccountTotals("101", time.Time{}).Credit)
}

func TestRangeNumbererIssuesUniqueSevenDigitNumbers(t *testing.T) {
	n := NewRangeNumberer(42)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		num := n.Next(DocTypeVendorInvoice)
		require.Len(t, num, 7)
		require.False(t, seen[num])
		seen[num] = true
	}
}
