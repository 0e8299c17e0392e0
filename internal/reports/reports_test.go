package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

func seedLedger(t *testing.T, chart *coa.Chart) *ledger.Store {
	t.Helper()
	store := ledger.NewStore()
	engine := ledger.NewEngine(chart, store, ledger.NewPeriodControl(nil), ledger.NewSequentialNumberer(), audit.NewTrail())

	post := func(date time.Time, lines ...ledger.Line) {
		t.Helper()
		_, _, err := engine.Post(ledger.Candidate{
			Date:        date,
			Description: "seed",
			DocType:     ledger.DocTypeJournal,
			EventType:   "manual_entry",
			PostedBy:    "test",
			Lines:       lines,
		})
		require.NoError(t, err)
	}

	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Owner funds the till in February.
	post(feb,
		ledger.Line{Account: "101", Debit: 2000000},
		ledger.Line{Account: "331", Credit: 2000000},
	)
	// March: cash sale with VAT, then rent paid in cash.
	post(mar,
		ledger.Line{Account: "101", Debit: 1100000},
		ledger.Line{Account: "401", Credit: 1000000},
		ledger.Line{Account: "255", Credit: 100000},
	)
	post(mar,
		ledger.Line{Account: "802", Debit: 300000},
		ledger.Line{Account: "101", Credit: 300000},
	)
	return store
}

func TestTrialBalanceClosingColumnsAgree(t *testing.T) {
	chart := coa.DomesticChart()
	store := seedLedger(t, chart)

	rows, err := CollectRows(chart, store, "2024-03")
	require.NoError(t, err)
	tb := BuildTrialBalance("2024-03", rows)

	require.InDelta(t, tb.TotalClosingDebit, tb.TotalClosingCredit, 0.01)
	require.InDelta(t, 1400000, tb.TotalPeriodDebit, 0.01)
	require.InDelta(t, tb.TotalPeriodDebit, tb.TotalPeriodCredit, 0.01)

	// Cash: 2,000,000 opening + 1,100,000 - 300,000 = 2,800,000 closing debit.
	var cash TrialBalanceRow
	for _, row := range tb.Rows {
		if row.Code == "101" {
			cash = row
		}
	}
	require.InDelta(t, 2000000, cash.OpeningDebit, 0.01)
	require.InDelta(t, 2800000, cash.ClosingDebit, 0.01)
	require.Zero(t, cash.ClosingCredit)
}

func TestBalanceSheetCloses(t *testing.T) {
	chart := coa.DomesticChart()
	store := seedLedger(t, chart)

	rows, err := CollectRows(chart, store, "2024-03")
	require.NoError(t, err)
	bs := BuildBalanceSheet("2024-03", rows)

	require.InDelta(t, bs.TotalAssets, bs.TotalLiabilitiesAndEquity, 0.01)
	require.InDelta(t, 2800000, bs.CurrentAssets.Total, 0.01)
	require.InDelta(t, 100000, bs.CurrentLiabilities.Total, 0.01)
	// Capital 2,000,000 plus current period earnings 700,000.
	require.InDelta(t, 2700000, bs.TotalEquity, 0.01)
}

func TestIncomeStatementChain(t *testing.T) {
	chart := coa.DomesticChart()
	store := seedLedger(t, chart)

	rows, err := CollectRows(chart, store, "2024-03")
	require.NoError(t, err)
	is := BuildIncomeStatement("2024-03", rows)

	require.InDelta(t, 1000000, is.Revenue, 0.01)
	require.InDelta(t, 1000000, is.GrossProfit, 0.01)
	require.InDelta(t, 300000, is.AdminExpense, 0.01)
	require.InDelta(t, 700000, is.OperatingProfit, 0.01)
	require.InDelta(t, 700000, is.NetProfit, 0.01)
}

func TestIncomeStatementExcludesOtherPeriods(t *testing.T) {
	chart := coa.DomesticChart()
	store := seedLedger(t, chart)

	rows, err := CollectRows(chart, store, "2024-02")
	require.NoError(t, err)
	is := BuildIncomeStatement("2024-02", rows)
	require.Zero(t, is.Revenue)
	require.Zero(t, is.NetProfit)
}

func TestPeriodWindowRejectsGarbage(t *testing.T) {
	_, _, err := PeriodWindow("not-a-period")
	require.Error(t, err)
}
