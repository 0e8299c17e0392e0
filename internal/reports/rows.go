// Package reports aggregates ledger state into trial balance, balance
// sheet, and income statement views. Builders are pure; the collector is
// the only piece that reads the store.
package reports

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// AccountRow carries one account's movement split around a period window.
type AccountRow struct {
	Account       coa.Account
	OpeningDebit  float64
	OpeningCredit float64
	PeriodDebit   float64
	PeriodCredit  float64
}

// TotalDebit is cumulative debit through period end.
func (r AccountRow) TotalDebit() float64 { return r.OpeningDebit + r.PeriodDebit }

// TotalCredit is cumulative credit through period end.
func (r AccountRow) TotalCredit() float64 { return r.OpeningCredit + r.PeriodCredit }

// PeriodWindow converts a YYYY-MM period id into its date bounds.
func PeriodWindow(periodID string) (from, to time.Time, err error) {
	start, err := time.Parse("2006-01", periodID)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("reports: invalid period %q: %w", periodID, err)
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// CollectRows recomputes per-account movement from the ledger store for
// the given period. Rows cover every account with any cumulative activity
// through period end, sorted by code.
func CollectRows(chart *coa.Chart, store *ledger.Store, periodID string) ([]AccountRow, error) {
	from, to, err := PeriodWindow(periodID)
	if err != nil {
		return nil, err
	}
	opening := store.ActivityByAccount(time.Time{}, from.Add(-time.Nanosecond))
	period := store.ActivityByAccount(from, to)

	var rows []AccountRow
	for _, code := range chart.Codes() {
		open := opening[code]
		move := period[code]
		if open.Debit == 0 && open.Credit == 0 && move.Debit == 0 && move.Credit == 0 {
			continue
		}
		acc, err := chart.Lookup(code)
		if err != nil {
			return nil, err
		}
		rows = append(rows, AccountRow{
			Account:       acc,
			OpeningDebit:  open.Debit,
			OpeningCredit: open.Credit,
			PeriodDebit:   move.Debit,
			PeriodCredit:  move.Credit,
		})
	}
	return rows, nil
}
