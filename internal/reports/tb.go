package reports

import "github.com/ledgersim/ledgersim/internal/coa"

// TrialBalanceRow is one account line on the trial balance. The closing
// balance is always split back into debit/credit columns, never shown as a
// single signed number.
type TrialBalanceRow struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	OpeningDebit  float64 `json:"opening_debit"`
	OpeningCredit float64 `json:"opening_credit"`
	PeriodDebit   float64 `json:"period_debit"`
	PeriodCredit  float64 `json:"period_credit"`
	ClosingDebit  float64 `json:"closing_debit"`
	ClosingCredit float64 `json:"closing_credit"`
}

// TrialBalance is the full report for one period. Equal closing totals are
// the self-check a consumer relies on.
type TrialBalance struct {
	Period             string            `json:"period"`
	Rows               []TrialBalanceRow `json:"rows"`
	TotalPeriodDebit   float64           `json:"total_period_debit"`
	TotalPeriodCredit  float64           `json:"total_period_credit"`
	TotalClosingDebit  float64           `json:"total_closing_debit"`
	TotalClosingCredit float64           `json:"total_closing_credit"`
}

// BuildTrialBalance folds account rows into the trial balance view.
func BuildTrialBalance(periodID string, rows []AccountRow) TrialBalance {
	tb := TrialBalance{Period: periodID}
	for _, r := range rows {
		row := TrialBalanceRow{
			Code:          r.Account.Code,
			Name:          r.Account.Name,
			OpeningDebit:  r.OpeningDebit,
			OpeningCredit: r.OpeningCredit,
			PeriodDebit:   r.PeriodDebit,
			PeriodCredit:  r.PeriodCredit,
		}
		if r.Account.NormalBalance == coa.SideDebit {
			bal := r.TotalDebit() - r.TotalCredit()
			if bal >= 0 {
				row.ClosingDebit = bal
			} else {
				row.ClosingCredit = -bal
			}
		} else {
			bal := r.TotalCredit() - r.TotalDebit()
			if bal >= 0 {
				row.ClosingCredit = bal
			} else {
				row.ClosingDebit = -bal
			}
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalPeriodDebit += row.PeriodDebit
		tb.TotalPeriodCredit += row.PeriodCredit
		tb.TotalClosingDebit += row.ClosingDebit
		tb.TotalClosingCredit += row.ClosingCredit
	}
	return tb
}
