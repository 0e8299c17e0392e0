package reports

import "github.com/ledgersim/ledgersim/internal/coa"

// IncomeStatement walks the profit derivation chain over a period's
// activity.
type IncomeStatement struct {
	Period            string  `json:"period"`
	Revenue           float64 `json:"revenue"`
	RevenueDeductions float64 `json:"revenue_deductions"`
	NetRevenue        float64 `json:"net_revenue"`
	COGS              float64 `json:"cogs"`
	GrossProfit       float64 `json:"gross_profit"`
	SellingExpense    float64 `json:"selling_expense"`
	AdminExpense      float64 `json:"admin_expense"`
	OperatingProfit   float64 `json:"operating_profit"`
	ProductionExpense float64 `json:"production_expense"`
	FinancialIncome   float64 `json:"financial_income"`
	FinancialExpense  float64 `json:"financial_expense"`
	OtherIncome       float64 `json:"other_income"`
	OtherExpense      float64 `json:"other_expense"`
	ProfitBeforeTax   float64 `json:"profit_before_tax"`
	NetProfit         float64 `json:"net_profit"`
}

// BuildIncomeStatement aggregates period movement on income-statement
// accounts. Income taxes are not modeled, so net profit equals profit
// before tax.
func BuildIncomeStatement(periodID string, rows []AccountRow) IncomeStatement {
	is := IncomeStatement{Period: periodID}
	for _, r := range rows {
		net := r.PeriodDebit - r.PeriodCredit
		switch r.Account.ISCategory {
		case coa.ISRevenue:
			is.Revenue += -net
		case coa.ISRevenueDeduction:
			is.RevenueDeductions += net
		case coa.ISCOGS:
			is.COGS += net
		case coa.ISSellingExpense:
			is.SellingExpense += net
		case coa.ISAdminExpense:
			is.AdminExpense += net
		case coa.ISProductionExpense:
			is.ProductionExpense += net
		case coa.ISFinancialIncome:
			is.FinancialIncome += -net
		case coa.ISFinancialExpense:
			is.FinancialExpense += net
		case coa.ISOtherIncome:
			is.OtherIncome += -net
		case coa.ISOtherExpense:
			is.OtherExpense += net
		}
	}
	is.NetRevenue = is.Revenue - is.RevenueDeductions
	is.GrossProfit = is.NetRevenue - is.COGS
	is.OperatingProfit = is.GrossProfit - is.SellingExpense - is.AdminExpense
	is.ProfitBeforeTax = is.OperatingProfit +
		is.FinancialIncome + is.OtherIncome -
		is.FinancialExpense - is.OtherExpense
	is.NetProfit = is.ProfitBeforeTax
	return is
}
