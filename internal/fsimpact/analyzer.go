// Package fsimpact explains how a journal entry moves the financial
// statements. Computation is pure and structured; the summary string is the
// only rendering concern and callers may discard it.
package fsimpact

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// Statement names the financial statement a line lands on.
type Statement string

const (
	StatementBalanceSheet    Statement = "BS"
	StatementIncomeStatement Statement = "IS"
)

// LineImpact classifies one journal line.
type LineImpact struct {
	Account     string     `json:"account"`
	AccountName string     `json:"account_name"`
	Statement   Statement  `json:"statement"`
	Category    string     `json:"category"`
	Delta       float64    `json:"delta"`
	IsCash      bool       `json:"is_cash"`
}

// Impact is the structured financial-statement effect of one entry.
type Impact struct {
	Lines []LineImpact `json:"lines"`

	// Balance sheet deltas, signed in each section's natural direction.
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Equity      float64 `json:"equity"`

	// Income statement buckets.
	Revenue           float64 `json:"revenue"`
	RevenueDeductions float64 `json:"revenue_deductions"`
	COGS              float64 `json:"cogs"`
	SellingExpense    float64 `json:"selling_expense"`
	AdminExpense      float64 `json:"admin_expense"`
	ProductionExpense float64 `json:"production_expense"`
	FinancialIncome   float64 `json:"financial_income"`
	FinancialExpense  float64 `json:"financial_expense"`
	OtherIncome       float64 `json:"other_income"`
	OtherExpense      float64 `json:"other_expense"`

	// Derived profit chain.
	NetRevenue      float64 `json:"net_revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingProfit float64 `json:"operating_profit"`
	ProfitBeforeTax float64 `json:"profit_before_tax"`

	// Simplified cash flow: every cash movement is an operating flow,
	// regardless of the contra account. Documented behavior, not a bug.
	IsCashTransaction bool    `json:"is_cash_transaction"`
	OperatingCashFlow float64 `json:"operating_cash_flow"`

	Summary string `json:"summary"`
}

// Analyze classifies every line of an entry and derives the statement
// deltas. Unknown account codes fail loudly: they indicate a seeding bug.
func Analyze(chart *coa.Chart, entry ledger.JournalEntry) (Impact, error) {
	var impact Impact
	for _, line := range entry.Lines {
		acc, err := chart.Lookup(line.Account)
		if err != nil {
			return Impact{}, err
		}
		li := LineImpact{
			Account:     acc.Code,
			AccountName: acc.Name,
			IsCash:      acc.IsCashAccount,
		}
		net := line.Debit - line.Credit
		switch acc.Type {
		case coa.TypeAsset:
			li.Statement = StatementBalanceSheet
			li.Category = string(acc.BSCategory)
			li.Delta = net
			impact.Assets += net
		case coa.TypeLiability:
			li.Statement = StatementBalanceSheet
			li.Category = string(acc.BSCategory)
			li.Delta = -net
			impact.Liabilities += -net
		case coa.TypeEquity:
			li.Statement = StatementBalanceSheet
			li.Category = string(acc.BSCategory)
			li.Delta = -net
			impact.Equity += -net
		case coa.TypeRevenue, coa.TypeExpense:
			li.Statement = StatementIncomeStatement
			li.Category = string(acc.ISCategory)
			li.Delta = bucketDelta(acc.ISCategory, net)
			addToBucket(&impact, acc.ISCategory, li.Delta)
		}
		if acc.IsCashAccount {
			impact.IsCashTransaction = true
			impact.OperatingCashFlow += net
		}
		impact.Lines = append(impact.Lines, li)
	}

	impact.NetRevenue = impact.Revenue - impact.RevenueDeductions
	impact.GrossProfit = impact.NetRevenue - impact.COGS
	impact.OperatingProfit = impact.GrossProfit - impact.SellingExpense - impact.AdminExpense
	impact.ProfitBeforeTax = impact.OperatingProfit +
		impact.FinancialIncome + impact.OtherIncome -
		impact.FinancialExpense - impact.OtherExpense
	impact.Summary = summarize(entry, impact)
	return impact, nil
}

// bucketDelta signs a line's movement so that a growing bucket is always
// positive: credit grows income buckets, debit grows the rest.
func bucketDelta(cat coa.ISCategory, net float64) float64 {
	switch cat {
	case coa.ISRevenue, coa.ISFinancialIncome, coa.ISOtherIncome:
		return -net
	default:
		return net
	}
}

func addToBucket(impact *Impact, cat coa.ISCategory, delta float64) {
	switch cat {
	case coa.ISRevenue:
		impact.Revenue += delta
	case coa.ISRevenueDeduction:
		impact.RevenueDeductions += delta
	case coa.ISCOGS:
		impact.COGS += delta
	case coa.ISSellingExpense:
		impact.SellingExpense += delta
	case coa.ISAdminExpense:
		impact.AdminExpense += delta
	case coa.ISProductionExpense:
		impact.ProductionExpense += delta
	case coa.ISFinancialIncome:
		impact.FinancialIncome += delta
	case coa.ISFinancialExpense:
		impact.FinancialExpense += delta
	case coa.ISOtherIncome:
		impact.OtherIncome += delta
	case coa.ISOtherExpense:
		impact.OtherExpense += delta
	}
}

var printer = message.NewPrinter(language.English)

func summarize(entry ledger.JournalEntry, impact Impact) string {
	var parts []string
	if impact.Assets != 0 {
		parts = append(parts, printer.Sprintf("assets %s%.0f", sign(impact.Assets), abs(impact.Assets)))
	}
	if impact.Liabilities != 0 {
		parts = append(parts, printer.Sprintf("liabilities %s%.0f", sign(impact.Liabilities), abs(impact.Liabilities)))
	}
	if impact.Equity != 0 {
		parts = append(parts, printer.Sprintf("equity %s%.0f", sign(impact.Equity), abs(impact.Equity)))
	}
	if impact.ProfitBeforeTax != 0 {
		parts = append(parts, printer.Sprintf("profit before tax %s%.0f", sign(impact.ProfitBeforeTax), abs(impact.ProfitBeforeTax)))
	}
	if impact.IsCashTransaction {
		direction := "inflow"
		if impact.OperatingCashFlow < 0 {
			direction = "outflow"
		}
		parts = append(parts, printer.Sprintf("operating cash %s of %.0f", direction, abs(impact.OperatingCashFlow)))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: no net statement movement.", entry.Description)
	}
	return fmt.Sprintf("%s: %s.", entry.Description, strings.Join(parts, ", "))
}

func sign(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
