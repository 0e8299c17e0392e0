package coa

// AccountType enumerates the five fundamental account natures.
type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeRevenue   AccountType = "REVENUE"
	TypeExpense   AccountType = "EXPENSE"
)

// Side identifies a debit or credit column.
type Side string

const (
	SideDebit  Side = "DEBIT"
	SideCredit Side = "CREDIT"
)

// BSCategory places an account on the balance sheet.
type BSCategory string

const (
	BSCurrentAsset       BSCategory = "CURRENT_ASSET"
	BSNoncurrentAsset    BSCategory = "NONCURRENT_ASSET"
	BSCurrentLiability   BSCategory = "CURRENT_LIABILITY"
	BSNoncurrentLiability BSCategory = "NONCURRENT_LIABILITY"
	BSEquity             BSCategory = "EQUITY"
	BSNone               BSCategory = "NONE"
)

// ISCategory places an account on the income statement.
type ISCategory string

const (
	ISRevenue          ISCategory = "REVENUE"
	ISRevenueDeduction ISCategory = "REVENUE_DEDUCTION"
	ISCOGS             ISCategory = "COGS"
	ISSellingExpense   ISCategory = "SELLING_EXPENSE"
	ISAdminExpense     ISCategory = "ADMIN_EXPENSE"
	ISFinancialIncome  ISCategory = "FINANCIAL_INCOME"
	ISFinancialExpense ISCategory = "FINANCIAL_EXPENSE"
	ISProductionExpense ISCategory = "PRODUCTION_EXPENSE"
	ISOtherIncome      ISCategory = "OTHER_INCOME"
	ISOtherExpense     ISCategory = "OTHER_EXPENSE"
	ISNone             ISCategory = "NONE"
)

// Account is immutable chart-of-accounts reference data.
type Account struct {
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	Type          AccountType `json:"type"`
	NormalBalance Side       `json:"normal_balance"`
	BSCategory    BSCategory `json:"bs_category"`
	ISCategory    ISCategory `json:"is_category"`
	IsCashAccount bool       `json:"is_cash_account"`
}

// Classification is the tuple consumed by impact analysis and reporting.
type Classification struct {
	Type          AccountType
	NormalBalance Side
	BSCategory    BSCategory
	ISCategory    ISCategory
	IsCashAccount bool
}

func validAccountType(t AccountType) bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}
	return false
}

func validSide(s Side) bool {
	return s == SideDebit || s == SideCredit
}

func validBSCategory(c BSCategory) bool {
	switch c {
	case BSCurrentAsset, BSNoncurrentAsset, BSCurrentLiability, BSNoncurrentLiability, BSEquity, BSNone:
		return true
	}
	return false
}

func validISCategory(c ISCategory) bool {
	switch c {
	case ISRevenue, ISRevenueDeduction, ISCOGS, ISSellingExpense, ISAdminExpense,
		ISFinancialIncome, ISFinancialExpense, ISProductionExpense, ISOtherIncome, ISOtherExpense, ISNone:
		return true
	}
	return false
}
