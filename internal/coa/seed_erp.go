package coa

// erpSeed mirrors a multinational ERP general ledger with six-digit codes:
// 1xxxxx liquid assets and receivables, 2xxxxx fixed assets, 3xxxxx stock,
// 16xxxx/17xxxx/19xxxx liabilities, 33xxxx equity, 8xxxxx revenue and cost.
var erpSeed = []Account{
	{Code: "100000", Name: "Petty Cash", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone, IsCashAccount: true},
	{Code: "113100", Name: "Bank Account", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone, IsCashAccount: true},
	{Code: "140000", Name: "Trade Receivables", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "154000", Name: "Input Tax", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "300000", Name: "Raw Materials Inventory", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "310000", Name: "Work in Process", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "210000", Name: "Machinery", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSNoncurrentAsset, ISCategory: ISNone},
	{Code: "219000", Name: "Accumulated Depreciation Machinery", Type: TypeAsset, NormalBalance: SideCredit, BSCategory: BSNoncurrentAsset, ISCategory: ISNone},
	{Code: "160000", Name: "Trade Payables", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "164000", Name: "Payroll Liabilities", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "175000", Name: "Output Tax", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "191100", Name: "GR/IR Clearing", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "195000", Name: "Long-term Loans", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSNoncurrentLiability, ISCategory: ISNone},
	{Code: "330000", Name: "Common Stock", Type: TypeEquity, NormalBalance: SideCredit, BSCategory: BSEquity, ISCategory: ISNone},
	{Code: "332000", Name: "Retained Earnings", Type: TypeEquity, NormalBalance: SideCredit, BSCategory: BSEquity, ISCategory: ISNone},
	{Code: "800000", Name: "Sales Revenue Domestic", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISRevenue},
	{Code: "889000", Name: "Sales Deductions", Type: TypeRevenue, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISRevenueDeduction},
	{Code: "893000", Name: "Cost of Goods Sold", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISCOGS},
	{Code: "400000", Name: "Raw Material Consumption", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISProductionExpense},
	{Code: "430000", Name: "Salaries and Wages", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "470000", Name: "Selling Expenses", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISSellingExpense},
	{Code: "476000", Name: "Office Expenses", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "481000", Name: "Depreciation Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "660000", Name: "Interest Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISFinancialExpense},
	{Code: "273000", Name: "Interest Income", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISFinancialIncome},
	{Code: "274000", Name: "Other Operating Income", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISOtherIncome},
	{Code: "699000", Name: "Other Expenses", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISOtherExpense},
}

var erpRoles = map[Role]string{
	RoleCash:                "100000",
	RoleBank:                "113100",
	RoleReceivables:         "140000",
	RolePayables:            "160000",
	RoleAdvancesPaid:        "140000",
	RolePayrollPayable:      "164000",
	RoleInventory:           "300000",
	RoleWIP:                 "310000",
	RoleInputVAT:            "154000",
	RoleOutputVAT:           "175000",
	RoleGRIRClearing:        "191100",
	RoleFixedAsset:          "210000",
	RoleAccumDepreciation:   "219000",
	RoleRevenue:             "800000",
	RoleCOGS:                "893000",
	RoleDirectMaterials:     "400000",
	RoleSalaryExpense:       "430000",
	RoleAdminExpense:        "476000",
	RoleDepreciationExpense: "481000",
	RoleOtherIncome:         "274000",
}

// ERPChart loads the multinational ERP chart of accounts.
func ERPChart() *Chart {
	return MustLoad(ModeERP, erpSeed, erpRoles)
}
