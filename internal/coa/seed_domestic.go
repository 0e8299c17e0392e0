package coa

// domesticSeed is the small-business chart. Codes are hierarchical by
// prefix: 1xx current assets, 2xx noncurrent assets, 25x liabilities,
// 3xx equity, 4xx revenue, 45x cost, 8xx operating expenses, 9xx other.
var domesticSeed = []Account{
	{Code: "101", Name: "Cash", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone, IsCashAccount: true},
	{Code: "102", Name: "Bank Deposits", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone, IsCashAccount: true},
	{Code: "108", Name: "Accounts Receivable", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "114", Name: "Advance Payments", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "120", Name: "Merchandise Inventory", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "125", Name: "Work in Process", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "135", Name: "VAT Receivable", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	{Code: "206", Name: "Machinery and Equipment", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSNoncurrentAsset, ISCategory: ISNone},
	{Code: "207", Name: "Accumulated Depreciation", Type: TypeAsset, NormalBalance: SideCredit, BSCategory: BSNoncurrentAsset, ISCategory: ISNone},
	{Code: "251", Name: "Accounts Payable", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "254", Name: "Payroll Payable", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "255", Name: "VAT Payable", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSCurrentLiability, ISCategory: ISNone},
	{Code: "260", Name: "Long-term Borrowings", Type: TypeLiability, NormalBalance: SideCredit, BSCategory: BSNoncurrentLiability, ISCategory: ISNone},
	{Code: "331", Name: "Capital Stock", Type: TypeEquity, NormalBalance: SideCredit, BSCategory: BSEquity, ISCategory: ISNone},
	{Code: "375", Name: "Retained Earnings", Type: TypeEquity, NormalBalance: SideCredit, BSCategory: BSEquity, ISCategory: ISNone},
	{Code: "401", Name: "Sales Revenue", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISRevenue},
	{Code: "403", Name: "Sales Returns and Allowances", Type: TypeRevenue, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISRevenueDeduction},
	{Code: "451", Name: "Cost of Goods Sold", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISCOGS},
	{Code: "455", Name: "Direct Materials", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISProductionExpense},
	{Code: "801", Name: "Salaries Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "802", Name: "Rent Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "810", Name: "Advertising Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISSellingExpense},
	{Code: "818", Name: "Depreciation Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "820", Name: "Office Supplies Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISAdminExpense},
	{Code: "901", Name: "Interest Income", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISFinancialIncome},
	{Code: "907", Name: "Miscellaneous Income", Type: TypeRevenue, NormalBalance: SideCredit, BSCategory: BSNone, ISCategory: ISOtherIncome},
	{Code: "930", Name: "Interest Expense", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISFinancialExpense},
	{Code: "960", Name: "Miscellaneous Loss", Type: TypeExpense, NormalBalance: SideDebit, BSCategory: BSNone, ISCategory: ISOtherExpense},
}

var domesticRoles = map[Role]string{
	RoleCash:                "101",
	RoleBank:                "102",
	RoleReceivables:         "108",
	RolePayables:            "251",
	RoleAdvancesPaid:        "114",
	RolePayrollPayable:      "254",
	RoleInventory:           "120",
	RoleWIP:                 "125",
	RoleInputVAT:            "135",
	RoleOutputVAT:           "255",
	RoleGRIRClearing:        "251", // domestic books settle GR against payables directly
	RoleFixedAsset:          "206",
	RoleAccumDepreciation:   "207",
	RoleRevenue:             "401",
	RoleCOGS:                "451",
	RoleDirectMaterials:     "455",
	RoleSalaryExpense:       "801",
	RoleAdminExpense:        "820",
	RoleDepreciationExpense: "818",
	RoleOtherIncome:         "907",
}

// DomesticChart loads the small-business chart of accounts.
func DomesticChart() *Chart {
	return MustLoad(ModeDomestic, domesticSeed, domesticRoles)
}
