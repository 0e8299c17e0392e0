package reports

import "github.com/ledgersim/ledgersim/internal/coa"

// BalanceSheetAccount is one account balance inside a section.
type BalanceSheetAccount struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// BalanceSheetSection groups accounts under one classification.
type BalanceSheetSection struct {
	Label    string                `json:"label"`
	Accounts []BalanceSheetAccount `json:"accounts"`
	Total    float64               `json:"total"`
}

// BalanceSheet is the report as of a period's end.
type BalanceSheet struct {
	Period                    string              `json:"period"`
	CurrentAssets             BalanceSheetSection `json:"current_assets"`
	NoncurrentAssets          BalanceSheetSection `json:"noncurrent_assets"`
	CurrentLiabilities        BalanceSheetSection `json:"current_liabilities"`
	NoncurrentLiabilities     BalanceSheetSection `json:"noncurrent_liabilities"`
	Equity                    BalanceSheetSection `json:"equity"`
	TotalAssets               float64             `json:"total_assets"`
	TotalLiabilities          float64             `json:"total_liabilities"`
	TotalEquity               float64             `json:"total_equity"`
	TotalLiabilitiesAndEquity float64             `json:"total_liabilities_and_equity"`
}

// BuildBalanceSheet aggregates cumulative balances into sections. The
// cumulative income-statement result is folded into equity as current
// period earnings so assets always equal liabilities plus equity.
func BuildBalanceSheet(periodID string, rows []AccountRow) BalanceSheet {
	bs := BalanceSheet{
		Period:                periodID,
		CurrentAssets:         BalanceSheetSection{Label: "Current Assets"},
		NoncurrentAssets:      BalanceSheetSection{Label: "Non-current Assets"},
		CurrentLiabilities:    BalanceSheetSection{Label: "Current Liabilities"},
		NoncurrentLiabilities: BalanceSheetSection{Label: "Non-current Liabilities"},
		Equity:                BalanceSheetSection{Label: "Equity"},
	}

	var earnings float64
	for _, r := range rows {
		net := r.TotalDebit() - r.TotalCredit()
		switch r.Account.BSCategory {
		case coa.BSCurrentAsset:
			addAccount(&bs.CurrentAssets, r.Account, net)
		case coa.BSNoncurrentAsset:
			// Contra accounts (accumulated depreciation) net out here.
			addAccount(&bs.NoncurrentAssets, r.Account, net)
		case coa.BSCurrentLiability:
			addAccount(&bs.CurrentLiabilities, r.Account, -net)
		case coa.BSNoncurrentLiability:
			addAccount(&bs.NoncurrentLiabilities, r.Account, -net)
		case coa.BSEquity:
			addAccount(&bs.Equity, r.Account, -net)
		case coa.BSNone:
			// Income statement accounts accumulate into retained earnings.
			earnings += -net
		}
	}
	if earnings != 0 {
		bs.Equity.Accounts = append(bs.Equity.Accounts, BalanceSheetAccount{
			Name:    "Current Period Earnings",
			Balance: earnings,
		})
		bs.Equity.Total += earnings
	}

	bs.TotalAssets = bs.CurrentAssets.Total + bs.NoncurrentAssets.Total
	bs.TotalLiabilities = bs.CurrentLiabilities.Total + bs.NoncurrentLiabilities.Total
	bs.TotalEquity = bs.Equity.Total
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities + bs.TotalEquity
	return bs
}

func addAccount(section *BalanceSheetSection, acc coa.Account, balance float64) {
	section.Accounts = append(section.Accounts, BalanceSheetAccount{
		Code:    acc.Code,
		Name:    acc.Name,
		Balance: balance,
	})
	section.Total += balance
}
