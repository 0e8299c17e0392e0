package rules

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// CashReceiptSubtype selects the contra side of a cash receipt.
type CashReceiptSubtype string

const (
	ReceiptFromCustomer   CashReceiptSubtype = "from_customer"
	ReceiptCashSale       CashReceiptSubtype = "cash_sale"
	ReceiptBankWithdrawal CashReceiptSubtype = "bank_withdrawal"
	ReceiptOtherIncome    CashReceiptSubtype = "other_income"
)

// CashReceiptInput describes money arriving in the till.
type CashReceiptInput struct {
	Subtype     CashReceiptSubtype
	Date        time.Time
	Amount      float64 // gross amount received
	VATRate     float64 // applied on cash sales only
	PartnerID   string
	Description string
}

func (CashReceiptInput) TransactionType() TransactionType { return TxCashReceipt }

func buildCashReceipt(env Env, in CashReceiptInput) (Draft, []string) {
	var reasons []string
	if in.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if in.Amount <= 0 {
		reasons = append(reasons, "amount must be positive")
	}
	if in.Subtype == ReceiptFromCustomer && in.PartnerID == "" {
		reasons = append(reasons, "customer is required for a receipt from customer")
	}
	if in.Subtype == ReceiptCashSale && in.VATRate < 0 {
		reasons = append(reasons, "vat rate cannot be negative")
	}

	cash := env.Chart.MustResolve(coa.RoleCash)
	var lines []ledger.Line
	var explanation string
	switch in.Subtype {
	case ReceiptFromCustomer:
		lines = []ledger.Line{
			{Account: cash, Debit: in.Amount},
			{Account: env.Chart.MustResolve(coa.RoleReceivables), Credit: in.Amount, PartnerID: in.PartnerID},
		}
		explanation = fmt.Sprintf("Collected %.0f from customer %s, clearing the receivable.", in.Amount, in.PartnerID)
	case ReceiptCashSale:
		net := ledger.Round(in.Amount / (1 + in.VATRate))
		vat := ledger.Round(in.Amount - net)
		lines = []ledger.Line{
			{Account: cash, Debit: in.Amount},
			{Account: env.Chart.MustResolve(coa.RoleRevenue), Credit: net},
		}
		if vat > 0 {
			lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RoleOutputVAT), Credit: vat})
		}
		explanation = fmt.Sprintf("Cash sale of %.0f: revenue %.0f plus output VAT %.0f.", in.Amount, net, vat)
	case ReceiptBankWithdrawal:
		lines = []ledger.Line{
			{Account: cash, Debit: in.Amount},
			{Account: env.Chart.MustResolve(coa.RoleBank), Credit: in.Amount},
		}
		explanation = fmt.Sprintf("Withdrew %.0f from the bank into the till.", in.Amount)
	case ReceiptOtherIncome:
		lines = []ledger.Line{
			{Account: cash, Debit: in.Amount},
			{Account: env.Chart.MustResolve(coa.RoleOtherIncome), Credit: in.Amount},
		}
		explanation = fmt.Sprintf("Received %.0f of miscellaneous income in cash.", in.Amount)
	default:
		reasons = append(reasons, fmt.Sprintf("unknown cash receipt subtype %q", in.Subtype))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Cash receipt (%s)", in.Subtype)),
			Lines:        lines,
			EventType:    string(TxCashReceipt),
			SourceModule: "rules",
			DocType:      ledger.DocTypeCashReceipt,
			Amount:       in.Amount,
			PartnerID:    in.PartnerID,
		},
		Explanation: explanation,
	}, nil
}

// CashPaymentSubtype selects the debit side of a cash payment.
type CashPaymentSubtype string

const (
	PaymentToVendor    CashPaymentSubtype = "to_vendor"
	PaymentExpense     CashPaymentSubtype = "expense"
	PaymentSalary      CashPaymentSubtype = "salary"
	PaymentAdvance     CashPaymentSubtype = "advance"
	PaymentBankDeposit CashPaymentSubtype = "bank_deposit"
)

// CashPaymentInput describes money leaving the till.
type CashPaymentInput struct {
	Subtype        CashPaymentSubtype
	Date           time.Time
	Amount         float64
	PartnerID      string
	ExpenseAccount string // optional override for the expense subtype
	Description    string
}

func (CashPaymentInput) TransactionType() TransactionType { return TxCashPayment }

func buildCashPayment(env Env, in CashPaymentInput) (Draft, []string) {
	var reasons []string
	if in.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if in.Amount <= 0 {
		reasons = append(reasons, "amount must be positive")
	}
	if in.Subtype == PaymentToVendor && in.PartnerID == "" {
		reasons = append(reasons, "vendor is required for a payment to vendor")
	}

	cash := env.Chart.MustResolve(coa.RoleCash)
	// Business check, not a ledger invariant: the till cannot go negative.
	if env.Balance != nil && in.Amount > 0 && env.Balance(cash) < in.Amount {
		reasons = append(reasons, fmt.Sprintf("insufficient cash: available %.0f, requested %.0f", env.Balance(cash), in.Amount))
	}

	var debitAccount string
	var explanation string
	switch in.Subtype {
	case PaymentToVendor:
		debitAccount = env.Chart.MustResolve(coa.RolePayables)
		explanation = fmt.Sprintf("Paid %.0f cash to vendor %s, reducing payables.", in.Amount, in.PartnerID)
	case PaymentExpense:
		debitAccount = in.ExpenseAccount
		if debitAccount == "" {
			debitAccount = env.Chart.MustResolve(coa.RoleAdminExpense)
		}
		acc, err := env.Chart.Lookup(debitAccount)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("unknown expense account %s", debitAccount))
		} else if acc.Type != coa.TypeExpense {
			reasons = append(reasons, fmt.Sprintf("account %s is not an expense account", debitAccount))
		}
		explanation = fmt.Sprintf("Paid %.0f cash for expenses.", in.Amount)
	case PaymentSalary:
		debitAccount = env.Chart.MustResolve(coa.RolePayrollPayable)
		explanation = fmt.Sprintf("Paid %.0f of accrued salaries in cash.", in.Amount)
	case PaymentAdvance:
		debitAccount = env.Chart.MustResolve(coa.RoleAdvancesPaid)
		explanation = fmt.Sprintf("Advanced %.0f in cash.", in.Amount)
	case PaymentBankDeposit:
		debitAccount = env.Chart.MustResolve(coa.RoleBank)
		explanation = fmt.Sprintf("Deposited %.0f of cash at the bank.", in.Amount)
	default:
		reasons = append(reasons, fmt.Sprintf("unknown cash payment subtype %q", in.Subtype))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Cash payment (%s)", in.Subtype)),
			Lines: []ledger.Line{
				{Account: debitAccount, Debit: in.Amount, PartnerID: in.PartnerID},
				{Account: cash, Credit: in.Amount},
			},
			EventType:    string(TxCashPayment),
			SourceModule: "rules",
			DocType:      ledger.DocTypeCashPayment,
			Amount:       in.Amount,
			PartnerID:    in.PartnerID,
		},
		Explanation: explanation,
	}, nil
}

func describe(given, fallback string) string {
	if given != "" {
		return given
	}
	return fallback
}
