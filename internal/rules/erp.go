package rules

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// VendorInvoiceInput records a vendor invoice outside the procurement
// cycle: expense plus input tax against trade payables.
type VendorInvoiceInput struct {
	Date           time.Time
	PartnerID      string
	NetAmount      float64
	TaxRate        float64
	ExpenseAccount string // optional; defaults to the admin expense account
	Description    string
}

func (VendorInvoiceInput) TransactionType() TransactionType { return TxVendorInvoice }

func buildVendorInvoice(env Env, in VendorInvoiceInput) (Draft, []string) {
	reasons := requireBase(in.Date, in.PartnerID, in.NetAmount, in.TaxRate, "vendor")
	expense := in.ExpenseAccount
	if expense == "" {
		expense = env.Chart.MustResolve(coa.RoleAdminExpense)
	} else if _, err := env.Chart.Lookup(expense); err != nil {
		reasons = append(reasons, fmt.Sprintf("unknown expense account %s", expense))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	tax := ledger.Round(in.NetAmount * in.TaxRate)
	gross := in.NetAmount + tax
	lines := []ledger.Line{
		{Account: expense, Debit: in.NetAmount},
	}
	if tax > 0 {
		lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RoleInputVAT), Debit: tax})
	}
	lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RolePayables), Credit: gross, PartnerID: in.PartnerID})

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Vendor invoice %s", in.PartnerID)),
			Lines:        lines,
			EventType:    string(TxVendorInvoice),
			SourceModule: "rules",
			DocType:      ledger.DocTypeVendorInvoice,
			Amount:       gross,
			PartnerID:    in.PartnerID,
		},
		Explanation: fmt.Sprintf("Vendor invoice: base %.0f, tax %.0f, payable to %s %.0f.", in.NetAmount, tax, in.PartnerID, gross),
		PartnerOps: []PartnerOp{
			{PartnerID: in.PartnerID, Amount: gross, Direction: PartnerIncrease},
		},
	}, nil
}

// CustomerInvoiceInput bills a customer: receivable against revenue plus
// output tax.
type CustomerInvoiceInput struct {
	Date        time.Time
	PartnerID   string
	NetAmount   float64
	TaxRate     float64
	Description string
}

func (CustomerInvoiceInput) TransactionType() TransactionType { return TxCustomerInvoice }

func buildCustomerInvoice(env Env, in CustomerInvoiceInput) (Draft, []string) {
	reasons := requireBase(in.Date, in.PartnerID, in.NetAmount, in.TaxRate, "customer")
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	tax := ledger.Round(in.NetAmount * in.TaxRate)
	gross := in.NetAmount + tax
	lines := []ledger.Line{
		{Account: env.Chart.MustResolve(coa.RoleReceivables), Debit: gross, PartnerID: in.PartnerID},
		{Account: env.Chart.MustResolve(coa.RoleRevenue), Credit: in.NetAmount},
	}
	if tax > 0 {
		lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RoleOutputVAT), Credit: tax})
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Customer invoice %s", in.PartnerID)),
			Lines:        lines,
			EventType:    string(TxCustomerInvoice),
			SourceModule: "rules",
			DocType:      ledger.DocTypeCustomerInvoice,
			Amount:       gross,
			PartnerID:    in.PartnerID,
		},
		Explanation: fmt.Sprintf("Customer invoice: revenue %.0f, output tax %.0f, receivable from %s %.0f.", in.NetAmount, tax, in.PartnerID, gross),
		PartnerOps: []PartnerOp{
			{PartnerID: in.PartnerID, Amount: gross, Direction: PartnerIncrease},
		},
	}, nil
}

// VendorPaymentInput settles a vendor's open payable from the bank account.
type VendorPaymentInput struct {
	Date        time.Time
	PartnerID   string
	Amount      float64
	Description string
}

func (VendorPaymentInput) TransactionType() TransactionType { return TxVendorPayment }

func buildVendorPayment(env Env, in VendorPaymentInput) (Draft, []string) {
	reasons := requireBase(in.Date, in.PartnerID, in.Amount, 0, "vendor")
	bank := env.Chart.MustResolve(coa.RoleBank)
	if env.Balance != nil && in.Amount > 0 && env.Balance(bank) < in.Amount {
		reasons = append(reasons, fmt.Sprintf("insufficient bank balance: available %.0f, requested %.0f", env.Balance(bank), in.Amount))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Vendor payment %s", in.PartnerID)),
			Lines: []ledger.Line{
				{Account: env.Chart.MustResolve(coa.RolePayables), Debit: in.Amount, PartnerID: in.PartnerID},
				{Account: bank, Credit: in.Amount},
			},
			EventType:    string(TxVendorPayment),
			SourceModule: "rules",
			DocType:      ledger.DocTypeVendorPayment,
			Amount:       in.Amount,
			PartnerID:    in.PartnerID,
		},
		Explanation: fmt.Sprintf("Paid vendor %s %.0f by bank transfer.", in.PartnerID, in.Amount),
		PartnerOps: []PartnerOp{
			{PartnerID: in.PartnerID, Amount: in.Amount, Direction: PartnerSettle},
		},
	}, nil
}

// CustomerPaymentInput records an incoming customer payment on the bank
// account.
type CustomerPaymentInput struct {
	Date        time.Time
	PartnerID   string
	Amount      float64
	Description string
}

func (CustomerPaymentInput) TransactionType() TransactionType { return TxCustomerPayment }

func buildCustomerPayment(env Env, in CustomerPaymentInput) (Draft, []string) {
	reasons := requireBase(in.Date, in.PartnerID, in.Amount, 0, "customer")
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Customer payment %s", in.PartnerID)),
			Lines: []ledger.Line{
				{Account: env.Chart.MustResolve(coa.RoleBank), Debit: in.Amount},
				{Account: env.Chart.MustResolve(coa.RoleReceivables), Credit: in.Amount, PartnerID: in.PartnerID},
			},
			EventType:    string(TxCustomerPayment),
			SourceModule: "rules",
			DocType:      ledger.DocTypeCustomerPayment,
			Amount:       in.Amount,
			PartnerID:    in.PartnerID,
		},
		Explanation: fmt.Sprintf("Customer %s paid %.0f into the bank account.", in.PartnerID, in.Amount),
		PartnerOps: []PartnerOp{
			{PartnerID: in.PartnerID, Amount: in.Amount, Direction: PartnerSettle},
		},
	}, nil
}

// MovementType is the closed set of goods-movement-type codes.
type MovementType string

const (
	// MovementReceiptForPO books a goods receipt against GR/IR clearing.
	MovementReceiptForPO MovementType = "101"
	// MovementIssueToCostCenter expenses a goods issue to a cost center.
	MovementIssueToCostCenter MovementType = "201"
)

// GoodsMovementInput posts an ERP goods movement by movement-type code.
type GoodsMovementInput struct {
	MovementType MovementType
	Date         time.Time
	ItemID       string
	Qty          float64
	UnitPrice    float64 // receipts only
	CostCenter   string  // issues only
	Description  string
}

func (GoodsMovementInput) TransactionType() TransactionType { return TxGoodsMovement }

func buildGoodsMovement(env Env, in GoodsMovementInput) (Draft, []string) {
	var reasons []string
	if in.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if in.ItemID == "" {
		reasons = append(reasons, "item is required")
	}
	if in.Qty <= 0 {
		reasons = append(reasons, "quantity must be positive")
	}

	var lines []ledger.Line
	var ops []StockOp
	var amount float64
	var explanation string
	switch in.MovementType {
	case MovementReceiptForPO:
		if in.UnitPrice <= 0 {
			reasons = append(reasons, "unit price must be positive for a goods receipt")
		}
		amount = ledger.Round(in.Qty * in.UnitPrice)
		lines = []ledger.Line{
			{Account: env.Chart.MustResolve(coa.RoleInventory), Debit: amount},
			{Account: env.Chart.MustResolve(coa.RoleGRIRClearing), Credit: amount},
		}
		ops = []StockOp{{Direction: StockReceive, ItemID: in.ItemID, Qty: in.Qty, UnitPrice: in.UnitPrice}}
		explanation = fmt.Sprintf("Goods receipt for PO: %.0f x %s valued at %.0f, parked on GR/IR clearing.", in.Qty, in.ItemID, amount)
	case MovementIssueToCostCenter:
		if in.CostCenter == "" {
			reasons = append(reasons, "cost center is required for a goods issue")
		}
		item := env.Stock.OnHand(in.ItemID)
		if in.Qty > item.Qty {
			reasons = append(reasons, fmt.Sprintf("insufficient stock for %s: on hand %.0f, requested %.0f", in.ItemID, item.Qty, in.Qty))
		}
		amount = ledger.Round(in.Qty * item.AvgCost())
		lines = []ledger.Line{
			{Account: env.Chart.MustResolve(coa.RoleDirectMaterials), Debit: amount, CostCenter: in.CostCenter},
			{Account: env.Chart.MustResolve(coa.RoleInventory), Credit: amount},
		}
		ops = []StockOp{{Direction: StockIssue, ItemID: in.ItemID, Qty: in.Qty}}
		explanation = fmt.Sprintf("Goods issue to cost center %s: %.0f x %s at cost %.0f.", in.CostCenter, in.Qty, in.ItemID, amount)
	default:
		reasons = append(reasons, fmt.Sprintf("unknown movement type %q", in.MovementType))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Goods movement %s %s", in.MovementType, in.ItemID)),
			Lines:        lines,
			EventType:    string(TxGoodsMovement),
			SourceModule: "rules",
			DocType:      ledger.DocTypeGoodsMovement,
			Amount:       amount,
		},
		Explanation: explanation,
		StockOps:    ops,
	}, nil
}

// InvoiceVerificationInput matches a vendor invoice against an earlier
// goods receipt, clearing GR/IR into trade payables.
type InvoiceVerificationInput struct {
	Date        time.Time
	PartnerID   string
	NetAmount   float64
	TaxRate     float64
	Description string
}

func (InvoiceVerificationInput) TransactionType() TransactionType { return TxInvoiceVerification }

func buildInvoiceVerification(env Env, in InvoiceVerificationInput) (Draft, []string) {
	reasons := requireBase(in.Date, in.PartnerID, in.NetAmount, in.TaxRate, "vendor")
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	tax := ledger.Round(in.NetAmount * in.TaxRate)
	gross := in.NetAmount + tax
	lines := []ledger.Line{
		{Account: env.Chart.MustResolve(coa.RoleGRIRClearing), Debit: in.NetAmount},
	}
	if tax > 0 {
		lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RoleInputVAT), Debit: tax})
	}
	lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RolePayables), Credit: gross, PartnerID: in.PartnerID})

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Invoice verification %s", in.PartnerID)),
			Lines:        lines,
			EventType:    string(TxInvoiceVerification),
			SourceModule: "rules",
			DocType:      ledger.DocTypeInvoiceVerify,
			Amount:       gross,
			PartnerID:    in.PartnerID,
		},
		Explanation: fmt.Sprintf("Invoice verified: GR/IR cleared %.0f, tax %.0f, payable to %s %.0f.", in.NetAmount, tax, in.PartnerID, gross),
		PartnerOps: []PartnerOp{
			{PartnerID: in.PartnerID, Amount: gross, Direction: PartnerIncrease},
		},
	}, nil
}

// DepreciationRunInput books one depreciation period for the machinery
// asset class.
type DepreciationRunInput struct {
	Date        time.Time
	Amount      float64
	Description string
}

func (DepreciationRunInput) TransactionType() TransactionType { return TxDepreciationRun }

func buildDepreciationRun(env Env, in DepreciationRunInput) (Draft, []string) {
	var reasons []string
	if in.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if in.Amount <= 0 {
		reasons = append(reasons, "amount must be positive")
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, "Depreciation run"),
			Lines: []ledger.Line{
				{Account: env.Chart.MustResolve(coa.RoleDepreciationExpense), Debit: in.Amount},
				{Account: env.Chart.MustResolve(coa.RoleAccumDepreciation), Credit: in.Amount},
			},
			EventType:    string(TxDepreciationRun),
			SourceModule: "rules",
			DocType:      ledger.DocTypeDepreciation,
			Amount:       in.Amount,
		},
		Explanation: fmt.Sprintf("Depreciation of %.0f charged against accumulated depreciation.", in.Amount),
	}, nil
}

func requireBase(date time.Time, partnerID string, amount, taxRate float64, partnerKind string) []string {
	var reasons []string
	if date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if partnerID == "" {
		reasons = append(reasons, partnerKind+" is required")
	}
	if amount <= 0 {
		reasons = append(reasons, "amount must be positive")
	}
	if taxRate < 0 {
		reasons = append(reasons, "tax rate cannot be negative")
	}
	return reasons
}
