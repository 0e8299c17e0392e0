// Package rules turns business events into candidate journal entries.
// Each template is a pure function over a read-only view of workspace
// state; side effects (stock moves, partner balances) are returned as ops
// for the workspace to apply after a successful post.
package rules

import (
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/inventory"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// TransactionType is the closed set of supported business events. Every
// variant carries its own typed input and is matched exhaustively in
// Build, so a typo'd type cannot reach the posting engine silently.
type TransactionType string

const (
	TxCashReceipt         TransactionType = "cash_receipt"
	TxCashPayment         TransactionType = "cash_payment"
	TxStockIn             TransactionType = "stock_in"
	TxStockOut            TransactionType = "stock_out"
	TxManualEntry         TransactionType = "manual_entry"
	TxVendorInvoice       TransactionType = "vendor_invoice"
	TxCustomerInvoice     TransactionType = "customer_invoice"
	TxVendorPayment       TransactionType = "vendor_payment"
	TxCustomerPayment     TransactionType = "customer_payment"
	TxGoodsMovement       TransactionType = "goods_movement"
	TxInvoiceVerification TransactionType = "invoice_verification"
	TxDepreciationRun     TransactionType = "depreciation_run"
)

// Input is the sealed union of business-event payloads.
type Input interface {
	TransactionType() TransactionType
}

// StockView exposes current inventory state to templates.
type StockView interface {
	OnHand(itemID string) inventory.Item
}

// PartnerView exposes partner running balances to templates.
type PartnerView interface {
	Balance(partnerID string) float64
}

// BalanceFunc returns the current balance of an account code, used for
// available-funds business checks.
type BalanceFunc func(code string) float64

// Env is the read-only evaluation environment for templates.
type Env struct {
	Chart    *coa.Chart
	Stock    StockView
	Partners PartnerView
	Balance  BalanceFunc
}

// StockDirection distinguishes inventory receipt from issue.
type StockDirection string

const (
	StockReceive StockDirection = "RECEIVE"
	StockIssue   StockDirection = "ISSUE"
)

// StockOp is an inventory mutation applied in lock-step with the posting.
type StockOp struct {
	Direction StockDirection
	ItemID    string
	Qty       float64
	UnitPrice float64
}

// PartnerDirection distinguishes increasing from settling a partner's
// running balance.
type PartnerDirection string

const (
	PartnerIncrease PartnerDirection = "INCREASE"
	PartnerSettle   PartnerDirection = "SETTLE"
)

// PartnerOp adjusts a partner running balance after a successful post.
type PartnerOp struct {
	PartnerID string
	Amount    float64
	Direction PartnerDirection
}

// Draft is a template's output: the candidate entry plus derived document
// fields, a teaching explanation, and deferred side effects.
type Draft struct {
	Candidate   ledger.Candidate
	Explanation string
	StockOps    []StockOp
	PartnerOps  []PartnerOp
}

// Build evaluates the template for the given input. Validation failures
// come back as a list of human-readable reasons and the posting engine is
// never reached.
func Build(env Env, input Input) (Draft, []string) {
	switch in := input.(type) {
	case CashReceiptInput:
		return buildCashReceipt(env, in)
	case CashPaymentInput:
		return buildCashPayment(env, in)
	case StockInInput:
		return buildStockIn(env, in)
	case StockOutInput:
		return buildStockOut(env, in)
	case ManualEntryInput:
		return buildManualEntry(env, in)
	case VendorInvoiceInput:
		return buildVendorInvoice(env, in)
	case CustomerInvoiceInput:
		return buildCustomerInvoice(env, in)
	case VendorPaymentInput:
		return buildVendorPayment(env, in)
	case CustomerPaymentInput:
		return buildCustomerPayment(env, in)
	case GoodsMovementInput:
		return buildGoodsMovement(env, in)
	case InvoiceVerificationInput:
		return buildInvoiceVerification(env, in)
	case DepreciationRunInput:
		return buildDepreciationRun(env, in)
	default:
		// Unreachable for inputs constructed through this package.
		return Draft{}, []string{"unsupported transaction type"}
	}
}
