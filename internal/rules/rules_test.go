package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/inventory"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

func testEnv(chart *coa.Chart, cashBalance float64) (Env, *inventory.Valuation) {
	stock := inventory.NewValuation()
	return Env{
		Chart:    chart,
		Stock:    stock,
		Partners: NewPartnerLedger(),
		Balance:  func(string) float64 { return cashBalance },
	}, stock
}

var testDate = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func lineFor(t *testing.T, draft Draft, account string) ledger.Line {
	t.Helper()
	for _, l := range draft.Candidate.Lines {
		if l.Account == account {
			return l
		}
	}
	t.Fatalf("no line for account %s", account)
	return ledger.Line{}
}

func TestCashSaleSplitsVAT(t *testing.T) {
	chart := coa.DomesticChart()
	env, _ := testEnv(chart, 0)

	draft, reasons := Build(env, CashReceiptInput{
		Subtype: ReceiptCashSale,
		Date:    testDate,
		Amount:  1100000,
		VATRate: 0.10,
	})
	require.Empty(t, reasons)
	require.True(t, draft.Candidate.Balanced())

	require.InDelta(t, 1100000, lineFor(t, draft, chart.MustResolve(coa.RoleCash)).Debit, 0.01)
	require.InDelta(t, 1000000, lineFor(t, draft, chart.MustResolve(coa.RoleRevenue)).Credit, 0.01)
	require.InDelta(t, 100000, lineFor(t, draft, chart.MustResolve(coa.RoleOutputVAT)).Credit, 0.01)
}

func TestCashReceiptFromCustomerRequiresPartner(t *testing.T) {
	env, _ := testEnv(coa.DomesticChart(), 0)
	_, reasons := Build(env, CashReceiptInput{Subtype: ReceiptFromCustomer, Date: testDate, Amount: 1000})
	require.Contains(t, reasons, "customer is required for a receipt from customer")
}

func TestCashPaymentChecksAvailableCash(t *testing.T) {
	env, _ := testEnv(coa.DomesticChart(), 30000)
	_, reasons := Build(env, CashPaymentInput{Subtype: PaymentExpense, Date: testDate, Amount: 50000})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "insufficient cash")

	draft, reasons := Build(env, CashPaymentInput{Subtype: PaymentExpense, Date: testDate, Amount: 20000})
	require.Empty(t, reasons)
	require.True(t, draft.Candidate.Balanced())
	require.Equal(t, ledger.DocTypeCashPayment, draft.Candidate.DocType)
}

func TestCashPaymentRejectsNonExpenseAccount(t *testing.T) {
	env, _ := testEnv(coa.DomesticChart(), 1e9)
	_, reasons := Build(env, CashPaymentInput{
		Subtype:        PaymentExpense,
		Date:           testDate,
		Amount:         1000,
		ExpenseAccount: "101",
	})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "not an expense account")
}

func TestStockInPurchaseGrossesUpVAT(t *testing.T) {
	chart := coa.DomesticChart()
	env, _ := testEnv(chart, 0)

	draft, reasons := Build(env, StockInInput{
		Subtype:   StockInPurchase,
		Date:      testDate,
		ItemID:    "ITEM-1",
		Qty:       100,
		UnitPrice: 1000,
		VATRate:   0.10,
		PartnerID: "V001",
	})
	require.Empty(t, reasons)
	require.True(t, draft.Candidate.Balanced())
	require.InDelta(t, 100000, lineFor(t, draft, chart.MustResolve(coa.RoleInventory)).Debit, 0.01)
	require.InDelta(t, 10000, lineFor(t, draft, chart.MustResolve(coa.RoleInputVAT)).Debit, 0.01)
	require.InDelta(t, 110000, lineFor(t, draft, chart.MustResolve(coa.RolePayables)).Credit, 0.01)
	require.Len(t, draft.StockOps, 1)
	require.Equal(t, StockReceive, draft.StockOps[0].Direction)
}

func TestStockOutUsesWeightedAverageCost(t *testing.T) {
	chart := coa.DomesticChart()
	env, stock := testEnv(chart, 0)
	stock.Receive("ITEM-1", 100, 1000)
	stock.Receive("ITEM-1", 100, 2000)

	draft, reasons := Build(env, StockOutInput{
		Subtype: StockOutSales,
		Date:    testDate,
		ItemID:  "ITEM-1",
		Qty:     50,
	})
	require.Empty(t, reasons)
	require.InDelta(t, 75000, lineFor(t, draft, chart.MustResolve(coa.RoleCOGS)).Debit, 0.01)
	require.InDelta(t, 75000, lineFor(t, draft, chart.MustResolve(coa.RoleInventory)).Credit, 0.01)
	require.Len(t, draft.StockOps, 1)
	require.Equal(t, StockIssue, draft.StockOps[0].Direction)
}

func TestStockOutRejectsOverIssue(t *testing.T) {
	env, stock := testEnv(coa.DomesticChart(), 0)
	stock.Receive("ITEM-1", 10, 1000)

	_, reasons := Build(env, StockOutInput{Subtype: StockOutSales, Date: testDate, ItemID: "ITEM-1", Qty: 50})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "insufficient stock")
}

func TestManualEntryRevalidatesBalance(t *testing.T) {
	env, _ := testEnv(coa.DomesticChart(), 0)
	_, reasons := Build(env, ManualEntryInput{
		Date: testDate,
		Lines: []ledger.Line{
			{Account: "101", Debit: 500},
			{Account: "401", Credit: 400},
		},
	})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "do not balance")
}

func TestManualEntryCollectsAllReasons(t *testing.T) {
	env, _ := testEnv(coa.DomesticChart(), 0)
	_, reasons := Build(env, ManualEntryInput{
		Lines: []ledger.Line{
			{Account: "999", Debit: 500},
		},
	})
	require.GreaterOrEqual(t, len(reasons), 3)
}

func TestVendorInvoiceAndVerificationShareTaxMath(t *testing.T) {
	chart := coa.ERPChart()
	env, _ := testEnv(chart, 0)

	inv, reasons := Build(env, VendorInvoiceInput{Date: testDate, PartnerID: "V100", NetAmount: 2000, TaxRate: 0.19})
	require.Empty(t, reasons)
	require.True(t, inv.Candidate.Balanced())
	require.InDelta(t, 2380, lineFor(t, inv, chart.MustResolve(coa.RolePayables)).Credit, 0.01)
	require.Len(t, inv.PartnerOps, 1)
	require.Equal(t, PartnerIncrease, inv.PartnerOps[0].Direction)

	ver, reasons := Build(env, InvoiceVerificationInput{Date: testDate, PartnerID: "V100", NetAmount: 2000, TaxRate: 0.19})
	require.Empty(t, reasons)
	require.InDelta(t, 2000, lineFor(t, ver, chart.MustResolve(coa.RoleGRIRClearing)).Debit, 0.01)
	require.InDelta(t, 380, lineFor(t, ver, chart.MustResolve(coa.RoleInputVAT)).Debit, 0.01)
}

func TestGoodsReceiptParksOnGRIR(t *testing.T) {
	chart := coa.ERPChart()
	env, _ := testEnv(chart, 0)

	draft, reasons := Build(env, GoodsMovementInput{
		MovementType: MovementReceiptForPO,
		Date:         testDate,
		ItemID:       "MAT-7",
		Qty:          10,
		UnitPrice:    500,
	})
	require.Empty(t, reasons)
	require.InDelta(t, 5000, lineFor(t, draft, chart.MustResolve(coa.RoleGRIRClearing)).Credit, 0.01)
}

func TestGoodsIssueRequiresCostCenter(t *testing.T) {
	env, stock := testEnv(coa.ERPChart(), 0)
	stock.Receive("MAT-7", 10, 500)

	_, reasons := Build(env, GoodsMovementInput{
		MovementType: MovementIssueToCostCenter,
		Date:         testDate,
		ItemID:       "MAT-7",
		Qty:          5,
	})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "cost center")
}

func TestVendorPaymentChecksBankBalance(t *testing.T) {
	env, _ := testEnv(coa.ERPChart(), 100)
	_, reasons := Build(env, VendorPaymentInput{Date: testDate, PartnerID: "V100", Amount: 500})
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "insufficient bank balance")
}

func TestDepreciationRun(t *testing.T) {
	chart := coa.ERPChart()
	env, _ := testEnv(chart, 0)

	draft, reasons := Build(env, DepreciationRunInput{Date: testDate, Amount: 1250})
	require.Empty(t, reasons)
	require.True(t, draft.Candidate.Balanced())
	require.InDelta(t, 1250, lineFor(t, draft, chart.MustResolve(coa.RoleAccumDepreciation)).Credit, 0.01)
}

func TestPartnerLedgerRoundTrip(t *testing.T) {
	pl := NewPartnerLedger()
	pl.Apply(PartnerOp{PartnerID: "V1", Amount: 100, Direction: PartnerIncrease})
	pl.Apply(PartnerOp{PartnerID: "V1", Amount: 40, Direction: PartnerSettle})
	require.InDelta(t, 60, pl.Balance("V1"), 0.01)

	restored := NewPartnerLedger()
	restored.Restore(pl.Balances())
	require.InDelta(t, 60, restored.Balance("V1"), 0.01)
}
