package workspace

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/platform/kv"
	"github.com/ledgersim/ledgersim/internal/rules"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Notify(_ context.Context, evt Event) {
	n.mu.Lock()
	n.events = append(n.events, evt)
	n.mu.Unlock()
}

func seedCapital(t *testing.T, ws *Workspace, amount float64, date time.Time) {
	t.Helper()
	cash := ws.Chart().MustResolve(coa.RoleCash)
	capital := "331" // Capital Stock in the domestic chart
	_, err := ws.PostTransaction(context.Background(), rules.ManualEntryInput{
		Date:        date,
		Description: "opening capital",
		Lines: []ledger.Line{
			{Account: cash, Debit: amount},
			{Account: capital, Credit: amount},
		},
	}, "tester")
	require.NoError(t, err)
}

func TestPostCashSaleEndToEnd(t *testing.T) {
	notifier := &recordingNotifier{}
	ws := New(NameTraining, coa.ModeDomestic).WithNotifier(notifier)
	ctx := context.Background()
	seedCapital(t, ws, 2_000_000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	res, err := ws.PostTransaction(ctx, rules.CashReceiptInput{
		Subtype:     rules.ReceiptCashSale,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:      1_100_000,
		VATRate:     0.10,
		Description: "counter sale",
	}, "tester")
	require.NoError(t, err)

	require.Equal(t, "CR0001", res.Document.DocNumber)
	require.InDelta(t, 1_000_000, res.Impact.NetRevenue, 0.001)
	require.NotEmpty(t, res.Explanation)

	cash := ws.Chart().MustResolve(coa.RoleCash)
	bal, err := ws.AccountBalance(cash)
	require.NoError(t, err)
	require.InDelta(t, 3_100_000, bal.Balance, 0.001)

	vat := ws.Chart().MustResolve(coa.RoleOutputVAT)
	vatBal, err := ws.AccountBalance(vat)
	require.NoError(t, err)
	require.InDelta(t, 100_000, vatBal.Balance, 0.001)

	require.Len(t, ws.Documents(), 2)
	require.Len(t, notifier.events, 2)
	require.Equal(t, audit.ActionPost, notifier.events[1].Record.Action)
	require.Equal(t, NameTraining, notifier.events[1].Workspace)
}

func TestLockedPeriodRejectsAndLeavesStateUnchanged(t *testing.T) {
	ws := New(NameTraining, coa.ModeDomestic)
	ctx := context.Background()
	seedCapital(t, ws, 500_000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	ws.LockPeriod(ctx, "2026-03", "controller")
	require.True(t, ws.IsPeriodLocked("2026-03"))

	before, err := ws.AccountBalance(ws.Chart().MustResolve(coa.RoleCash))
	require.NoError(t, err)

	_, err = ws.PostTransaction(ctx, rules.CashReceiptInput{
		Subtype: rules.ReceiptOtherIncome,
		Date:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:  10_000,
	}, "tester")
	require.ErrorIs(t, err, ledger.ErrPeriodLocked)

	after, err := ws.AccountBalance(ws.Chart().MustResolve(coa.RoleCash))
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Len(t, ws.Entries(), 1)

	ws.UnlockPeriod(ctx, "2026-03", "controller")
	_, err = ws.PostTransaction(ctx, rules.CashReceiptInput{
		Subtype: rules.ReceiptOtherIncome,
		Date:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:  10_000,
	}, "tester")
	require.NoError(t, err)
}

func TestValidationFailureCollectsReasons(t *testing.T) {
	ws := New(NameTraining, coa.ModeDomestic)

	_, err := ws.PostTransaction(context.Background(), rules.CashPaymentInput{
		Subtype: rules.PaymentExpense,
		Date:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:  50_000,
	}, "tester")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Reasons)
	require.Empty(t, ws.Entries())
}

func TestWorkspaceIsolation(t *testing.T) {
	training := New(NameTraining, coa.ModeDomestic)
	production := New(NameProduction, coa.ModeERP)

	seedCapital(t, training, 1_000_000, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))

	require.Len(t, training.Entries(), 1)
	require.Empty(t, production.Entries())

	training.LockPeriod(context.Background(), "2026-01", "controller")
	require.True(t, training.IsPeriodLocked("2026-01"))
	require.False(t, production.IsPeriodLocked("2026-01"))
}

func TestPreviewDoesNotCommit(t *testing.T) {
	ws := New(NameTraining, coa.ModeDomestic)

	res, err := ws.Preview(rules.CashReceiptInput{
		Subtype: rules.ReceiptCashSale,
		Date:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:  220_000,
		VATRate: 0.10,
	})
	require.NoError(t, err)
	require.InDelta(t, 200_000, res.Impact.NetRevenue, 0.001)
	require.Empty(t, res.Document.DocNumber)
	require.Empty(t, ws.Entries())
	require.Empty(t, ws.Documents())
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	ws := New(NameTraining, coa.ModeDomestic)
	seedCapital(t, ws, 2_000_000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	_, err := ws.PostTransaction(ctx, rules.StockInInput{
		Subtype:   rules.StockInPurchase,
		Date:      time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		ItemID:    "SKU-1",
		Qty:       100,
		UnitPrice: 1_000,
		PartnerID: "V-9",
	}, "tester")
	require.NoError(t, err)
	ws.LockPeriod(ctx, "2026-01", "controller")

	require.NoError(t, ws.Snapshot(ctx, store))

	restored := New(NameTraining, coa.ModeDomestic)
	require.NoError(t, restored.Restore(ctx, store))

	require.Len(t, restored.Entries(), 2)
	require.Len(t, restored.Documents(), 2)
	require.True(t, restored.IsPeriodLocked("2026-01"))
	require.InDelta(t, 100, restored.StockOnHand("SKU-1").Qty, 0.001)
	require.InDelta(t, 100_000, restored.StockOnHand("SKU-1").TotalValue, 0.001)

	// Numbering continues from the restored counter, no reuse.
	cash := restored.Chart().MustResolve(coa.RoleCash)
	res, err := restored.PostTransaction(ctx, rules.ManualEntryInput{
		Date:        time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Description: "misc income",
		Lines: []ledger.Line{
			{Account: cash, Debit: 5_000},
			{Account: restored.Chart().MustResolve(coa.RoleOtherIncome), Credit: 5_000},
		},
	}, "tester")
	require.NoError(t, err)
	require.Equal(t, "JE0002", res.Document.DocNumber)
}

func TestRestoreRejectsModeMismatch(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	ws := New("shared", coa.ModeDomestic)
	require.NoError(t, ws.Snapshot(ctx, store))

	other := New("shared", coa.ModeERP)
	require.Error(t, other.Restore(ctx, store))
}

func TestReportsCloseAfterMixedActivity(t *testing.T) {
	ws := New(NameTraining, coa.ModeDomestic)
	ctx := context.Background()
	seedCapital(t, ws, 2_000_000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	_, err := ws.PostTransaction(ctx, rules.CashReceiptInput{
		Subtype: rules.ReceiptCashSale,
		Date:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:  1_100_000,
		VATRate: 0.10,
	}, "tester")
	require.NoError(t, err)
	_, err = ws.PostTransaction(ctx, rules.CashPaymentInput{
		Subtype:     rules.PaymentExpense,
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:      300_000,
		Description: "rent",
	}, "tester")
	require.NoError(t, err)

	tb, err := ws.TrialBalance("2026-03")
	require.NoError(t, err)
	require.InDelta(t, tb.TotalClosingDebit, tb.TotalClosingCredit, 0.001)

	bs, err := ws.BalanceSheet("2026-03")
	require.NoError(t, err)
	require.InDelta(t, bs.TotalAssets, bs.TotalLiabilitiesAndEquity, 0.001)

	is, err := ws.IncomeStatement("2026-03")
	require.NoError(t, err)
	require.InDelta(t, 1_000_000, is.NetRevenue, 0.001)
	require.InDelta(t, 700_000, is.NetProfit, 0.001)
}

func TestManagerResolvesWorkspaces(t *testing.T) {
	m := NewManager(New(NameTraining, coa.ModeDomestic), New(NameProduction, coa.ModeERP))

	ws, err := m.Get(NameTraining)
	require.NoError(t, err)
	require.Equal(t, coa.ModeDomestic, ws.Mode())

	_, err = m.Get("staging")
	require.ErrorIs(t, err, ErrWorkspaceNotFound)
}
