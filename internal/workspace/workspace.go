// Package workspace ties the ledger core together behind one
// mutual-exclusion boundary per company workspace. All operations take an
// explicit Workspace; there is no ambient global ledger.
package workspace

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/fsimpact"
	"github.com/ledgersim/ledgersim/internal/inventory"
	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/reports"
	"github.com/ledgersim/ledgersim/internal/rules"
)

// Event is the payload handed to the notification hook after every
// successful post and period lock/unlock. It mirrors the audit record so
// an external UI can react without the core depending on it.
type Event struct {
	Workspace string       `json:"workspace"`
	Record    audit.Record `json:"record"`
}

// Notifier receives events after state-changing operations. Failures are
// the notifier's problem; the ledger state is already committed.
type Notifier interface {
	Notify(ctx context.Context, evt Event)
}

// ValidationError carries every template-level reason a business input
// was rejected. It is a value, never a panic.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "workspace: invalid input: " + strings.Join(e.Reasons, "; ")
}

// PostResult bundles everything a caller gets back from a successful post.
type PostResult struct {
	Document    ledger.Document     `json:"document"`
	Entry       ledger.JournalEntry `json:"journal_entry"`
	Impact      fsimpact.Impact     `json:"impact"`
	Explanation string              `json:"explanation"`
}

// Balance is the per-account view returned by AccountBalance.
type Balance struct {
	Code    string  `json:"code"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Balance float64 `json:"balance"`
}

// Workspace owns one isolated ledger: chart, store, period control,
// inventory valuation, partner balances, audit trail, and the document
// number allocator. A single RWMutex serializes posts; reads may run
// concurrently with each other but never with an in-flight post.
type Workspace struct {
	name  string
	chart *coa.Chart

	mu       sync.RWMutex
	store    *ledger.Store
	periods  *ledger.PeriodControl
	stock    *inventory.Valuation
	partners *rules.PartnerLedger
	numberer ledger.Numberer
	trail    *audit.Trail
	engine   *ledger.Engine

	notifier Notifier
}

// New builds a workspace for a bookkeeping mode. Domestic workspaces use
// sequential prefixed document numbers; ERP workspaces draw from a
// seven-digit number range.
func New(name string, mode coa.Mode) *Workspace {
	var chart *coa.Chart
	var numberer ledger.Numberer
	switch mode {
	case coa.ModeERP:
		chart = coa.ERPChart()
		numberer = ledger.NewRangeNumberer(time.Now().UnixNano())
	default:
		chart = coa.DomesticChart()
		numberer = ledger.NewSequentialNumberer()
	}
	trail := audit.NewTrail()
	store := ledger.NewStore()
	periods := ledger.NewPeriodControl(trail)
	return &Workspace{
		name:     name,
		chart:    chart,
		store:    store,
		periods:  periods,
		stock:    inventory.NewValuation(),
		partners: rules.NewPartnerLedger(),
		numberer: numberer,
		trail:    trail,
		engine:   ledger.NewEngine(chart, store, periods, numberer, trail),
	}
}

// WithNotifier installs the post/lock notification hook.
func (w *Workspace) WithNotifier(n Notifier) *Workspace {
	w.notifier = n
	return w
}

// WithNumberer overrides the document number allocator, mainly for
// deterministic tests.
func (w *Workspace) WithNumberer(n ledger.Numberer) *Workspace {
	w.numberer = n
	w.engine = ledger.NewEngine(w.chart, w.store, w.periods, n, w.trail)
	return w
}

// Name returns the workspace name.
func (w *Workspace) Name() string { return w.name }

// Chart returns the workspace's chart of accounts.
func (w *Workspace) Chart() *coa.Chart { return w.chart }

// Mode returns the workspace bookkeeping mode.
func (w *Workspace) Mode() coa.Mode { return w.chart.Mode() }

func (w *Workspace) env() rules.Env {
	return rules.Env{
		Chart:    w.chart,
		Stock:    w.stock,
		Partners: w.partners,
		Balance: func(code string) float64 {
			act := w.store.AccountTotals(code, time.Time{})
			return act.Debit - act.Credit
		},
	}
}

// PostTransaction evaluates a transaction template and commits the
// resulting entry. Template failures come back as *ValidationError with
// every reason listed; posting failures pass through from the engine, and
// either way the ledger is left untouched.
func (w *Workspace) PostTransaction(ctx context.Context, input rules.Input, actor string) (PostResult, error) {
	w.mu.Lock()
	draft, reasons := rules.Build(w.env(), input)
	if len(reasons) > 0 {
		w.mu.Unlock()
		return PostResult{}, &ValidationError{Reasons: reasons}
	}
	draft.Candidate.PostedBy = actor
	entry, doc, err := w.engine.Post(draft.Candidate)
	if err != nil {
		w.mu.Unlock()
		return PostResult{}, err
	}
	// Stock and partner state move in lock-step with the posting.
	for _, op := range draft.StockOps {
		switch op.Direction {
		case rules.StockReceive:
			w.stock.Receive(op.ItemID, op.Qty, op.UnitPrice)
		case rules.StockIssue:
			w.stock.Issue(op.ItemID, op.Qty)
		}
	}
	for _, op := range draft.PartnerOps {
		w.partners.Apply(op)
	}
	w.mu.Unlock()

	impact, err := fsimpact.Analyze(w.chart, entry)
	if err != nil {
		return PostResult{}, err
	}
	w.notify(ctx, audit.Record{
		Action:     audit.ActionPost,
		DocumentID: doc.DocNumber,
		Actor:      actor,
		At:         entry.PostedAt,
		Details:    map[string]any{"event_type": entry.EventType},
	})
	return PostResult{Document: doc, Entry: entry, Impact: impact, Explanation: draft.Explanation}, nil
}

// Preview evaluates a template and analyzes its statement impact without
// committing anything.
func (w *Workspace) Preview(input rules.Input) (PostResult, error) {
	w.mu.RLock()
	draft, reasons := rules.Build(w.env(), input)
	w.mu.RUnlock()
	if len(reasons) > 0 {
		return PostResult{}, &ValidationError{Reasons: reasons}
	}
	impact, err := fsimpact.Analyze(w.chart, ledger.JournalEntry{
		Date:        draft.Candidate.Date,
		Description: draft.Candidate.Description,
		Lines:       draft.Candidate.Lines,
		EventType:   draft.Candidate.EventType,
	})
	if err != nil {
		return PostResult{}, err
	}
	return PostResult{Impact: impact, Explanation: draft.Explanation}, nil
}

// AccountBalance reports cumulative debit, credit, and the balance on the
// account's normal side.
func (w *Workspace) AccountBalance(code string) (Balance, error) {
	acc, err := w.chart.Lookup(code)
	if err != nil {
		return Balance{}, err
	}
	w.mu.RLock()
	act := w.store.AccountTotals(code, time.Time{})
	w.mu.RUnlock()
	bal := act.Debit - act.Credit
	if acc.NormalBalance == coa.SideCredit {
		bal = act.Credit - act.Debit
	}
	return Balance{Code: code, Debit: act.Debit, Credit: act.Credit, Balance: bal}, nil
}

// LockPeriod locks a fiscal period. Idempotent; always audited.
func (w *Workspace) LockPeriod(ctx context.Context, periodID, actor string) {
	w.mu.Lock()
	w.periods.Lock(periodID, actor)
	w.mu.Unlock()
	w.notify(ctx, audit.Record{
		Action:  audit.ActionLockPeriod,
		Actor:   actor,
		Details: map[string]any{"period": periodID},
	})
}

// UnlockPeriod reopens a fiscal period. Idempotent; always audited.
func (w *Workspace) UnlockPeriod(ctx context.Context, periodID, actor string) {
	w.mu.Lock()
	w.periods.Unlock(periodID, actor)
	w.mu.Unlock()
	w.notify(ctx, audit.Record{
		Action:  audit.ActionUnlockPeriod,
		Actor:   actor,
		Details: map[string]any{"period": periodID},
	})
}

// IsPeriodLocked reports a period's lock state.
func (w *Workspace) IsPeriodLocked(periodID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.periods.IsLockedPeriod(periodID)
}

// TrialBalance builds the trial balance for a period.
func (w *Workspace) TrialBalance(periodID string) (reports.TrialBalance, error) {
	w.mu.RLock()
	rows, err := reports.CollectRows(w.chart, w.store, periodID)
	w.mu.RUnlock()
	if err != nil {
		return reports.TrialBalance{}, err
	}
	return reports.BuildTrialBalance(periodID, rows), nil
}

// BalanceSheet builds the balance sheet as of a period's end.
func (w *Workspace) BalanceSheet(periodID string) (reports.BalanceSheet, error) {
	w.mu.RLock()
	rows, err := reports.CollectRows(w.chart, w.store, periodID)
	w.mu.RUnlock()
	if err != nil {
		return reports.BalanceSheet{}, err
	}
	return reports.BuildBalanceSheet(periodID, rows), nil
}

// IncomeStatement builds the income statement for a period.
func (w *Workspace) IncomeStatement(periodID string) (reports.IncomeStatement, error) {
	w.mu.RLock()
	rows, err := reports.CollectRows(w.chart, w.store, periodID)
	w.mu.RUnlock()
	if err != nil {
		return reports.IncomeStatement{}, err
	}
	return reports.BuildIncomeStatement(periodID, rows), nil
}

// Documents lists all posted documents.
func (w *Workspace) Documents() []ledger.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.store.Documents()
}

// Entries lists all committed journal entries.
func (w *Workspace) Entries() []ledger.JournalEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.store.Entries()
}

// AuditRecords returns the audit trail.
func (w *Workspace) AuditRecords() []audit.Record {
	return w.trail.Records()
}

// StockOnHand reports an item's inventory state.
func (w *Workspace) StockOnHand(itemID string) inventory.Item {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stock.OnHand(itemID)
}

// PartnerBalance reports a partner's running balance.
func (w *Workspace) PartnerBalance(partnerID string) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.partners.Balance(partnerID)
}

func (w *Workspace) notify(ctx context.Context, rec audit.Record) {
	if w.notifier == nil {
		return
	}
	w.notifier.Notify(ctx, Event{Workspace: w.name, Record: rec})
}
