package rules

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// StockInSubtype selects the credit side of an inbound stock movement.
type StockInSubtype string

const (
	StockInPurchase   StockInSubtype = "purchase"
	StockInProduction StockInSubtype = "production"
	StockInReturn     StockInSubtype = "return"
)

// StockInInput describes goods arriving into inventory.
type StockInInput struct {
	Subtype     StockInSubtype
	Date        time.Time
	ItemID      string
	Qty         float64
	UnitPrice   float64
	VATRate     float64 // purchases only
	PartnerID   string
	Description string
}

func (StockInInput) TransactionType() TransactionType { return TxStockIn }

func buildStockIn(env Env, in StockInInput) (Draft, []string) {
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
	if in.UnitPrice < 0 {
		reasons = append(reasons, "unit price cannot be negative")
	}
	if in.Subtype == StockInPurchase && in.PartnerID == "" {
		reasons = append(reasons, "vendor is required for a purchase")
	}

	net := ledger.Round(in.Qty * in.UnitPrice)
	inventoryAcc := env.Chart.MustResolve(coa.RoleInventory)
	var lines []ledger.Line
	var explanation string
	switch in.Subtype {
	case StockInPurchase:
		vat := ledger.Round(net * in.VATRate)
		lines = []ledger.Line{
			{Account: inventoryAcc, Debit: net},
		}
		if vat > 0 {
			lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RoleInputVAT), Debit: vat})
		}
		lines = append(lines, ledger.Line{Account: env.Chart.MustResolve(coa.RolePayables), Credit: net + vat, PartnerID: in.PartnerID})
		explanation = fmt.Sprintf("Purchased %.0f x %s at %.0f: inventory %.0f, input VAT %.0f, payable %.0f.",
			in.Qty, in.ItemID, in.UnitPrice, net, vat, net+vat)
	case StockInProduction:
		lines = []ledger.Line{
			{Account: inventoryAcc, Debit: net},
			{Account: env.Chart.MustResolve(coa.RoleWIP), Credit: net},
		}
		explanation = fmt.Sprintf("Finished %.0f x %s from production at cost %.0f.", in.Qty, in.ItemID, net)
	case StockInReturn:
		lines = []ledger.Line{
			{Account: inventoryAcc, Debit: net},
			{Account: env.Chart.MustResolve(coa.RoleCOGS), Credit: net},
		}
		explanation = fmt.Sprintf("Customer returned %.0f x %s; cost %.0f moved back into inventory.", in.Qty, in.ItemID, net)
	default:
		reasons = append(reasons, fmt.Sprintf("unknown stock in subtype %q", in.Subtype))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Stock in (%s) %s", in.Subtype, in.ItemID)),
			Lines:        lines,
			EventType:    string(TxStockIn),
			SourceModule: "rules",
			DocType:      ledger.DocTypeStockIn,
			Amount:       net,
			PartnerID:    in.PartnerID,
		},
		Explanation: explanation,
		StockOps: []StockOp{
			{Direction: StockReceive, ItemID: in.ItemID, Qty: in.Qty, UnitPrice: in.UnitPrice},
		},
	}, nil
}

// StockOutSubtype selects the debit side of an outbound stock movement.
type StockOutSubtype string

const (
	StockOutSales       StockOutSubtype = "sales"
	StockOutConsumption StockOutSubtype = "production_consumption"
	StockOutInternalUse StockOutSubtype = "internal_use"
)

// StockOutInput describes goods leaving inventory at weighted-average cost.
type StockOutInput struct {
	Subtype     StockOutSubtype
	Date        time.Time
	ItemID      string
	Qty         float64
	Description string
}

func (StockOutInput) TransactionType() TransactionType { return TxStockOut }

func buildStockOut(env Env, in StockOutInput) (Draft, []string) {
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

	item := env.Stock.OnHand(in.ItemID)
	if in.Qty > item.Qty {
		reasons = append(reasons, fmt.Sprintf("insufficient stock for %s: on hand %.0f, requested %.0f", in.ItemID, item.Qty, in.Qty))
	}

	var debitRole coa.Role
	var explanation string
	cost := ledger.Round(in.Qty * item.AvgCost())
	switch in.Subtype {
	case StockOutSales:
		debitRole = coa.RoleCOGS
		explanation = fmt.Sprintf("Shipped %.0f x %s at average cost %.2f; cost of goods sold %.0f.", in.Qty, in.ItemID, item.AvgCost(), cost)
	case StockOutConsumption:
		debitRole = coa.RoleDirectMaterials
		explanation = fmt.Sprintf("Consumed %.0f x %s in production at cost %.0f.", in.Qty, in.ItemID, cost)
	case StockOutInternalUse:
		debitRole = coa.RoleAdminExpense
		explanation = fmt.Sprintf("Used %.0f x %s internally at cost %.0f.", in.Qty, in.ItemID, cost)
	default:
		reasons = append(reasons, fmt.Sprintf("unknown stock out subtype %q", in.Subtype))
	}
	if len(reasons) > 0 {
		return Draft{}, reasons
	}

	return Draft{
		Candidate: ledger.Candidate{
			Date:         in.Date,
			Description:  describe(in.Description, fmt.Sprintf("Stock out (%s) %s", in.Subtype, in.ItemID)),
			Lines: []ledger.Line{
				{Account: env.Chart.MustResolve(debitRole), Debit: cost},
				{Account: env.Chart.MustResolve(coa.RoleInventory), Credit: cost},
			},
			EventType:    string(TxStockOut),
			SourceModule: "rules",
			DocType:      ledger.DocTypeStockOut,
			Amount:       cost,
		},
		Explanation: explanation,
		StockOps: []StockOp{
			{Direction: StockIssue, ItemID: in.ItemID, Qty: in.Qty},
		},
	}, nil
}
