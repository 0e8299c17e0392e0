// Package inventory maintains per-item quantity and weighted-average cost.
package inventory

import "errors"

// ErrItemNotFound indicates an unknown item id, which points at a data
// seeding bug rather than user input.
var ErrItemNotFound = errors.New("inventory: item not found")

// Item tracks on-hand quantity and total value so that the unit cost is
// TotalValue / Qty.
type Item struct {
	ID         string  `json:"id"`
	Qty        float64 `json:"qty"`
	TotalValue float64 `json:"total_value"`
}

// AvgCost returns the weighted-average unit cost, 0 for an empty item.
func (i Item) AvgCost() float64 {
	if i.Qty <= 0 {
		return 0
	}
	return i.TotalValue / i.Qty
}

// Valuation holds weighted-average costing state for one workspace. It is
// mutated only in lock-step with a stock-movement posting; the owning
// workspace serializes access.
type Valuation struct {
	items map[string]Item
}

// NewValuation returns an empty valuation.
func NewValuation() *Valuation {
	return &Valuation{items: make(map[string]Item)}
}

// Receive adds quantity at a unit price and recomputes the average cost.
func (v *Valuation) Receive(itemID string, qty, unitPrice float64) Item {
	item := v.items[itemID]
	item.ID = itemID
	item.Qty += qty
	item.TotalValue += qty * unitPrice
	v.items[itemID] = item
	return item
}

// Issue removes quantity at the current average cost and returns the cost
// of the issue. Issuing more than on hand is the caller's error to catch:
// the average-cost formula is simply special-cased to 0 for an empty item.
func (v *Valuation) Issue(itemID string, qty float64) (float64, Item) {
	item := v.items[itemID]
	item.ID = itemID
	cost := qty * item.AvgCost()
	item.TotalValue -= cost
	item.Qty -= qty
	if item.Qty <= 0 {
		item.Qty = 0
		item.TotalValue = 0
	}
	v.items[itemID] = item
	return cost, item
}

// OnHand returns the current state of an item. Unknown items report zero
// quantity and cost.
func (v *Valuation) OnHand(itemID string) Item {
	item, ok := v.items[itemID]
	if !ok {
		return Item{ID: itemID}
	}
	return item
}

// Items returns a copy of every tracked item.
func (v *Valuation) Items() []Item {
	out := make([]Item, 0, len(v.items))
	for _, item := range v.items {
		out = append(out, item)
	}
	return out
}

// Restore replaces valuation state from a snapshot.
func (v *Valuation) Restore(items []Item) {
	v.items = make(map[string]Item, len(items))
	for _, item := range items {
		v.items[item.ID] = item
	}
}
