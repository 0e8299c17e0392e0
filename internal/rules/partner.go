package rules

// PartnerLedger tracks running balances per business partner (open
// receivables for customers, open payables for vendors). The owning
// workspace serializes access alongside the ledger store.
type PartnerLedger struct {
	balances map[string]float64
}

// NewPartnerLedger returns an empty partner ledger.
func NewPartnerLedger() *PartnerLedger {
	return &PartnerLedger{balances: make(map[string]float64)}
}

// Balance returns the partner's open balance, 0 for unknown partners.
func (p *PartnerLedger) Balance(partnerID string) float64 {
	return p.balances[partnerID]
}

// Apply adjusts a partner balance for a posted document.
func (p *PartnerLedger) Apply(op PartnerOp) {
	switch op.Direction {
	case PartnerIncrease:
		p.balances[op.PartnerID] += op.Amount
	case PartnerSettle:
		p.balances[op.PartnerID] -= op.Amount
	}
}

// Balances returns a copy of all partner balances.
func (p *PartnerLedger) Balances() map[string]float64 {
	out := make(map[string]float64, len(p.balances))
	for k, v := range p.balances {
		out[k] = v
	}
	return out
}

// Restore replaces the partner ledger from a snapshot.
func (p *PartnerLedger) Restore(balances map[string]float64) {
	p.balances = make(map[string]float64, len(balances))
	for k, v := range balances {
		p.balances[k] = v
	}
}
