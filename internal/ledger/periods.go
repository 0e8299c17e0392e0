package ledger

import (
	"time"

	"github.com/ledgersim/ledgersim/internal/audit"
)

// PeriodIDFromDate truncates a calendar date to its YYYY-MM period id.
func PeriodIDFromDate(date time.Time) string {
	return date.Format("2006-01")
}

// Period is a fiscal month that can be administratively locked.
type Period struct {
	ID     string `json:"id"`
	Locked bool   `json:"locked"`
}

// PeriodControl tracks locked fiscal periods. Periods are open by default
// and only change state via explicit Lock/Unlock calls, every one of which
// is audited, including no-op repeats.
type PeriodControl struct {
	locked map[string]bool
	trail  *audit.Trail
}

// NewPeriodControl returns a control with all periods open.
func NewPeriodControl(trail *audit.Trail) *PeriodControl {
	return &PeriodControl{locked: make(map[string]bool), trail: trail}
}

// IsLocked reports whether the period containing date is locked.
func (p *PeriodControl) IsLocked(date time.Time) bool {
	return p.locked[PeriodIDFromDate(date)]
}

// IsLockedPeriod reports whether a period id is locked.
func (p *PeriodControl) IsLockedPeriod(periodID string) bool {
	return p.locked[periodID]
}

// Lock marks a period locked. Locking an already-locked period is a no-op
// success.
func (p *PeriodControl) Lock(periodID, actor string) {
	p.locked[periodID] = true
	if p.trail != nil {
		p.trail.Record(audit.Record{
			Action: audit.ActionLockPeriod,
			Actor:  actor,
			Details: map[string]any{
				"period": periodID,
			},
		})
	}
}

// Unlock reopens a period. Unlocking an open period is a no-op success.
func (p *PeriodControl) Unlock(periodID, actor string) {
	delete(p.locked, periodID)
	if p.trail != nil {
		p.trail.Record(audit.Record{
			Action: audit.ActionUnlockPeriod,
			Actor:  actor,
			Details: map[string]any{
				"period": periodID,
			},
		})
	}
}

// LockedPeriods returns the ids of all locked periods.
func (p *PeriodControl) LockedPeriods() []string {
	out := make([]string, 0, len(p.locked))
	for id := range p.locked {
		out = append(out, id)
	}
	return out
}

// Restore replaces the locked set from a snapshot without auditing.
func (p *PeriodControl) Restore(lockedIDs []string) {
	p.locked = make(map[string]bool, len(lockedIDs))
	for _, id := range lockedIDs {
		p.locked[id] = true
	}
}
