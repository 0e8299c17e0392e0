// Package audit keeps the append-only trail of state-changing ledger
// operations for one workspace.
package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action enumerates audited operations.
type Action string

const (
	ActionPost            Action = "post"
	ActionLockPeriod      Action = "lock_period"
	ActionUnlockPeriod    Action = "unlock_period"
	ActionSnapshotSave    Action = "snapshot_save"
	ActionSnapshotRestore Action = "snapshot_restore"
)

// Record is one audit trail entry.
type Record struct {
	ID         uuid.UUID      `json:"id"`
	At         time.Time      `json:"at"`
	Action     Action         `json:"action"`
	DocumentID string         `json:"document_id,omitempty"`
	Actor      string         `json:"actor"`
	Details    map[string]any `json:"details,omitempty"`
}

// Trail is an append-only audit log.
type Trail struct {
	mu      sync.Mutex
	records []Record
	now     func() time.Time
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{now: time.Now}
}

// WithNow overrides the clock for deterministic tests.
func (t *Trail) WithNow(now func() time.Time) {
	if now != nil {
		t.now = now
	}
}

// Record appends an entry and returns it with id and timestamp assigned.
func (t *Trail) Record(rec Record) Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec.ID = uuid.New()
	if rec.At.IsZero() {
		rec.At = t.now()
	}
	t.records = append(t.records, rec)
	return rec
}

// Records returns a copy of the trail in append order.
func (t *Trail) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len reports the number of recorded entries.
func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Restore replaces the trail contents from a snapshot.
func (t *Trail) Restore(records []Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = make([]Record, len(records))
	copy(t.records, records)
}
