package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/audit"
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/inventory"
	"github.com/ledgersim/ledgersim/internal/ledger"
)

// SnapshotStore persists one opaque blob per workspace. The reference
// deployment keys them in a redis-style KV store; tests use an in-memory
// implementation.
type SnapshotStore interface {
	Save(ctx context.Context, workspace string, blob []byte) error
	Load(ctx context.Context, workspace string) ([]byte, error)
}

// Snapshot is the JSON-serializable full state of one workspace.
type Snapshot struct {
	Name          string                `json:"name"`
	Mode          coa.Mode              `json:"mode"`
	TakenAt       time.Time             `json:"taken_at"`
	Entries       []ledger.JournalEntry `json:"entries"`
	Documents     []ledger.Document     `json:"documents"`
	LockedPeriods []string              `json:"locked_periods"`
	Numberer      ledger.NumbererState  `json:"numberer"`
	Items         []inventory.Item      `json:"items"`
	Partners      map[string]float64    `json:"partners"`
	Audit         []audit.Record        `json:"audit"`
}

// Snapshot captures the workspace state and writes it to the store.
func (w *Workspace) Snapshot(ctx context.Context, store SnapshotStore) error {
	w.mu.RLock()
	snap := Snapshot{
		Name:          w.name,
		Mode:          w.chart.Mode(),
		TakenAt:       time.Now().UTC(),
		Entries:       w.store.Entries(),
		Documents:     w.store.Documents(),
		LockedPeriods: w.periods.LockedPeriods(),
		Numberer:      w.numberer.State(),
		Items:         w.stock.Items(),
		Partners:      w.partners.Balances(),
		Audit:         w.trail.Records(),
	}
	w.mu.RUnlock()

	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("workspace: marshal snapshot: %w", err)
	}
	if err := store.Save(ctx, w.name, blob); err != nil {
		return fmt.Errorf("workspace: save snapshot: %w", err)
	}
	w.trail.Record(audit.Record{
		Action:  audit.ActionSnapshotSave,
		Actor:   "system",
		Details: map[string]any{"entries": len(snap.Entries)},
	})
	return nil
}

// Restore replaces the workspace state from the store.
func (w *Workspace) Restore(ctx context.Context, store SnapshotStore) error {
	blob, err := store.Load(ctx, w.name)
	if err != nil {
		return fmt.Errorf("workspace: load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("workspace: unmarshal snapshot: %w", err)
	}
	if snap.Mode != w.chart.Mode() {
		return fmt.Errorf("workspace: snapshot mode %s does not match workspace mode %s", snap.Mode, w.chart.Mode())
	}

	w.mu.Lock()
	w.store.Restore(snap.Entries, snap.Documents)
	w.periods.Restore(snap.LockedPeriods)
	w.numberer.Restore(snap.Numberer)
	w.stock.Restore(snap.Items)
	w.partners.Restore(snap.Partners)
	w.trail.Restore(snap.Audit)
	w.mu.Unlock()

	w.trail.Record(audit.Record{
		Action:  audit.ActionSnapshotRestore,
		Actor:   "system",
		Details: map[string]any{"entries": len(snap.Entries)},
	})
	return nil
}
