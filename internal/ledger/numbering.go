package ledger

import (
	"fmt"
	"math/rand"
)

// Numberer allocates document numbers. Allocation happens inside the
// posting path and is serialized with it, so implementations need no lock
// of their own.
type Numberer interface {
	Next(dt DocType) string
	// State exports allocator state for snapshots.
	State() NumbererState
	// Restore replaces allocator state from a snapshot.
	Restore(state NumbererState)
}

// NumbererState is the serializable allocator state.
type NumbererState struct {
	Counters map[DocType]int `json:"counters,omitempty"`
	Issued   []string        `json:"issued,omitempty"`
}

// SequentialNumberer issues per-doc-type prefixed numbers: CR0001, CR0002.
type SequentialNumberer struct {
	counters map[DocType]int
}

// NewSequentialNumberer returns a fresh sequential allocator.
func NewSequentialNumberer() *SequentialNumberer {
	return &SequentialNumberer{counters: make(map[DocType]int)}
}

func (n *SequentialNumberer) Next(dt DocType) string {
	n.counters[dt]++
	return fmt.Sprintf("%s%04d", dt, n.counters[dt])
}

func (n *SequentialNumberer) State() NumbererState {
	counters := make(map[DocType]int, len(n.counters))
	for k, v := range n.counters {
		counters[k] = v
	}
	return NumbererState{Counters: counters}
}

func (n *SequentialNumberer) Restore(state NumbererState) {
	n.counters = make(map[DocType]int, len(state.Counters))
	for k, v := range state.Counters {
		n.counters[k] = v
	}
}

// RangeNumberer draws ERP-style numbers from a random seven-digit space,
// re-drawing on collision.
type RangeNumberer struct {
	rng    *rand.Rand
	issued map[string]bool
}

// NewRangeNumberer returns a number-range allocator seeded for
// reproducibility in tests.
func NewRangeNumberer(seed int64) *RangeNumberer {
	return &RangeNumberer{
		rng:    rand.New(rand.NewSource(seed)),
		issued: make(map[string]bool),
	}
}

func (n *RangeNumberer) Next(DocType) string {
	for {
		num := fmt.Sprintf("%07d", 1000000+n.rng.Intn(9000000))
		if n.issued[num] {
			continue
		}
		n.issued[num] = true
		return num
	}
}

func (n *RangeNumberer) State() NumbererState {
	issued := make([]string, 0, len(n.issued))
	for num := range n.issued {
		issued = append(issued, num)
	}
	return NumbererState{Issued: issued}
}

func (n *RangeNumberer) Restore(state NumbererState) {
	n.issued = make(map[string]bool, len(state.Issued))
	for _, num := range state.Issued {
		n.issued[num] = true
	}
}
