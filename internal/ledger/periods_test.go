package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/audit"
)

func TestLockIsIdempotentAndAudited(t *testing.T) {
	trail := audit.NewTrail()
	pc := NewPeriodControl(trail)

	pc.Lock("2024-12", "admin")
	pc.Lock("2024-12", "admin")
	require.True(t, pc.IsLockedPeriod("2024-12"))
	require.Equal(t, 2, trail.Len())

	pc.Unlock("2024-12", "admin")
	require.False(t, pc.IsLockedPeriod("2024-12"))
	require.Equal(t, 3, trail.Len())
}

func TestIsLockedDerivesPeriodFromDate(t *testing.T) {
	pc := NewPeriodControl(nil)
	pc.Lock("2024-12", "admin")

	require.True(t, pc.IsLocked(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, pc.IsLocked(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
	require.False(t, pc.IsLocked(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodControlRestore(t *testing.T) {
	pc := NewPeriodControl(nil)
	pc.Restore([]string{"2024-11", "2024-12"})
	require.True(t, pc.IsLockedPeriod("2024-11"))
	require.ElementsMatch(t, []string{"2024-11", "2024-12"}, pc.LockedPeriods())
}
