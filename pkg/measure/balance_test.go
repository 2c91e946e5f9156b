package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelR(t *testing.T) {
	require.Equal(t, 0.0, ParallelR(0.0, 100.0))
	require.Equal(t, 0.0, ParallelR(100.0, 0.0))
	require.InDelta(t, 50.0, ParallelR(100.0, 100.0), 1e-9)
	require.InDelta(t, 1200.0, ParallelR(2000.0, 3000.0), 1e-9)
}

func TestUnbalance(t *testing.T) {
	// a perfectly matched bridge has no output offset
	b := Bridge{R1: 5000, R2: 5000, R3: 5000, R4: 5000}
	require.InDelta(t, 0.0, b.Unbalance(), 1e-12)

	// heavier top-left arm pulls pin 2 down
	b = Bridge{R1: 5100, R2: 5000, R3: 5000, R4: 5000}
	require.Less(t, b.Unbalance(), 0.0)

	// heavier top-right arm pulls pin 6 down
	b = Bridge{R1: 5000, R2: 5000, R3: 5100, R4: 5000}
	require.Greater(t, b.Unbalance(), 0.0)
}

func TestFindBalance(t *testing.T) {
	b := Bridge{R1: 5000, R2: 5100, R3: 5050, R4: 5050}
	tol := 1e-4
	initial := math.Abs(b.Unbalance())
	candidates := FindBalance(b, tol)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		u := math.Abs(c.Unbalance())
		require.Less(t, u, tol)
		require.Less(t, u, initial)
		// resistors applied on one side only
		if c.RA != 0.0 || c.RB != 0.0 {
			require.Zero(t, c.RC)
			require.Zero(t, c.RD)
		} else {
			require.NotZero(t, c.RC)
			require.NotZero(t, c.RD)
		}
	}
}

func TestFindBalanceNoCandidates(t *testing.T) {
	// a wildly unbalanced bridge with an impossible tolerance
	b := Bridge{R1: 100, R2: 9000, R3: 9000, R4: 100}
	require.Empty(t, FindBalance(b, 1e-15))
}
