package ddo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gitrdm/ddbnb/examples/knapsack"
	"github.com/gitrdm/ddbnb/pkg/ddo"
)

// bruteForceKnapsack enumerates every subset, the reference oracle the
// property test below checks the solver against on small instances.
func bruteForceKnapsack(p *knapsack.Problem) int {
	n := len(p.Profit)
	best := 0
	for mask := 0; mask < (1 << n); mask++ {
		weight, profit := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				weight += p.Weight[i]
				profit += p.Profit[i]
			}
		}
		if weight <= p.Capacity && profit > best {
			best = profit
		}
	}
	return best
}

// TestSolverMatchesBruteForceOnRandomInstances checks the spec's core
// invariant: a search that runs to completion (IsExact) reports a value
// equal to the true optimum, regardless of how narrow a width is used to
// get there.
func TestSolverMatchesBruteForceOnRandomInstances(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		capacity := rapid.IntRange(1, 50).Draw(rt, "capacity")
		width := rapid.IntRange(1, 6).Draw(rt, "width")

		profit := make([]int, n)
		weight := make([]int, n)
		for i := 0; i < n; i++ {
			profit[i] = rapid.IntRange(1, 100).Draw(rt, "profit")
			weight[i] = rapid.IntRange(1, 20).Draw(rt, "weight")
		}

		problem := &knapsack.Problem{Capacity: capacity, Profit: profit, Weight: weight}
		relax := knapsack.Relaxation{Problem: problem}
		ranking := knapsack.Ranking{}

		solver := ddo.NewSolver[knapsack.State](
			problem, relax, ranking, ddo.NewFixedWidth[knapsack.State](width),
			ddo.WithWorkers[knapsack.State](1),
		)
		completion, _, value := solver.Maximize(context.Background())

		require.True(rt, completion.IsExact, "an uncut search must always finish exact")
		require.Equal(rt, bruteForceKnapsack(problem), value)
	})
}

// TestNoDupFringeNeverExceedsDistinctStateCount checks the fringe's central
// invariant: folding duplicate states means the queue never holds more
// entries than there are distinct states pushed.
func TestNoDupFringeNeverExceedsDistinctStateCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.IntRange(0, 5), 1, 30).Draw(rt, "keys")

		f := ddo.NewNoDupFringe[int, int](intRanking{}, keyOf)
		distinct := map[int]bool{}
		for _, k := range keys {
			distinct[k] = true
			state := k
			f.Push(ddo.SubProblem[int]{State: &state, UB: k, Value: k})
		}

		require.LessOrEqual(rt, f.Len(), len(distinct))
	})
}
