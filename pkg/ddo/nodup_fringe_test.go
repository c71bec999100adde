package ddo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ddbnb/pkg/ddo"
)

func keyOf(s *int) int { return *s }

func TestNoDupFringeFoldsSameStateKeepingBestValue(t *testing.T) {
	f := ddo.NewNoDupFringe[int, int](intRanking{}, keyOf)

	a := 7
	f.Push(ddo.SubProblem[int]{State: &a, Value: 10, UB: 100, Path: []ddo.Decision{{Variable: 0, Value: 1}}})
	require.Equal(t, 1, f.Len())

	b := 7
	f.Push(ddo.SubProblem[int]{State: &b, Value: 20, UB: 80, Path: []ddo.Decision{{Variable: 0, Value: 0}}})
	require.Equal(t, 1, f.Len(), "pushing the same state again folds instead of growing the queue")

	top, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, 20, top.Value, "fold keeps the better value")
	assert.Equal(t, 100, top.UB, "fold keeps the looser (max) upper bound")
	assert.Equal(t, 0, top.Path[0].Value, "fold keeps the path that reaches the better value")
}

func TestNoDupFringeDistinctStatesBothSurvive(t *testing.T) {
	f := ddo.NewNoDupFringe[int, int](intRanking{}, keyOf)
	a, b := 1, 2
	f.Push(ddo.SubProblem[int]{State: &a, Value: 1, UB: 50})
	f.Push(ddo.SubProblem[int]{State: &b, Value: 2, UB: 60})
	assert.Equal(t, 2, f.Len())
}

func TestNoDupFringePopMaintainsHeapOrder(t *testing.T) {
	f := ddo.NewNoDupFringe[int, int](intRanking{}, keyOf)
	states := []int{1, 2, 3, 4, 5, 6, 7}
	for i, ub := range []int{40, 10, 90, 20, 80, 30, 70} {
		s := states[i]
		f.Push(ddo.SubProblem[int]{State: &s, UB: ub})
	}

	var seen []int
	for f.Len() > 0 {
		sub, _ := f.Pop()
		seen = append(seen, sub.UB)
	}
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i-1], seen[i])
	}
}
