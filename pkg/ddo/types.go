package ddo

import "fmt"

// Variable identifies one of the problem's n decision variables, numbered
// 0..problem.NbVariables()-1.
type Variable int

// Decision assigns Value to Variable. Values are signed and problem-specific.
type Decision struct {
	Variable Variable
	Value    int
}

func (d Decision) String() string {
	return fmt.Sprintf("x%d=%d", d.Variable, d.Value)
}

// Solution is the ordered sequence of decisions that realizes an objective
// value, from the overall root to a terminal.
type Solution []Decision

// unsetBound tags an upper bound that has not been computed yet. Using a
// dedicated sentinel (rather than relying on overflow behavior around
// math.MaxInt/math.MinInt) avoids wrap-around when a rough upper bound is
// added to an accumulated value.
const unsetBound = minInt

// SubProblem is one residual sub-space of the overall search: a state
// reached along Path, with the accumulated objective contribution Value and
// an upper bound UB on the best value attainable from State. The invariant
// UB >= the true attainable value from State must hold at all times.
type SubProblem[S comparable] struct {
	State *S
	Value int
	Path  []Decision
	UB    int
	Depth int
}

func (s SubProblem[S]) clonePath() []Decision {
	p := make([]Decision, len(s.Path))
	copy(p, s.Path)
	return p
}

// Threshold supports optional dominance pruning: it records, for one
// dominance key, the component-wise best coordinates and accumulated value
// seen among every state sharing that key, and whether any of them has
// already been expanded.
type Threshold struct {
	Coordinates []int
	Value       int
	Explored    bool
}

// Completion reports the outcome of a maximization attempt. IsExact is true
// iff no cutoff fired and no abort occurred, in which case BestValue (if
// present) is a proven optimum; otherwise BestValue is merely the best value
// known at the time the search stopped.
type Completion struct {
	IsExact   bool
	BestValue *int
}
