package ddo

import "github.com/gitrdm/ddbnb/internal/poolstats"

// CompilationType selects which flavor of layered diagram a Compiler
// produces from a residual sub-problem.
type CompilationType int

const (
	// Exact compiles the full diagram, without restriction or relaxation.
	// It is only affordable on the root sub-problem or on sub-problems
	// small enough that the diagram never exceeds the configured width.
	Exact CompilationType = iota
	// Restricted drops low-ranked nodes when a layer exceeds its width,
	// yielding a diagram whose best path is a valid (but possibly
	// suboptimal) solution.
	Restricted
	// Relaxed merges low-ranked nodes when a layer exceeds its width,
	// yielding a diagram whose best path is a valid upper bound on the
	// sub-problem's true optimum, together with an exact cutset.
	Relaxed
)

// CompilationInput bundles everything a Compiler needs to turn one residual
// sub-problem into a diagram.
type CompilationInput[S comparable] struct {
	Type            CompilationType
	Problem         Problem[S]
	Relaxation      Relaxation[S]
	Ranking         StateRanking[S]
	Width           WidthHeuristic[S]
	Dominance       *SimpleDominanceChecker[S]
	Residual        SubProblem[S]
	BestKnownValue  int // current incumbent; used for rough-upper-bound pruning
	CutsetType      CutsetType
	Stats           *poolstats.Stats // optional; nil disables telemetry
}

// Compiler turns residual sub-problems into layered decision diagrams. It
// owns a thread-local arena of nodes and edges, reused (and reset) across
// calls to Compile, so that a pool worker never allocates a fresh arena per
// sub-problem.
type Compiler[S comparable] struct {
	nodes []node[S]
	edges []edge[S]
	diag  diagram[S]
}

// NewCompiler creates an empty Compiler. Each worker goroutine in the
// parallel engine owns exactly one, never shared across goroutines.
func NewCompiler[S comparable]() *Compiler[S] {
	return &Compiler[S]{}
}

func (c *Compiler[S]) reset() {
	c.nodes = c.nodes[:0]
	c.edges = c.edges[:0]
	c.diag = diagram[S]{}
}

func (c *Compiler[S]) addNode(state *S, value, ub int, exact bool) NodeID {
	id := NodeID(len(c.nodes))
	c.nodes = append(c.nodes, node[S]{state: state, value: value, ub: ub, exact: exact, firstInbound: noEdge, best: noEdge})
	return id
}

func (c *Compiler[S]) addEdge(from, to NodeID, d Decision, cost int) EdgeID {
	id := EdgeID(len(c.edges))
	n := &c.nodes[to]
	c.edges = append(c.edges, edge[S]{from: from, to: to, decision: d, cost: cost, nextInbound: n.firstInbound})
	n.firstInbound = id
	return id
}

// Compile builds a diagram for in.Residual according to in.Type, stopping
// early with ErrCutoffOccurred if cutoff fires between two layers. The
// returned diagram is only valid until the next call to Compile on the same
// Compiler.
func (c *Compiler[S]) Compile(in CompilationInput[S], cutoff Cutoff) (*diagram[S], error) {
	c.reset()

	if in.Stats != nil {
		switch in.Type {
		case Restricted:
			in.Stats.RecordRestrictedCompile()
		case Relaxed:
			in.Stats.RecordRelaxedCompile()
		}
	}

	rootState := in.Residual.State
	root := c.addNode(rootState, in.Residual.Value, in.Residual.UB, true)
	c.diag.layers = append(c.diag.layers, newLayer[S]())
	c.diag.layers[0].nodes = append(c.diag.layers[0].nodes, root)
	c.diag.layers[0].index[*rootState] = root
	c.diag.exact = true

	depth := in.Residual.Depth

	for {
		cur := &c.diag.layers[len(c.diag.layers)-1]
		states := make([]*S, len(cur.nodes))
		for i, id := range cur.nodes {
			states[i] = c.nodes[id].state
		}

		v, ok := in.Problem.NextVariable(depth, states)
		if !ok {
			break
		}
		if cutoff != nil && cutoff.MustStop() {
			return nil, ErrCutoffOccurred
		}

		next, err := c.expandLayer(in, v, cur)
		if err != nil {
			return nil, err
		}
		if len(next.nodes) == 0 {
			// Every transition out of this layer was pruned (by bound or
			// dominance): the residual sub-problem is infeasible from
			// here, not a compiler error. Record the empty terminal
			// layer and stop; computeBest leaves hasBest false, and the
			// caller drops the sub-problem without reporting a solution.
			c.diag.layers = append(c.diag.layers, next)
			c.computeBest()
			return &c.diag, nil
		}

		if maxW := widthOf(in.Width, &in.Residual); len(next.nodes) > maxW && maxW > 0 {
			switch in.Type {
			case Restricted:
				restrict(c, &next, in.Ranking, maxW)
				c.diag.exact = false
			case Relaxed:
				relax(c, &next, in.Relaxation, in.Ranking, maxW)
				c.diag.exact = false
			}
		}

		c.diag.layers = append(c.diag.layers, next)
		depth++
	}

	c.computeBest()
	return &c.diag, nil
}

func widthOf[S comparable](w WidthHeuristic[S], sub *SubProblem[S]) int {
	if w == nil {
		return 0
	}
	return w.MaxWidth(sub)
}

// expandLayer applies every Decision in the domain of v to every node of
// cur, folding transitions that land on the same state within the next
// layer onto a single node (the standard DD merge-by-state rule).
func (c *Compiler[S]) expandLayer(in CompilationInput[S], v Variable, cur *layer[S]) (layer[S], error) {
	next := newLayer[S]()

	for _, fromID := range cur.nodes {
		from := &c.nodes[fromID]
		if in.Dominance != nil {
			in.Dominance.MarkExplored(from.state, from.value)
		}
		if !isImpactedBy(in.Problem, v, from.state) {
			// Variable doesn't matter to this state: the node moves
			// forward unchanged, as if a single trivial decision had
			// been taken.
			d := Decision{Variable: v}
			c.mergeInto(&next, in, from.state, from.value, from.ub, from.exact, fromID, d, 0)
			continue
		}
		in.Problem.ForEachInDomain(v, from.state, func(d Decision) {
			newState := in.Problem.Transition(from.state, d)
			cost := in.Problem.TransitionCost(from.state, d)
			newValue := from.value + cost
			newUB := from.ub
			if rub := fastUpperBound(in.Relaxation, &newState); rub != maxInt && newValue+rub < newUB {
				newUB = newValue + rub
			}
			if newUB <= in.BestKnownValue {
				if in.Stats != nil {
					in.Stats.RecordPrunedByBound()
				}
				return // rough-upper-bound pruning: can never beat the incumbent
			}
			if in.Dominance != nil && in.Dominance.UpdateAndCheck(&newState, newValue) {
				if in.Stats != nil {
					in.Stats.RecordPrunedByDominance()
				}
				return // dominated by an already-explored equivalent state
			}
			c.mergeInto(&next, in, &newState, newValue, newUB, from.exact, fromID, d, cost)
		})
	}

	return next, nil
}

func (c *Compiler[S]) mergeInto(next *layer[S], in CompilationInput[S], state *S, value, ub int, exact bool, fromID NodeID, d Decision, cost int) {
	if existing, ok := next.index[*state]; ok {
		eid := c.addEdge(fromID, existing, d, cost)
		e := &c.nodes[existing]
		if value > e.value {
			e.value = value
			e.best = eid
		}
		if ub > e.ub {
			e.ub = ub
		}
		e.exact = e.exact && exact
		return
	}
	id := c.addNode(state, value, ub, exact)
	next.nodes = append(next.nodes, id)
	next.index[*state] = id
	eid := c.addEdge(fromID, id, d, cost)
	c.nodes[id].best = eid
}

// computeBest scans the terminal layer for the node with the largest value,
// recording it as the diagram's best solution.
func (c *Compiler[S]) computeBest() {
	last := c.diag.lastLayer()
	if last == nil {
		return
	}
	best := noNode
	bestValue := unsetBound
	for _, id := range last.nodes {
		if v := c.nodes[id].value; !c.diag.hasBest || v > bestValue {
			best = id
			bestValue = v
			c.diag.hasBest = true
		}
	}
	c.diag.bestNode = best
	c.diag.bestValue = bestValue
}
