package ddo

// BestSolution walks the best-incoming-edge chain from a diagram's best
// terminal node back to its root, returning the decisions in root-to-leaf
// order together with the realized objective value.
func BestSolution[S comparable](c *Compiler[S], d *diagram[S]) (Solution, int, bool) {
	if !d.hasBest || d.bestNode == noNode {
		return nil, 0, false
	}

	var decisions []Decision
	id := d.bestNode
	for {
		n := &c.nodes[id]
		if n.best == noEdge {
			break
		}
		e := &c.edges[n.best]
		decisions = append(decisions, e.decision)
		id = e.from
	}

	// decisions were collected leaf-to-root; reverse in place.
	for i, j := 0, len(decisions)-1; i < j; i, j = i+1, j-1 {
		decisions[i], decisions[j] = decisions[j], decisions[i]
	}
	return Solution(decisions), d.bestValue, true
}

// bestNodeExact reports whether a diagram's recorded best terminal node
// represents a genuinely feasible path, i.e. one whose r-t path never
// crossed a merged (relaxed) node. Restricted diagrams never merge, so
// their best path is always feasible regardless of this flag; relaxed
// diagrams merge nodes whose value is only an over-approximation, so only
// an exact best node's path may be reported as an incumbent solution.
func (c *Compiler[S]) bestNodeExact(d *diagram[S]) bool {
	if !d.hasBest || d.bestNode == noNode {
		return false
	}
	return c.nodes[d.bestNode].exact
}

// suffixValues computes, for every node in the arena touched by d, the
// longest-path value from that node down to a terminal node, by sweeping
// the edge list in reverse creation order. Because edges are appended
// layer by layer during compilation, an edge's destination always has its
// outgoing edges (created during the following layer's expansion) already
// folded in by the time the edge itself is visited.
func (c *Compiler[S]) suffixValues(d *diagram[S]) []int {
	suffix := make([]int, len(c.nodes))
	for i := range suffix {
		suffix[i] = unsetBound
	}
	if last := d.lastLayer(); last != nil {
		for _, id := range last.nodes {
			suffix[id] = 0
		}
	}
	for i := len(c.edges) - 1; i >= 0; i-- {
		e := &c.edges[i]
		if suffix[e.to] == unsetBound {
			continue
		}
		if candidate := e.cost + suffix[e.to]; candidate > suffix[e.from] {
			suffix[e.from] = candidate
		}
	}
	return suffix
}

// pathTo reconstructs the decisions from the diagram's root to node id,
// following best-incoming edges, the same way BestSolution does for the
// overall best terminal.
func (c *Compiler[S]) pathTo(id NodeID) []Decision {
	var decisions []Decision
	for {
		n := &c.nodes[id]
		if n.best == noEdge {
			break
		}
		e := &c.edges[n.best]
		decisions = append(decisions, e.decision)
		id = e.from
	}
	for i, j := 0, len(decisions)-1; i < j; i, j = i+1, j-1 {
		decisions[i], decisions[j] = decisions[j], decisions[i]
	}
	return decisions
}

// ExactCutset extracts the sub-problems that re-seed the branch-and-bound
// fringe after a relaxed compilation: the frontier between what the
// diagram knows exactly and what it only approximated through merges.
// parentUB bounds every returned sub-problem's UB from above, since a
// child can never be more promising than the sub-problem it was spawned
// from.
func (c *Compiler[S]) ExactCutset(d *diagram[S], parentUB int, kind CutsetType, basePath []Decision, baseDepth int) []SubProblem[S] {
	suffix := c.suffixValues(d)

	var cutIDs []NodeID
	switch kind {
	case LastExactLayer:
		cutIDs = c.lastExactLayerNodes(d)
	default:
		cutIDs = c.frontierNodes(d)
	}

	out := make([]SubProblem[S], 0, len(cutIDs))
	for layerIdx, id := range cutIDs {
		_ = layerIdx
		n := &c.nodes[id]
		ub := n.value + suffix[id]
		if ub > parentUB {
			ub = parentUB
		}
		local := c.pathTo(id)
		path := append(append([]Decision(nil), basePath...), local...)
		out = append(out, SubProblem[S]{
			State: n.state,
			Value: n.value,
			Path:  path,
			UB:    ub,
			Depth: baseDepth + len(local),
		})
	}
	return out
}

// lastExactLayerNodes returns the ids of the last layer before the first
// layer that holds an inexact node; every node in it is exact.
func (c *Compiler[S]) lastExactLayerNodes(d *diagram[S]) []NodeID {
	lastExact := -1
	for i, l := range d.layers {
		allExact := true
		for _, id := range l.nodes {
			if !c.nodes[id].exact {
				allExact = false
				break
			}
		}
		if allExact {
			lastExact = i
		} else {
			break
		}
	}
	if lastExact < 0 {
		return nil
	}
	return append([]NodeID(nil), d.layers[lastExact].nodes...)
}

// frontierNodes returns every exact node that has at least one outgoing
// edge into an inexact node, i.e. the boundary the relaxation first gave up
// exactness at. This can be a narrower cutset than the last exact layer.
func (c *Compiler[S]) frontierNodes(d *diagram[S]) []NodeID {
	hasInexactChild := make(map[NodeID]bool)
	for _, e := range c.edges {
		if !c.nodes[e.to].exact {
			hasInexactChild[e.from] = true
		}
	}

	var out []NodeID
	for _, l := range d.layers {
		for _, id := range l.nodes {
			if c.nodes[id].exact && hasInexactChild[id] {
				out = append(out, id)
			}
		}
	}
	return out
}
