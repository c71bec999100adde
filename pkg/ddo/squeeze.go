package ddo

import "sort"

// CutsetType selects which layer of a relaxed diagram supplies the exact
// cutset handed back to the branch-and-bound fringe.
type CutsetType int

const (
	// LastExactLayer cuts at the last layer compiled before the first
	// merge happened; every node in it is exact.
	LastExactLayer CutsetType = iota
	// Frontier cuts at the set of exact nodes with at least one relaxed
	// child, which can be narrower than the last exact layer.
	Frontier
)

// rankNodes orders ids least-promising-first using ranking over node
// states, tie-broken on NodeID so the squeeze is deterministic: within one
// compilation a single thread builds the arena in insertion order, so
// NodeID order is reproducible run to run.
func rankNodes[S comparable](c *Compiler[S], ids []NodeID, ranking StateRanking[S]) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := &c.nodes[ids[i]], &c.nodes[ids[j]]
		if cmp := ranking.Compare(a.state, b.state); cmp != 0 {
			return cmp < 0
		}
		return ids[i] < ids[j]
	})
}

// restrict drops the len(next.nodes)-maxWidth least-promising nodes from
// next, discarding them (and the paths that reached them) entirely. The
// surviving diagram's best path is still a feasible solution, just not
// necessarily an optimal one.
func restrict[S comparable](c *Compiler[S], next *layer[S], ranking StateRanking[S], maxWidth int) {
	rankNodes(c, next.nodes, ranking)

	drop := len(next.nodes) - maxWidth
	dropped := next.nodes[:drop]
	kept := next.nodes[drop:]

	for _, id := range dropped {
		delete(next.index, *c.nodes[id].state)
	}
	next.nodes = append([]NodeID(nil), kept...)
}

// relax merges the len(next.nodes)-maxWidth+1 least-promising nodes into a
// single new node via relaxation.Merge, redirecting every edge that used to
// land on one of the merged nodes onto the new one with its cost adjusted
// by relaxation.Relax. The new node (and every node later reached through
// it) is marked inexact.
func relax[S comparable](c *Compiler[S], next *layer[S], rel Relaxation[S], ranking StateRanking[S], maxWidth int) {
	if maxWidth < 1 {
		maxWidth = 1
	}
	rankNodes(c, next.nodes, ranking)

	mergeCount := len(next.nodes) - maxWidth + 1
	toMerge := next.nodes[:mergeCount]
	kept := next.nodes[mergeCount:]

	states := make([]*S, len(toMerge))
	for i, id := range toMerge {
		states[i] = c.nodes[id].state
	}
	merged := rel.Merge(states)

	newID := c.addNode(&merged, unsetBound, unsetBound, false)
	newNode := &c.nodes[newID]

	for _, oldID := range toMerge {
		old := &c.nodes[oldID]
		for eid := old.firstInbound; eid != noEdge; {
			e := &c.edges[eid]
			nextInChain := e.nextInbound

			from := &c.nodes[e.from]
			newCost := rel.Relax(from.state, old.state, &merged, e.decision, e.cost)
			candidate := from.value + newCost

			e.to = newID
			e.cost = newCost
			e.nextInbound = newNode.firstInbound
			newNode.firstInbound = eid

			if candidate > newNode.value {
				newNode.value = candidate
				newNode.best = eid
			}
			if old.ub > newNode.ub {
				newNode.ub = old.ub
			}

			eid = nextInChain
		}
		delete(next.index, *old.state)
	}

	result := append([]NodeID(nil), kept...)
	result = append(result, newID)
	next.nodes = result
	next.index[merged] = newID
}
