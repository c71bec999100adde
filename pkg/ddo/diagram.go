package ddo

// NodeID indexes a node in a Compiler's arena. The zero value is a valid
// index (the first node added), so noNode is used as an explicit "absent"
// marker instead.
type NodeID int

// EdgeID indexes an edge in a Compiler's arena.
type EdgeID int

const (
	noNode NodeID = -1
	noEdge EdgeID = -1
)

// node is one vertex of a layered decision diagram: a state reached at some
// accumulated Value, together with the best known UB on the value
// attainable from it and the head of its inbound-edge list (edges pointing
// at this node, threaded through edge.nextInbound so a node needs only one
// pointer regardless of in-degree).
type node[S comparable] struct {
	state        *S
	value        int
	ub           int
	exact        bool
	firstInbound EdgeID
	best         EdgeID
}

// edge is one arc of the diagram: the Decision taken to reach `to` from
// `from`, the marginal cost of that decision, and the next edge in `to`'s
// inbound list.
type edge[S comparable] struct {
	from        NodeID
	to           NodeID
	decision    Decision
	cost        int
	nextInbound EdgeID
}

// layer is one level of the diagram: the ids of the nodes present at that
// depth, plus a map from state to its single node so that two paths reaching the
// same state within a layer merge onto a single node, per the spec's
// requirement that State support equality.
type layer[S comparable] struct {
	nodes []NodeID
	index map[S]NodeID
}

func newLayer[S comparable]() layer[S] {
	return layer[S]{index: make(map[S]NodeID)}
}

// diagram is the compiled result of one Compiler.Compile call: an ordered
// sequence of layers from the residual's root to a terminal layer, plus
// whether the compilation is exact (no restriction or relaxation happened)
// and which terminal node realizes the best value found.
type diagram[S comparable] struct {
	layers     []layer[S]
	exact      bool
	bestNode   NodeID
	bestValue  int
	hasBest    bool
}

func (d *diagram[S]) root() NodeID {
	if len(d.layers) == 0 || len(d.layers[0].nodes) == 0 {
		return noNode
	}
	return d.layers[0].nodes[0]
}

func (d *diagram[S]) lastLayer() *layer[S] {
	if len(d.layers) == 0 {
		return nil
	}
	return &d.layers[len(d.layers)-1]
}
