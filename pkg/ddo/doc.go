// Package ddo provides a generic, parallel branch-and-bound solver for
// discrete maximization problems built around bounded-width decision
// diagrams (DDs).
//
// A client formulates their problem as a dynamic program: states,
// transitions, transition costs, and a variable ordering (the Problem
// contract). They additionally supply a Relaxation that knows how to merge
// several states into one conservative over-approximation, plus heuristics
// for state ranking, layer width, and optional cutoff. ddo then compiles
// layered decision diagrams from successive sub-problems and drives a
// branch-and-bound search over them until it can either prove optimality or
// report the best solution found along with an optimality gap.
//
// This implementation is designed for production use with:
//   - Thread-safe branch-and-bound driven by a fixed goroutine pool
//   - Thread-local diagram arenas reused across sub-problems
//   - A single critical section (mutex + condition variable) guarding the
//     fringe, the primal bound, and the busy-worker count
//   - Cooperative cancellation via a Cutoff hook polled between DD layers
package ddo
