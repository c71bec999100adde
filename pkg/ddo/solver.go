package ddo

import (
	"context"
	"sync"

	"github.com/gitrdm/ddbnb/internal/poolstats"
	"golang.org/x/sync/errgroup"
)

// Solver runs the parallel branch-and-bound search that maximizes a
// Problem's objective over its decision diagram. A Solver is built once per
// problem instance via NewSolver and its Maximize method run once; it is
// not meant to be reused across unrelated problem instances.
type Solver[S comparable] struct {
	problem Problem[S]
	relax   Relaxation[S]
	ranking StateRanking[S]
	width   WidthHeuristic[S]
	cfg     config[S]

	mu           sync.Mutex
	cond         *sync.Cond
	fringe       Fringe[S]
	primal       int
	hasPrimal    bool
	primalPath   Solution
	busy         int
	aborted      bool
	abortReason  error
	explored     int
	stats        *poolstats.Stats
}

// NewSolver wires a Problem together with the Relaxation, StateRanking and
// WidthHeuristic its decision diagrams need, applying any Options on top of
// the defaults (runtime.NumCPU workers, a SimpleFringe, no cutoff, no
// dominance, LastExactLayer cutsets).
func NewSolver[S comparable](problem Problem[S], relax Relaxation[S], ranking StateRanking[S], width WidthHeuristic[S], opts ...Option[S]) *Solver[S] {
	cfg := defaultConfig[S](ranking)
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Solver[S]{
		problem: problem,
		relax:   relax,
		ranking: ranking,
		width:   width,
		cfg:     cfg,
		fringe:  cfg.fringe,
		primal:  unsetBound,
		stats:   poolstats.New(),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Stats returns a point-in-time snapshot of the search's telemetry. Safe to
// call while Maximize is still running concurrently.
func (s *Solver[S]) Stats() poolstats.Snapshot {
	return s.stats.Snapshot()
}

func (s *Solver[S]) trace(msg string) {
	if s.cfg.trace != nil {
		s.cfg.trace(msg)
	}
}

// Maximize runs the search to completion (or until cutoff/ctx cancellation
// fires) and returns the best solution found together with a Completion
// describing whether it is a proven optimum.
func (s *Solver[S]) Maximize(ctx context.Context) (Completion, Solution, int) {
	root := s.problem.InitialState()
	s.fringe.Push(SubProblem[S]{
		State: &root,
		Value: s.problem.InitialValue(),
		UB:    maxInt,
		Depth: 0,
	})

	g, ctx := errgroup.WithContext(ctx)
	cutoff := s.cfg.cutoff
	if cutoff == nil {
		cutoff = NoCutoff{}
	}
	ctxCutoff := NewContextCutoff(ctx)

	for i := 0; i < s.cfg.numWorkers; i++ {
		g.Go(func() error {
			return s.worker(combinedCutoff{cutoff, ctxCutoff})
		})
	}

	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	isExact := err == nil && !s.aborted
	if !s.hasPrimal {
		return Completion{IsExact: isExact}, nil, 0
	}
	best := s.primal
	return Completion{IsExact: isExact, BestValue: &best}, s.primalPath, s.primal
}

// combinedCutoff stops as soon as any of its members says to stop.
type combinedCutoff []Cutoff

func (c combinedCutoff) MustStop() bool {
	for _, cutoff := range c {
		if cutoff != nil && cutoff.MustStop() {
			return true
		}
	}
	return false
}

// worker runs one goroutine's share of the branch-and-bound loop: pop the
// most promising sub-problem under the single critical section, release
// the lock to do the expensive diagram compilation, then re-take the lock
// to fold the results (incumbent update, cutset re-insertion) back in.
// Exactly the single-mutex-plus-condvar shape the spec calls for, scaled to
// an arbitrary worker count via sync.Cond broadcast instead of a bespoke
// two-thread handshake.
func (s *Solver[S]) worker(cutoff Cutoff) error {
	compiler := NewCompiler[S]()

	for {
		sub, ok, err := s.nextSubProblem()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := s.explore(compiler, sub, cutoff); err != nil {
			s.mu.Lock()
			s.aborted = true
			s.abortReason = err
			s.busy--
			s.cond.Broadcast()
			s.mu.Unlock()
			return err
		}
	}
}

// nextSubProblem pops the next sub-problem worth exploring, blocking until
// one is available, the search is provably finished (fringe empty and no
// worker busy), or an abort has been signalled. Sub-problems whose UB can
// no longer beat the incumbent are discarded without ever counting as busy
// work.
func (s *Solver[S]) nextSubProblem() (SubProblem[S], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if s.aborted {
			return SubProblem[S]{}, false, s.abortReason
		}
		for s.fringe.Len() > 0 {
			sub, _ := s.fringe.Pop()
			if s.hasPrimal && sub.UB <= s.primal {
				continue // dominated by the incumbent; drop without marking busy
			}
			s.busy++
			s.explored++
			s.stats.RecordExplored()
			return sub, true, nil
		}
		if s.busy == 0 {
			return SubProblem[S]{}, false, nil
		}
		s.cond.Wait()
	}
}

// explore compiles a restricted diagram to look for a better incumbent and,
// if the sub-problem isn't already solved exactly, a relaxed diagram to
// bound it and spawn the exact cutset that replaces it on the fringe.
func (s *Solver[S]) explore(c *Compiler[S], sub SubProblem[S], cutoff Cutoff) error {
	defer s.finishBusy()

	best := s.currentPrimal()

	restricted, err := c.Compile(CompilationInput[S]{
		Type:           Restricted,
		Problem:        s.problem,
		Relaxation:     s.relax,
		Ranking:        s.ranking,
		Width:          s.width,
		Dominance:      s.cfg.dominance,
		Residual:       sub,
		BestKnownValue: best,
		Stats:          s.stats,
	}, cutoff)
	if err != nil {
		return err
	}

	if value, ok := s.updateIncumbent(c, restricted); ok {
		s.trace("new incumbent")
		best = value
	}

	if restricted.exact {
		return nil
	}

	relaxed, err := c.Compile(CompilationInput[S]{
		Type:           Relaxed,
		Problem:        s.problem,
		Relaxation:     s.relax,
		Ranking:        s.ranking,
		Width:          s.width,
		Dominance:      s.cfg.dominance,
		Residual:       sub,
		BestKnownValue: best,
		CutsetType:     s.cfg.cutsetType,
		Stats:          s.stats,
	}, cutoff)
	if err != nil {
		return err
	}

	if c.bestNodeExact(relaxed) {
		if value, ok := s.updateIncumbent(c, relaxed); ok {
			s.trace("new incumbent")
			best = value
		}
	}

	if !relaxed.hasBest || relaxed.bestValue <= best {
		return nil // infeasible, or relaxed upper bound can't beat the incumbent; prune
	}

	cutset := c.ExactCutset(relaxed, sub.UB, s.cfg.cutsetType, sub.Path, sub.Depth)
	s.pushCutset(cutset)
	return nil
}

func (s *Solver[S]) currentPrimal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPrimal {
		return unsetBound
	}
	return s.primal
}

func (s *Solver[S]) updateIncumbent(c *Compiler[S], d *diagram[S]) (int, bool) {
	path, value, ok := BestSolution(c, d)
	if !ok {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPrimal || value > s.primal {
		s.hasPrimal = true
		s.primal = value
		s.primalPath = path
		s.stats.RecordIncumbentUpdate()
		return value, true
	}
	return s.primal, false
}

func (s *Solver[S]) pushCutset(subs []SubProblem[S]) {
	s.stats.RecordCutsetNodes(len(subs))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range subs {
		s.fringe.Push(sub)
	}
}

func (s *Solver[S]) finishBusy() {
	s.mu.Lock()
	s.busy--
	s.cond.Broadcast()
	s.mu.Unlock()
}

// HasOpenSubProblems reports whether the fringe still holds unexplored
// sub-problems, i.e. whether the last Maximize result (if any) could still
// be improved by letting the search run longer.
func (s *Solver[S]) HasOpenSubProblems() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fringe.Len() > 0
}

// Explored returns the number of sub-problems popped off the fringe and
// compiled so far.
func (s *Solver[S]) Explored() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explored
}
