// Package poolstats collects lightweight, lock-free telemetry for the
// branch-and-bound worker pool: how many sub-problems were explored, how
// often the incumbent improved, and how much pruning happened and why.
package poolstats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats is safe for concurrent use by every worker goroutine in a Solver's
// pool; every counter is updated with a single atomic instruction so
// recording telemetry never contends with the search itself.
type Stats struct {
	startTime time.Time

	subProblemsExplored int64
	incumbentUpdates     int64
	cutsetNodesSpawned   int64
	prunedByBound        int64
	prunedByDominance    int64
	restrictedCompiles   int64
	relaxedCompiles      int64
}

// New creates a Stats collector, starting its clock immediately.
func New() *Stats {
	return &Stats{startTime: time.Now()}
}

func (s *Stats) RecordExplored()          { atomic.AddInt64(&s.subProblemsExplored, 1) }
func (s *Stats) RecordIncumbentUpdate()   { atomic.AddInt64(&s.incumbentUpdates, 1) }
func (s *Stats) RecordCutsetNodes(n int)  { atomic.AddInt64(&s.cutsetNodesSpawned, int64(n)) }
func (s *Stats) RecordPrunedByBound()     { atomic.AddInt64(&s.prunedByBound, 1) }
func (s *Stats) RecordPrunedByDominance() { atomic.AddInt64(&s.prunedByDominance, 1) }
func (s *Stats) RecordRestrictedCompile() { atomic.AddInt64(&s.restrictedCompiles, 1) }
func (s *Stats) RecordRelaxedCompile()    { atomic.AddInt64(&s.relaxedCompiles, 1) }

// Snapshot is a point-in-time, race-free copy of every counter.
type Snapshot struct {
	Elapsed              time.Duration
	SubProblemsExplored  int64
	IncumbentUpdates     int64
	CutsetNodesSpawned   int64
	PrunedByBound        int64
	PrunedByDominance    int64
	RestrictedCompiles   int64
	RelaxedCompiles      int64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Elapsed:             time.Since(s.startTime),
		SubProblemsExplored: atomic.LoadInt64(&s.subProblemsExplored),
		IncumbentUpdates:    atomic.LoadInt64(&s.incumbentUpdates),
		CutsetNodesSpawned:  atomic.LoadInt64(&s.cutsetNodesSpawned),
		PrunedByBound:       atomic.LoadInt64(&s.prunedByBound),
		PrunedByDominance:   atomic.LoadInt64(&s.prunedByDominance),
		RestrictedCompiles:  atomic.LoadInt64(&s.restrictedCompiles),
		RelaxedCompiles:     atomic.LoadInt64(&s.relaxedCompiles),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"poolstats{elapsed=%v explored=%d incumbent_updates=%d cutset_nodes=%d pruned_bound=%d pruned_dominance=%d restricted=%d relaxed=%d}",
		s.Elapsed, s.SubProblemsExplored, s.IncumbentUpdates, s.CutsetNodesSpawned,
		s.PrunedByBound, s.PrunedByDominance, s.RestrictedCompiles, s.RelaxedCompiles,
	)
}
