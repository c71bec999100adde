package ddo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/ddbnb/pkg/ddo"
)

// capacityDominance treats two states with the same depth as comparable:
// the one with more remaining capacity dominates one with less, provided
// it was reached with at least as good a value.
type capacityDominance struct{}

type capState struct {
	depth, capacity int
}

func (capacityDominance) Key(s *capState) (any, bool)  { return s.depth, true }
func (capacityDominance) NbDimensions(*capState) int    { return 1 }
func (capacityDominance) Coordinate(s *capState, _ int) int { return s.capacity }
func (capacityDominance) UseValue() bool                { return true }

func TestDominanceChecksSkipWorseStatesOnceMarkedExplored(t *testing.T) {
	dom := ddo.NewSimpleDominanceChecker[capState](capacityDominance{})

	a := capState{depth: 1, capacity: 20}
	dominated := dom.UpdateAndCheck(&a, 100)
	assert.False(t, dominated, "first state at this key is never dominated")
	dom.MarkExplored(&a, 100)

	b := capState{depth: 1, capacity: 20}
	dominated = dom.UpdateAndCheck(&b, 90)
	assert.True(t, dominated, "same key, worse value, after the first was explored: dominated")

	c := capState{depth: 1, capacity: 20}
	dominated = dom.UpdateAndCheck(&c, 150)
	assert.False(t, dominated, "a strictly better value at the same key is never dominated")
}

// twoDimState carries two independent resources at the same depth, so a
// dominance check over both coordinates can tell apart states that a
// scalar-value-only check would conflate.
type twoDimState struct {
	depth, fuel, cargo int
}

type twoDimDominance struct{}

func (twoDimDominance) Key(s *twoDimState) (any, bool) { return s.depth, true }
func (twoDimDominance) NbDimensions(*twoDimState) int  { return 2 }
func (twoDimDominance) Coordinate(s *twoDimState, i int) int {
	if i == 0 {
		return s.fuel
	}
	return s.cargo
}
func (twoDimDominance) UseValue() bool { return false }

func TestDominanceRequiresEveryCoordinateToDominate(t *testing.T) {
	dom := ddo.NewSimpleDominanceChecker[twoDimState](twoDimDominance{})

	a := twoDimState{depth: 1, fuel: 10, cargo: 10}
	dom.UpdateAndCheck(&a, 0)
	dom.MarkExplored(&a, 0)

	worseInBoth := twoDimState{depth: 1, fuel: 5, cargo: 5}
	assert.True(t, dom.UpdateAndCheck(&worseInBoth, 0), "worse in every coordinate: dominated")

	betterFuelWorseCargo := twoDimState{depth: 1, fuel: 20, cargo: 1}
	assert.False(t, dom.UpdateAndCheck(&betterFuelWorseCargo, 0), "better in one coordinate, worse in another: not dominated")
}

func TestDominanceDifferentKeysNeverInteract(t *testing.T) {
	dom := ddo.NewSimpleDominanceChecker[capState](capacityDominance{})
	a := capState{depth: 1, capacity: 20}
	dom.UpdateAndCheck(&a, 100)
	dom.MarkExplored(&a, 100)

	b := capState{depth: 2, capacity: 5}
	assert.False(t, dom.UpdateAndCheck(&b, 1))
}
