package ddo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/ddbnb/pkg/ddo"
)

func TestFixedWidthIgnoresSubProblem(t *testing.T) {
	w := ddo.NewFixedWidth[int](7)
	assert.Equal(t, 7, w.MaxWidth(&ddo.SubProblem[int]{Path: make([]ddo.Decision, 3)}))
	assert.Equal(t, 7, w.MaxWidth(&ddo.SubProblem[int]{}))
}

func TestNbUnassignedWidthShrinksWithDepth(t *testing.T) {
	w := ddo.NbUnassignedWidth[int]{NbVariables: 5}
	assert.Equal(t, 5, w.MaxWidth(&ddo.SubProblem[int]{}))
	assert.Equal(t, 2, w.MaxWidth(&ddo.SubProblem[int]{Path: make([]ddo.Decision, 3)}))
}

func TestTimesNeverGoesBelowOne(t *testing.T) {
	inner := ddo.NewFixedWidth[int](1)
	w := ddo.Times[int]{Factor: 0, Inner: inner}
	assert.Equal(t, 1, w.MaxWidth(&ddo.SubProblem[int]{}))
}

func TestDivByNeverGoesBelowOne(t *testing.T) {
	inner := ddo.NewFixedWidth[int](3)
	w := ddo.DivBy[int]{Factor: 10, Inner: inner}
	assert.Equal(t, 1, w.MaxWidth(&ddo.SubProblem[int]{}))
}
