package ddo

import (
	"errors"
	"math"
)

// Sentinel errors returned by the compiler and the solver. Following the
// convention used throughout the reference corpus (see e.g. gokando's
// fd.go Err* block), these are plain package-level errors rather than a
// bespoke error type hierarchy.
var (
	// ErrCutoffOccurred is returned by the compiler when the configured
	// Cutoff fired while unrolling a layer. The engine captures it as the
	// abort reason and terminates the search gracefully.
	ErrCutoffOccurred = errors.New("ddo: cutoff occurred during compilation")
)

const (
	minInt = math.MinInt
	maxInt = math.MaxInt
)
