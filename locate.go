package interp

import (
	"sort"
)

// Location is the result of bracketing a scalar query on one axis: the
// index of the segment's lower endpoint and the normalized offset within
// the segment.
type Location struct {
	// Index is the lower endpoint of the bracketing segment, always in
	// [0, len(axis)-2] for axes with at least two coordinates, and 0 for
	// a single-coordinate axis.
	Index int

	// Frac is the fractional offset t within the segment:
	// (x - axis[Index]) / (axis[Index+1] - axis[Index]).
	// Values outside [0, 1] signal an out-of-range query; the caller
	// decides how to resolve them.
	Frac float64
}

// Bracket locates the grid segment containing x on a strictly increasing
// axis using binary search.
//
// A query equal to an interior coordinate resolves to the segment where
// that coordinate is the lower endpoint (Frac 0); a query equal to the
// last coordinate resolves to the final segment with Frac 1. Out-of-range
// queries return the nearest boundary segment with Frac < 0 or Frac > 1.
// A single-coordinate axis always returns {0, 0}.
func Bracket(axis []float64, x float64) Location {
	n := len(axis)
	if n < 2 {
		return Location{}
	}

	var seg int
	switch i := sort.SearchFloat64s(axis, x); {
	case i >= n-1:
		// At or beyond the last coordinate, or inside the final segment.
		seg = n - 2
	case i > 0 && axis[i] != x:
		// Strictly inside segment (i-1, i).
		seg = i - 1
	default:
		// Exact interior hit, or at/below the first coordinate.
		seg = i
	}

	return Location{
		Index: seg,
		Frac:  (x - axis[seg]) / (axis[seg+1] - axis[seg]),
	}
}

// inRange reports whether x lies within the closed range of axis.
func inRange(axis []float64, x float64) bool {
	return x >= axis[0] && x <= axis[len(axis)-1]
}
