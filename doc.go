// Package interp provides fast interpolation on N-dimensional
// rectilinear grids in pure Go.
//
// A rectilinear grid is defined by one independent, strictly increasing
// coordinate axis per dimension, with a sample value stored at every
// combination of axis indices. The package computes values at arbitrary
// query points inside the grid and offers configurable behavior for
// points outside it.
//
// # Features
//
//   - Multilinear, nearest, left-nearest and right-nearest strategies,
//     plus an interface for user-defined strategies
//   - Out-of-range policies: error, fixed fill value, clamp, periodic
//     wrap, and native linear extrapolation
//   - Dedicated 1-D/2-D/3-D code paths and a generic N-D path with
//     optional SIMD acceleration via github.com/tphakala/simd
//   - Owned or borrowed value storage, so large sample arrays can be
//     shared with the caller without copying
//   - Structured JSON serialization of grids, strategies and policies
//   - Allocation-light O(N log n) queries with no internal locking
//
// # Quick Start
//
// One-dimensional linear interpolation:
//
//	in, err := interp.New1D(
//	    []float64{0, 1, 2, 3},
//	    []float64{0, 1, 4, 9},
//	    interp.Linear{},
//	    interp.ExtrapolateError,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := in.Interpolate([]float64{2.5}) // 6.5
//
// Two-dimensional grids accept nested rows or a gonum matrix:
//
//	in, err := interp.New2D(
//	    []float64{0, 1},          // x
//	    []float64{0, 1},          // y
//	    [][]float64{{0, 1}, {1, 2}},
//	    interp.Linear{},
//	    interp.ExtrapolateClamp,
//	)
//
// Arbitrary dimensionality uses a flat row-major value slice:
//
//	in, err := interp.NewND(grid, values, interp.Linear{}, interp.ExtrapolateError)
//
// # Strategies
//
//   - [Linear]: blends the 2^N corners of the bracketing cell with
//     per-axis weights. The only strategy compatible with
//     [ExtrapolateEnable].
//   - [Nearest]: picks the closer endpoint per axis; midpoint ties
//     resolve to the lower index.
//   - [LeftNearest] / [RightNearest]: always pick the lower / upper
//     endpoint.
//
// Custom behaviors implement [Strategy]; they participate in every
// query path but cannot be serialized.
//
// # Out-of-range queries
//
// The per-interpolator [Extrapolate] policy decides what happens when a
// query point leaves the grid on one or more axes. [ExtrapolateError]
// (the default) and [ExtrapolateFill] short-circuit the whole query;
// [ExtrapolateClamp], [ExtrapolateWrap] and [ExtrapolateEnable] adjust
// the affected axes and continue into normal strategy evaluation.
// Incompatible pairings (Enable with a non-Linear strategy) are
// reported when the pairing is configured, never at query time.
//
// # Mutation and validation
//
// Datasets carry a validity flag. Axis and value replacement through
// the accessors, or writes through slices they expose, require a
// Validate call before further queries; queries against a mutated,
// unvalidated dataset fail with [ErrUnvalidated]. Construction always
// validates, so a constructor that returns without error yields a
// queryable instance.
//
// # Thread Safety
//
// Interpolators perform no internal locking. Concurrent Interpolate
// calls against a validated, unmutated instance are safe; mutations
// must be serialized against queries by the caller.
package interp
