package interp

// Nearest selects, independently on each axis, the bracketing endpoint
// with the smaller offset distance and returns the value stored at the
// resulting grid vertex. An exact midpoint (offset 0.5) resolves to the
// lower endpoint, consistent with LeftNearest covering the "always
// lower" extreme.
type Nearest struct{}

// Kind returns [StrategyNearest].
func (Nearest) Kind() StrategyKind { return StrategyNearest }

// AllowsExtrapolate returns false.
func (Nearest) AllowsExtrapolate() bool { return false }

// Blend performs a single vertex lookup.
func (Nearest) Blend(data *GridData, locs []Location) (float64, error) {
	idx := make([]int, len(locs))
	for d, loc := range locs {
		lo, hi := endpoints(data, d, loc)
		if loc.Frac <= 0.5 {
			idx[d] = lo
		} else {
			idx[d] = hi
		}
	}
	return data.values.At(idx...), nil
}

// LeftNearest selects the lower bracketing endpoint on every axis. A
// query exactly on the upper grid boundary (offset 1) resolves to that
// boundary vertex, so grid vertices always return their stored value.
type LeftNearest struct{}

// Kind returns [StrategyLeftNearest].
func (LeftNearest) Kind() StrategyKind { return StrategyLeftNearest }

// AllowsExtrapolate returns false.
func (LeftNearest) AllowsExtrapolate() bool { return false }

// Blend performs a single vertex lookup.
func (LeftNearest) Blend(data *GridData, locs []Location) (float64, error) {
	idx := make([]int, len(locs))
	for d, loc := range locs {
		lo, hi := endpoints(data, d, loc)
		if loc.Frac >= 1 {
			idx[d] = hi
		} else {
			idx[d] = lo
		}
	}
	return data.values.At(idx...), nil
}

// RightNearest selects the upper bracketing endpoint on every axis. A
// query exactly on a vertex (offset 0) resolves to that vertex, so grid
// vertices always return their stored value.
type RightNearest struct{}

// Kind returns [StrategyRightNearest].
func (RightNearest) Kind() StrategyKind { return StrategyRightNearest }

// AllowsExtrapolate returns false.
func (RightNearest) AllowsExtrapolate() bool { return false }

// Blend performs a single vertex lookup.
func (RightNearest) Blend(data *GridData, locs []Location) (float64, error) {
	idx := make([]int, len(locs))
	for d, loc := range locs {
		lo, hi := endpoints(data, d, loc)
		if loc.Frac <= 0 {
			idx[d] = lo
		} else {
			idx[d] = hi
		}
	}
	return data.values.At(idx...), nil
}
