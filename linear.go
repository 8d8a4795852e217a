package interp

import (
	"github.com/tphakala/simd/f64"
)

// simdMinCorners is the corner count at which the generic blend switches
// from the scalar loop to the SIMD dot product. Below 16 corners (N < 4)
// the call overhead outweighs the vector win.
const simdMinCorners = 16

// Linear implements full multilinear interpolation: the value at a point
// is the weighted sum of the 2^N corners of the bracketing cell, with
// corner weights formed from the per-axis fractional offsets.
//
// Linear is the only built-in strategy compatible with
// [ExtrapolateEnable]: offsets outside [0, 1] evaluate the same formula
// and yield a linear extension of the grid.
//
// Dimensionalities 1-3 use direct 2/4/8-corner blends; higher
// dimensionalities enumerate corner bit patterns generically.
type Linear struct{}

// Kind returns [StrategyLinear].
func (Linear) Kind() StrategyKind { return StrategyLinear }

// AllowsExtrapolate returns true.
func (Linear) AllowsExtrapolate() bool { return true }

// Blend dispatches to a dimensionality-specialized blend when one
// exists, and to the generic corner enumeration otherwise.
func (Linear) Blend(data *GridData, locs []Location) (float64, error) {
	switch len(locs) {
	case 1:
		return linear1(data, locs), nil
	case 2:
		return linear2(data, locs), nil
	case 3:
		return linear3(data, locs), nil
	default:
		return linearND(data, locs), nil
	}
}

// endpoints returns the lower and upper value indices for one axis. On a
// single-coordinate axis both endpoints collapse to index 0; the offset
// there is always 0, so the axis contributes no weight.
func endpoints(g *GridData, dim int, loc Location) (lo, hi int) {
	lo = loc.Index
	hi = lo + 1
	if last := len(g.axes[dim]) - 1; hi > last {
		hi = last
	}
	return lo, hi
}

func linear1(g *GridData, locs []Location) float64 {
	lo, hi := endpoints(g, 0, locs[0])
	t := locs[0].Frac
	return g.values.At(lo)*(1-t) + g.values.At(hi)*t
}

func linear2(g *GridData, locs []Location) float64 {
	xl, xu := endpoints(g, 0, locs[0])
	yl, yu := endpoints(g, 1, locs[1])
	tx := locs[0].Frac
	ty := locs[1].Frac
	v := g.values

	// Reduce along x, then y.
	f0 := v.At(xl, yl)*(1-tx) + v.At(xu, yl)*tx
	f1 := v.At(xl, yu)*(1-tx) + v.At(xu, yu)*tx
	return f0*(1-ty) + f1*ty
}

func linear3(g *GridData, locs []Location) float64 {
	xl, xu := endpoints(g, 0, locs[0])
	yl, yu := endpoints(g, 1, locs[1])
	zl, zu := endpoints(g, 2, locs[2])
	tx := locs[0].Frac
	ty := locs[1].Frac
	tz := locs[2].Frac
	v := g.values

	// Reduce along x, then y, then z.
	f00 := v.At(xl, yl, zl)*(1-tx) + v.At(xu, yl, zl)*tx
	f01 := v.At(xl, yl, zu)*(1-tx) + v.At(xu, yl, zu)*tx
	f10 := v.At(xl, yu, zl)*(1-tx) + v.At(xu, yu, zl)*tx
	f11 := v.At(xl, yu, zu)*(1-tx) + v.At(xu, yu, zu)*tx
	f0 := f00*(1-ty) + f10*ty
	f1 := f01*(1-ty) + f11*ty
	return f0*(1-tz) + f1*tz
}

// linearND blends all 2^N corners of the bracketing cell. Corner weights
// and gathered corner values form two dense vectors whose dot product is
// the result; for 16 corners and up the dot product runs through SIMD.
func linearND(g *GridData, locs []Location) float64 {
	n := len(locs)
	corners := 1 << n
	v := g.values

	lowOffs := make([]int, n)
	highOffs := make([]int, n)
	for d, loc := range locs {
		lo, hi := endpoints(g, d, loc)
		lowOffs[d] = lo * v.Stride(d)
		highOffs[d] = hi * v.Stride(d)
	}

	weights := make([]float64, corners)
	vals := make([]float64, corners)
	for c := range corners {
		w := 1.0
		off := 0
		for d := range n {
			if c>>d&1 == 1 {
				w *= locs[d].Frac
				off += highOffs[d]
			} else {
				w *= 1 - locs[d].Frac
				off += lowOffs[d]
			}
		}
		weights[c] = w
		vals[c] = v.AtOffset(off)
	}

	if corners >= simdMinCorners {
		return f64.DotProductUnsafe(weights, vals)
	}
	var sum float64
	for c := range weights {
		sum += weights[c] * vals[c]
	}
	return sum
}
