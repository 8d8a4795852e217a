package interp

import (
	"fmt"
	"math"
)

// extrapolateKind enumerates the out-of-range policies.
type extrapolateKind uint8

const (
	extrapError extrapolateKind = iota
	extrapEnable
	extrapFill
	extrapClamp
	extrapWrap
)

// Extrapolate selects the behavior for query points that fall outside
// the grid bounds on one or more axes. The zero value is
// [ExtrapolateError].
//
// The policy applies per interpolator, not per axis: Error and Fill
// short-circuit the whole query, while Clamp, Wrap and Enable adjust the
// affected coordinates and continue into normal strategy evaluation.
type Extrapolate struct {
	kind extrapolateKind
	fill float64
}

var (
	// ExtrapolateError fails the query with an *OutOfRangeError naming
	// every offending dimension and side. This is the default.
	ExtrapolateError = Extrapolate{kind: extrapError}

	// ExtrapolateEnable passes out-of-range offsets through into the
	// strategy, producing a native linear extension. Only compatible
	// with the Linear strategy, and requires at least two coordinates
	// per axis.
	ExtrapolateEnable = Extrapolate{kind: extrapEnable}

	// ExtrapolateClamp snaps out-of-range coordinates to the nearest
	// axis boundary before strategy evaluation.
	ExtrapolateClamp = Extrapolate{kind: extrapClamp}

	// ExtrapolateWrap maps out-of-range coordinates into range
	// periodically: lower + mod(x - lower, upper - lower). The two axis
	// endpoints are treated as identified, so the effective period is
	// the axis span.
	ExtrapolateWrap = Extrapolate{kind: extrapWrap}
)

// ExtrapolateFill returns a policy under which any out-of-range axis
// short-circuits the whole query to the fixed value, bypassing strategy
// and grid values entirely.
func ExtrapolateFill(value float64) Extrapolate {
	return Extrapolate{kind: extrapFill, fill: value}
}

// FillValue returns the configured fill value and whether the policy is
// a Fill policy.
func (e Extrapolate) FillValue() (float64, bool) {
	return e.fill, e.kind == extrapFill
}

// String returns the policy tag used in serialized records.
func (e Extrapolate) String() string {
	switch e.kind {
	case extrapEnable:
		return "enable"
	case extrapFill:
		return fmt.Sprintf("fill(%v)", e.fill)
	case extrapClamp:
		return "clamp"
	case extrapWrap:
		return "wrap"
	default:
		return "error"
	}
}

// wrapCoord maps x into [lower, upper) periodically using a Euclidean
// remainder, so coordinates far below the range wrap correctly.
// Assumes lower < upper.
func wrapCoord(x, lower, upper float64) float64 {
	span := upper - lower
	r := math.Mod(x-lower, span)
	if r < 0 {
		r += span
	}
	return lower + r
}

// clampCoord restricts x to [lower, upper].
func clampCoord(x, lower, upper float64) float64 {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}
	return x
}
