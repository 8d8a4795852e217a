package interp

import (
	"fmt"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// Interpolator is the capability shared by every dimensionality, so
// instances spanning 0-D through N-D can populate one collection and be
// queried uniformly.
//
// A validated, unmutated interpolator is safe for concurrent
// Interpolate calls; any mutation (axis or value edits, SetStrategy,
// SetExtrapolate, Validate) must be serialized against queries by the
// caller.
type Interpolator interface {
	// NDim returns the interpolator dimensionality.
	NDim() int

	// Validate re-checks the dataset invariants and the
	// strategy/extrapolation pairing. Required after any direct
	// mutation of axes or values before further queries succeed.
	Validate() error

	// Interpolate computes the value at point, which must have exactly
	// NDim coordinates.
	Interpolate(point []float64) (float64, error)

	// SetStrategy replaces the interpolation strategy, failing
	// immediately if it is incompatible with the active extrapolation
	// policy. The previous strategy stays in place on failure.
	SetStrategy(s Strategy) error

	// SetExtrapolate replaces the extrapolation policy, failing
	// immediately if it is incompatible with the active strategy. The
	// previous policy stays in place on failure.
	SetExtrapolate(e Extrapolate) error
}

// interpCore is the shared state and query path behind the
// dimensionality facades.
type interpCore struct {
	data        *GridData
	strategy    Strategy
	extrapolate Extrapolate
}

// newCore validates data and the strategy/extrapolation pairing, in that
// order, so construction never yields a partially usable instance.
func newCore(axes [][]float64, values *tensor.Array, strategy Strategy, extrapolate Extrapolate) (interpCore, error) {
	c := interpCore{
		data:        newGridData(axes, values),
		strategy:    strategy,
		extrapolate: extrapolate,
	}
	if err := c.data.Validate(); err != nil {
		return interpCore{}, err
	}
	if err := checkPairing(c.data, strategy, extrapolate); err != nil {
		return interpCore{}, err
	}
	return c, nil
}

// checkPairing verifies that the extrapolation policy is serviceable by
// the strategy and the dataset. Surfaced at configuration time, never
// deferred to query time.
func checkPairing(data *GridData, strategy Strategy, extrapolate Extrapolate) error {
	if extrapolate.kind != extrapEnable {
		return nil
	}
	if !strategy.AllowsExtrapolate() {
		return fmt.Errorf("%w: enable requires a strategy that extrapolates, got %q", ErrIncompatibleExtrapolate, strategy.Kind())
	}
	for dim := 0; dim < data.NDim(); dim++ {
		if len(data.Axis(dim)) < 2 {
			return fmt.Errorf("%w: extrapolation needs at least 2 coordinates on axis %d", ErrIncompatibleExtrapolate, dim)
		}
	}
	return nil
}

// Data returns the underlying dataset for inspection and in-place
// mutation. After mutating through it, call Validate before querying.
func (c *interpCore) Data() *GridData {
	return c.data
}

// Strategy returns the active interpolation strategy.
func (c *interpCore) Strategy() Strategy {
	return c.strategy
}

// Extrapolate returns the active extrapolation policy.
func (c *interpCore) Extrapolate() Extrapolate {
	return c.extrapolate
}

// NDim returns the interpolator dimensionality.
func (c *interpCore) NDim() int {
	return c.data.NDim()
}

// Validate re-checks the pairing and the dataset invariants.
func (c *interpCore) Validate() error {
	if err := c.data.Validate(); err != nil {
		return err
	}
	return checkPairing(c.data, c.strategy, c.extrapolate)
}

// SetStrategy replaces the strategy after checking compatibility with
// the active extrapolation policy.
func (c *interpCore) SetStrategy(s Strategy) error {
	if err := checkPairing(c.data, s, c.extrapolate); err != nil {
		return err
	}
	c.strategy = s
	return nil
}

// SetExtrapolate replaces the extrapolation policy after checking
// compatibility with the active strategy.
func (c *interpCore) SetExtrapolate(e Extrapolate) error {
	if err := checkPairing(c.data, c.strategy, e); err != nil {
		return err
	}
	c.extrapolate = e
	return nil
}

// Interpolate runs the full query path: point length check, validity
// check, per-axis bracketing, extrapolation policy resolution, and
// strategy evaluation.
func (c *interpCore) Interpolate(point []float64) (float64, error) {
	n := c.data.NDim()
	if len(point) != n {
		return 0, fmt.Errorf("%w: got %d coordinates, want %d", ErrPointLength, len(point), n)
	}
	if !c.data.valid {
		return 0, ErrUnvalidated
	}

	// Resolve the extrapolation policy for every out-of-range axis
	// before any bracketing, since Error and Fill short-circuit the
	// whole query.
	var oor []OutOfRangeDim
	adjusted := point
	for d := 0; d < n; d++ {
		axis := c.data.axes[d]
		if inRange(axis, point[d]) {
			continue
		}
		switch c.extrapolate.kind {
		case extrapError:
			side := SideBelow
			if point[d] > axis[len(axis)-1] {
				side = SideAbove
			}
			oor = append(oor, OutOfRangeDim{Dim: d, Side: side, Coord: point[d]})
		case extrapFill:
			return c.extrapolate.fill, nil
		case extrapClamp:
			adjusted = ensureCopy(adjusted, point)
			adjusted[d] = clampCoord(point[d], axis[0], axis[len(axis)-1])
		case extrapWrap:
			adjusted = ensureCopy(adjusted, point)
			adjusted[d] = wrapCoord(point[d], axis[0], axis[len(axis)-1])
		case extrapEnable:
			// Raw offsets flow through into the strategy.
		}
	}
	if len(oor) > 0 {
		return 0, &OutOfRangeError{Dims: oor}
	}

	locs := make([]Location, n)
	for d := 0; d < n; d++ {
		locs[d] = Bracket(c.data.axes[d], adjusted[d])
	}
	return c.strategy.Blend(c.data, locs)
}

// ensureCopy returns adjusted if it is already a private copy of point,
// and otherwise allocates one. Queries that stay in range never copy.
func ensureCopy(adjusted, point []float64) []float64 {
	if &adjusted[0] != &point[0] {
		return adjusted
	}
	cp := make([]float64, len(point))
	copy(cp, point)
	return cp
}
