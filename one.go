package interp

import (
	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// Interp1D interpolates over a single axis.
type Interp1D struct {
	interpCore
}

// New1D constructs and validates a 1-dimensional interpolator over
// coordinates x with sample values fx, so that fx[i] is the value at
// x[i]. Both slices are borrowed, not copied; mutating them afterwards
// requires a Validate call before further queries.
func New1D(x, fx []float64, strategy Strategy, extrapolate Extrapolate) (*Interp1D, error) {
	values, err := tensor.FromSlice(fx, len(fx))
	if err != nil {
		return nil, err
	}
	core, err := newCore([][]float64{x}, values, strategy, extrapolate)
	if err != nil {
		return nil, err
	}
	return &Interp1D{interpCore: core}, nil
}
