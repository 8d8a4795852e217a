package interp

import (
	"fmt"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// InterpND interpolates over any number of axes decided at runtime.
type InterpND struct {
	interpCore
}

// NewND constructs and validates an interpolator of arbitrary
// dimensionality. grid holds one coordinate slice per dimension and
// values is the flat, row-major sample array whose shape is the axis
// lengths in grid order. All slices are borrowed, not copied; mutating
// them afterwards requires a Validate call before further queries.
func NewND(grid [][]float64, values []float64, strategy Strategy, extrapolate Extrapolate) (*InterpND, error) {
	shape := make([]int, len(grid))
	for d, axis := range grid {
		shape[d] = len(axis)
	}
	arr, err := tensor.FromSlice(values, shape...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	core, err := newCore(grid, arr, strategy, extrapolate)
	if err != nil {
		return nil, err
	}
	return &InterpND{interpCore: core}, nil
}
