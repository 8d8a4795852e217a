package interp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// GridData is a validated rectilinear grid dataset: one strictly
// increasing coordinate axis per dimension plus an N-dimensional array of
// sample values whose shape matches the axis lengths.
//
// The dataset carries a validity flag. Every mutating accessor clears it
// and a successful Validate sets it; interpolators refuse to query an
// invalid dataset. Value storage may be owned by the dataset or borrowed
// from the caller, see the constructor used.
type GridData struct {
	axes   [][]float64
	values *tensor.Array
	valid  bool
}

// newGridData wraps axes and values without validating. Callers run
// Validate before handing the dataset out.
func newGridData(axes [][]float64, values *tensor.Array) *GridData {
	return &GridData{axes: axes, values: values}
}

// NDim returns the grid dimensionality.
func (g *GridData) NDim() int {
	return len(g.axes)
}

// IsValid reports whether the dataset passed validation since its last
// mutation.
func (g *GridData) IsValid() bool {
	return g.valid
}

// Axis returns the coordinate slice of dimension dim. The backing slice
// is returned directly; writing through it requires a Validate call
// before the dataset can be queried again.
func (g *GridData) Axis(dim int) []float64 {
	return g.axes[dim]
}

// SetAxis replaces the coordinate slice of dimension dim and marks the
// dataset invalid until the next successful Validate.
func (g *GridData) SetAxis(dim int, coords []float64) error {
	if dim < 0 || dim >= len(g.axes) {
		return fmt.Errorf("interp: axis dimension %d out of range for %d-D grid", dim, len(g.axes))
	}
	g.axes[dim] = coords
	g.valid = false
	return nil
}

// Shape returns the shape of the value array.
func (g *GridData) Shape() []int {
	return g.values.Shape()
}

// Value returns the sample value at the given grid indices.
func (g *GridData) Value(idx ...int) float64 {
	return g.values.At(idx...)
}

// SetValue stores v at the given grid indices without changing the value
// array's shape. The dataset stays valid: an element write cannot break
// any validation invariant.
func (g *GridData) SetValue(v float64, idx ...int) {
	g.values.Set(v, idx...)
}

// ValuesData returns the flat, row-major backing slice of the value
// array. For borrowed values this aliases the caller's memory.
func (g *GridData) ValuesData() []float64 {
	return g.values.Data()
}

// SetValues replaces the value array with a borrowed view over data of
// the given shape and marks the dataset invalid until the next
// successful Validate.
func (g *GridData) SetValues(data []float64, shape ...int) error {
	values, err := tensor.FromSlice(data, shape...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	g.values = values
	g.valid = false
	return nil
}

// ValuesOwned reports whether the dataset owns its value storage, as
// opposed to borrowing it from the caller.
func (g *GridData) ValuesOwned() bool {
	return g.values.Owned()
}

// Clone returns an owned deep copy of the dataset, including the
// validity flag.
func (g *GridData) Clone() *GridData {
	axes := make([][]float64, len(g.axes))
	for d, axis := range g.axes {
		axes[d] = make([]float64, len(axis))
		copy(axes[d], axis)
	}
	return &GridData{
		axes:   axes,
		values: g.values.Clone(),
		valid:  g.valid,
	}
}

// Equal reports whether two datasets hold identical axes and values.
// Validity flags and storage ownership are not compared.
func (g *GridData) Equal(o *GridData) bool {
	if len(g.axes) != len(o.axes) {
		return false
	}
	for d := range g.axes {
		if !floats.Equal(g.axes[d], o.axes[d]) {
			return false
		}
	}
	return g.values.Equal(o.values)
}

// Validate checks the dataset invariants and sets the validity flag on
// success. Per dimension, in order: the axis must be non-empty, its
// length must match the values shape, its coordinates must be sorted,
// and they must not repeat. The first failing check is reported with the
// offending dimension.
func (g *GridData) Validate() error {
	g.valid = false

	if got, want := g.values.NDim(), len(g.axes); got != want {
		return fmt.Errorf("%w: grid has %d axes but values have %d dimensions", ErrShapeMismatch, want, got)
	}
	for dim, axis := range g.axes {
		if len(axis) == 0 {
			return dimError(ErrEmptyAxis, dim)
		}
		if len(axis) != g.values.Dim(dim) {
			return fmt.Errorf("%w: axis %d has %d coordinates but values dim %d has length %d",
				ErrShapeMismatch, dim, len(axis), dim, g.values.Dim(dim))
		}
		for i := 1; i < len(axis); i++ {
			if axis[i] < axis[i-1] {
				return dimError(ErrNonMonotonicAxis, dim)
			}
		}
		for i := 1; i < len(axis); i++ {
			if axis[i] == axis[i-1] {
				return dimError(ErrDuplicateCoordinate, dim)
			}
		}
	}

	g.valid = true
	return nil
}
