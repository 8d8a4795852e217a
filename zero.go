package interp

import (
	"fmt"
)

// Interp0D is a constant-value interpolator. It exists so 0-dimensional
// instances can live alongside higher dimensionalities in a shared
// []Interpolator collection.
type Interp0D struct {
	value float64
}

// New0D returns a 0-dimensional interpolator holding a constant value.
func New0D(value float64) *Interp0D {
	return &Interp0D{value: value}
}

// NDim returns 0.
func (i *Interp0D) NDim() int {
	return 0
}

// Validate always succeeds; there is no dataset to invalidate.
func (i *Interp0D) Validate() error {
	return nil
}

// Interpolate returns the stored constant. The point must be empty.
func (i *Interp0D) Interpolate(point []float64) (float64, error) {
	if len(point) != 0 {
		return 0, fmt.Errorf("%w: got %d coordinates, want 0", ErrPointLength, len(point))
	}
	return i.value, nil
}

// SetStrategy accepts and ignores any strategy; a constant has nothing
// to blend.
func (i *Interp0D) SetStrategy(Strategy) error {
	return nil
}

// SetExtrapolate accepts and ignores any policy; a constant has no
// bounds to fall outside of.
func (i *Interp0D) SetExtrapolate(Extrapolate) error {
	return nil
}

// Value returns the stored constant.
func (i *Interp0D) Value() float64 {
	return i.value
}

// SetValue replaces the stored constant.
func (i *Interp0D) SetValue(value float64) {
	i.value = value
}
