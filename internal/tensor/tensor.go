// Package tensor provides a minimal N-dimensional float64 array used as the
// value storage for rectilinear grids.
//
// An Array either owns its backing slice or borrows it from the caller.
// Borrowed arrays alias caller memory, so their lifetime is bound to the
// owner of that slice; Clone always produces an owned copy.
package tensor

import (
	"fmt"
)

// Array is a dense, row-major N-dimensional array of float64.
type Array struct {
	data    []float64
	shape   []int
	strides []int
	owned   bool
}

// New allocates an owned, zero-filled array with the given shape.
// A call with no dimensions yields a 0-dimensional scalar holding one value.
func New(shape ...int) *Array {
	s := make([]int, len(shape))
	copy(s, shape)

	a := &Array{
		data:  make([]float64, sizeOf(s)),
		shape: s,
		owned: true,
	}
	a.strides = stridesOf(s)

	return a
}

// FromSlice wraps an existing flat slice as a borrowed array with the given
// shape. The slice is aliased, not copied; the caller retains ownership and
// must keep it alive for the lifetime of the array.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	s := make([]int, len(shape))
	copy(s, shape)

	for _, dim := range s {
		if dim < 0 {
			return nil, fmt.Errorf("tensor: negative dimension in shape %v", s)
		}
	}
	if want := sizeOf(s); len(data) != want {
		return nil, fmt.Errorf("tensor: slice length %d does not match shape %v (want %d)", len(data), s, want)
	}

	return &Array{
		data:    data,
		shape:   s,
		strides: stridesOf(s),
		owned:   false,
	}, nil
}

// sizeOf returns the element count implied by shape.
func sizeOf(shape []int) int {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return size
}

// stridesOf computes row-major strides for shape.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}
	return strides
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Dim returns the length of dimension d.
func (a *Array) Dim(d int) int {
	return a.shape[d]
}

// Stride returns the element stride of dimension d.
func (a *Array) Stride(d int) int {
	return a.strides[d]
}

// Owned reports whether the array owns its backing slice.
func (a *Array) Owned() bool {
	return a.owned
}

// Data returns the backing slice. Writes through it are visible to the
// array (and, for borrowed arrays, to the external owner).
func (a *Array) Data() []float64 {
	return a.data
}

// Offset translates a multi-index into a flat offset.
// Indices are trusted; an index out of bounds is an internal bug and panics
// via the slice access rather than returning an error.
func (a *Array) Offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match array rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dim %d (len %d)", i, d, a.shape[d]))
		}
		off += i * a.strides[d]
	}
	return off
}

// At returns the element at the given multi-index.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.Offset(idx)]
}

// AtOffset returns the element at a precomputed flat offset.
func (a *Array) AtOffset(off int) float64 {
	return a.data[off]
}

// Set stores v at the given multi-index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.Offset(idx)] = v
}

// Clone returns an owned deep copy of the array.
func (a *Array) Clone() *Array {
	c := New(a.shape...)
	copy(c.data, a.data)
	return c
}

// Equal reports whether two arrays have identical shape and elements.
func (a *Array) Equal(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
