package interp

import (
	"fmt"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// Interp2D interpolates over two axes.
type Interp2D struct {
	interpCore
}

// New2D constructs and validates a 2-dimensional interpolator, where
// fxy[i][j] is the value at (x[i], y[j]). The nested rows are copied
// into an owned row-major array; the axis slices are borrowed.
func New2D(x, y []float64, fxy [][]float64, strategy Strategy, extrapolate Extrapolate) (*Interp2D, error) {
	values, err := tensorFromRows(fxy)
	if err != nil {
		return nil, err
	}
	core, err := newCore([][]float64{x, y}, values, strategy, extrapolate)
	if err != nil {
		return nil, err
	}
	return &Interp2D{interpCore: core}, nil
}

// tensorFromRows copies a nested 2-D slice into an owned array,
// rejecting ragged rows.
func tensorFromRows(rows [][]float64) (*tensor.Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	arr := tensor.New(len(rows), cols)
	data := arr.Data()
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		copy(data[i*cols:(i+1)*cols], row)
	}
	return arr, nil
}
