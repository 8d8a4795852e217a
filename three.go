package interp

import (
	"fmt"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// Interp3D interpolates over three axes.
type Interp3D struct {
	interpCore
}

// New3D constructs and validates a 3-dimensional interpolator, where
// fxyz[i][j][k] is the value at (x[i], y[j], z[k]). The nested slices
// are copied into an owned row-major array; the axis slices are
// borrowed.
func New3D(x, y, z []float64, fxyz [][][]float64, strategy Strategy, extrapolate Extrapolate) (*Interp3D, error) {
	values, err := tensorFromCube(fxyz)
	if err != nil {
		return nil, err
	}
	core, err := newCore([][]float64{x, y, z}, values, strategy, extrapolate)
	if err != nil {
		return nil, err
	}
	return &Interp3D{interpCore: core}, nil
}

// tensorFromCube copies a nested 3-D slice into an owned array,
// rejecting ragged planes and rows.
func tensorFromCube(cube [][][]float64) (*tensor.Array, error) {
	ny, nz := 0, 0
	if len(cube) > 0 {
		ny = len(cube[0])
		if ny > 0 {
			nz = len(cube[0][0])
		}
	}
	arr := tensor.New(len(cube), ny, nz)
	data := arr.Data()
	for i, plane := range cube {
		if len(plane) != ny {
			return nil, fmt.Errorf("%w: plane %d has %d rows, want %d", ErrShapeMismatch, i, len(plane), ny)
		}
		for j, row := range plane {
			if len(row) != nz {
				return nil, fmt.Errorf("%w: row (%d,%d) has %d entries, want %d", ErrShapeMismatch, i, j, len(row), nz)
			}
			copy(data[(i*ny+j)*nz:(i*ny+j+1)*nz], row)
		}
	}
	return arr, nil
}
