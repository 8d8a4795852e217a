package interp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// Interp1DLinear is a one-shot helper: it builds a throwaway 1-D Linear
// interpolator with the default ExtrapolateError policy and queries it
// at q. Prefer constructing an [Interp1D] when querying repeatedly.
func Interp1DLinear(x, fx []float64, q float64) (float64, error) {
	in, err := New1D(x, fx, Linear{}, ExtrapolateError)
	if err != nil {
		return 0, err
	}
	return in.Interpolate([]float64{q})
}

// Interp2DLinear is a one-shot helper: it builds a throwaway 2-D Linear
// interpolator with the default ExtrapolateError policy and queries it
// at (qx, qy). Prefer constructing an [Interp2D] when querying
// repeatedly.
func Interp2DLinear(x, y []float64, fxy [][]float64, qx, qy float64) (float64, error) {
	in, err := New2D(x, y, fxy, Linear{}, ExtrapolateError)
	if err != nil {
		return 0, err
	}
	return in.Interpolate([]float64{qx, qy})
}

// New2DFromDense constructs a 2-D interpolator from a gonum matrix,
// where values.At(i, j) is the sample at (x[i], y[j]). When the matrix
// backing store is contiguous it is borrowed directly, so later writes
// through the matrix remain visible to the interpolator (followed by a
// Validate call); a padded matrix is copied instead.
func New2DFromDense(x, y []float64, values *mat.Dense, strategy Strategy, extrapolate Extrapolate) (*Interp2D, error) {
	raw := values.RawMatrix()

	var arr *tensor.Array
	if raw.Stride == raw.Cols {
		var err error
		arr, err = tensor.FromSlice(raw.Data, raw.Rows, raw.Cols)
		if err != nil {
			return nil, err
		}
	} else {
		arr = tensor.New(raw.Rows, raw.Cols)
		for i := 0; i < raw.Rows; i++ {
			copy(arr.Data()[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
		}
	}

	core, err := newCore([][]float64{x, y}, arr, strategy, extrapolate)
	if err != nil {
		return nil, err
	}
	return &Interp2D{interpCore: core}, nil
}
