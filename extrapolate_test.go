package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestExtrapolateError_ReportsDimensionsAndSides verifies that the
// default policy names every out-of-range dimension with its side.
func TestExtrapolateError_ReportsDimensionsAndSides(t *testing.T) {
	in, err := New2D(
		[]float64{0, 1},
		[]float64{10, 20},
		[][]float64{{0, 1}, {1, 2}},
		Linear{},
		ExtrapolateError,
	)
	require.NoError(t, err)

	_, err = in.Interpolate([]float64{-1, 25})
	require.Error(t, err)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor), "error should be an *OutOfRangeError")
	require.Len(t, oor.Dims, 2, "both dimensions are out of range")
	assert.Equal(t, 0, oor.Dims[0].Dim)
	assert.Equal(t, SideBelow, oor.Dims[0].Side)
	assert.Equal(t, 1, oor.Dims[1].Dim)
	assert.Equal(t, SideAbove, oor.Dims[1].Side)
}

// TestExtrapolateFill verifies the whole-query short-circuit.
func TestExtrapolateFill(t *testing.T) {
	in, err := New1D([]float64{0, 1, 2}, []float64{0, 1, 4}, Nearest{}, ExtrapolateFill(-7))
	require.NoError(t, err)

	v, err := in.Interpolate([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, -7.0, v, "out-of-range query should return the fill value")

	v, err = in.Interpolate([]float64{1.1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "in-range query should not see the fill value")
}

// TestExtrapolateClamp_Boundedness verifies that clamped results never
// leave the range of the sampled values.
func TestExtrapolateClamp_Boundedness(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	fx := []float64{0, 1, 4, 9}
	in, err := New1D(x, fx, Linear{}, ExtrapolateClamp)
	require.NoError(t, err)

	lo, hi := floats.Min(fx), floats.Max(fx)
	for _, q := range []float64{-100, -0.01, 3.01, 100} {
		v, err := in.Interpolate([]float64{q})
		require.NoError(t, err, "query %v", q)
		assert.GreaterOrEqual(t, v, lo, "query %v", q)
		assert.LessOrEqual(t, v, hi, "query %v", q)
	}

	// Clamped queries land exactly on the boundary vertex.
	v, err := in.Interpolate([]float64{-5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = in.Interpolate([]float64{50})
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

// TestExtrapolateWrap_Periodicity verifies interpolate(x) equals
// interpolate(x + k*span) for integer k, with the endpoints identified
// so the period is the axis span.
func TestExtrapolateWrap_Periodicity(t *testing.T) {
	x := []float64{0, 1, 2, 4}
	fx := []float64{0, 1, 4, 16}
	in, err := New1D(x, fx, Linear{}, ExtrapolateWrap)
	require.NoError(t, err)

	span := x[len(x)-1] - x[0]
	for _, base := range []float64{0.25, 1.5, 3.9} {
		want, err := in.Interpolate([]float64{base})
		require.NoError(t, err)

		for _, k := range []float64{-3, -1, 1, 2, 5} {
			got, err := in.Interpolate([]float64{base + k*span})
			require.NoError(t, err, "base %v k %v", base, k)
			assert.InDelta(t, want, got, 1e-9, "base %v k %v", base, k)
		}
	}
}

// TestExtrapolateWrap_EndpointsIdentified pins the wrap convention: the
// upper endpoint maps onto the lower one, so a query exactly one span
// above the range returns the first sample, not the last.
func TestExtrapolateWrap_EndpointsIdentified(t *testing.T) {
	in, err := New1D([]float64{0, 1, 2}, []float64{5, 6, 7}, Linear{}, ExtrapolateWrap)
	require.NoError(t, err)

	v, err := in.Interpolate([]float64{4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "x = upper + span should wrap to the lower endpoint")

	// In-range endpoint queries are untouched by the policy.
	v, err = in.Interpolate([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestExtrapolateEnable_LinearExtension verifies the native linear
// extension on the grid f(x) = 0.4x.
func TestExtrapolateEnable_LinearExtension(t *testing.T) {
	in, err := New1D([]float64{0, 1, 2}, []float64{0, 0.4, 0.8}, Linear{}, ExtrapolateEnable)
	require.NoError(t, err)

	v, err := in.Interpolate([]float64{1.4})
	require.NoError(t, err)
	assert.InDelta(t, 0.56, v, 1e-12)

	v, err = in.Interpolate([]float64{3.6})
	require.NoError(t, err)
	assert.InDelta(t, 1.44, v, 1e-12, "beyond-range query should extend linearly")

	v, err = in.Interpolate([]float64{-1})
	require.NoError(t, err)
	assert.InDelta(t, -0.4, v, 1e-12)
}

// TestExtrapolateEnable_2D verifies the multilinear extension outside a
// 2-D grid corner.
func TestExtrapolateEnable_2D(t *testing.T) {
	// f(x, y) = x + y is reproduced exactly by the blend, inside and out.
	in, err := New2D(
		[]float64{0, 1},
		[]float64{0, 1},
		[][]float64{{0, 1}, {1, 2}},
		Linear{},
		ExtrapolateEnable,
	)
	require.NoError(t, err)

	v, err := in.Interpolate([]float64{2.5, -1.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
}

// TestIncompatiblePairing verifies that Enable without Linear fails at
// configuration time, in every place the pairing can be set.
func TestIncompatiblePairing(t *testing.T) {
	// At construction.
	_, err := New1D([]float64{0, 1}, []float64{0, 1}, Nearest{}, ExtrapolateEnable)
	assert.ErrorIs(t, err, ErrIncompatibleExtrapolate)

	// Via SetExtrapolate.
	in, err := New1D([]float64{0, 1}, []float64{0, 1}, Nearest{}, ExtrapolateError)
	require.NoError(t, err)
	assert.ErrorIs(t, in.SetExtrapolate(ExtrapolateEnable), ErrIncompatibleExtrapolate)

	// Via SetStrategy while Enable is active.
	in2, err := New1D([]float64{0, 1}, []float64{0, 1}, Linear{}, ExtrapolateEnable)
	require.NoError(t, err)
	assert.ErrorIs(t, in2.SetStrategy(Nearest{}), ErrIncompatibleExtrapolate)

	// Failed swaps must leave the previous configuration intact.
	assert.Equal(t, StrategyLinear, in2.Strategy().Kind())
	_, err = in2.Interpolate([]float64{5})
	assert.NoError(t, err, "instance should still extrapolate after the rejected swap")
}

// TestEnable_RequiresTwoCoordinates verifies the extra Enable
// requirement on degenerate axes.
func TestEnable_RequiresTwoCoordinates(t *testing.T) {
	_, err := New1D([]float64{1}, []float64{5}, Linear{}, ExtrapolateEnable)
	assert.ErrorIs(t, err, ErrIncompatibleExtrapolate)
}

// TestSetStrategy_Swap verifies runtime strategy replacement changes
// query results.
func TestSetStrategy_Swap(t *testing.T) {
	in, err := New1D([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, Linear{}, ExtrapolateError)
	require.NoError(t, err)

	v, err := in.Interpolate([]float64{2.5})
	require.NoError(t, err)
	assert.InDelta(t, 6.5, v, queryTolerance)

	require.NoError(t, in.SetStrategy(Nearest{}))

	v, err = in.Interpolate([]float64{2.5})
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "midpoint tie resolves to the lower vertex")
}

// TestPolicyAdjustsOnlyOffendingAxes verifies that Clamp and Wrap leave
// in-range coordinates untouched.
func TestPolicyAdjustsOnlyOffendingAxes(t *testing.T) {
	in, err := New2D(
		[]float64{0, 1, 2},
		[]float64{0, 1, 2},
		[][]float64{{0, 1, 2}, {10, 11, 12}, {20, 21, 22}},
		Linear{},
		ExtrapolateClamp,
	)
	require.NoError(t, err)

	// y is in range, x clamps to 2.
	v, err := in.Interpolate([]float64{7, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 20.5, v, queryTolerance)
}
