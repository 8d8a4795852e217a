package interp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSerde_RoundTrip1D verifies that a decoded interpolator answers
// queries identically to its source.
func TestSerde_RoundTrip1D(t *testing.T) {
	src, err := New1D([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, Linear{}, ExtrapolateFill(-1))
	require.NoError(t, err)

	blob, err := json.Marshal(src)
	require.NoError(t, err)

	var dst Interp1D
	require.NoError(t, json.Unmarshal(blob, &dst))

	assert.Equal(t, 1, dst.NDim())
	assert.Equal(t, StrategyLinear, dst.Strategy().Kind())

	for _, q := range []float64{0, 0.5, 2.5, 3, 10} {
		want, err := src.Interpolate([]float64{q})
		require.NoError(t, err)
		got, err := dst.Interpolate([]float64{q})
		require.NoError(t, err)
		assert.Equal(t, want, got, "query %v", q)
	}
}

// TestSerde_RoundTripND verifies the flat-values record for a 2-D grid
// decoded through the generic facade.
func TestSerde_RoundTripND(t *testing.T) {
	src, err := NewND(
		[][]float64{{0, 1}, {0, 1, 2}},
		[]float64{0, 1, 2, 3, 4, 5},
		Nearest{},
		ExtrapolateClamp,
	)
	require.NoError(t, err)

	blob, err := json.Marshal(src)
	require.NoError(t, err)

	var dst InterpND
	require.NoError(t, json.Unmarshal(blob, &dst))

	assert.Equal(t, []int{2, 3}, dst.Data().Shape())
	assert.True(t, dst.Data().ValuesOwned(), "decoded values should be owned")

	for _, point := range [][]float64{{0.2, 1.9}, {0.5, 0.5}, {-3, 7}} {
		want, err := src.Interpolate(point)
		require.NoError(t, err)
		got, err := dst.Interpolate(point)
		require.NoError(t, err)
		assert.Equal(t, want, got, "point %v", point)
	}
}

// TestSerde_RecordShape pins the record field layout.
func TestSerde_RecordShape(t *testing.T) {
	src, err := New1D([]float64{0, 1}, []float64{3, 4}, RightNearest{}, ExtrapolateWrap)
	require.NoError(t, err)

	blob, err := json.Marshal(src)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(blob, &rec))
	assert.Contains(t, rec, "grid")
	assert.Contains(t, rec, "values")
	assert.Contains(t, rec, "shape")
	assert.Equal(t, "right-nearest", rec["strategy"])

	extrap, ok := rec["extrapolate"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "wrap", extrap["mode"])
}

// TestSerde_FillPayload verifies the fill value survives the trip.
func TestSerde_FillPayload(t *testing.T) {
	src, err := New1D([]float64{0, 1}, []float64{0, 1}, Linear{}, ExtrapolateFill(2.5))
	require.NoError(t, err)

	blob, err := json.Marshal(src)
	require.NoError(t, err)

	var dst Interp1D
	require.NoError(t, json.Unmarshal(blob, &dst))

	fill, ok := dst.Extrapolate().FillValue()
	require.True(t, ok)
	assert.Equal(t, 2.5, fill)
}

// TestSerde_CustomStrategyRejected verifies that the open extension
// point is excluded from serialization.
func TestSerde_CustomStrategyRejected(t *testing.T) {
	src, err := New1D([]float64{0, 1}, []float64{0, 1}, productStrategy{}, ExtrapolateError)
	require.NoError(t, err)

	_, err = json.Marshal(src)
	assert.ErrorIs(t, err, ErrNotSerializable)
}

// TestSerde_UnknownTags verifies decode failures for unknown strategy
// and extrapolate tags.
func TestSerde_UnknownTags(t *testing.T) {
	var in Interp1D

	err := json.Unmarshal([]byte(`{"grid":[[0,1]],"values":[0,1],"shape":[2],"strategy":"cubic","extrapolate":{"mode":"error"}}`), &in)
	assert.ErrorIs(t, err, ErrUnknownTag)

	err = json.Unmarshal([]byte(`{"grid":[[0,1]],"values":[0,1],"shape":[2],"strategy":"linear","extrapolate":{"mode":"mirror"}}`), &in)
	assert.ErrorIs(t, err, ErrUnknownTag)

	err = json.Unmarshal([]byte(`{"grid":[[0,1]],"values":[0,1],"shape":[2],"strategy":"linear","extrapolate":{"mode":"fill"}}`), &in)
	assert.ErrorIs(t, err, ErrUnknownTag, "fill without a payload")
}

// TestSerde_DimensionalityMismatch verifies that fixed-dimensionality
// facades reject records of another rank.
func TestSerde_DimensionalityMismatch(t *testing.T) {
	src, err := New2D([]float64{0, 1}, []float64{0, 1}, [][]float64{{0, 1}, {1, 2}}, Linear{}, ExtrapolateError)
	require.NoError(t, err)

	blob, err := json.Marshal(src)
	require.NoError(t, err)

	var dst Interp1D
	err = json.Unmarshal(blob, &dst)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// TestSerde_InvalidRecordData verifies that decoding runs full
// validation, not just field copying.
func TestSerde_InvalidRecordData(t *testing.T) {
	var in Interp1D
	err := json.Unmarshal([]byte(`{"grid":[[1,0]],"values":[0,1],"shape":[2],"strategy":"linear","extrapolate":{"mode":"error"}}`), &in)
	assert.ErrorIs(t, err, ErrNonMonotonicAxis)
}

// TestSerde_Interp0D verifies the constant-value record.
func TestSerde_Interp0D(t *testing.T) {
	src := New0D(1.5)

	blob, err := json.Marshal(src)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":1.5}`, string(blob))

	var dst Interp0D
	require.NoError(t, json.Unmarshal(blob, &dst))
	assert.Equal(t, 1.5, dst.Value())
}
