package interp

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors, returned by constructors and [GridData.Validate].
// All of them are wrapped with the offending dimension, so use
// errors.Is to match.
var (
	// ErrEmptyAxis indicates an axis with no coordinates.
	ErrEmptyAxis = errors.New("axis has no coordinates")

	// ErrNonMonotonicAxis indicates axis coordinates that decrease somewhere.
	ErrNonMonotonicAxis = errors.New("axis coordinates are not sorted in increasing order")

	// ErrDuplicateCoordinate indicates a repeated coordinate on one axis.
	ErrDuplicateCoordinate = errors.New("axis contains duplicate coordinates")

	// ErrShapeMismatch indicates an axis length that does not match the
	// corresponding values dimension.
	ErrShapeMismatch = errors.New("grid and values have incompatible shapes")
)

// Configuration errors.
var (
	// ErrIncompatibleExtrapolate indicates an extrapolation mode that the
	// active strategy cannot honor (ExtrapolateEnable requires Linear).
	ErrIncompatibleExtrapolate = errors.New("extrapolation mode incompatible with strategy")
)

// Query errors, returned by Interpolate.
var (
	// ErrPointLength indicates a query point whose length does not match
	// the interpolator dimensionality.
	ErrPointLength = errors.New("point length does not match interpolator dimensionality")

	// ErrOutOfRange indicates a query point outside the grid bounds under
	// the ExtrapolateError policy. The returned error is an
	// *OutOfRangeError carrying the offending dimensions.
	ErrOutOfRange = errors.New("point is outside the grid bounds")

	// ErrUnvalidated indicates a dataset that was mutated and not
	// re-validated. Call Validate before querying again.
	ErrUnvalidated = errors.New("grid data was mutated and must be re-validated")
)

// Serialization errors.
var (
	// ErrNotSerializable indicates a custom strategy that cannot be
	// represented in the structured record format.
	ErrNotSerializable = errors.New("strategy is not serializable")

	// ErrUnknownTag indicates an unrecognized strategy or extrapolation
	// tag in a serialized record.
	ErrUnknownTag = errors.New("unknown tag in serialized record")
)

// Side identifies which side of an axis range a coordinate fell on.
type Side int

const (
	// SideBelow means the coordinate is less than the first axis value.
	SideBelow Side = iota

	// SideAbove means the coordinate is greater than the last axis value.
	SideAbove
)

// String returns "below" or "above".
func (s Side) String() string {
	if s == SideBelow {
		return "below"
	}
	return "above"
}

// OutOfRangeDim describes one out-of-range coordinate of a query point.
type OutOfRangeDim struct {
	// Dim is the offending dimension.
	Dim int

	// Side is the side of the axis range the coordinate fell on.
	Side Side

	// Coord is the supplied coordinate.
	Coord float64
}

// OutOfRangeError reports every dimension of a query point that fell
// outside the grid bounds. It unwraps to [ErrOutOfRange].
type OutOfRangeError struct {
	Dims []OutOfRangeDim
}

// Error lists each offending dimension with its side and coordinate.
func (e *OutOfRangeError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrOutOfRange.Error())
	for _, d := range e.Dims {
		fmt.Fprintf(&sb, "; point[%d] = %v is %s the range of axis %d", d.Dim, d.Coord, d.Side, d.Dim)
	}
	return sb.String()
}

// Unwrap returns ErrOutOfRange so errors.Is matches.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// dimError wraps a validation sentinel with the offending dimension.
func dimError(sentinel error, dim int) error {
	return fmt.Errorf("%w: dim %d", sentinel, dim)
}
