package interp

import (
	"encoding/json"
	"fmt"

	"github.com/tphakala/go-grid-interp/internal/tensor"
)

// gridRecord mirrors an interpolator's in-memory fields as a generic
// structured record: per-axis coordinates, flat row-major values with
// their shape, a strategy tag, and an extrapolation tag with optional
// payload. The wire encoding itself is delegated to encoding/json.
type gridRecord struct {
	Grid        [][]float64       `json:"grid"`
	Values      []float64         `json:"values"`
	Shape       []int             `json:"shape"`
	Strategy    StrategyKind      `json:"strategy"`
	Extrapolate extrapolateRecord `json:"extrapolate"`
}

// extrapolateRecord is the serialized form of an Extrapolate policy.
type extrapolateRecord struct {
	Mode string   `json:"mode"`
	Fill *float64 `json:"fill,omitempty"`
}

func extrapolateToRecord(e Extrapolate) extrapolateRecord {
	switch e.kind {
	case extrapEnable:
		return extrapolateRecord{Mode: "enable"}
	case extrapFill:
		fill := e.fill
		return extrapolateRecord{Mode: "fill", Fill: &fill}
	case extrapClamp:
		return extrapolateRecord{Mode: "clamp"}
	case extrapWrap:
		return extrapolateRecord{Mode: "wrap"}
	default:
		return extrapolateRecord{Mode: "error"}
	}
}

func extrapolateFromRecord(r extrapolateRecord) (Extrapolate, error) {
	switch r.Mode {
	case "error", "":
		return ExtrapolateError, nil
	case "enable":
		return ExtrapolateEnable, nil
	case "clamp":
		return ExtrapolateClamp, nil
	case "wrap":
		return ExtrapolateWrap, nil
	case "fill":
		if r.Fill == nil {
			return Extrapolate{}, fmt.Errorf("%w: fill mode without a fill value", ErrUnknownTag)
		}
		return ExtrapolateFill(*r.Fill), nil
	default:
		return Extrapolate{}, fmt.Errorf("%w: extrapolate mode %q", ErrUnknownTag, r.Mode)
	}
}

// record snapshots the core into a gridRecord. Custom strategies have
// no tag in the closed set and are rejected.
func (c *interpCore) record() (*gridRecord, error) {
	kind := c.strategy.Kind()
	if _, err := strategyFromKind(kind); err != nil {
		return nil, fmt.Errorf("%w: kind %q", ErrNotSerializable, kind)
	}

	grid := make([][]float64, c.data.NDim())
	for d := range grid {
		axis := c.data.Axis(d)
		grid[d] = make([]float64, len(axis))
		copy(grid[d], axis)
	}
	flat := c.data.ValuesData()
	values := make([]float64, len(flat))
	copy(values, flat)

	return &gridRecord{
		Grid:        grid,
		Values:      values,
		Shape:       c.data.Shape(),
		Strategy:    kind,
		Extrapolate: extrapolateToRecord(c.extrapolate),
	}, nil
}

// coreFromRecord rebuilds a validated core from a record. wantDim < 0
// accepts any dimensionality; otherwise the record must match.
func coreFromRecord(rec *gridRecord, wantDim int) (interpCore, error) {
	if wantDim >= 0 && len(rec.Grid) != wantDim {
		return interpCore{}, fmt.Errorf("%w: record has %d axes, want %d", ErrShapeMismatch, len(rec.Grid), wantDim)
	}
	strategy, err := strategyFromKind(rec.Strategy)
	if err != nil {
		return interpCore{}, err
	}
	extrapolate, err := extrapolateFromRecord(rec.Extrapolate)
	if err != nil {
		return interpCore{}, err
	}

	shape := rec.Shape
	if len(shape) == 0 && len(rec.Grid) > 0 {
		shape = make([]int, len(rec.Grid))
		for d, axis := range rec.Grid {
			shape[d] = len(axis)
		}
	}
	arr := tensor.New(shape...)
	if arr.Len() != len(rec.Values) {
		return interpCore{}, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(rec.Values), shape)
	}
	copy(arr.Data(), rec.Values)

	return newCore(rec.Grid, arr, strategy, extrapolate)
}

// MarshalJSON encodes the interpolator as a structured record.
func (i *Interp1D) MarshalJSON() ([]byte, error) {
	rec, err := i.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes and validates a 1-D structured record.
func (i *Interp1D) UnmarshalJSON(b []byte) error {
	var rec gridRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	core, err := coreFromRecord(&rec, 1)
	if err != nil {
		return err
	}
	i.interpCore = core
	return nil
}

// MarshalJSON encodes the interpolator as a structured record.
func (i *Interp2D) MarshalJSON() ([]byte, error) {
	rec, err := i.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes and validates a 2-D structured record.
func (i *Interp2D) UnmarshalJSON(b []byte) error {
	var rec gridRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	core, err := coreFromRecord(&rec, 2)
	if err != nil {
		return err
	}
	i.interpCore = core
	return nil
}

// MarshalJSON encodes the interpolator as a structured record.
func (i *Interp3D) MarshalJSON() ([]byte, error) {
	rec, err := i.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes and validates a 3-D structured record.
func (i *Interp3D) UnmarshalJSON(b []byte) error {
	var rec gridRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	core, err := coreFromRecord(&rec, 3)
	if err != nil {
		return err
	}
	i.interpCore = core
	return nil
}

// MarshalJSON encodes the interpolator as a structured record.
func (i *InterpND) MarshalJSON() ([]byte, error) {
	rec, err := i.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes and validates a structured record of any
// dimensionality.
func (i *InterpND) UnmarshalJSON(b []byte) error {
	var rec gridRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	core, err := coreFromRecord(&rec, -1)
	if err != nil {
		return err
	}
	i.interpCore = core
	return nil
}

// constantRecord is the serialized form of a 0-D interpolator.
type constantRecord struct {
	Value float64 `json:"value"`
}

// MarshalJSON encodes the constant value.
func (i *Interp0D) MarshalJSON() ([]byte, error) {
	return json.Marshal(constantRecord{Value: i.value})
}

// UnmarshalJSON decodes the constant value.
func (i *Interp0D) UnmarshalJSON(b []byte) error {
	var rec constantRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	i.value = rec.Value
	return nil
}
