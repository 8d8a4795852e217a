package interp

import (
	"fmt"
)

// StrategyKind tags the closed set of built-in strategies for structured
// serialization. Custom strategies report [StrategyCustom] and cannot be
// serialized.
type StrategyKind string

const (
	// StrategyLinear tags the multilinear strategy.
	StrategyLinear StrategyKind = "linear"

	// StrategyNearest tags the nearest-endpoint strategy.
	StrategyNearest StrategyKind = "nearest"

	// StrategyLeftNearest tags the lower-endpoint strategy.
	StrategyLeftNearest StrategyKind = "left-nearest"

	// StrategyRightNearest tags the upper-endpoint strategy.
	StrategyRightNearest StrategyKind = "right-nearest"

	// StrategyCustom tags user-defined strategies.
	StrategyCustom StrategyKind = "custom"
)

// Strategy resolves a bracketed query point to a value.
//
// Blend must be a pure function of its inputs: the validated dataset and
// one Location per dimension, as produced by [Bracket] and adjusted by
// the active extrapolation policy. Implementations must not keep
// cross-call state beyond configuration fixed at construction, so that a
// strategy value can be shared between interpolators and concurrent
// queries.
//
// User-defined strategies implement this interface and return
// [StrategyCustom] from Kind; interpolators treat them opaquely.
type Strategy interface {
	// Blend computes the value at the point described by locs.
	Blend(data *GridData, locs []Location) (float64, error)

	// AllowsExtrapolate reports whether Blend provisions for offsets
	// outside [0, 1]. Only strategies returning true may be paired with
	// ExtrapolateEnable.
	AllowsExtrapolate() bool

	// Kind returns the serialization tag.
	Kind() StrategyKind
}

// strategyFromKind maps a serialized tag back to a built-in strategy.
func strategyFromKind(kind StrategyKind) (Strategy, error) {
	switch kind {
	case StrategyLinear:
		return Linear{}, nil
	case StrategyNearest:
		return Nearest{}, nil
	case StrategyLeftNearest:
		return LeftNearest{}, nil
	case StrategyRightNearest:
		return RightNearest{}, nil
	default:
		return nil, fmt.Errorf("%w: strategy %q", ErrUnknownTag, string(kind))
	}
}
