package wheel

import (
	"fmt"
	"math"
)

// Strategy names a selection rule for the winning slice of a spin.
type Strategy string

const (
	// StrategyUniform picks every entry with equal probability and ignores weight.
	StrategyUniform Strategy = "uniform"
	// StrategyWeighted picks entries with probability proportional to weight.
	StrategyWeighted Strategy = "weighted"
)

// Selector chooses the index a spin will land on. entries is never empty.
type Selector interface {
	Pick(entries []Entry, rng RandomSource) int
}

// Uniform ignores weights.
type Uniform struct{}

// Pick returns an index in [0, len(entries)) with equal probability.
func (Uniform) Pick(entries []Entry, rng RandomSource) int {
	return rng.IntN(len(entries))
}

// Weighted draws proportionally to Entry.Weight. Weights that are not finite
// and positive never win. If no weight qualifies it falls back to a uniform
// pick.
type Weighted struct{}

func usableWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

// Pick returns an index with probability proportional to its weight.
func (Weighted) Pick(entries []Entry, rng RandomSource) int {
	var peak float64
	last := -1
	for i, e := range entries {
		if usableWeight(e.Weight) {
			peak = math.Max(peak, e.Weight)
			last = i
		}
	}
	if last < 0 {
		return Uniform{}.Pick(entries, rng)
	}

	// scaled weights are in (0, 1], so the total stays finite
	var total float64
	for _, e := range entries {
		if usableWeight(e.Weight) {
			total += e.Weight / peak
		}
	}

	x := rng.Float64() * total
	var acc float64
	for i, e := range entries {
		if !usableWeight(e.Weight) {
			continue
		}
		acc += e.Weight / peak
		if x < acc {
			return i
		}
	}
	// float rounding at the top end
	return last
}

// NewSelector maps a strategy name to its Selector. Empty means uniform.
func NewSelector(s Strategy) (Selector, error) {
	switch s {
	case StrategyUniform, "":
		return Uniform{}, nil
	case StrategyWeighted:
		return Weighted{}, nil
	default:
		return nil, fmt.Errorf("unknown selection strategy %q (want %s or %s)", s, StrategyUniform, StrategyWeighted)
	}
}
