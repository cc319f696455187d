package wheel

import (
	"fmt"
	"strings"
	"time"
)

// Params tunes how a spin is planned and animated.
type Params struct {
	MinFullSpins   int           // cosmetic full turns, lower bound (inclusive)
	MaxFullSpins   int           // upper bound (inclusive)
	BaseDuration   time.Duration // animation length before jitter
	DurationJitter time.Duration // uniform extra time in [0, jitter)
	EdgeMargin     float64       // fraction of a slice kept clear on each side, in (0, 0.5)
	Easing         Easing
}

// DefaultParams returns the stock spin feel: 3-6 turns over 6-8 seconds,
// easing out cubically, landing at least 10% inside a slice.
func DefaultParams() Params {
	return Params{
		MinFullSpins:   3,
		MaxFullSpins:   6,
		BaseDuration:   6 * time.Second,
		DurationJitter: 2 * time.Second,
		EdgeMargin:     0.1,
		Easing:         EaseOutCubic,
	}
}

// Validate reports every violated constraint in one error.
func (p Params) Validate() error {
	var errs []string
	if p.MinFullSpins < 0 {
		errs = append(errs, "min full spins must be >= 0")
	}
	if p.MaxFullSpins < p.MinFullSpins {
		errs = append(errs, "max full spins must be >= min full spins")
	}
	if p.BaseDuration < 0 {
		errs = append(errs, "base duration must be >= 0")
	}
	if p.DurationJitter < 0 {
		errs = append(errs, "duration jitter must be >= 0")
	}
	if p.EdgeMargin <= 0 || p.EdgeMargin >= 0.5 {
		errs = append(errs, "edge margin must be in (0, 0.5)")
	}
	if !p.Easing.Valid() {
		errs = append(errs, fmt.Sprintf("unknown easing %q", p.Easing))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid spin params: %s", strings.Join(errs, "; "))
	}
	return nil
}
