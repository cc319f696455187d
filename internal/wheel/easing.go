package wheel

// Easing specifies how the wheel decelerates toward its target.
type Easing string

const (
	EaseLinear     Easing = "linear"         // constant speed
	EaseOutQuad    Easing = "easeOutQuad"    // gentle slow-down
	EaseOutCubic   Easing = "easeOutCubic"   // default; long coast to the stop
	EaseInOutCubic Easing = "easeInOutCubic" // spins up, then slows down
)

// Valid reports whether e is a known easing.
func (e Easing) Valid() bool {
	switch e {
	case EaseLinear, EaseOutQuad, EaseOutCubic, EaseInOutCubic:
		return true
	}
	return false
}

// Apply maps progress t in [0,1] onto the curve. t is clamped.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseLinear:
		return t
	case EaseOutQuad:
		// f(t) = 1 - (1 - t)^2
		return 1 - (1-t)*(1-t)
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		// easeOutCubic: f(t) = 1 - (1 - t)^3
		u := 1 - t
		return 1 - u*u*u
	}
}
