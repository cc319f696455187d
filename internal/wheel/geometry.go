package wheel

import "math"

// Angles are degrees, counter-clockwise, 0 = east. A wheel-frame angle θ
// shows on screen at θ + rotation.
const (
	// PointerAngleDeg is where the fixed pointer sits: the top of the wheel.
	PointerAngleDeg = 90.0
	// LabelRadiusFrac is the label distance from the centre, as a fraction of the radius.
	LabelRadiusFrac = 0.65
)

// NormalizeDeg wraps an angle to [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// SegmentAngle returns the angular width of one slice on a wheel of n entries.
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360.0 / float64(n)
}

// SliceBounds returns the half-open range [start, end) slice i covers in the
// unrotated wheel frame.
func SliceBounds(i, n int) (start, end float64) {
	seg := SegmentAngle(n)
	return float64(i) * seg, float64(i+1) * seg
}

// SliceAt maps a wheel-frame angle to the slice containing it. This is the only
// angle-to-index mapping; both resolution and rendering go through it.
// Returns -1 if n <= 0.
func SliceAt(wheelAngle float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(math.Floor(NormalizeDeg(wheelAngle) / SegmentAngle(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// ScreenToWheel converts a screen angle into the wheel frame for the given rotation.
func ScreenToWheel(screenAngle, rotation float64) float64 {
	return NormalizeDeg(screenAngle - rotation)
}

// ResolveSelection returns the index of the entry under the pointer for a
// wheel of n entries rotated by rotation degrees.
func ResolveSelection(rotation float64, n int) (int, error) {
	if n <= 0 {
		return -1, ErrEmptyWheel
	}
	return SliceAt(ScreenToWheel(PointerAngleDeg, rotation), n), nil
}

// Label describes where the name of slice Index is drawn.
type Label struct {
	Index    int
	Angle    float64 // screen angle of the label centre, degrees
	Radius   float64 // fraction of the wheel radius
	X, Y     float64 // unit-circle position scaled by Radius, y up
	Rotation float64 // counter-rotation that keeps the text upright
}

// LabelPlacement positions label i of n on a wheel rotated by rotation degrees.
func LabelPlacement(i, n int, rotation float64) Label {
	seg := SegmentAngle(n)
	angle := NormalizeDeg((float64(i)+0.5)*seg + rotation)
	rad := angle * math.Pi / 180
	return Label{
		Index:    i,
		Angle:    angle,
		Radius:   LabelRadiusFrac,
		X:        LabelRadiusFrac * math.Cos(rad),
		Y:        LabelRadiusFrac * math.Sin(rad),
		Rotation: -rotation,
	}
}
