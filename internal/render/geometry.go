package render

import (
	"math"

	"srboli-wheel/internal/config"
	"srboli-wheel/internal/wheel"
)

// CellDistance computes the distance from a cell to the wheel center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the screen angle from center to a cell.
// Returns degrees in [0, 360), 0=east, increasing counter-clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return wheel.NormalizeDeg(math.Atan2(-dy, dx) * 180 / math.Pi)
}

// AngleDiff returns the shortest angular distance between two angles.
// Result is in [0, 180].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(wheel.NormalizeDeg(a) - wheel.NormalizeDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SpokeChar returns the line character for a radial line at the given angle.
func SpokeChar(angle float64) rune {
	// 4 directions, opposite sides share a character
	sector := int(math.Round(wheel.NormalizeDeg(angle)/45)) % 4
	switch sector {
	case 0: // E-W
		return '-'
	case 1: // NE-SW
		return '/'
	case 2: // N-S
		return '|'
	case 3: // NW-SE
		return '\\'
	}
	return '.'
}

// RimChar returns the character for the wheel rim at the given angle.
// The rim runs perpendicular to the spoke at that angle.
func RimChar(angle float64) rune {
	return SpokeChar(angle + 90)
}

// onSpoke reports whether a cell at (dist, wheelAngle) lies on the boundary
// line at the start of its slice. The tolerance is half a cell of arc length.
func onSpoke(dist, wheelAngle float64, n int) bool {
	if n < 2 || dist < 1 {
		return false
	}
	idx := wheel.SliceAt(wheelAngle, n)
	start, end := wheel.SliceBounds(idx, n)
	d := math.Min(AngleDiff(wheelAngle, start), AngleDiff(wheelAngle, end))
	return dist*d*math.Pi/180 < 0.5
}

// rimTolerance widens the rim where rows are coarse: one row spans
// 1/AspectRatio distance units, one column spans 1.
func rimTolerance(angle float64) float64 {
	rad := angle * math.Pi / 180
	return config.RimWidth * math.Hypot(math.Cos(rad), math.Sin(rad)/config.AspectRatio)
}
