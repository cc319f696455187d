package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// sliceRGB spreads slices around a pastel hue circle.
func sliceRGB(i, n int) (r, g, b float64) {
	if n < 1 {
		n = 1
	}
	hue := float64(i) / float64(n)
	const tau = 2 * math.Pi
	r = 0.6 + 0.4*(0.5+0.5*math.Sin(hue*tau))
	g = 0.6 + 0.4*(0.5+0.5*math.Sin((hue+0.33)*tau))
	b = 0.6 + 0.4*(0.5+0.5*math.Sin((hue+0.66)*tau))
	return r, g, b
}

func hex(r, g, b float64) lipgloss.Color {
	c := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(math.Round(v * 255))
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c(r), c(g), c(b)))
}

// SliceColor returns the fill color of slice i; highlighted slices are lifted.
func SliceColor(i, n int, highlighted bool) lipgloss.Color {
	r, g, b := sliceRGB(i, n)
	if highlighted {
		return hex(r+0.2, g+0.2, b+0.2)
	}
	// dim the rest so the lifted slice stands out on light terminals too
	return hex(r-0.25, g-0.25, b-0.25)
}
