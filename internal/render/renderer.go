package render

import (
	"fmt"
	"math"
	"strings"

	"srboli-wheel/internal/config"
	"srboli-wheel/internal/wheel"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRim     = lipgloss.Color("#EDEDED")
	colorPointer = lipgloss.Color("#FF3300")
	colorInk     = lipgloss.Color("#101010")
	colorDim     = lipgloss.Color("#5A5A5A")

	styleRim     = lipgloss.NewStyle().Foreground(colorRim).Bold(true)
	stylePointer = lipgloss.NewStyle().Foreground(colorPointer).Bold(true)
	styleHub     = lipgloss.NewStyle().Foreground(colorPointer).Bold(true)
	styleEmpty   = lipgloss.NewStyle().Foreground(colorDim)
)

type labelPos struct {
	idx  int
	row  int
	col  int
	text []rune
}

// layout is the screen geometry of one frame.
type layout struct {
	width, height    int
	centerX, centerY int
	radius           float64
	pointerRow       int
}

func newLayout(width, height int) (layout, bool) {
	if width < 10 || height < 6 {
		return layout{}, false
	}
	l := layout{width: width, height: height, centerX: width / 2}
	// leave rows on top for the pointer
	top := 1 + config.PointerGapRows
	l.centerY = top + (height-top)/2
	rx := float64(l.centerX - 1)
	ry := float64(min(l.centerY-top, height-1-l.centerY)) / config.AspectRatio
	l.radius = math.Min(rx, ry) * config.WheelFillFrac
	if l.radius < 3 {
		return layout{}, false
	}
	l.pointerRow = l.centerY - int(math.Floor(l.radius*config.AspectRatio+config.RimWidth)) - config.PointerGapRows
	if l.pointerRow < 0 {
		l.pointerRow = 0
	}
	return l, true
}

// Render produces the wheel for st as a styled string of exactly height lines.
func Render(width, height int, st wheel.WheelState) string {
	l, ok := newLayout(width, height)
	if !ok {
		return ""
	}
	n := len(st.Entries)
	labels := buildLabels(l, st)

	labelMap := make(map[int]labelPos)
	for _, lp := range labels {
		for ci := range lp.text {
			labelMap[lp.row*width+lp.col+ci] = lp
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if lp, ok := labelMap[row*width+col]; ok {
				ch := string(lp.text[col-lp.col])
				if lp.idx < 0 {
					sb.WriteString(styleEmpty.Render(ch))
				} else {
					sb.WriteString(labelStyle(lp.idx, n, st).Render(ch))
				}
				continue
			}
			sb.WriteString(renderCell(l, col, row, st))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(l layout, col, row int, st wheel.WheelState) string {
	if row == l.pointerRow && col == l.centerX {
		return stylePointer.Render("v")
	}

	dist := CellDistance(col, row, l.centerX, l.centerY)
	angle := CellAngle(col, row, l.centerX, l.centerY)
	tol := rimTolerance(angle)
	if dist > l.radius+tol {
		return " "
	}
	if dist >= l.radius-tol {
		return styleRim.Render(string(RimChar(angle)))
	}
	if col == l.centerX && row == l.centerY {
		return styleHub.Render("o")
	}

	n := len(st.Entries)
	if n == 0 {
		return styleEmpty.Render(".")
	}

	wa := wheel.ScreenToWheel(angle, st.RotationAngle)
	idx := wheel.SliceAt(wa, n)
	hl := st.Highlighted && idx == st.HighlightIndex
	sty := lipgloss.NewStyle().
		Background(SliceColor(idx, n, hl)).
		Foreground(colorInk)

	if onSpoke(dist, wa, n) {
		// spokes rotate with the wheel, so draw them at their screen angle
		start, _ := wheel.SliceBounds(idx, n)
		if AngleDiff(wa, start) > 180/float64(n) {
			start += wheel.SegmentAngle(n)
		}
		return sty.Render(string(SpokeChar(start + st.RotationAngle)))
	}
	if hl {
		return sty.Bold(true).Render("#")
	}
	return sty.Render(" ")
}

func labelStyle(idx, n int, st wheel.WheelState) lipgloss.Style {
	hl := st.Highlighted && idx == st.HighlightIndex
	return lipgloss.NewStyle().
		Background(SliceColor(idx, n, hl)).
		Foreground(colorInk).
		Bold(hl)
}

// buildLabels places slice names at their label anchor and drops labels that
// would overlap an earlier one or leave the frame.
func buildLabels(l layout, st wheel.WheelState) []labelPos {
	n := len(st.Entries)
	if n == 0 {
		msg := truncate("add entries first", l.width)
		col := l.centerX - len(msg)/2
		if col < 0 {
			col = 0
		}
		return []labelPos{{idx: -1, row: l.centerY + 1, col: col, text: msg}}
	}

	type segment struct{ start, end int }
	occupied := make(map[int][]segment)
	// the hub and pointer are never covered
	occupied[l.centerY] = append(occupied[l.centerY], segment{l.centerX, l.centerX + 1})

	out := make([]labelPos, 0, n)
	for i, e := range st.Entries {
		pl := wheel.LabelPlacement(i, n, st.RotationAngle)
		text := truncate(e.Name, config.MaxLabelLen)
		if n > 1 {
			// keep narrow slices readable
			arc := 2 * math.Pi * l.radius * pl.Radius / float64(n)
			if maxLen := int(arc) + 2; maxLen < len(text) && maxLen >= 1 {
				text = text[:maxLen]
			}
		}
		col := l.centerX + int(math.Round(pl.X*l.radius)) - len(text)/2
		row := l.centerY - int(math.Round(pl.Y*l.radius*config.AspectRatio))
		if n == 1 {
			col = l.centerX - len(text)/2
			row = l.centerY + 1
		}
		if col < 0 || col+len(text) > l.width || row < 0 || row >= l.height {
			continue
		}

		collision := false
		for _, seg := range occupied[row] {
			if col < seg.end && col+len(text) > seg.start {
				collision = true
				break
			}
		}
		if collision {
			continue
		}
		occupied[row] = append(occupied[row], segment{col, col + len(text)})
		out = append(out, labelPos{idx: i, row: row, col: col, text: text})
	}
	return out
}

func truncate(s string, max int) []rune {
	r := []rune(s)
	if len(r) > max {
		r = r[:max]
	}
	return r
}

// RenderLegend produces the readout under the wheel: the rotation and the entry
// currently under the pointer.
func RenderLegend(width int, st wheel.WheelState) string {
	deg := wheel.NormalizeDeg(st.RotationAngle)
	text := fmt.Sprintf("%3.0fdeg", deg)
	if idx, err := wheel.ResolveSelection(st.RotationAngle, len(st.Entries)); err == nil {
		text += "  > " + st.Entries[idx].Name
	}
	legend := styleRim.Render(text)
	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
