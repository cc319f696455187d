package render

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"srboli-wheel/internal/wheel"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plainLines(s string) [][]rune {
	var out [][]rune
	for _, l := range strings.Split(ansiRe.ReplaceAllString(s, ""), "\n") {
		out = append(out, []rune(l))
	}
	return out
}

func spunState(t *testing.T, names ...string) wheel.WheelState {
	t.Helper()
	e := wheel.New(wheel.WithRandom(wheel.NewSeededRNG(11)))
	for _, n := range names {
		_ = e.AddEntry(n, 1)
	}
	if _, err := e.Spin(); err != nil {
		t.Fatal(err)
	}
	if _, done := e.Update(time.Minute); !done {
		t.Fatal("spin did not finish")
	}
	return e.State()
}

func TestRenderTooSmall(t *testing.T) {
	if got := Render(5, 3, wheel.WheelState{}); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestRenderDimensions(t *testing.T) {
	st := spunState(t, "Alice", "Bob", "Carol", "Dan")
	lines := plainLines(Render(60, 24, st))
	if len(lines) != 24 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, l := range lines {
		if len(l) != 60 {
			t.Fatalf("line %d has %d cells", i, len(l))
		}
	}
}

func TestRenderPointerAndLabels(t *testing.T) {
	st := spunState(t, "Alice", "Bob", "Carol", "Dan")
	out := ansiRe.ReplaceAllString(Render(60, 24, st), "")
	if !strings.Contains(out, "v") {
		t.Fatal("pointer missing")
	}
	for _, n := range []string{"Alice", "Bob", "Carol", "Dan"} {
		if !strings.Contains(out, n) {
			t.Fatalf("label %s missing:\n%s", n, out)
		}
	}
}

// The slice drawn under the pointer is the resolved winner.
func TestRenderWinnerUnderPointer(t *testing.T) {
	st := spunState(t, "Alice", "Bob", "Carol", "Dan")
	if !st.Highlighted {
		t.Fatal("expected a highlighted winner")
	}
	l, ok := newLayout(60, 24)
	if !ok {
		t.Fatal("layout rejected")
	}
	lines := plainLines(Render(60, 24, st))
	if lines[l.pointerRow][l.centerX] != 'v' {
		t.Fatalf("pointer not at row %d col %d", l.pointerRow, l.centerX)
	}
	for row := l.pointerRow + 1; row < l.centerY; row++ {
		ch := lines[row][l.centerX]
		if ch == ' ' || ch == '-' {
			continue
		}
		if ch != '#' {
			t.Fatalf("first slice cell under pointer is %q, want highlighted fill", ch)
		}
		return
	}
	t.Fatal("no slice cell found under pointer")
}

func TestRenderEmptyWheel(t *testing.T) {
	out := ansiRe.ReplaceAllString(Render(60, 24, wheel.WheelState{}), "")
	if !strings.Contains(out, "add entries first") {
		t.Fatalf("empty hint missing:\n%s", out)
	}
}

func TestRenderLegend(t *testing.T) {
	st := wheel.WheelState{Entries: []wheel.Entry{{"Alice", 2}, {"Bob", 1}, {"Charlie", 1}, {"Diana", 3}}, RotationAngle: 45}
	got := ansiRe.ReplaceAllString(RenderLegend(40, st), "")
	if !strings.Contains(got, "> Alice") || !strings.Contains(got, "45deg") {
		t.Fatalf("legend %q", got)
	}
	if strings.Contains(ansiRe.ReplaceAllString(RenderLegend(40, wheel.WheelState{}), ""), ">") {
		t.Fatal("empty wheel legend should not name an entry")
	}
}

func TestSpokeAndRimChars(t *testing.T) {
	cases := map[float64]rune{0: '-', 45: '/', 90: '|', 135: '\\', 180: '-', 315: '\\'}
	for a, want := range cases {
		if got := SpokeChar(a); got != want {
			t.Fatalf("SpokeChar(%v)=%q want %q", a, got, want)
		}
	}
	if RimChar(90) != '-' || RimChar(0) != '|' {
		t.Fatal("rim should run perpendicular to the spoke")
	}
}

func TestCellAngle(t *testing.T) {
	cases := []struct {
		col, row int
		want     float64
	}{
		{10, 5, 90},  // above
		{15, 10, 0},  // right
		{5, 10, 180}, // left
		{10, 15, 270},
	}
	for _, c := range cases {
		if a := CellAngle(c.col, c.row, 10, 10); math.Abs(a-c.want) > 1e-9 {
			t.Fatalf("CellAngle(%d,%d)=%v want %v", c.col, c.row, a, c.want)
		}
	}
}

func TestSliceColorHighlightIsBrighter(t *testing.T) {
	if SliceColor(1, 4, true) == SliceColor(1, 4, false) {
		t.Fatal("highlight should change the color")
	}
}
