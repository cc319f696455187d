package wheel

import (
	"math"
	"testing"
	"time"
)

var weightedNames = []Entry{
	{Name: "Alice", Weight: 2},
	{Name: "Bob", Weight: 1},
	{Name: "Charlie", Weight: 1},
	{Name: "Diana", Weight: 3},
}

func spinFrequencies(t *testing.T, sel Selector, trials int) []float64 {
	t.Helper()
	e := New(WithRandom(NewSeededRNG(42)), WithSelector(sel))
	if err := e.SetEntries(weightedNames); err != nil {
		t.Fatal(err)
	}
	counts := make([]int, len(weightedNames))
	for i := 0; i < trials; i++ {
		if _, err := e.Spin(); err != nil {
			t.Fatal(err)
		}
		res, done := e.Update(time.Minute)
		if !done {
			t.Fatal("spin did not finish")
		}
		counts[res.Index]++
	}
	freqs := make([]float64, len(counts))
	for i, c := range counts {
		freqs[i] = float64(c) / float64(trials)
	}
	return freqs
}

// Weights are stored but the default strategy ignores them.
func TestUniformIgnoresWeights(t *testing.T) {
	freqs := spinFrequencies(t, Uniform{}, 20000)
	for i, f := range freqs {
		if math.Abs(f-0.25) > 0.02 {
			t.Fatalf("entry %d: freq=%f not close to 0.25", i, f)
		}
	}
}

func TestWeightedFollowsWeights(t *testing.T) {
	freqs := spinFrequencies(t, Weighted{}, 20000)
	for i, f := range freqs {
		want := weightedNames[i].Weight / 7
		if math.Abs(f-want) > 0.02 {
			t.Fatalf("entry %d: freq=%f not close to %f", i, f, want)
		}
	}
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	entries := []Entry{{"a", 0}, {"b", 1}, {"c", 0}}
	rng := NewSeededRNG(1)
	for i := 0; i < 1000; i++ {
		if got := (Weighted{}).Pick(entries, rng); got != 1 {
			t.Fatalf("picked zero-weight entry %d", got)
		}
	}
}

func TestWeightedAllZeroFallsBackToUniform(t *testing.T) {
	entries := []Entry{{"a", 0}, {"b", 0}}
	seen := map[int]bool{}
	rng := NewSeededRNG(5)
	for i := 0; i < 200; i++ {
		seen[(Weighted{}).Pick(entries, rng)] = true
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected both entries picked, got %v", seen)
	}
}

func TestNewSelector(t *testing.T) {
	if s, err := NewSelector(""); err != nil || s != (Uniform{}) {
		t.Fatalf("empty strategy: %v %v", s, err)
	}
	if s, err := NewSelector(StrategyWeighted); err != nil || s != (Weighted{}) {
		t.Fatalf("weighted: %v %v", s, err)
	}
	if _, err := NewSelector("rigged"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestWeightedIgnoresInfiniteWeight(t *testing.T) {
	entries := []Entry{{"huge", math.Inf(1)}, {"b", 1}}
	rng := NewSeededRNG(7)
	for i := 0; i < 1000; i++ {
		if got := (Weighted{}).Pick(entries, rng); got != 1 {
			t.Fatalf("picked %d, want the finite entry", got)
		}
	}
}

// Weights whose plain sum overflows float64 still draw proportionally.
func TestWeightedHugeWeightsDoNotOverflow(t *testing.T) {
	entries := []Entry{{"a", 1e308}, {"b", 1e308}, {"c", 1e-9}}
	rng := NewSeededRNG(11)
	counts := make([]int, len(entries))
	const trials = 4000
	for i := 0; i < trials; i++ {
		counts[(Weighted{}).Pick(entries, rng)]++
	}
	for i := 0; i < 2; i++ {
		if f := float64(counts[i]) / trials; math.Abs(f-0.5) > 0.05 {
			t.Fatalf("entry %d: freq=%f not close to 0.5 (counts %v)", i, f, counts)
		}
	}
	if counts[2] != 0 {
		t.Fatalf("tiny weight won %d times (counts %v)", counts[2], counts)
	}
}
