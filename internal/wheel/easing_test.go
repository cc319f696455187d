package wheel

import "testing"

func TestEasingEndpointsAndMonotone(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseOutQuad, EaseOutCubic, EaseInOutCubic} {
		if !e.Valid() {
			t.Fatalf("%s should be valid", e)
		}
		if e.Apply(0) != 0 || e.Apply(1) != 1 {
			t.Fatalf("%s: endpoints %v %v", e, e.Apply(0), e.Apply(1))
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.Apply(float64(i) / 100)
			if v < prev {
				t.Fatalf("%s not monotone at %d", e, i)
			}
			prev = v
		}
	}
	if Easing("bounce").Valid() {
		t.Fatal("unknown easing reported valid")
	}
}

func TestEaseOutDecelerates(t *testing.T) {
	// ease-out covers more ground in the first half than the second
	first := EaseOutCubic.Apply(0.5)
	if first <= 0.5 {
		t.Fatalf("easeOutCubic(0.5)=%v, want > 0.5", first)
	}
}
