package wheel

// WheelState is a point-in-time copy of the engine, safe to hand to a renderer.
type WheelState struct {
	Entries        []Entry
	RotationAngle  float64
	HighlightIndex int // valid only when Highlighted
	Highlighted    bool
	Spinning       bool
	Progress       float64 // animation progress in [0,1]; 0 when idle
}

// SegmentAngle is the slice width for the current entries.
func (s WheelState) SegmentAngle() float64 { return SegmentAngle(len(s.Entries)) }

// Winner returns the highlighted entry, if any.
func (s WheelState) Winner() (Entry, bool) {
	if !s.Highlighted || s.HighlightIndex < 0 || s.HighlightIndex >= len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[s.HighlightIndex], true
}
