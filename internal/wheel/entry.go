package wheel

import (
	"math"
	"strings"
)

// DefaultWeight is used when a caller has no weight for an entry.
const DefaultWeight = 1.0

// Entry is a named, weighted item on the wheel. Order on the wheel decides
// which slice the entry occupies.
type Entry struct {
	Name   string
	Weight float64
}

// normalizeEntry trims the name and clamps the weight to a finite value >= 0.
// Returns false if the name is blank.
func normalizeEntry(name string, weight float64) (Entry, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		weight = 0
	}
	return Entry{Name: name, Weight: weight}, true
}
