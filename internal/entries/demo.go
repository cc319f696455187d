package entries

import "srboli-wheel/internal/wheel"

var demoEntries = []wheel.Entry{
	{Name: "Pizza", Weight: 2},
	{Name: "Sushi", Weight: 1},
	{Name: "Tacos", Weight: 1},
	{Name: "Burger", Weight: 1.5},
	{Name: "Ramen", Weight: 1},
	{Name: "Salad", Weight: 0.5},
	{Name: "Curry", Weight: 1},
	{Name: "Pho", Weight: 1},
}

// Demo returns a fresh copy of the sample entries used by --demo.
func Demo() []wheel.Entry {
	return append([]wheel.Entry(nil), demoEntries...)
}
