package entries

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"srboli-wheel/internal/config"
	"srboli-wheel/internal/wheel"
)

// ParseNames reads one name per line. Lines are trimmed and blank lines skipped.
func ParseNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ReadFile parses a names file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	defer f.Close()
	names, err := ParseNames(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return names, nil
}

// FilterNew drops names already on the wheel and repeats within names,
// keeping first-seen order.
func FilterNew(existing []wheel.Entry, names []string) []string {
	seen := make(map[string]bool, len(existing)+len(names))
	for _, e := range existing {
		seen[e.Name] = true
	}
	var out []string
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// ToEntries gives every name the default weight.
func ToEntries(names []string) []wheel.Entry {
	out := make([]wheel.Entry, 0, len(names))
	for _, n := range names {
		out = append(out, wheel.Entry{Name: n, Weight: config.DefaultWeight})
	}
	return out
}

// ParseEntry parses the add prompt: "name" or "name:weight". The text after
// the last colon is a weight only if it parses as a number; otherwise the
// whole input is the name and the weight is the default.
func ParseEntry(s string) (name string, weight float64) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return s, config.DefaultWeight
	}
	name = strings.TrimSpace(s[:i])
	w, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if name == "" || err != nil {
		return s, config.DefaultWeight
	}
	return name, w
}

// Import reads path and adds every name not yet on the wheel with the
// default weight. It returns how many entries were added.
func Import(e *wheel.Engine, path string) (int, error) {
	names, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, n := range FilterNew(e.Entries(), names) {
		if err := e.AddEntry(n, config.DefaultWeight); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
