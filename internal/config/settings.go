package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the optional YAML settings file. Unset fields keep defaults.
type Settings struct {
	Strategy string    `yaml:"strategy,omitempty"` // "uniform" | "weighted"
	Spin     SpinCfg   `yaml:"spin"`
	Entries  []NameCfg `yaml:"entries,omitempty"`
}

type SpinCfg struct {
	MinFullSpins   *int     `yaml:"min_full_spins,omitempty"`
	MaxFullSpins   *int     `yaml:"max_full_spins,omitempty"`
	BaseDuration   *string  `yaml:"base_duration,omitempty"` // time.ParseDuration syntax
	DurationJitter *string  `yaml:"duration_jitter,omitempty"`
	EdgeMargin     *float64 `yaml:"edge_margin,omitempty"`
	Easing         string   `yaml:"easing,omitempty"`
}

// NameCfg is a preset wheel entry.
type NameCfg struct {
	Name   string   `yaml:"name"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Resolved is the effective configuration after merging the file over defaults.
type Resolved struct {
	Strategy       string
	MinFullSpins   int
	MaxFullSpins   int
	BaseDuration   time.Duration
	DurationJitter time.Duration
	EdgeMargin     float64
	Easing         string
	Entries        []NameCfg
}

// Defaults returns the built-in configuration.
func Defaults() Resolved {
	return Resolved{
		Strategy:       "uniform",
		MinFullSpins:   MinFullSpins,
		MaxFullSpins:   MaxFullSpins,
		BaseDuration:   BaseDuration,
		DurationJitter: DurationJitter,
		EdgeMargin:     EdgeMargin,
		Easing:         DefaultEasing,
	}
}

// Load reads the settings file at path and merges it over Defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Resolved, error) {
	if path == "" {
		return Defaults(), nil
	}
	s, err := readYAML(path)
	if err != nil {
		return Resolved{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Merge(Defaults(), s)
}

// readYAML loads a YAML file into Settings. Missing files return zero settings, no error.
func readYAML(path string) (Settings, error) {
	var s Settings
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Merge applies s over base and validates the result.
func Merge(base Resolved, s Settings) (Resolved, error) {
	out := base
	var errs []string

	if s.Strategy != "" {
		out.Strategy = s.Strategy
	}
	if s.Spin.MinFullSpins != nil {
		out.MinFullSpins = *s.Spin.MinFullSpins
	}
	if s.Spin.MaxFullSpins != nil {
		out.MaxFullSpins = *s.Spin.MaxFullSpins
	}
	if s.Spin.BaseDuration != nil {
		d, err := time.ParseDuration(*s.Spin.BaseDuration)
		if err != nil {
			errs = append(errs, fmt.Sprintf("spin.base_duration: %v", err))
		} else {
			out.BaseDuration = d
		}
	}
	if s.Spin.DurationJitter != nil {
		d, err := time.ParseDuration(*s.Spin.DurationJitter)
		if err != nil {
			errs = append(errs, fmt.Sprintf("spin.duration_jitter: %v", err))
		} else {
			out.DurationJitter = d
		}
	}
	if s.Spin.EdgeMargin != nil {
		out.EdgeMargin = *s.Spin.EdgeMargin
	}
	if s.Spin.Easing != "" {
		out.Easing = s.Spin.Easing
	}
	if len(s.Entries) > 0 {
		out.Entries = append([]NameCfg(nil), s.Entries...)
	}

	errs = append(errs, validate(out)...)
	if len(errs) > 0 {
		return Resolved{}, fmt.Errorf("settings validation failed: %s", strings.Join(errs, "; "))
	}
	return out, nil
}

func validate(r Resolved) []string {
	var errs []string
	switch r.Strategy {
	case "uniform", "weighted":
	default:
		errs = append(errs, "strategy must be one of: uniform, weighted")
	}
	if r.MinFullSpins < 0 {
		errs = append(errs, "spin.min_full_spins must be >= 0")
	}
	if r.MaxFullSpins < r.MinFullSpins {
		errs = append(errs, "spin.max_full_spins must be >= spin.min_full_spins")
	}
	if r.BaseDuration < 0 {
		errs = append(errs, "spin.base_duration must be >= 0")
	}
	if r.DurationJitter < 0 {
		errs = append(errs, "spin.duration_jitter must be >= 0")
	}
	if r.EdgeMargin <= 0 || r.EdgeMargin >= 0.5 {
		errs = append(errs, "spin.edge_margin must be in (0, 0.5)")
	}
	for i, e := range r.Entries {
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Sprintf("entries[%d].name must not be empty", i))
		}
		if e.Weight != nil && *e.Weight < 0 {
			errs = append(errs, fmt.Sprintf("entries[%d].weight must be >= 0", i))
		}
	}
	return errs
}
