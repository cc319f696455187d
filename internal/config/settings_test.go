package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"srboli-wheel/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	got, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := config.Defaults()
	if got.Strategy != want.Strategy || got.BaseDuration != want.BaseDuration || got.Easing != want.Easing {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestLoad_MissingFileIsDefaults(t *testing.T) {
	got, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got.MinFullSpins != config.MinFullSpins {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestLoad_Overrides(t *testing.T) {
	p := writeFile(t, `
strategy: weighted
spin:
  min_full_spins: 2
  max_full_spins: 4
  base_duration: 3s
  duration_jitter: 500ms
  edge_margin: 0.2
  easing: linear
entries:
  - name: Alice
    weight: 2
  - name: Bob
`)
	got, err := config.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Strategy != "weighted" || got.MinFullSpins != 2 || got.MaxFullSpins != 4 {
		t.Fatalf("unexpected %+v", got)
	}
	if got.BaseDuration != 3*time.Second || got.DurationJitter != 500*time.Millisecond {
		t.Fatalf("durations %v %v", got.BaseDuration, got.DurationJitter)
	}
	if got.EdgeMargin != 0.2 || got.Easing != "linear" {
		t.Fatalf("unexpected %+v", got)
	}
	if len(got.Entries) != 2 || got.Entries[0].Name != "Alice" || *got.Entries[0].Weight != 2 || got.Entries[1].Weight != nil {
		t.Fatalf("entries %+v", got.Entries)
	}
}

func TestLoad_CollectsAllErrors(t *testing.T) {
	p := writeFile(t, `
strategy: rigged
spin:
  min_full_spins: 5
  max_full_spins: 1
  base_duration: soon
  edge_margin: 0.7
`)
	_, err := config.Load(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, frag := range []string{"strategy", "max_full_spins", "base_duration", "edge_margin"} {
		if !strings.Contains(err.Error(), frag) {
			t.Fatalf("error %q does not mention %s", err, frag)
		}
	}
}

func TestLoad_ZeroEdgeMarginRejected(t *testing.T) {
	p := writeFile(t, `
spin:
  edge_margin: 0
`)
	_, err := config.Load(p)
	if err == nil || !strings.Contains(err.Error(), "edge_margin") {
		t.Fatalf("want edge_margin error, got %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	p := writeFile(t, "spin: [unclosed")
	if _, err := config.Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}
