package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel)
	l.Info().Str("component", "wheel").Msg("spin finished")
	l.Debug().Msg("dropped")

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["component"] != "wheel" || rec["message"] != "spin finished" {
		t.Fatalf("unexpected record %v", rec)
	}
	if _, ok := rec["time"]; !ok {
		t.Fatal("missing timestamp")
	}
}

func TestOpenToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wheel.log")
	l, c, err := Open(p, "debug")
	if err != nil {
		t.Fatal(err)
	}
	l.Debug().Msg("hello")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("log file missing record: %q", b)
	}
}

func TestOpenWithoutPathIsNop(t *testing.T) {
	l, c, err := Open("", "")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if l.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %v", l.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel(" WARN "); err != nil || lvl != zerolog.WarnLevel {
		t.Fatalf("got %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}
