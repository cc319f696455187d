package entries

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(p, []byte("Alice\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan Reload, 4)
	w := NewWatcher(p, 20*time.Millisecond, zerolog.Nop())
	if err := w.Start(context.Background(), func(r Reload) { got <- r }); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(p, []byte("Alice\nBob\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-got:
		if r.Err != nil {
			t.Fatal(r.Err)
		}
		if !reflect.DeepEqual(r.Names, []string{"Alice", "Bob"}) {
			t.Fatalf("names %q", r.Names)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(p, []byte("Alice\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan Reload, 4)
	w := NewWatcher(p, 20*time.Millisecond, zerolog.Nop())
	if err := w.Start(context.Background(), func(r Reload) { got <- r }); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-got:
		t.Fatalf("unexpected reload %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	NewWatcher("x.txt", time.Millisecond, zerolog.Nop()).Stop()
}
