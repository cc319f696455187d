package entries

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Reload carries a fresh parse of a watched names file.
type Reload struct {
	Path  string
	Names []string
	Err   error
}

// Watcher re-reads a names file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	log      zerolog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWatcher creates a watcher for path. Bursts of writes closer together than
// debounce produce a single reload.
func NewWatcher(path string, debounce time.Duration, log zerolog.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log.With().Str("component", "watch").Logger(),
	}
}

// Start watches the file's directory, so editors that replace the file by
// rename are still seen. onReload is called from the watcher goroutine.
func (w *Watcher) Start(ctx context.Context, onReload func(Reload)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		defer fw.Close()
		w.loop(ctx, fw, onReload)
	}()
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, onReload func(Reload)) {
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			names, err := ReadFile(w.path)
			w.log.Debug().Int("names", len(names)).Err(err).Msg("names file changed")
			onReload(Reload{Path: w.path, Names: names, Err: err})
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Stop ends the watch and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}
