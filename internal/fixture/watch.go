package fixture

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to known fixtures in a data directory. Rapid saves
// of the same file collapse into one notification after the debounce
// window.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(name string)
	logger   *log.Logger

	mu      sync.Mutex
	pending map[string]time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher prepares a watcher for dir; call Start to begin.
func NewWatcher(dir string, debounce time.Duration, logger *log.Logger, onChange func(name string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start adds the directory and runs the event loop in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Debug("watching fixtures", "dir", w.dir)
	go w.run(ctx)
	return nil
}

// Stop ends the loop and closes the underlying watcher. Safe to call
// more than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		select {
		case <-w.stopCh:
		default:
			close(w.stopCh)
		}
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing fixture watcher", "err", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(w.debounce / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("fixture watcher", "err", err)
		case <-tick.C:
			w.flush(time.Now())
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	name := filepath.Base(ev.Name)
	if _, known := schemaFor[name]; !known {
		return
	}
	w.mu.Lock()
	w.pending[name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush(now time.Time) {
	w.mu.Lock()
	var ready []string
	for name, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, name)
			delete(w.pending, name)
		}
	}
	w.mu.Unlock()

	for _, name := range ready {
		w.logger.Debug("fixture changed", "name", name)
		if w.onChange != nil {
			w.onChange(name)
		}
	}
}
