// Package watch re-runs work when report files change. It watches the
// directories holding the files rather than the files themselves, so
// editors that save by writing a new file and renaming it over the old one
// are still seen. Bursts of events for one file are collapsed into a single
// callback once the file has been quiet for the debounce interval.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reports changes of a fixed set of files.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}

	mu      sync.Mutex
	stopped bool
	pending map[string]*time.Timer

	// cbMu serializes callbacks and lets Stop wait for the running one.
	cbMu sync.Mutex
}

// NewWatcher creates a new file system watcher. A non-positive debounce
// means DefaultDebounce.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Watch starts monitoring files. onChange is called with the path as given
// in files, never concurrently with itself.
func (w *Watcher) Watch(files []string, onChange func(path string)) error {
	watched := make(map[string]string, len(files))
	dirs := make(map[string]bool)

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}

		watched[abs] = f

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}

		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}

		dirs[dir] = true
	}

	go w.loop(watched, onChange)

	return nil
}

func (w *Watcher) loop(watched map[string]string, onChange func(path string)) {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}

			w.schedule(path, onChange)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			Logger().Warn("watch error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

// schedule restarts the quiet-period timer of path.
func (w *Watcher) schedule(path string, onChange func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	// A fired callback may still be waiting for cbMu or mu; it runs only if
	// its timer is still the pending one.
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.cbMu.Lock()
		defer w.cbMu.Unlock()

		w.mu.Lock()
		current := w.pending[path] == t
		if current {
			delete(w.pending, path)
		}
		stopped := w.stopped
		w.mu.Unlock()

		if !current || stopped {
			return
		}

		Logger().Debug("report changed", zap.String("path", path))
		onChange(path)
	})
	w.pending[path] = t
}

// Stop ends monitoring and releases all resources. Pending changes are
// dropped and a callback in progress is waited for, so Stop must not be
// called from onChange. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()

	if w.stopped {
		w.mu.Unlock()
		return nil
	}

	w.stopped = true
	for _, t := range w.pending {
		t.Stop()
	}

	close(w.done)
	err := w.fw.Close()
	w.mu.Unlock()

	w.cbMu.Lock()
	defer w.cbMu.Unlock()

	return err
}
