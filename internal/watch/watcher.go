// Package watch reports changes to individual files, such as the config
// file, using fsnotify.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/AgentricAI/agentricai/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events many editors produce for a
// single save.
const DefaultDebounce = 50 * time.Millisecond

// Watcher invokes a callback when one of its files is written, created or
// replaced.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange func(path string)
	debounce time.Duration
	logger   *logging.Logger

	mu       sync.RWMutex
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a Watcher. Call Add for each file, then Start.
func New(onChange func(path string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		files:    make(map[string]struct{}),
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logging.NopLogger(),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetLogger sets where watch errors are reported.
func (w *Watcher) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NopLogger()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logger = l
}

// SetDebounce changes the quiet period before a change is reported.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Add starts watching path. The parent directory is watched so that
// editors that save by rename are still seen.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.files[abs] = struct{}{}
	return nil
}

// Start begins delivering change notifications.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// Done is closed once the watch loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	debounceTimer := time.NewTimer(time.Hour)
	debounceTimer.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.watched(event.Name) {
				continue
			}

			pending[filepath.Clean(event.Name)] = struct{}{}

			w.mu.RLock()
			d := w.debounce
			w.mu.RUnlock()
			debounceTimer.Reset(d)

		case <-debounceTimer.C:
			for path := range pending {
				w.onChange(path)
			}
			pending = make(map[string]struct{})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.mu.RLock()
			logger := w.logger
			w.mu.RUnlock()
			logger.Warn("file watch error", "error", err.Error())
		}
	}
}

func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.files[abs]
	return ok
}
