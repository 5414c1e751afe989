package skin

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/rplrewind/rewind/internal/logging"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a skin file when it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(Skin)
	debounce time.Duration
	logger   *logrus.Entry

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the directory holding path. Editors usually replace
// files instead of writing them in place, so the directory is watched and
// events are filtered by name.
func NewWatcher(path string, onReload func(Skin)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		watcher:  w,
		path:     filepath.Clean(path),
		onReload: onReload,
		debounce: defaultDebounce,
		logger:   logging.NewLogger("skin-watcher"),
	}, nil
}

// Run blocks until ctx is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.handleChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Warn("watcher error")
		case <-ctx.Done():
			return nil
		}
	}
}

// handleChange reloads once the file has been quiet for the debounce window.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.watcher.Close()
}

func (w *Watcher) reload() {
	s, err := LoadFile(w.path)
	if err != nil {
		w.logger.WithError(err).Warnf("reloading %s", filepath.Base(w.path))
		return
	}
	w.logger.Infof("skin reloaded: %s", filepath.Base(w.path))
	if w.onReload != nil {
		w.onReload(s)
	}
}
