package settings

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk and delivers
// the decoded result on Updates. Files that fail to decode are logged and
// skipped.
type Watcher struct {
	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	Updates chan *Settings
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path. Editors that replace files
// by rename are only visible at directory level.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		log:     log.Named("settings"),
		watcher: w,
		Updates: make(chan *Settings, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
	})
	return err
}

// run reloads once a burst of writes to the file has been quiet for
// reloadDebounce. Saving a file usually produces several events and the
// first may see it truncated.
func (w *Watcher) run() {
	defer close(w.done)
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	// keep only the newest pending update
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
		w.log.Info("settings reloaded", zap.String("path", w.path))
	case <-w.closeCh:
	}
}
