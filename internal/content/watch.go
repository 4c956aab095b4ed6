package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceDuration is how long the watcher waits after the last change
// before reloading.
const DebounceDuration = 500 * time.Millisecond

// Watcher reloads a content directory into a Store whenever files below it
// change. A failed reload is logged and the store keeps its previous
// collection.
type Watcher struct {
	dir      string
	store    *Store
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	onReload func(Snapshot)

	// reloadMu keeps at most one reload running.
	reloadMu sync.Mutex
}

// NewWatcher registers watches on dir and every directory below it.
// onReload, if set, runs after every successful reload.
func NewWatcher(dir string, store *Store, logger *zap.Logger, onReload func(Snapshot)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("error walking content directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if watchErr := watcher.Add(path); watchErr != nil {
				logger.Warn("failed to watch directory", zap.String("path", path), zap.Error(watchErr))
			}
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to set up watches for %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		store:    store,
		logger:   logger,
		watcher:  watcher,
		onReload: onReload,
	}, nil
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	c, err := LoadDir(w.dir, w.logger)
	if err != nil {
		w.logger.Error("content reload failed", zap.Error(err))
		return
	}
	if err := w.store.Replace(c); err != nil {
		w.logger.Error("content reload rejected", zap.Error(err))
		return
	}
	snap := w.store.Snapshot()
	w.logger.Info("content reloaded", zap.Uint64("generation", snap.Generation))
	if w.onReload != nil {
		w.onReload(snap)
	}
}

// Run processes change events until ctx is done, debouncing bursts by
// DebounceDuration. It closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(DebounceDuration, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
