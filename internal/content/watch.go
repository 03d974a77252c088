package content

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watcher drops cache snapshots when anything under the content root
// changes. It is purely an optimization on top of fingerprint revalidation;
// losing it never serves stale content.
type watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

func newWatcher(root string, cache *snapshotCache, logger *zap.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addRecursive(fsw, root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &watcher{fsw: fsw, done: make(chan struct{})}
	go w.run(cache, logger)
	return w, nil
}

func (w *watcher) run(cache *snapshotCache, logger *zap.Logger) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			cache.purge()
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.fsw.Add(event.Name)
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("content watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

func (w *watcher) Close() {
	close(w.done)
	_ = w.fsw.Close()
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}
