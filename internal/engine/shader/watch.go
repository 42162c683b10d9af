package shader

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/logger"
)

// Watcher reports edits to shader files. It is polled from the frame loop,
// so GL work stays on the render thread.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
}

// NewWatcher watches the directories holding paths and filters events down
// to those files. Editors often replace files on save, which a watch on the
// file itself would lose.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating shader watcher: %w", err)
	}

	w := &Watcher{fs: fw, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Changed drains pending events without blocking and reports whether any
// watched file was written or recreated.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return changed
			}
			if w.files[ev.Name] && ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				logger.Debug("shader file changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
				changed = true
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return changed
			}
			logger.Warn("shader watcher error", zap.Error(err))
		default:
			return changed
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
