package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the interval the watcher waits after the last write to
// a config file before reloading it, absorbing the burst of events most
// editors and atomic-rename writers produce for a single logical save.
const WatchDebounce = 100 * time.Millisecond

// Watch reloads the config at path whenever it changes on disk, the same
// write-then-debounce-then-reload shape the teacher's FSWatcher applies
// to its own index configuration, narrowed to a single file: fsnotify
// only supports watching directories reliably across platforms, so Watch
// watches path's parent directory and filters events down to path itself
// (mirroring FSWatcher's isExcluded filter, just inverted to an allowlist
// of one).
//
// The returned channel receives the newly loaded Config after every
// successful reload and is closed when ctx is done or the watcher's
// underlying channels close. A failed reload (unparsable file, a
// Validate error) is dropped silently rather than sent — Current still
// holds the last good config, so a bad save never disrupts a running
// Generator.
func (l *Loader) Watch(ctx context.Context, path string) (<-chan *Config, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan *Config)
	go l.watchLoop(ctx, w, path, out)
	return out, nil
}

func (l *Loader) watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, out chan *Config) {
	defer close(out)
	defer w.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !isRelevantConfigEvent(event, path) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		case <-reload:
			if err := l.LoadFromFile(path); err != nil {
				continue
			}
			select {
			case out <- l.Current():
			case <-ctx.Done():
				return
			}
		}
	}
}

// isRelevantConfigEvent reports whether event concerns path itself,
// filtering out unrelated sibling-file activity in the watched directory.
func isRelevantConfigEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
