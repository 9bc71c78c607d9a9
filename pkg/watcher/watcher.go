// Package watcher re-runs a callback whenever a project descriptor
// file changes on disk, with debouncing so editors that write in
// multiple steps trigger a single reload.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ProjectWatcher watches one project descriptor file
type ProjectWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	onChange func(string)
}

// New creates a watcher for the given descriptor file
func New(path string, debounce time.Duration, onChange func(string)) (*ProjectWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory rather than the file: editors that replace
	// the file on save would otherwise drop the watch.
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &ProjectWatcher{
		watcher:  fw,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Start begins delivering change callbacks until Close is called
func (pw *ProjectWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-pw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != pw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					pw.scheduleCallback()
				}

			case err, ok := <-pw.watcher.Errors:
				if !ok {
					return
				}
				_ = err // transient watch errors are not actionable here
			}
		}
	}()
}

func (pw *ProjectWatcher) scheduleCallback() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.timer = time.AfterFunc(pw.debounce, func() {
		pw.onChange(pw.path)
	})
}

// Close stops the watcher
func (pw *ProjectWatcher) Close() error {
	pw.mu.Lock()
	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.mu.Unlock()
	return pw.watcher.Close()
}
