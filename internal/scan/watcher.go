package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory tree for Rust source changes and invokes a
// callback with the batch of changed files after a quiet period.
type Watcher struct {
	watcher       *fsnotify.Watcher
	rootDir       string
	debounceTime  time.Duration
	callback      func(files []string)
	accumulated   map[string]bool
	accumulatedMu sync.Mutex
	debounceTimer *time.Timer
	timerMu       sync.Mutex
	cancel        context.CancelFunc
	stopOnce      sync.Once
	doneCh        chan struct{}
}

// NewWatcher creates a watcher over rootDir, registering every
// subdirectory recursively.
func NewWatcher(rootDir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:      fsWatcher,
		rootDir:      rootDir,
		debounceTime: 500 * time.Millisecond,
		accumulated:  make(map[string]bool),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(rootDir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching. The callback receives root-relative paths of
// changed .rs files, debounced into batches.
func (w *Watcher) Start(ctx context.Context, callback func(files []string)) {
	if callback == nil {
		return
	}

	w.callback = callback
	ctx, w.cancel = context.WithCancel(ctx)

	go w.watch(ctx)
}

// Stop stops the watcher and waits for the watch goroutine to finish.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.doneCh
		}

		w.timerMu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.timerMu.Unlock()

		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Newly created directories need to be watched too.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addDirectoriesRecursively(event.Name)
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".rs") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	rel, err := filepath.Rel(w.rootDir, event.Name)
	if err != nil {
		return
	}

	w.accumulatedMu.Lock()
	w.accumulated[filepath.ToSlash(rel)] = true
	w.accumulatedMu.Unlock()

	w.resetDebounce()
}

// resetDebounce restarts the quiet-period timer; the callback fires once per
// burst of changes.
func (w *Watcher) resetDebounce() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceTime, w.flush)
}

func (w *Watcher) flush() {
	w.accumulatedMu.Lock()
	files := make([]string, 0, len(w.accumulated))
	for f := range w.accumulated {
		files = append(files, f)
	}
	w.accumulated = make(map[string]bool)
	w.accumulatedMu.Unlock()

	if len(files) > 0 {
		w.callback(files)
	}
}

func (w *Watcher) addDirectoriesRecursively(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == "target" {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				return nil
			}
		}
		return nil
	})
}
