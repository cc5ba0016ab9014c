// Package watcher reports changes to development machine list files.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"secretsdir/internal/logging"
)

// DefaultDebounce collapses editor save bursts into one notification
const DefaultDebounce = 500 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// WatchMultiple watches paths and calls onChange, debounced per path, when
// one of them is written, created, removed or renamed. Parent directories are
// watched rather than the files so that lists which do not exist yet, or are
// replaced by editors, are still seen. Paths whose directory is missing are
// skipped with a warning. It blocks until ctx is cancelled and returns only
// after any running onChange call has finished.
func WatchMultiple(ctx context.Context, paths []string, debounce time.Duration, onChange func(path string)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Track which directories and files we're watching
	watchedDirs := make(map[string]bool)
	fileSet := make(map[string]bool)

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		dir := filepath.Dir(absPath)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				logging.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
				continue
			}
			watchedDirs[dir] = true
		}

		fileSet[absPath] = true
		logging.Info().Str("path", absPath).Msg("watching for changes")
	}

	var (
		mu             sync.Mutex
		pending        sync.WaitGroup
		debounceTimers = make(map[string]*time.Timer)
	)

	// Every scheduled timer holds one pending count, released either by its
	// callback or by a Stop that prevented the callback.
	defer func() {
		mu.Lock()
		for _, timer := range debounceTimers {
			if timer.Stop() {
				pending.Done()
			}
		}
		mu.Unlock()
		pending.Wait()
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			absPath, err := filepath.Abs(event.Name)
			if err != nil || !fileSet[absPath] {
				continue
			}

			if event.Op&relevantOps == 0 {
				continue
			}

			mu.Lock()
			if timer, exists := debounceTimers[absPath]; exists && timer.Stop() {
				pending.Done()
			}
			pending.Add(1)
			debounceTimers[absPath] = time.AfterFunc(debounce, func() {
				defer pending.Done()
				if ctx.Err() != nil {
					return
				}
				logging.Debug().Str("path", absPath).Str("op", event.Op.String()).Msg("file changed")
				onChange(absPath)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn().Err(err).Msg("watcher error")

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
