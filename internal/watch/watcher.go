// Package watch re-runs a job whenever matching input files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/fraglen/internal/ports"
	"github.com/bft-labs/fraglen/pkg/log"
)

// Config holds configuration options for the watcher.
type Config struct {
	// Dirs are watched recursively. Directories created later are added as
	// they appear.
	Dirs []string

	// Glob selects the file names that trigger a run, e.g.
	// "*.fragment_length_hist.csv".
	Glob string

	// DebounceDelay is the quiet period after the last change before running.
	// Default: 500 milliseconds
	DebounceDelay time.Duration
}

// DefaultDebounceDelay is used when Config.DebounceDelay is not positive.
const DefaultDebounceDelay = 500 * time.Millisecond

// Job is the work repeated after every batch of changes.
type Job func(ctx context.Context) error

// Watcher runs a Job after matching files are created, written, renamed or
// removed.
type Watcher struct {
	cfg    Config
	job    Job
	logger ports.Logger

	mu       sync.Mutex
	debounce *time.Timer
	runs     sync.WaitGroup

	// running serializes jobs. A timer armed while a job is in flight waits
	// for it to finish.
	running sync.Mutex
}

// New creates a watcher. It does nothing until Run is called.
func New(cfg Config, job Job, logger ports.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	return &Watcher{cfg: cfg, job: job, logger: logger}
}

// Run watches until ctx is cancelled. It returns an error only if watching
// could not be set up; job failures are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := filepath.Match(w.cfg.Glob, ""); err != nil {
		return fmt.Errorf("watch pattern %q: %w", w.cfg.Glob, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.cfg.Dirs {
		if err := addTree(watcher, dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.logger.Info("watching for input changes",
		log.Strings("dirs", w.cfg.Dirs),
		log.String("pattern", w.cfg.Glob))

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							log.String("dir", event.Name),
							log.Err(err))
					}
					continue
				}
			}
			if !w.matches(event) {
				continue
			}
			w.logger.Debug("input changed",
				log.String("file", event.Name),
				log.String("op", event.Op.String()))
			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ok, _ := filepath.Match(w.cfg.Glob, filepath.Base(event.Name))
	return ok
}

// schedule (re)starts the debounce timer. At most one job runs at a time.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil && w.debounce.Stop() {
		w.runs.Done()
	}
	w.runs.Add(1)
	w.debounce = time.AfterFunc(w.cfg.DebounceDelay, func() {
		defer w.runs.Done()
		w.running.Lock()
		defer w.running.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := w.job(ctx); err != nil {
			w.logger.Error("re-run failed", log.Err(err))
		}
	})
}

// stop cancels a pending run and waits for one in flight.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.debounce != nil && w.debounce.Stop() {
		w.runs.Done()
	}
	w.mu.Unlock()
	w.runs.Wait()
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
