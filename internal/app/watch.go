package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/slnver/internal/adapters/watcher"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// detection is the last reported resolution result.
type detection struct {
	version domain.PackageVersion
	found   bool
}

// Watch detects the engine version and re-detects it whenever the solution
// file or the assets file of one of its C# projects changes. The tracked set
// is rebuilt each time the solution file changes. It returns when ctx is
// canceled.
func (a *App) Watch(ctx context.Context, solutionPath string, opts DetectOptions) error {
	settings, err := a.settings(solutionPath)
	if err != nil {
		return err
	}
	solutionPath, err = filepath.Abs(solutionPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", solutionPath)
	}
	resolveOpts := a.resolveOptions(settings, opts)

	tracked := newTrackedSet(a.trackedFiles(solutionPath))
	if err := a.digests.Prime(ctx, tracked.Paths()); err != nil {
		a.logger.Debug(fmt.Sprintf("failed to prime digests: %v", err))
	}

	var last detection
	last.version, last.found = a.resolver.Resolve(ctx, solutionPath, resolveOpts)
	a.report(detection{}, last)

	root := filepath.Dir(solutionPath)
	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}
	a.logger.Info("watching " + root)

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if tracked.Contains(event.Path) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		defer func() { _ = a.watcher.Stop() }()

		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				changed, err := a.digests.Changed(ctx, paths)
				if err != nil {
					a.logger.Warn(fmt.Sprintf("failed to check changes: %v", err))
					continue
				}
				if len(changed) == 0 {
					a.logger.Debug("content unchanged, skipping detection")
					continue
				}
				if slices.Contains(changed, solutionPath) {
					added := tracked.Reset(a.trackedFiles(solutionPath))
					if err := a.digests.Prime(ctx, added); err != nil {
						a.logger.Debug(fmt.Sprintf("failed to prime digests: %v", err))
					}
				}

				next := detection{}
				next.version, next.found = a.resolver.Resolve(ctx, solutionPath, resolveOpts)
				a.report(last, next)
				last = next
			}
		}
	})

	return g.Wait()
}

// trackedFiles returns the solution file and the assets files of its C#
// projects.
func (a *App) trackedFiles(solutionPath string) []string {
	paths := []string{solutionPath}

	sol, err := a.solutions.Load(solutionPath)
	if err != nil {
		return paths
	}
	for _, project := range sol.Projects {
		if project.IsCSharp() {
			paths = append(paths, domain.LockFilePath(project.FullPath))
		}
	}
	return paths
}

// trackedSet is the set of files whose changes trigger a re-detection.
type trackedSet struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

func newTrackedSet(paths []string) *trackedSet {
	s := &trackedSet{}
	s.Reset(paths)
	return s
}

func (s *trackedSet) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.paths[filepath.Clean(path)]
	return ok
}

// Reset replaces the set with paths and returns those that were not tracked
// before.
func (s *trackedSet) Reset(paths []string) []string {
	next := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		next[filepath.Clean(path)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var added []string
	for path := range next {
		if _, ok := s.paths[path]; !ok {
			added = append(added, path)
		}
	}
	slices.Sort(added)
	s.paths = next
	return added
}

// Paths returns the tracked paths in sorted order.
func (s *trackedSet) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.paths))
	for path := range s.paths {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

func (a *App) report(prev, next detection) {
	switch {
	case !next.found && prev.found:
		a.logger.Warn(fmt.Sprintf("engine version no longer detected (was %s)", prev.version))
	case !next.found:
		a.logger.Info("engine version not found")
	case !prev.found:
		a.logger.Info(fmt.Sprintf("engine version %s", next.version))
	default:
		switch cmp := next.version.Compare(prev.version); {
		case cmp > 0:
			a.logger.Info(fmt.Sprintf("%s engine upgraded %s -> %s", style.Up, prev.version, next.version))
		case cmp < 0:
			a.logger.Warn(fmt.Sprintf("%s engine downgraded %s -> %s", style.Down, prev.version, next.version))
		default:
			a.logger.Debug(fmt.Sprintf("engine version unchanged (%s)", next.version))
		}
	}
}

