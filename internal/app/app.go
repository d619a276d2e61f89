// Package app implements the application layer for slnver.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/slnver/internal/adapters/detector"
	"go.trai.ch/slnver/internal/build"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/engine/legacy"
	"go.trai.ch/slnver/internal/engine/versions"
	"go.trai.ch/slnver/internal/platform"
	"go.trai.ch/slnver/internal/ui/output"
	"go.trai.ch/zerr"
)

// VersionResolver resolves the engine version of a solution.
type VersionResolver interface {
	Resolve(ctx context.Context, solutionPath string, opts versions.Options) (domain.PackageVersion, bool)
}

// ChangeDetector filters paths down to those whose content changed.
type ChangeDetector interface {
	Prime(ctx context.Context, paths []string) error
	Changed(ctx context.Context, paths []string) ([]string, error)
}

// logConfigurer is implemented by loggers whose rendering can be tuned.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
	SetProfile(profileFn func() termenv.Profile)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	solutions    ports.SolutionStore
	resolver     VersionResolver
	watcher      ports.Watcher
	digests      ChangeDetector
	fs           ports.FileSystem
	logger       ports.Logger

	restoreSupported bool
	detectMode       func() detector.OutputMode
	log              LogOptions
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	solutions ports.SolutionStore,
	resolver VersionResolver,
	watcher ports.Watcher,
	digests ChangeDetector,
	fs ports.FileSystem,
	log ports.Logger,
) *App {
	return &App{
		configLoader:     loader,
		solutions:        solutions,
		resolver:         resolver,
		watcher:          watcher,
		digests:          digests,
		fs:               fs,
		logger:           log,
		restoreSupported: build.RestoreSupported,
		detectMode:       detector.DetectEnvironment,
	}
}

// WithRestoreSupport overrides the build-time restore support. Used for testing.
func (a *App) WithRestoreSupport(supported bool) *App {
	a.restoreSupported = supported
	return a
}

// WithOutputDetector overrides terminal detection. Used for testing.
func (a *App) WithOutputDetector(detect func() detector.OutputMode) *App {
	a.detectMode = detect
	return a
}

// LogOptions holds the global logging flags.
type LogOptions struct {
	Verbose bool
	JSON    bool
}

// ConfigureLogging applies the global logging flags. The log format from the
// configuration file is applied once a solution is known.
func (a *App) ConfigureLogging(opts LogOptions) {
	a.log = opts
	a.applyLogFormat(domain.LogFormatAuto)
}

func (a *App) applyLogFormat(format string) {
	cfg, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}

	cfg.SetVerbose(a.log.Verbose)
	switch detector.ResolveMode(a.detectMode(), format, a.log.JSON) {
	case detector.ModeJSON:
		cfg.SetJSON(true)
	case detector.ModeLinear:
		cfg.SetJSON(false)
		cfg.SetProfile(func() termenv.Profile { return termenv.Ascii })
	default:
		cfg.SetJSON(false)
		cfg.SetProfile(output.ColorProfile)
	}
}

// DetectOptions configures version detection.
type DetectOptions struct {
	NoRestore bool
}

// DetectVersion returns the engine version the solution targets.
// It returns domain.ErrVersionNotFound when no version could be resolved.
func (a *App) DetectVersion(ctx context.Context, solutionPath string, opts DetectOptions) (domain.PackageVersion, error) {
	settings, err := a.settings(solutionPath)
	if err != nil {
		return domain.PackageVersion{}, err
	}

	version, found := a.resolver.Resolve(ctx, solutionPath, a.resolveOptions(settings, opts))
	if !found {
		return domain.PackageVersion{}, domain.ErrVersionNotFound
	}
	return version, nil
}

// LegacyList returns the legacy package markers of the solution.
func (a *App) LegacyList(_ context.Context, solutionPath string) ([]domain.LegacyPackageRef, error) {
	sol, err := a.load(solutionPath)
	if err != nil {
		return nil, err
	}
	return legacy.FindLegacyPackages(sol), nil
}

// LegacyStrip removes the legacy package markers of the solution and returns
// how many folders changed. The file is rewritten only when write is set.
func (a *App) LegacyStrip(_ context.Context, solutionPath string, write bool) (int, error) {
	sol, err := a.load(solutionPath)
	if err != nil {
		return 0, err
	}

	changed := legacy.StripSolution(sol)
	if changed == 0 || !write {
		return changed, nil
	}

	if err := a.solutions.Save(sol); err != nil {
		return 0, err
	}
	a.logger.Info(fmt.Sprintf("rewrote %s", sol.Path))
	return changed, nil
}

// Platform returns the platform the tool runs on.
func (a *App) Platform() platform.Info {
	return platform.Detect()
}

func (a *App) load(solutionPath string) (*domain.Solution, error) {
	if _, err := a.settings(solutionPath); err != nil {
		return nil, err
	}
	return a.solutions.Load(solutionPath)
}

// settings validates the solution path and loads the configuration that
// applies to it.
func (a *App) settings(solutionPath string) (*domain.Settings, error) {
	if !strings.EqualFold(filepath.Ext(solutionPath), domain.SolutionFileExt) {
		return nil, zerr.With(domain.ErrNotSolutionFile, "path", solutionPath)
	}

	info, err := a.fs.Stat(solutionPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSolutionReadFailed.Error()), "path", solutionPath)
	}
	if info.IsDir() {
		return nil, zerr.With(domain.ErrNotSolutionFile, "path", solutionPath)
	}

	settings, err := a.configLoader.Load(filepath.Dir(solutionPath))
	if err != nil {
		return nil, err
	}
	a.applyLogFormat(settings.Log.Format)
	return settings, nil
}

func (a *App) resolveOptions(settings *domain.Settings, opts DetectOptions) versions.Options {
	restore := a.restoreSupported && settings.Restore.Enabled && !opts.NoRestore
	if !restore {
		a.logger.Debug("dependency restore disabled")
	}
	return versions.Options{Restore: restore, Settings: settings.Restore}
}
