// Package versions resolves the engine release a solution targets.
package versions

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single resolution.
type Options struct {
	// Restore permits restoring projects whose assets file is missing.
	Restore bool

	// Settings configures the restore command.
	Settings domain.RestoreSettings
}

// Resolver finds the engine library version through the assets files of a
// solution's C# projects. Projects are scanned sequentially.
type Resolver struct {
	solutions ports.SolutionStore
	lockFiles ports.LockFileReader
	restorer  ports.Restorer
	fs        ports.FileSystem
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewResolver creates a new Resolver.
func NewResolver(
	solutions ports.SolutionStore,
	lockFiles ports.LockFileReader,
	restorer ports.Restorer,
	fs ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		solutions: solutions,
		lockFiles: lockFiles,
		restorer:  restorer,
		fs:        fs,
		logger:    logger,
		tracer:    tracer,
	}
}

// Resolve returns the engine version of the first C# project, in solution
// order, whose assets file references the engine library. Any failure,
// including a panic in a collaborator, is logged at debug level and reported
// as not found.
func (r *Resolver) Resolve(ctx context.Context, solutionPath string, opts Options) (version domain.PackageVersion, found bool) {
	ctx, span := r.tracer.Start(ctx, "resolve "+filepath.Base(solutionPath))
	span.SetAttribute("solution", solutionPath)
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			err := zerr.With(zerr.New("engine version resolution panicked"), "panic", fmt.Sprint(rec))
			r.fail(span, solutionPath, err)
			version, found = domain.PackageVersion{}, false
		}
	}()

	version, found, err := r.resolve(ctx, solutionPath, opts)
	if err != nil {
		r.fail(span, solutionPath, err)
		return domain.PackageVersion{}, false
	}
	if found {
		span.SetAttribute("version", version.String())
	}
	return version, found
}

func (r *Resolver) fail(span ports.Span, solutionPath string, err error) {
	span.RecordError(err)
	r.logger.Debug(fmt.Sprintf("engine version of %s not resolved: %v", solutionPath, err))
}

func (r *Resolver) resolve(ctx context.Context, solutionPath string, opts Options) (domain.PackageVersion, bool, error) {
	sol, err := r.solutions.Load(solutionPath)
	if err != nil {
		return domain.PackageVersion{}, false, err
	}

	for _, project := range sol.Projects {
		if !project.IsCSharp() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return domain.PackageVersion{}, false, err
		}

		version, found, err := r.scanProject(ctx, project, opts)
		if err != nil {
			return domain.PackageVersion{}, false, err
		}
		if found {
			return version, true, nil
		}
	}
	return domain.PackageVersion{}, false, nil
}

func (r *Resolver) scanProject(ctx context.Context, project *domain.Project, opts Options) (domain.PackageVersion, bool, error) {
	ctx, span := r.tracer.Start(ctx, "project "+project.Name)
	span.SetAttribute("project", project.FullPath)
	defer span.End()

	lockPath := domain.LockFilePath(project.FullPath)

	if !r.exists(lockPath) {
		if !opts.Restore {
			r.logger.Debug(fmt.Sprintf("no assets file for %s, restore disabled", project.Name))
			return domain.PackageVersion{}, false, nil
		}

		span.SetAttribute("restored", true)
		if err := r.restorer.Restore(ctx, project.FullPath, opts.Settings, span); err != nil {
			span.RecordError(err)
			return domain.PackageVersion{}, false, err
		}
		if !r.exists(lockPath) {
			r.logger.Debug(fmt.Sprintf("restore of %s produced no assets file", project.Name))
			return domain.PackageVersion{}, false, nil
		}
	}

	lock, err := r.lockFiles.Read(lockPath)
	if err != nil {
		span.RecordError(err)
		return domain.PackageVersion{}, false, err
	}

	for _, lib := range lock.Libraries {
		if lib.IsEngine() {
			span.SetAttribute("library", lib.Name)
			return lib.Version, true, nil
		}
	}
	return domain.PackageVersion{}, false, nil
}

func (r *Resolver) exists(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}
