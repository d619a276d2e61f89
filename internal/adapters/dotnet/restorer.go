// Package dotnet restores project dependencies with the dotnet CLI.
package dotnet

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"slices"

	"go.trai.ch/slnver/internal/build"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Restorer = (*Restorer)(nil)

// restoreEnv keeps restore output free of first-run banners and stops MSBuild
// from leaving worker nodes behind that would outlive the restore.
var restoreEnv = []string{
	"DOTNET_NOLOGO=1",
	"DOTNET_CLI_TELEMETRY_OPTOUT=1",
	"DOTNET_SKIP_FIRST_TIME_EXPERIENCE=1",
	"MSBUILDDISABLENODEREUSE=1",
	"DOTNET_CLI_DO_NOT_USE_MSBUILD_SERVER=1",
}

// Restorer implements ports.Restorer by running "<command> <args...> <project>".
type Restorer struct {
	executor  ports.Executor
	supported bool
}

// NewRestorer creates a new Restorer running commands through executor.
func NewRestorer(executor ports.Executor) *Restorer {
	return &Restorer{
		executor:  executor,
		supported: build.RestoreSupported,
	}
}

// Restore runs the configured restore command for the project at projectPath.
// The command runs in the project directory and is bounded by the configured
// timeout.
func (r *Restorer) Restore(
	ctx context.Context,
	projectPath string,
	settings domain.RestoreSettings,
	output io.Writer,
) error {
	if !r.supported {
		return zerr.With(domain.ErrRestoreUnavailable, "project", projectPath)
	}
	if settings.Command == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "restore.command")
	}

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	cmd := ports.Command{
		Args: slices.Concat([]string{settings.Command}, settings.Args, []string{projectPath}),
		Dir:  filepath.Dir(projectPath),
		Env:  restoreEnv,
	}

	if err := r.executor.Execute(ctx, cmd, output); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrRestoreFailed.Error()), "project", projectPath)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = zerr.With(err, "timeout", settings.Timeout.String())
		}
		return err
	}
	return nil
}
