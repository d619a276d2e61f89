package domain

import "go.trai.ch/zerr"

var (
	// ErrSolutionReadFailed is returned when the solution file cannot be read.
	ErrSolutionReadFailed = zerr.New("failed to read solution file")

	// ErrSolutionParseFailed is returned when the solution file is malformed.
	ErrSolutionParseFailed = zerr.New("failed to parse solution file")

	// ErrSolutionWriteFailed is returned when the solution file cannot be written.
	ErrSolutionWriteFailed = zerr.New("failed to write solution file")

	// ErrDuplicateSection is returned when a project declares the same section twice.
	ErrDuplicateSection = zerr.New("duplicate project section")

	// ErrLockFileReadFailed is returned when a project assets file cannot be read.
	ErrLockFileReadFailed = zerr.New("failed to read project assets file")

	// ErrLockFileParseFailed is returned when a project assets file is malformed.
	ErrLockFileParseFailed = zerr.New("failed to parse project assets file")

	// ErrRestoreFailed is returned when restoring a project's dependencies fails.
	ErrRestoreFailed = zerr.New("failed to restore project dependencies")

	// ErrRestoreUnavailable is returned when restore was requested from a binary built without it.
	ErrRestoreUnavailable = zerr.New("dependency restore is not available in this build")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds an invalid value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNotSolutionFile is returned when a command is given a path that is not a solution.
	ErrNotSolutionFile = zerr.New("not a solution file")

	// ErrVersionNotFound is returned by the CLI when no engine version could be detected.
	ErrVersionNotFound = zerr.New("engine version not found")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch solution")
)
