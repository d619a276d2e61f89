package ports

import (
	"context"
	"io"
)

// Command is an external process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string

	// Dir is the working directory, empty for the current one.
	Dir string

	// Env holds extra "KEY=VALUE" pairs appended to the process environment.
	Env []string
}

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout.
	Execute(ctx context.Context, cmd Command, stdout io.Writer) error
}
