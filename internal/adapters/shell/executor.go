// Package shell runs external commands behind a pseudo terminal.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// outputGrace bounds how long Execute keeps reading output once the command
// itself has exited. Descendants that inherited the terminal would otherwise
// hold it open indefinitely.
const outputGrace = 250 * time.Millisecond

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor. Command output is mirrored to the
// logger at debug level, one message per line.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, command ports.Command, stdout io.Writer) error {
	if len(command.Args) == 0 {
		return nil
	}

	outLog := &logWriter{logger: e.logger}
	out := &gatedWriter{w: io.MultiWriter(outLog, stdout)}

	cmd := buildCommand(ctx, command)
	done, closeOutput, err := start(cmd, out)
	if err != nil {
		_ = outLog.Close()
		return zerr.With(err, "command", command.Args[0])
	}

	err = cmd.Wait()
	drain(ctx, done, closeOutput)
	_ = out.Close()
	_ = outLog.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// drain waits for the output copy to finish. When the context is done or
// the grace period elapses first, the terminal is closed and drain gives the
// copy one more grace period before abandoning it.
func drain(ctx context.Context, done <-chan struct{}, closeOutput func()) {
	timer := time.NewTimer(outputGrace)
	defer timer.Stop()

	select {
	case <-done:
		return
	case <-ctx.Done():
	case <-timer.C:
	}

	closeOutput()

	timer.Reset(outputGrace)
	select {
	case <-done:
	case <-timer.C:
	}
}

func buildCommand(ctx context.Context, command ports.Command) *exec.Cmd {
	name := command.Args[0]
	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args[1:]...) //nolint:gosec // configured restore command
	cmd.Args[0] = name
	cmd.Dir = command.Dir
	cmd.Env = cmdEnv
	cmd.WaitDelay = outputGrace
	killGroupOnCancel(cmd)
	return cmd
}

// start launches cmd in a PTY, falling back to pipes where PTYs are not
// supported. The returned channel is closed once all output was copied; the
// returned func closes the terminal so a blocked copy returns.
func start(cmd *exec.Cmd, out io.Writer) (<-chan struct{}, func(), error) {
	done := make(chan struct{})

	ptmx, err := pty.Start(cmd)
	if errors.Is(err, pty.ErrUnsupported) {
		cmd.Stdout = out
		cmd.Stderr = out
		if err := cmd.Start(); err != nil {
			return nil, nil, zerr.Wrap(err, "failed to start command")
		}
		close(done)
		return done, func() {}, nil
	}
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to start pty")
	}

	var once sync.Once
	closePTY := func() { once.Do(func() { _ = ptmx.Close() }) }

	go func() {
		defer close(done)
		defer closePTY()
		// PTYs merge stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	return done, closePTY, nil
}

// gatedWriter drops writes after Close so an abandoned copy goroutine cannot
// touch the caller's writer once Execute returned.
type gatedWriter struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

func (g *gatedWriter) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, io.ErrClosedPipe
	}
	return g.w.Write(p)
}

func (g *gatedWriter) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(msg)
}

// resolveEnvironment applies the command overrides on top of the process
// environment. Later entries win; the result is sorted by key.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range slices.Concat(sysEnv, overrides) {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
