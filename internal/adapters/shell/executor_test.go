package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnver/internal/adapters/shell"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewExecutor(mockLogger)
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}, &stdout)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "line1")
	assert.Contains(t, stdout.String(), "line2")
}

func TestExecutor_Execute_Environment(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo $SLNVER_TEST_VAR"},
		Env:  []string{"SLNVER_TEST_VAR=test-value-123"},
	}, &stdout)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "test-value-123")
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = executor.Execute(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "pwd -P"},
		Dir:  dir,
	}, &stdout)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), dir)
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo failing; exit 3"},
	}, &stdout)
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
	assert.Contains(t, stdout.String(), "failing")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	executor := newExecutor(t)

	err := executor.Execute(context.Background(), ports.Command{
		Args: []string{"slnver-nonexistent-command-xyz"},
	}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := newExecutor(t)

	err := executor.Execute(context.Background(), ports.Command{}, &bytes.Buffer{})
	require.NoError(t, err)
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Execute(ctx, ports.Command{
		Args: []string{"sh", "-c", "sleep 5"},
	}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestExecutor_Execute_TimeoutWithLingeringChild(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	begin := time.Now()
	err := executor.Execute(ctx, ports.Command{
		Args: []string{"sh", "-c", "(trap '' HUP; sleep 6) & sleep 30"},
	}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Less(t, time.Since(begin), 3*time.Second)
}

func TestExecutor_Execute_ExitWithLingeringChild(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var stdout bytes.Buffer
	begin := time.Now()
	err := executor.Execute(ctx, ports.Command{
		Args: []string{"sh", "-c", "(trap '' HUP; sleep 6) & echo done"},
	}, &stdout)
	require.NoError(t, err)
	assert.Less(t, time.Since(begin), 3*time.Second)
	assert.Contains(t, stdout.String(), "done")
}
