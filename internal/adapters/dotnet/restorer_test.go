package dotnet_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnver/internal/adapters/dotnet"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRestorer_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, true)

	project := filepath.Join("work", "Game", "Game.csproj")
	settings := domain.DefaultSettings("dotnet").Restore
	settings.Args = []string{"restore", "--verbosity", "quiet"}

	var out bytes.Buffer
	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), &out).
		DoAndReturn(func(ctx context.Context, cmd ports.Command, w io.Writer) error {
			assert.Equal(t, []string{"dotnet", "restore", "--verbosity", "quiet", project}, cmd.Args)
			assert.Equal(t, filepath.Join("work", "Game"), cmd.Dir)
			assert.Contains(t, cmd.Env, "DOTNET_NOLOGO=1")
			assert.Contains(t, cmd.Env, "MSBUILDDISABLENODEREUSE=1")
			assert.Contains(t, cmd.Env, "DOTNET_CLI_DO_NOT_USE_MSBUILD_SERVER=1")

			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(settings.Timeout), deadline, time.Minute)

			_, _ = w.Write([]byte("Restored\n"))
			return nil
		})

	require.NoError(t, restorer.Restore(context.Background(), project, settings, &out))
	assert.Equal(t, "Restored\n", out.String())
}

func TestRestorer_Restore_NoTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, true)

	settings := domain.RestoreSettings{Command: "dotnet", Args: []string{"restore"}}

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ports.Command, _ io.Writer) error {
			_, ok := ctx.Deadline()
			assert.False(t, ok)
			return nil
		})

	require.NoError(t, restorer.Restore(context.Background(), "Game.csproj", settings, io.Discard))
}

func TestRestorer_Restore_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, true)

	cause := errors.New("exit status 1")
	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(cause)

	err := restorer.Restore(context.Background(), "Game.csproj", domain.DefaultSettings("dotnet").Restore, io.Discard)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRestoreFailed.Error())
	assert.ErrorIs(t, err, cause)
}

func TestRestorer_Restore_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, true)

	settings := domain.RestoreSettings{Command: "dotnet", Timeout: time.Millisecond}

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ports.Command, _ io.Writer) error {
			<-ctx.Done()
			return ctx.Err()
		})

	err := restorer.Restore(context.Background(), "Game.csproj", settings, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRestorer_Restore_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, false)

	err := restorer.Restore(context.Background(), "Game.csproj", domain.DefaultSettings("dotnet").Restore, io.Discard)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRestoreUnavailable.Error())
}

func TestRestorer_Restore_MissingCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	restorer := dotnet.NewRestorerWithSupport(mockExecutor, true)

	err := restorer.Restore(context.Background(), "Game.csproj", domain.RestoreSettings{}, io.Discard)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}
