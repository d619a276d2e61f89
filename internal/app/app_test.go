package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/adapters/watcher"
	"go.trai.ch/slnver/internal/app"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/core/ports/mocks"
	"go.trai.ch/slnver/internal/engine/versions"
	"go.uber.org/mock/gomock"
)

type resolution struct {
	version string
	found   bool
}

type fakeResolver struct {
	mu        sync.Mutex
	results   []resolution
	calls     []versions.Options
	onResolve func(call int)
}

func (f *fakeResolver) Resolve(_ context.Context, _ string, opts versions.Options) (domain.PackageVersion, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, opts)
	if f.onResolve != nil {
		f.onResolve(len(f.calls))
	}
	if len(f.results) == 0 {
		return domain.PackageVersion{}, false
	}
	next := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return domain.NewPackageVersion(next.version), next.found
}

type fixture struct {
	dir       string
	solution  string
	loader    *mocks.MockConfigLoader
	solutions *mocks.MockSolutionStore
	watcher   *mocks.MockWatcher
	logger    *mocks.MockLogger
	resolver  *fakeResolver
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	solution := filepath.Join(dir, "Game.sln")
	require.NoError(t, os.WriteFile(solution, []byte("Global\nEndGlobal\n"), 0o600))

	f := &fixture{
		dir:       dir,
		solution:  solution,
		loader:    mocks.NewMockConfigLoader(ctrl),
		solutions: mocks.NewMockSolutionStore(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		resolver:  &fakeResolver{},
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	osfs := fs.NewOSFS()
	f.app = app.New(f.loader, f.solutions, f.resolver, f.watcher, watcher.NewDigestCache(osfs), osfs, f.logger).
		WithRestoreSupport(true)
	return f
}

func (f *fixture) settings(mutate func(*domain.Settings)) {
	settings := domain.DefaultSettings("dotnet")
	if mutate != nil {
		mutate(settings)
	}
	f.loader.EXPECT().Load(f.dir).Return(settings, nil).AnyTimes()
}

func TestApp_DetectVersion(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)
	f.resolver.results = []resolution{{"4.2.0.2188", true}}

	version, err := f.app.DetectVersion(context.Background(), f.solution, app.DetectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "4.2.0.2188", version.String())

	require.Len(t, f.resolver.calls, 1)
	assert.True(t, f.resolver.calls[0].Restore)
	assert.Equal(t, []string{"restore"}, f.resolver.calls[0].Settings.Args)
}

func TestApp_DetectVersion_RestoreGates(t *testing.T) {
	tests := []struct {
		name      string
		supported bool
		enabled   bool
		noRestore bool
		want      bool
	}{
		{"all permitted", true, true, false, true},
		{"flag", true, true, true, false},
		{"config", true, false, false, false},
		{"build", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.app.WithRestoreSupport(tt.supported)
			f.settings(func(s *domain.Settings) { s.Restore.Enabled = tt.enabled })
			f.resolver.results = []resolution{{"4.2.0", true}}

			_, err := f.app.DetectVersion(context.Background(), f.solution, app.DetectOptions{NoRestore: tt.noRestore})
			require.NoError(t, err)
			require.Len(t, f.resolver.calls, 1)
			assert.Equal(t, tt.want, f.resolver.calls[0].Restore)
		})
	}
}

func TestApp_DetectVersion_NotFound(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)

	_, err := f.app.DetectVersion(context.Background(), f.solution, app.DetectOptions{})
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestApp_DetectVersion_InvalidPath(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.DetectVersion(context.Background(), filepath.Join(f.dir, "Game.csproj"), app.DetectOptions{})
	require.ErrorContains(t, err, domain.ErrNotSolutionFile.Error())

	_, err = f.app.DetectVersion(context.Background(), filepath.Join(f.dir, "Missing.sln"), app.DetectOptions{})
	require.ErrorContains(t, err, domain.ErrSolutionReadFailed.Error())

	require.NoError(t, os.Mkdir(filepath.Join(f.dir, "Folder.sln"), 0o750))
	_, err = f.app.DetectVersion(context.Background(), filepath.Join(f.dir, "Folder.sln"), app.DetectOptions{})
	require.ErrorContains(t, err, domain.ErrNotSolutionFile.Error())

	assert.Empty(t, f.resolver.calls)
}

func TestApp_DetectVersion_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(nil, domain.ErrConfigParseFailed)

	_, err := f.app.DetectVersion(context.Background(), f.solution, app.DetectOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func legacySolution(t *testing.T, path string) *domain.Solution {
	t.Helper()
	assets := &domain.Project{TypeGUID: domain.ProjectTypeSolutionFolder, Name: "Assets", GUID: "A"}
	require.NoError(t, assets.Sections.Add(&domain.Section{
		Name:       "XenkoPackage",
		Phase:      domain.PhasePostProject,
		Properties: []domain.Property{{Name: `..\Assets\Game.xkpkg`, Value: "1.0"}},
	}))
	return &domain.Solution{Path: path, Projects: []*domain.Project{assets}}
}

func TestApp_LegacyList(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)
	f.solutions.EXPECT().Load(f.solution).Return(legacySolution(t, f.solution), nil)

	refs, err := f.app.LegacyList(context.Background(), f.solution)
	require.NoError(t, err)
	assert.Equal(t, []domain.LegacyPackageRef{
		{Project: "Assets", ProjectGUID: "A", Section: "XenkoPackage", RelativePath: `..\Assets\Game.xkpkg`},
	}, refs)
}

func TestApp_LegacyStrip(t *testing.T) {
	t.Run("dry run", func(t *testing.T) {
		f := newFixture(t)
		f.settings(nil)
		f.solutions.EXPECT().Load(f.solution).Return(legacySolution(t, f.solution), nil)

		changed, err := f.app.LegacyStrip(context.Background(), f.solution, false)
		require.NoError(t, err)
		assert.Equal(t, 1, changed)
	})

	t.Run("write", func(t *testing.T) {
		f := newFixture(t)
		f.settings(nil)
		sol := legacySolution(t, f.solution)
		f.solutions.EXPECT().Load(f.solution).Return(sol, nil)
		f.solutions.EXPECT().Save(sol).DoAndReturn(func(s *domain.Solution) error {
			assert.Equal(t, 0, s.Projects[0].Sections.Len())
			return nil
		})
		f.logger.EXPECT().Info("rewrote " + f.solution)

		changed, err := f.app.LegacyStrip(context.Background(), f.solution, true)
		require.NoError(t, err)
		assert.Equal(t, 1, changed)
	})

	t.Run("nothing to write", func(t *testing.T) {
		f := newFixture(t)
		f.settings(nil)
		f.solutions.EXPECT().Load(f.solution).Return(&domain.Solution{Path: f.solution}, nil)

		changed, err := f.app.LegacyStrip(context.Background(), f.solution, true)
		require.NoError(t, err)
		assert.Equal(t, 0, changed)
	})

	t.Run("save failure", func(t *testing.T) {
		f := newFixture(t)
		f.settings(nil)
		f.solutions.EXPECT().Load(f.solution).Return(legacySolution(t, f.solution), nil)
		f.solutions.EXPECT().Save(gomock.Any()).Return(domain.ErrSolutionWriteFailed)

		_, err := f.app.LegacyStrip(context.Background(), f.solution, true)
		require.ErrorIs(t, err, domain.ErrSolutionWriteFailed)
	})
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)

	project := &domain.Project{
		TypeGUID: domain.ProjectTypeCSharpSDK,
		Name:     "Game",
		FullPath: filepath.Join(f.dir, "Game", "Game.csproj"),
	}
	assets := domain.LockFilePath(project.FullPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(assets), 0o750))
	require.NoError(t, os.WriteFile(assets, []byte(`{"version":3}`), 0o600))

	f.solutions.EXPECT().Load(f.solution).Return(&domain.Solution{
		Path:     f.solution,
		Projects: []*domain.Project{project},
	}, nil)

	f.resolver.results = []resolution{{"4.1.0", true}, {"4.2.0", true}}

	events := make(chan ports.WatchEvent, 8)
	started := make(chan struct{})
	var stopOnce sync.Once

	f.watcher.EXPECT().Start(gomock.Any(), f.dir).DoAndReturn(func(context.Context, string) error {
		close(started)
		return nil
	})
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}))
	f.watcher.EXPECT().Stop().DoAndReturn(func() error {
		stopOnce.Do(func() { close(events) })
		return nil
	}).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f.logger.EXPECT().Info("engine version 4.1.0")
	f.logger.EXPECT().Info("watching " + f.dir)
	f.logger.EXPECT().Info("↑ engine upgraded 4.1.0 -> 4.2.0").Do(func(string) { cancel() })

	done := make(chan error, 1)
	go func() { done <- f.app.Watch(ctx, f.solution, app.DetectOptions{}) }()

	<-started
	events <- ports.WatchEvent{Path: filepath.Join(f.dir, "Game", "Game.csproj"), Operation: ports.OpWrite}
	require.NoError(t, os.WriteFile(assets, []byte(`{"version":3,"libraries":{}}`), 0o600))
	events <- ports.WatchEvent{Path: assets, Operation: ports.OpWrite}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("watch did not return")
	}

	require.Len(t, f.resolver.calls, 2)
}

func TestApp_Watch_TracksSolutionProjects(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)

	game := &domain.Project{
		TypeGUID: domain.ProjectTypeCSharpSDK,
		Name:     "Game",
		FullPath: filepath.Join(f.dir, "Game", "Game.csproj"),
	}
	tools := &domain.Project{
		TypeGUID: domain.ProjectTypeCSharpSDK,
		Name:     "Tools",
		FullPath: filepath.Join(f.dir, "Tools", "Tools.csproj"),
	}
	toolsAssets := domain.LockFilePath(tools.FullPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(toolsAssets), 0o750))
	require.NoError(t, os.WriteFile(toolsAssets, []byte(`{"version":3}`), 0o600))

	f.solutions.EXPECT().Load(f.solution).Return(&domain.Solution{
		Path:     f.solution,
		Projects: []*domain.Project{game},
	}, nil)
	f.solutions.EXPECT().Load(f.solution).Return(&domain.Solution{
		Path:     f.solution,
		Projects: []*domain.Project{game, tools},
	}, nil)

	f.resolver.results = []resolution{{"4.1.0", true}, {"4.1.0", true}, {"4.2.0", true}}
	reloaded := make(chan struct{})
	f.resolver.onResolve = func(call int) {
		if call == 2 {
			close(reloaded)
		}
	}

	events := make(chan ports.WatchEvent, 8)
	started := make(chan struct{})
	var stopOnce sync.Once

	f.watcher.EXPECT().Start(gomock.Any(), f.dir).DoAndReturn(func(context.Context, string) error {
		close(started)
		return nil
	})
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}))
	f.watcher.EXPECT().Stop().DoAndReturn(func() error {
		stopOnce.Do(func() { close(events) })
		return nil
	}).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f.logger.EXPECT().Info("engine version 4.1.0")
	f.logger.EXPECT().Info("watching " + f.dir)
	f.logger.EXPECT().Info("↑ engine upgraded 4.1.0 -> 4.2.0").Do(func(string) { cancel() })

	done := make(chan error, 1)
	go func() { done <- f.app.Watch(ctx, f.solution, app.DetectOptions{}) }()

	<-started

	// Tools is not part of the solution yet.
	require.NoError(t, os.WriteFile(toolsAssets, []byte(`{"version":3,"targets":{}}`), 0o600))
	events <- ports.WatchEvent{Path: toolsAssets, Operation: ports.OpWrite}
	time.Sleep(2 * watcher.DefaultDebounceWindow)

	require.NoError(t, os.WriteFile(f.solution, []byte("Global\nEndGlobal\n\n"), 0o600))
	events <- ports.WatchEvent{Path: f.solution, Operation: ports.OpWrite}
	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("solution change did not trigger detection")
	}

	require.NoError(t, os.WriteFile(toolsAssets, []byte(`{"version":3,"libraries":{}}`), 0o600))
	events <- ports.WatchEvent{Path: toolsAssets, Operation: ports.OpWrite}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("watch did not return")
	}

	f.resolver.mu.Lock()
	defer f.resolver.mu.Unlock()
	require.Len(t, f.resolver.calls, 3)
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	f.settings(nil)
	f.solutions.EXPECT().Load(f.solution).Return(nil, domain.ErrSolutionParseFailed)
	f.logger.EXPECT().Info("engine version not found")
	f.watcher.EXPECT().Start(gomock.Any(), f.dir).Return(os.ErrPermission)

	err := f.app.Watch(context.Background(), f.solution, app.DetectOptions{})
	require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestApp_Platform(t *testing.T) {
	f := newFixture(t)
	info := f.app.Platform()
	assert.NotEmpty(t, info.Type)
}
