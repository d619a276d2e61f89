package versions_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/slnver/internal/core/ports/mocks"
	"go.trai.ch/slnver/internal/engine/versions"
	"go.uber.org/mock/gomock"
)

const (
	root         = "/work"
	solutionPath = "/work/Game.sln"
)

type fixture struct {
	files     fstest.MapFS
	solutions *mocks.MockSolutionStore
	lockFiles *mocks.MockLockFileReader
	restorer  *mocks.MockRestorer
	logger    *mocks.MockLogger
	span      *mocks.MockSpan
	resolver  *versions.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		files:     fstest.MapFS{},
		solutions: mocks.NewMockSolutionStore(ctrl),
		lockFiles: mocks.NewMockLockFileReader(ctrl),
		restorer:  mocks.NewMockRestorer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		span:      mocks.NewMockSpan(ctrl),
	}

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, f.span
		}).AnyTimes()
	f.span.EXPECT().End().AnyTimes()
	f.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	f.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f.resolver = versions.NewResolver(
		f.solutions,
		f.lockFiles,
		f.restorer,
		fs.NewMapFSAdapter(root, f.files),
		f.logger,
		tracer,
	)
	return f
}

func (f *fixture) solution(projects ...*domain.Project) {
	f.solutions.EXPECT().Load(solutionPath).Return(&domain.Solution{
		Path:     solutionPath,
		Projects: projects,
	}, nil)
}

func (f *fixture) assets(name string) string {
	f.files[name+"/obj/project.assets.json"] = &fstest.MapFile{Data: []byte("{}")}
	return filepath.Join(root, name, "obj", "project.assets.json")
}

func csproj(name string) *domain.Project {
	return &domain.Project{
		TypeGUID:     domain.ProjectTypeCSharpSDK,
		Name:         name,
		RelativePath: name + `\` + name + ".csproj",
		FullPath:     filepath.Join(root, name, name+".csproj"),
	}
}

func lock(libs ...domain.Library) *domain.LockFile {
	return &domain.LockFile{Version: 3, Libraries: libs}
}

func engine(version string) domain.Library {
	return domain.Library{Name: "Stride.Engine", Version: domain.NewPackageVersion(version), Type: domain.LibraryTypePackage}
}

func restoreOn() versions.Options {
	return versions.Options{Restore: true, Settings: domain.DefaultSettings("dotnet").Restore}
}

func TestResolve_FirstProjectWins(t *testing.T) {
	f := newFixture(t)

	folder := &domain.Project{TypeGUID: domain.ProjectTypeSolutionFolder, Name: "Assets"}
	game := csproj("Game")
	windows := csproj("Game.Windows")
	f.solution(folder, game, windows)

	path := f.assets("Game")
	f.assets("Game.Windows")

	f.lockFiles.EXPECT().Read(path).Return(lock(
		domain.Library{Name: "Stride.Core", Version: domain.NewPackageVersion("4.1.0"), Type: domain.LibraryTypePackage},
		engine("4.2.0.2188"),
		engine("4.0.0"),
	), nil)

	version, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.True(t, found)
	assert.Equal(t, "4.2.0.2188", version.String())
}

func TestResolve_LegacyAliasAndProjectReference(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Game"))
	path := f.assets("Game")

	f.lockFiles.EXPECT().Read(path).Return(lock(
		domain.Library{Name: "Xenko.Engine", Version: domain.NewPackageVersion("3.1.0.1"), Type: domain.LibraryTypeProject},
	), nil)

	version, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.True(t, found)
	assert.Equal(t, "3.1.0.1", version.String())
}

func TestResolve_NoCSharpProjects(t *testing.T) {
	f := newFixture(t)
	f.solution(
		&domain.Project{TypeGUID: domain.ProjectTypeSolutionFolder, Name: "Assets"},
		&domain.Project{TypeGUID: "8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942", Name: "Native", FullPath: "/work/Native/Native.vcxproj"},
	)

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.False(t, found)
}

func TestResolve_NoEngineLibrary(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Tool"), csproj("Lib"))
	toolPath := f.assets("Tool")
	libPath := f.assets("Lib")

	f.lockFiles.EXPECT().Read(toolPath).Return(lock(
		domain.Library{Name: "Newtonsoft.Json", Version: domain.NewPackageVersion("13.0.1"), Type: domain.LibraryTypePackage},
	), nil)
	f.lockFiles.EXPECT().Read(libPath).Return(lock(
		domain.Library{Name: "Stride.Engine", Version: domain.NewPackageVersion("4.2.0"), Type: "reference"},
	), nil)

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.False(t, found)
}

func TestResolve_RestoreDisabledContinuesScan(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Missing"), csproj("Game"))
	path := f.assets("Game")

	f.lockFiles.EXPECT().Read(path).Return(lock(engine("4.2.0.2188")), nil)

	version, found := f.resolver.Resolve(context.Background(), solutionPath, versions.Options{})
	assert.True(t, found)
	assert.Equal(t, "4.2.0.2188", version.String())
}

func TestResolve_RestoresMissingAssets(t *testing.T) {
	f := newFixture(t)
	game := csproj("Game")
	f.solution(game)

	opts := restoreOn()
	path := filepath.Join(root, "Game", "obj", "project.assets.json")

	gomock.InOrder(
		f.restorer.EXPECT().
			Restore(gomock.Any(), game.FullPath, opts.Settings, f.span).
			DoAndReturn(func(_ context.Context, _ string, _ domain.RestoreSettings, _ io.Writer) error {
				f.assets("Game")
				return nil
			}),
		f.lockFiles.EXPECT().Read(path).Return(lock(engine("4.2.0.2188")), nil),
	)

	version, found := f.resolver.Resolve(context.Background(), solutionPath, opts)
	assert.True(t, found)
	assert.Equal(t, "4.2.0.2188", version.String())
}

func TestResolve_RestoreWithoutAssetsContinues(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Empty"), csproj("Game"))
	path := f.assets("Game")

	f.restorer.EXPECT().Restore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.lockFiles.EXPECT().Read(path).Return(lock(engine("4.2.0.2188")), nil)

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.True(t, found)
}

func TestResolve_RestoreFailureAbortsScan(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Broken"), csproj("Game"))
	f.assets("Game")

	f.restorer.EXPECT().
		Restore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.False(t, found)
}

func TestResolve_ReadFailureAbortsScan(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Broken"), csproj("Game"))
	path := f.assets("Broken")
	f.assets("Game")

	f.lockFiles.EXPECT().Read(path).Return(nil, domain.ErrLockFileParseFailed)

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.False(t, found)
}

func TestResolve_LoadFailure(t *testing.T) {
	f := newFixture(t)
	f.solutions.EXPECT().Load(solutionPath).Return(nil, domain.ErrSolutionReadFailed)

	_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
	assert.False(t, found)
}

func TestResolve_RecoversPanic(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Game"))
	path := f.assets("Game")

	f.lockFiles.EXPECT().Read(path).DoAndReturn(func(string) (*domain.LockFile, error) {
		panic("corrupt state")
	})

	assert.NotPanics(t, func() {
		_, found := f.resolver.Resolve(context.Background(), solutionPath, restoreOn())
		assert.False(t, found)
	})
}

func TestResolve_CanceledContext(t *testing.T) {
	f := newFixture(t)
	f.solution(csproj("Game"))
	f.assets("Game")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found := f.resolver.Resolve(ctx, solutionPath, restoreOn())
	assert.False(t, found)
}
