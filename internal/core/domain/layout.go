package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "slnver.yaml"

	// ObjDirName is the intermediate output directory of a .NET project.
	ObjDirName = "obj"

	// AssetsFileName is the file NuGet writes the resolved dependency graph to.
	AssetsFileName = "project.assets.json"

	// SolutionFileExt is the extension of Visual Studio solution files.
	SolutionFileExt = ".sln"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LockFilePath returns the path of the assets file NuGet generates for the
// project file at projectPath. The layout is fixed by the restore tooling.
func LockFilePath(projectPath string) string {
	return filepath.Join(filepath.Dir(projectPath), ObjDirName, AssetsFileName)
}
