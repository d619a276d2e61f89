package domain

// Library types recognized in a project assets file.
const (
	LibraryTypePackage = "package"
	LibraryTypeProject = "project"
)

// LockFile is the part of a project assets file the resolver needs.
type LockFile struct {
	// Version is the assets file format version.
	Version int

	// Libraries are the resolved libraries in file order.
	Libraries []Library
}

// Library is a single resolved dependency.
type Library struct {
	Name    string
	Version PackageVersion
	Type    string
}

// IsEngine reports whether the library is the engine package or project.
func (l Library) IsEngine() bool {
	if l.Type != LibraryTypePackage && l.Type != LibraryTypeProject {
		return false
	}
	return IsEngineLibrary(l.Name)
}
