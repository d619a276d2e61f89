package domain

import "slices"

// EngineLibraryNames are the package identifiers whose resolved version
// identifies the engine release a project targets, current name first.
var EngineLibraryNames = []string{"Stride.Engine", "Xenko.Engine"}

// LegacyPackageSections are the solution-folder section names that old engine
// releases used to embed a package reference, in lookup priority order.
var LegacyPackageSections = []string{"XenkoPackage", "SiliconStudioPackage"}

// IsEngineLibrary reports whether name is one of the engine library names.
func IsEngineLibrary(name string) bool {
	return slices.Contains(EngineLibraryNames, name)
}

// IsLegacyPackageSection reports whether name is a legacy marker section.
func IsLegacyPackageSection(name string) bool {
	return slices.Contains(LegacyPackageSections, name)
}
