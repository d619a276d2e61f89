package domain

// LegacyPackageRef describes a legacy package marker found in a solution folder.
type LegacyPackageRef struct {
	// Project is the name of the solution folder carrying the marker.
	Project string

	// ProjectGUID is the normalized identifier of the folder.
	ProjectGUID string

	// Section is the matched legacy section name.
	Section string

	// RelativePath is the package path embedded in the section.
	RelativePath string
}
