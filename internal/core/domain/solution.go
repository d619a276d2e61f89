package domain

import "strings"

// Known project type identifiers, upper case and without braces.
const (
	// ProjectTypeCSharp identifies a classic C# project.
	ProjectTypeCSharp = "FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"
	// ProjectTypeCSharpSDK identifies an SDK-style C# project.
	ProjectTypeCSharpSDK = "9A19103F-16F7-4668-BE54-9A1E7A4F7556"
	// ProjectTypeSolutionFolder identifies a solution folder.
	ProjectTypeSolutionFolder = "2150E333-8FDC-42A3-9474-1A3956D46DE8"
)

// NormalizeGUID strips surrounding braces and upper-cases a GUID.
func NormalizeGUID(guid string) string {
	guid = strings.TrimSpace(guid)
	guid = strings.TrimPrefix(guid, "{")
	guid = strings.TrimSuffix(guid, "}")
	return strings.ToUpper(guid)
}

// Solution is a parsed solution file.
type Solution struct {
	// Path is the file the solution was read from.
	Path string

	// Header holds the lines preceding the first project, verbatim.
	Header []string

	// Projects are the project entries in declaration order.
	Projects []*Project

	// Global holds the lines from "Global" through the end of the file, verbatim.
	Global []string

	// CRLF records whether the file used Windows line endings.
	CRLF bool

	// BOM records whether the file started with a UTF-8 byte order mark.
	BOM bool
}

// Project is a single entry of a solution: a buildable project or a folder.
type Project struct {
	// TypeGUID is the normalized project type identifier.
	TypeGUID string

	// Name is the display name of the entry.
	Name string

	// RelativePath is the path as written in the solution file.
	RelativePath string

	// FullPath is RelativePath resolved against the solution directory.
	FullPath string

	// GUID is the normalized identifier of the entry.
	GUID string

	// Sections are the ProjectSection blocks of the entry.
	Sections Sections
}

// IsSolutionFolder reports whether the entry is a solution folder.
func (p *Project) IsSolutionFolder() bool {
	return p.TypeGUID == ProjectTypeSolutionFolder
}

// IsCSharp reports whether the entry is a classic or SDK-style C# project.
func (p *Project) IsCSharp() bool {
	return p.TypeGUID == ProjectTypeCSharp || p.TypeGUID == ProjectTypeCSharpSDK
}
