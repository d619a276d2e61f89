// Package legacy detects and removes the package markers that old engine
// releases embedded in solution folders.
//
// All functions take a non-nil project or solution.
package legacy

import "go.trai.ch/slnver/internal/core/domain"

// IsLegacyPackage reports whether p is a solution folder carrying a
// non-empty legacy marker section.
func IsLegacyPackage(p *domain.Project) bool {
	_, ok := marker(p)
	return ok
}

// LegacyPackagePath returns the relative package path embedded in p. The path
// is the name of the first property of the first non-empty legacy section,
// checked in priority order.
func LegacyPackagePath(p *domain.Project) (string, bool) {
	section, ok := marker(p)
	if !ok {
		return "", false
	}
	return section.Properties[0].Name, true
}

// StripLegacyMarkers removes every legacy marker section from a solution
// folder. Other entries are left untouched. It reports whether p changed.
func StripLegacyMarkers(p *domain.Project) bool {
	if !p.IsSolutionFolder() {
		return false
	}

	changed := false
	for _, name := range domain.LegacyPackageSections {
		if p.Sections.Remove(name) {
			changed = true
		}
	}
	return changed
}

// FindLegacyPackages lists the legacy packages of sol in project order.
func FindLegacyPackages(sol *domain.Solution) []domain.LegacyPackageRef {
	var refs []domain.LegacyPackageRef
	for _, p := range sol.Projects {
		section, ok := marker(p)
		if !ok {
			continue
		}
		refs = append(refs, domain.LegacyPackageRef{
			Project:      p.Name,
			ProjectGUID:  p.GUID,
			Section:      section.Name,
			RelativePath: section.Properties[0].Name,
		})
	}
	return refs
}

// StripSolution strips the markers of every folder in sol and returns the
// number of projects that changed.
func StripSolution(sol *domain.Solution) int {
	changed := 0
	for _, p := range sol.Projects {
		if StripLegacyMarkers(p) {
			changed++
		}
	}
	return changed
}

func marker(p *domain.Project) (*domain.Section, bool) {
	if !p.IsSolutionFolder() {
		return nil, false
	}
	for _, name := range domain.LegacyPackageSections {
		section, ok := p.Sections.Get(name)
		if ok && len(section.Properties) > 0 {
			return section, true
		}
	}
	return nil, false
}
