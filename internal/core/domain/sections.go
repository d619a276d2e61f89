package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Section phases as written in solution files.
const (
	PhasePreProject  = "preProject"
	PhasePostProject = "postProject"
)

// Property is a name/value pair inside a section.
type Property struct {
	Name  string
	Value string
}

// Section is a named ProjectSection block. Property order is preserved and
// names are not required to be unique.
type Section struct {
	Name       string
	Phase      string
	Properties []Property
}

// Sections is an ordered collection of sections with unique names.
// The zero value is empty and ready to use.
type Sections struct {
	items []*Section
}

// Add appends a section. It fails if a section with the same name exists.
func (s *Sections) Add(section *Section) error {
	if s.Contains(section.Name) {
		return zerr.With(ErrDuplicateSection, "section", section.Name)
	}
	s.items = append(s.items, section)
	return nil
}

// Get returns the section with the given name.
func (s *Sections) Get(name string) (*Section, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}
	return s.items[i], true
}

// Contains reports whether a section with the given name exists.
func (s *Sections) Contains(name string) bool {
	return s.index(name) >= 0
}

// Remove deletes the section with the given name and reports whether it existed.
func (s *Sections) Remove(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	return len(s.items)
}

// Names returns the section names in order.
func (s *Sections) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, item := range s.items {
		names = append(names, item.Name)
	}
	return names
}

// All iterates over the sections in order.
func (s *Sections) All() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *Sections) index(name string) int {
	for i, item := range s.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}
