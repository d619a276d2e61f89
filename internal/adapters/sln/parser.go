// Package sln reads and writes Visual Studio solution files.
//
// Only the parts of the format the tool edits are modelled: the project
// entries and their ProjectSection blocks. The header and the Global block are
// kept verbatim so a loaded solution can be written back unchanged.
package sln

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	utf8BOM          = "\ufeff"
	endProject       = "EndProject"
	endSection       = "EndProjectSection"
	globalBlockStart = "Global"
)

var (
	projectLineRegex = regexp.MustCompile(
		`^Project\("\{?([0-9A-Fa-f-]+)\}?"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{?([0-9A-Fa-f-]+)\}?"\s*$`)
	sectionLineRegex = regexp.MustCompile(`^ProjectSection\(([^)]+)\)\s*=\s*(\S+)\s*$`)
)

// Parse parses the contents of a solution file. path is recorded on the
// solution and its directory is used to resolve project paths.
func Parse(path string, data []byte) (*domain.Solution, error) {
	sol := &domain.Solution{Path: path}

	text := string(data)
	if strings.HasPrefix(text, utf8BOM) {
		sol.BOM = true
		text = strings.TrimPrefix(text, utf8BOM)
	}
	sol.CRLF = strings.Contains(text, "\r\n")

	p := &parser{
		sol:     sol,
		baseDir: filepath.Dir(path),
		scanner: bufio.NewScanner(strings.NewReader(text)),
	}
	p.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := p.run(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return sol, nil
}

type parser struct {
	sol     *domain.Solution
	baseDir string
	scanner *bufio.Scanner
	line    int
	project *domain.Project
	section *domain.Section
}

func (p *parser) run() error {
	for p.scanner.Scan() {
		p.line++
		raw := strings.TrimSuffix(p.scanner.Text(), "\r")

		if p.sol.Global != nil {
			p.sol.Global = append(p.sol.Global, raw)
			continue
		}

		if err := p.handle(raw); err != nil {
			return zerr.With(err, "line", p.line)
		}
	}

	if err := p.scanner.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrSolutionParseFailed.Error())
	}
	if p.project != nil {
		return zerr.With(domain.ErrSolutionParseFailed, "reason", "unterminated project "+p.project.Name)
	}
	return nil
}

func (p *parser) handle(raw string) error {
	line := strings.TrimSpace(raw)

	switch {
	case p.section != nil:
		return p.handleSectionLine(line)
	case p.project != nil:
		return p.handleProjectLine(line)
	case strings.HasPrefix(line, "Project("):
		return p.startProject(line)
	case line == globalBlockStart:
		p.sol.Global = []string{raw}
		return nil
	case len(p.sol.Projects) == 0:
		p.sol.Header = append(p.sol.Header, raw)
		return nil
	case line == "":
		return nil
	default:
		return zerr.With(domain.ErrSolutionParseFailed, "unexpected", line)
	}
}

func (p *parser) startProject(line string) error {
	m := projectLineRegex.FindStringSubmatch(line)
	if m == nil {
		return zerr.With(domain.ErrSolutionParseFailed, "malformed_project", line)
	}

	p.project = &domain.Project{
		TypeGUID:     domain.NormalizeGUID(m[1]),
		Name:         m[2],
		RelativePath: m[3],
		FullPath:     resolveProjectPath(p.baseDir, m[3]),
		GUID:         domain.NormalizeGUID(m[4]),
	}
	return nil
}

func (p *parser) handleProjectLine(line string) error {
	switch {
	case line == endProject:
		p.sol.Projects = append(p.sol.Projects, p.project)
		p.project = nil
		return nil
	case strings.HasPrefix(line, "ProjectSection("):
		m := sectionLineRegex.FindStringSubmatch(line)
		if m == nil {
			return zerr.With(domain.ErrSolutionParseFailed, "malformed_section", line)
		}
		p.section = &domain.Section{Name: m[1], Phase: m[2]}
		return nil
	case line == "":
		return nil
	default:
		err := zerr.With(domain.ErrSolutionParseFailed, "unexpected", line)
		return zerr.With(err, "project", p.project.Name)
	}
}

func (p *parser) handleSectionLine(line string) error {
	if line == endSection {
		err := p.project.Sections.Add(p.section)
		p.section = nil
		if err != nil {
			return zerr.With(err, "project", p.project.Name)
		}
		return nil
	}
	if line == "" {
		return nil
	}

	name, value, _ := strings.Cut(line, "=")
	p.section.Properties = append(p.section.Properties, domain.Property{
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	})
	return nil
}

// resolveProjectPath joins a solution-relative project path, which uses
// backslashes on every platform, with the solution directory.
func resolveProjectPath(baseDir, rel string) string {
	native := filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/"))
	if filepath.IsAbs(native) || baseDir == "" {
		return filepath.Clean(native)
	}
	return filepath.Join(baseDir, native)
}

// Format renders a solution in the solution file format. Blank lines between
// projects are not preserved; header and Global lines are written verbatim.
func Format(sol *domain.Solution) []byte {
	newline := "\n"
	if sol.CRLF {
		newline = "\r\n"
	}

	var buf bytes.Buffer
	if sol.BOM {
		buf.WriteString(utf8BOM)
	}

	writeLine := func(format string, args ...any) {
		fmt.Fprintf(&buf, format, args...)
		buf.WriteString(newline)
	}

	for _, line := range sol.Header {
		writeLine("%s", line)
	}
	for _, project := range sol.Projects {
		writeLine(`Project("{%s}") = "%s", "%s", "{%s}"`,
			project.TypeGUID, project.Name, project.RelativePath, project.GUID)
		for section := range project.Sections.All() {
			writeLine("\tProjectSection(%s) = %s", section.Name, section.Phase)
			for _, prop := range section.Properties {
				writeLine("\t\t%s = %s", prop.Name, prop.Value)
			}
			writeLine("\t%s", endSection)
		}
		writeLine("%s", endProject)
	}
	for _, line := range sol.Global {
		writeLine("%s", line)
	}

	return buf.Bytes()
}
