// Package index builds the whole-project lookup from (module name, header
// anchor) to the Section that owns that header. It is built once from a
// fully-walked Project and never mutated afterward.
package index

import (
	"github.com/grove-tools/litbuild/internal/notebook"
	"github.com/grove-tools/litbuild/internal/pathutil"
	"github.com/grove-tools/litbuild/internal/project"
)

// Index maps module_name -> header_anchor -> Section. A module contributes
// an entry only if it has at least one headered section; sectionless
// modules and notebooks with no headered sections are absent.
type Index struct {
	byModule map[string]map[string]*notebook.Section
}

// Build constructs the Section Index for a project. Duplicates across
// modules cannot occur because the project walker rejects colliding
// module names; duplicates within a module cannot occur because parsing
// rejects colliding header anchors.
func Build(p *project.Project) *Index {
	idx := &Index{byModule: make(map[string]map[string]*notebook.Section)}

	for _, m := range p.Modules {
		if !m.IsNotebook() {
			continue
		}
		name := pathutil.ModuleName(m.Path)

		for _, section := range m.Sections {
			if !section.HasHeader() {
				continue
			}
			headers, ok := idx.byModule[name]
			if !ok {
				headers = make(map[string]*notebook.Section)
				idx.byModule[name] = headers
			}
			headers[section.Anchor()] = section
		}
	}

	return idx
}

// Get looks up the section owning headerAnchor within moduleName. The
// second return value reports whether it was found.
func (idx *Index) Get(moduleName, headerAnchor string) (*notebook.Section, bool) {
	headers, ok := idx.byModule[moduleName]
	if !ok {
		return nil, false
	}
	section, ok := headers[headerAnchor]
	return section, ok
}
