// Package project wraps parsed notebooks and plain files as Modules and
// walks a source directory into a Project. It is the generalization of the
// teacher's discovery.Walker: instead of classifying files by language and
// filtering out tests/vendor/gitignored paths, every file becomes exactly
// one Module, literate or not.
package project

import (
	"os"
	"path"

	"github.com/grove-tools/litbuild/internal/notebook"
	"github.com/grove-tools/litbuild/internal/pathutil"
)

// Module is a single file in the source tree. Path is source-relative and
// preserves the original file name, including the notebook extension when
// present. Sections is nil for a non-notebook file; for a notebook file it
// holds the parsed sections (possibly empty).
type Module struct {
	Path     string
	Sections []*notebook.Section
}

// IsNotebook reports whether this module was parsed as a literate notebook.
// A *.lpnb file whose content could not be read still reports false here --
// it degrades to a plain, sectionless module (spec.md §4.3).
func (m *Module) IsNotebook() bool {
	return m.Sections != nil
}

// LoadModule reads path (which lives under root) and produces its Module.
//
// Non-".lpnb" files always become sectionless modules. ".lpnb" files are
// read and parsed; a read failure degrades to a sectionless module (the
// file is kept as opaque), but a parse failure propagates -- notably
// DuplicateHeader, which must abort the whole build.
func LoadModule(root, filePath string) (*Module, error) {
	relPath := pathutil.CleanPath(root, filePath)

	if path.Ext(filePath) != "."+pathutil.NotebookExt {
		return &Module{Path: relPath}, nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return &Module{Path: relPath}, nil
	}

	sections, err := notebook.Parse(content)
	if err != nil {
		return nil, err
	}

	return &Module{Path: relPath, Sections: sections}, nil
}

// Name returns this module's module name: its path with both the notebook
// extension and the underlying extension stripped.
func (m *Module) Name() string {
	return pathutil.ModuleName(m.Path)
}

// ResolveRelative returns the module name that refPath refers to when used
// as a Reference.Path from within this module.
//
// An empty refPath means "same module" and resolves to this module's own
// name. Otherwise refPath replaces the last path component of m.Path, and
// "."/".." segments are normalized away -- still carrying whatever
// extensions refPath itself names.
func (m *Module) ResolveRelative(refPath string) string {
	if refPath == "" {
		return m.Name()
	}
	dir := path.Dir(m.Path)
	var combined string
	if dir == "." {
		combined = refPath
	} else {
		combined = dir + "/" + refPath
	}
	return path.Clean(combined)
}
