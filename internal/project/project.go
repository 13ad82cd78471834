package project

import (
	"io/fs"
	"path/filepath"

	"github.com/grove-tools/litbuild/internal/litErrors"
)

// Project is the ordered set of modules discovered under a source root.
// Order is implementation-defined (directory iteration order) but stable
// within one invocation; nothing in the engine depends on a specific order
// beyond "every file is visited exactly once" (spec.md §9).
type Project struct {
	Modules []*Module
}

// Walk recursively visits every file under root, loading each into a
// Module. Directories are descended into but never recorded. The first
// loader error (a DuplicateHeader from a malformed notebook) aborts the
// walk and is returned as-is.
//
// Unlike the teacher's discovery.Walker, Walk applies no skip list: no
// .gitignore, no hidden-directory or vendor-directory exclusion, no
// generated-file detection. spec.md §4.4 visits every file in the source
// tree with no such filtering -- see DESIGN.md for why that teacher
// behavior was dropped rather than adapted here.
func Walk(root string) (*Project, error) {
	var modules []*Module

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return litErrors.NewIOError("walk "+p, err)
		}
		if d.IsDir() {
			return nil
		}

		module, loadErr := LoadModule(root, p)
		if loadErr != nil {
			return loadErr
		}
		modules = append(modules, module)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Two notebooks must not collapse to the same module name: a.py.lpnb
	// and a.cpp.lpnb would both claim "a" in the section index.
	names := make(map[string]string, len(modules))
	for _, m := range modules {
		if !m.IsNotebook() {
			continue
		}
		name := m.Name()
		if prev, ok := names[name]; ok {
			return nil, litErrors.NewDuplicateModuleError(name, prev, m.Path)
		}
		names[name] = m.Path
	}

	return &Project{Modules: modules}, nil
}
