// Package codebuild assembles the code output tree: for every notebook
// module it resolves cross-references into plugin-generated import
// snippets, concatenates section code in order, and runs the result
// through the owning plugin's clean function; for every plain file it
// copies the source bytes verbatim.
package codebuild

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/grove-tools/litbuild/internal/index"
	"github.com/grove-tools/litbuild/internal/litErrors"
	"github.com/grove-tools/litbuild/internal/pathutil"
	"github.com/grove-tools/litbuild/internal/plugin"
	"github.com/grove-tools/litbuild/internal/project"
)

// Build runs the two-pass code builder over proj: a validation pass that
// confirms every reference resolves in idx, then an emission pass that
// writes the code tree under codeRoot. The validation pass runs to
// completion over the whole project before any file is written, so a
// broken reference in module 50 is reported without module 1 having
// been partially emitted.
func Build(proj *project.Project, idx *index.Index, reg *plugin.Registry, sourceRoot, codeRoot string) error {
	if err := validateReferences(proj, idx); err != nil {
		return err
	}

	for _, m := range proj.Modules {
		if err := emitModule(m, idx, reg, sourceRoot, codeRoot); err != nil {
			return err
		}
	}
	return nil
}

func validateReferences(proj *project.Project, idx *index.Index) error {
	for _, m := range proj.Modules {
		if !m.IsNotebook() {
			continue
		}
		for _, section := range m.Sections {
			for _, ref := range section.References {
				targetModule := m.ResolveRelative(ref.Path)
				targetAnchor := pathutil.HeaderToAnchor(ref.Header)
				if _, ok := idx.Get(targetModule, targetAnchor); !ok {
					return litErrors.NewReferenceError(ref.Path, ref.Header)
				}
			}
		}
	}
	return nil
}

func emitModule(m *project.Module, idx *index.Index, reg *plugin.Registry, sourceRoot, codeRoot string) error {
	targetRel := pathutil.StripNotebookExt(m.Path)
	targetPath, err := pathutil.JoinRoot(codeRoot, targetRel)
	if err != nil {
		return litErrors.NewIOError("resolve code output path for "+m.Path, err)
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return litErrors.NewIOError("create code output directory for "+m.Path, err)
	}

	if !m.IsNotebook() {
		return copyFile(filepath.Join(sourceRoot, m.Path), targetPath)
	}

	raw, err := assembleRaw(m, idx, reg)
	if err != nil {
		return err
	}

	effectiveExt := pathutil.GetModuleExtension(m.Path)
	cleaned, err := reg.CallClean(effectiveExt, raw)
	if err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, []byte(cleaned+"\n"), 0o644); err != nil {
		return litErrors.NewIOError("write code output for "+m.Path, err)
	}
	return nil
}

func assembleRaw(m *project.Module, idx *index.Index, reg *plugin.Registry) (string, error) {
	currentStripped := pathutil.StripNotebookExt(m.Path)
	effectiveExt := pathutil.GetModuleExtension(m.Path)
	currentExt := path.Ext(currentStripped)

	var imports []string
	var body []string

	for _, section := range m.Sections {
		body = append(body, section.Code)

		for _, ref := range section.References {
			if ref.Path == "" || ref.Path == currentStripped {
				continue
			}
			targetModule := m.ResolveRelative(ref.Path)
			targetAnchor := pathutil.HeaderToAnchor(ref.Header)
			targetSection, ok := idx.Get(targetModule, targetAnchor)
			if !ok {
				return "", litErrors.NewReferenceError(ref.Path, ref.Header)
			}

			referencedPath := targetModule
			if currentExt != "" {
				// Rewrite, not append: a reference path that already names an
				// extension has it replaced by the current file's.
				if ext := path.Ext(targetModule); ext != "" {
					referencedPath = strings.TrimSuffix(targetModule, ext)
				}
				referencedPath += currentExt
			}

			snippet, err := reg.CallImport(effectiveExt, currentStripped, referencedPath, targetSection.Code)
			if err != nil {
				return "", err
			}
			imports = append(imports, snippet)
		}
	}

	return strings.Join(imports, "\n") + "\n" + strings.Join(body, "\n"), nil
}

func copyFile(srcPath, dstPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return litErrors.NewIOError("read "+srcPath, err)
	}
	if err := os.WriteFile(dstPath, content, 0o644); err != nil {
		return litErrors.NewIOError("write "+dstPath, err)
	}
	return nil
}
