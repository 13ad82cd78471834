// Package docsbuild assembles the docs output tree. It is the literal,
// uninterpreted transcription of a module's sections into fenced-code
// markdown; it never consults the section index or any plugin.
package docsbuild

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/grove-tools/litbuild/internal/litErrors"
	"github.com/grove-tools/litbuild/internal/pathutil"
	"github.com/grove-tools/litbuild/internal/project"
)

// Build renders every module of proj under docsRoot: notebook modules
// become fenced-code-block markdown, everything else is copied verbatim.
func Build(proj *project.Project, sourceRoot, docsRoot string) error {
	for _, m := range proj.Modules {
		if err := emitModule(m, sourceRoot, docsRoot); err != nil {
			return err
		}
	}
	return nil
}

func emitModule(m *project.Module, sourceRoot, docsRoot string) error {
	targetRel, displayedExt := targetPath(m.Path)
	targetFull, err := pathutil.JoinRoot(docsRoot, targetRel)
	if err != nil {
		return litErrors.NewIOError("resolve docs output path for "+m.Path, err)
	}
	if err := os.MkdirAll(filepath.Dir(targetFull), 0o755); err != nil {
		return litErrors.NewIOError("create docs output directory for "+m.Path, err)
	}

	if !m.IsNotebook() {
		content, err := os.ReadFile(filepath.Join(sourceRoot, m.Path))
		if err != nil {
			return litErrors.NewIOError("read "+m.Path, err)
		}
		if err := os.WriteFile(targetFull, content, 0o644); err != nil {
			return litErrors.NewIOError("write docs output for "+m.Path, err)
		}
		return nil
	}

	var rendered []string
	for _, section := range m.Sections {
		rendered = append(rendered, section.Docs+"\n```"+displayedExt+"\n"+section.Code+"\n```")
	}

	if err := os.WriteFile(targetFull, []byte(strings.Join(rendered, "\n")), 0o644); err != nil {
		return litErrors.NewIOError("write docs output for "+m.Path, err)
	}
	return nil
}

// targetPath computes the docs-root-relative output path and the fence's
// displayed language tag. For a notebook module the notebook extension is
// stripped and the remaining extension is replaced with "md"; a
// non-notebook module keeps its path and extension unchanged.
func targetPath(modulePath string) (relPath, displayedExt string) {
	stripped := pathutil.StripNotebookExt(modulePath)
	if stripped == modulePath {
		return modulePath, strings.TrimPrefix(path.Ext(modulePath), ".")
	}

	ext := path.Ext(stripped)
	displayedExt = strings.TrimPrefix(ext, ".")
	base := strings.TrimSuffix(stripped, ext)
	return base + ".md", displayedExt
}
