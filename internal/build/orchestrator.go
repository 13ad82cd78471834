// Package build drives a single end-to-end invocation: walk the source
// tree, build the section index and plugin registry, then run the code
// and docs builders in turn. One Run call, single-threaded throughout;
// each stage reports its start through a ProgressFunc callback.
package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/grove-tools/litbuild/internal/codebuild"
	"github.com/grove-tools/litbuild/internal/docsbuild"
	"github.com/grove-tools/litbuild/internal/index"
	"github.com/grove-tools/litbuild/internal/litErrors"
	"github.com/grove-tools/litbuild/internal/plugin"
	"github.com/grove-tools/litbuild/internal/project"
)

// Config holds one build invocation's directories and flags.
type Config struct {
	SrcDir     string
	TargetDir  string
	PluginsDir string
	Force      bool
	OnProgress ProgressFunc
}

// Summary reports what a successful Run produced, for the CLI's closing
// status line.
type Summary struct {
	ModuleCount  int
	BytesWritten int64
}

const (
	codeDirName = "code"
	docsDirName = "docs"
)

// Run executes one build: optional force-clean, directory setup, project
// walk, index and plugin registry construction, then the code builder
// followed by the docs builder. The first error aborts the whole run.
func Run(cfg Config) (Summary, error) {
	onProgress := cfg.OnProgress
	if onProgress == nil {
		onProgress = func(Stage, string) {}
	}

	info, err := os.Stat(cfg.SrcDir)
	if err != nil || !info.IsDir() {
		return Summary{}, litErrors.NewSourceDirError(cfg.SrcDir)
	}

	codeRoot := filepath.Join(cfg.TargetDir, codeDirName)
	docsRoot := filepath.Join(cfg.TargetDir, docsDirName)

	if cfg.Force {
		onProgress(StageClean, "Removing previous build output...")
		if err := os.RemoveAll(codeRoot); err != nil {
			return Summary{}, litErrors.NewIOError("remove "+codeRoot, err)
		}
		if err := os.RemoveAll(docsRoot); err != nil {
			return Summary{}, litErrors.NewIOError("remove "+docsRoot, err)
		}
	}

	if err := os.MkdirAll(codeRoot, 0o755); err != nil {
		return Summary{}, litErrors.NewIOError("create "+codeRoot, err)
	}
	if err := os.MkdirAll(docsRoot, 0o755); err != nil {
		return Summary{}, litErrors.NewIOError("create "+docsRoot, err)
	}

	onProgress(StageWalk, "Reading source tree...")
	proj, err := project.Walk(cfg.SrcDir)
	if err != nil {
		return Summary{}, err
	}

	onProgress(StageIndex, "Indexing sections and plugins...")
	idx := index.Build(proj)
	reg, err := plugin.NewRegistry(cfg.PluginsDir)
	if err != nil {
		return Summary{}, err
	}
	defer reg.Close()

	onProgress(StageCode, fmt.Sprintf("Building code tree in %s...", codeRoot))
	if err := codebuild.Build(proj, idx, reg, cfg.SrcDir, codeRoot); err != nil {
		return Summary{}, err
	}

	onProgress(StageDocs, fmt.Sprintf("Building docs tree in %s...", docsRoot))
	if err := docsbuild.Build(proj, cfg.SrcDir, docsRoot); err != nil {
		return Summary{}, err
	}

	bytesWritten := treeSize(codeRoot) + treeSize(docsRoot)
	return Summary{ModuleCount: len(proj.Modules), BytesWritten: bytesWritten}, nil
}

// treeSize totals the apparent size of every regular file under root. A
// root that cannot be walked contributes 0 rather than aborting the
// build over a cosmetic summary figure.
func treeSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
