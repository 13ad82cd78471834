package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grove-tools/litbuild/internal/litErrors"
)

func TestWalkMixedFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "plain.txt"), "hello")
	mustWrite(t, filepath.Join(dir, "a.py.lpnb"), `
sections:
  - code: "x = 1"
    docs: "# A"
`)
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, filepath.Join(dir, "sub", "b.txt"), "nested")

	proj, err := Walk(dir)
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	if len(proj.Modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(proj.Modules))
	}

	byPath := make(map[string]*Module)
	for _, m := range proj.Modules {
		byPath[m.Path] = m
	}

	if m, ok := byPath["plain.txt"]; !ok || m.IsNotebook() {
		t.Errorf("plain.txt should be a sectionless module, got %+v", m)
	}
	if m, ok := byPath["a.py.lpnb"]; !ok || !m.IsNotebook() {
		t.Errorf("a.py.lpnb should be a notebook module, got %+v", m)
	}
	if _, ok := byPath[filepath.Join("sub", "b.txt")]; !ok {
		t.Errorf("expected nested file in results")
	}
}

func TestWalkPropagatesDuplicateHeader(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "bad.lpnb"), `
sections:
  - code: "a"
    docs: "# Dup"
  - code: "b"
    docs: "# Dup"
`)

	_, err := Walk(dir)
	if err == nil {
		t.Fatal("expected DuplicateHeader error")
	}
	if _, ok := err.(*litErrors.DuplicateHeaderError); !ok {
		t.Fatalf("expected *litErrors.DuplicateHeaderError, got %T", err)
	}
}

func TestWalkRejectsCollidingModuleNames(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.py.lpnb"), `
sections:
  - code: "x"
    docs: "# X"
`)
	mustWrite(t, filepath.Join(dir, "a.cpp.lpnb"), `
sections:
  - code: "y"
    docs: "# Y"
`)

	_, err := Walk(dir)
	if err == nil {
		t.Fatal("expected duplicate module name error")
	}
	dupErr, ok := err.(*litErrors.DuplicateModuleError)
	if !ok {
		t.Fatalf("expected *litErrors.DuplicateModuleError, got %T", err)
	}
	if dupErr.Name != "a" {
		t.Errorf("Name = %q, want %q", dupErr.Name, "a")
	}
}

func TestLoadModuleUnreadableNotebookIsSectionless(t *testing.T) {
	dir := t.TempDir()
	// A directory entry matching the notebook extension name cannot be
	// opened as a file; LoadModule should degrade instead of failing.
	badPath := filepath.Join(dir, "weird.lpnb")
	if err := os.Mkdir(badPath, 0o755); err != nil {
		t.Fatal(err)
	}

	module, err := LoadModule(dir, badPath)
	if err != nil {
		t.Fatalf("LoadModule returned error: %v", err)
	}
	if module.IsNotebook() {
		t.Errorf("expected sectionless module for unreadable notebook, got sections")
	}
}

func TestModuleResolveRelative(t *testing.T) {
	m := &Module{Path: "dir/a.py.lpnb"}

	if got, want := m.ResolveRelative(""), "dir/a"; got != want {
		t.Errorf("ResolveRelative(\"\") = %q, want %q", got, want)
	}
	if got, want := m.ResolveRelative("b.py.lpnb"), "dir/b.py.lpnb"; got != want {
		t.Errorf("ResolveRelative(b.py.lpnb) = %q, want %q", got, want)
	}
	if got, want := m.ResolveRelative("../b.py.lpnb"), "b.py.lpnb"; got != want {
		t.Errorf("ResolveRelative(../b.py.lpnb) = %q, want %q", got, want)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
