package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const buildTestPlugin = `
function get_import_code(current_path, referenced_path, code_block)
  return "# import " .. referenced_path
end

function clean_code(code)
  return code
end
`

func TestBuildCommandFlagDefaults(t *testing.T) {
	if f := buildCmd.Flags().Lookup("src-dir"); f == nil || f.DefValue != "src" {
		t.Errorf("expected --src-dir default 'src', got %+v", f)
	}
	if f := buildCmd.Flags().Lookup("target-dir"); f == nil || f.DefValue != "targets" {
		t.Errorf("expected --target-dir default 'targets', got %+v", f)
	}
	if f := buildCmd.Flags().Lookup("plugins-dir"); f == nil || f.DefValue != "plugins" {
		t.Errorf("expected --plugins-dir default 'plugins', got %+v", f)
	}
	if f := buildCmd.Flags().Lookup("force"); f == nil || f.Shorthand != "f" {
		t.Errorf("expected --force/-f flag, got %+v", f)
	}
}

func TestRunBuildCommandEndToEnd(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	pluginsDir := filepath.Join(root, "plugins")
	targetDir := filepath.Join(root, "targets")

	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(pluginsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pluginsDir, "py.lua"), []byte(buildTestPlugin), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "a.py.lpnb"), []byte(`
sections:
  - code: "x = 1"
    docs: "# Top"
`), 0o644); err != nil {
		t.Fatal(err)
	}

	// Execute through the root: cobra delegates a child's Execute to the
	// root command, so args must be set there.
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{
		"build",
		"--src-dir", srcDir,
		"--target-dir", targetDir,
		"--plugins-dir", pluginsDir,
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(targetDir, "code", "a.py")); err != nil {
		t.Errorf("expected code output a.py: %v", err)
	}
	if _, err := os.Stat(filepath.Join(targetDir, "docs", "a.md")); err != nil {
		t.Errorf("expected docs output a.md: %v", err)
	}
}
