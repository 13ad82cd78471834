// Package pathutil holds the pure, side-effect-free path transformations
// shared by the notebook parser, module loader, and both builders. None of
// these functions touch the filesystem.
package pathutil

import (
	"path"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// NotebookExt is the system file extension that marks a literate notebook.
// It is a fixed constant, not configurable -- see spec open questions.
const NotebookExt = "lpnb"

// StripNotebookExt removes a trailing ".lpnb" from p, if present.
func StripNotebookExt(p string) string {
	suffix := "." + NotebookExt
	if strings.HasSuffix(p, suffix) {
		return strings.TrimSuffix(p, suffix)
	}
	return p
}

// ModuleName strips the notebook extension, then strips any remaining
// extension. Applying it twice is idempotent when at most one extension is
// left once the notebook extension is gone; a name with more ("a.b.py.lpnb"
// -> "a.b") loses one more extension on each further pass.
//
//	dir/a.py.lpnb -> dir/a
//	Dockerfile.lpnb -> Dockerfile
//	a.lpnb -> a
func ModuleName(p string) string {
	stripped := StripNotebookExt(p)
	ext := path.Ext(stripped)
	if ext == "" {
		return stripped
	}
	return strings.TrimSuffix(stripped, ext)
}

// GetModuleExtension returns the extension remaining after the notebook
// extension is stripped, or the file's base name if no extension remains.
//
//	dir/a.py.lpnb -> py
//	Dockerfile.lpnb -> Dockerfile
func GetModuleExtension(p string) string {
	stripped := StripNotebookExt(p)
	ext := path.Ext(stripped)
	if ext == "" {
		return path.Base(stripped)
	}
	return strings.TrimPrefix(ext, ".")
}

// CleanPath returns p with a leading root prefix removed, or p unchanged if
// it does not begin with root. The prefix is matched as a string, not by
// path component, so root "src" also matches "srcx/a.txt". A path
// separator left dangling at the cut point is trimmed, so "root/a.txt"
// becomes "a.txt", not "/a.txt".
func CleanPath(root, p string) string {
	rest, ok := strings.CutPrefix(p, root)
	if !ok {
		return p
	}
	return strings.TrimPrefix(rest, "/")
}

// HeaderToAnchor trims leading/trailing whitespace from h and replaces every
// ASCII space with a hyphen. Case and any other characters (including
// leading/trailing "#") are left untouched.
func HeaderToAnchor(h string) string {
	trimmed := strings.TrimSpace(h)
	return strings.ReplaceAll(trimmed, " ", "-")
}

// JoinRoot joins rel onto root the way os.MkdirAll/os.Create expect, but
// clamps the result inside root even if rel carries ".." segments or
// resolves through a symlink. The builders pass it module paths from the
// project walker, never reference paths. It hardens the code/docs
// builders' final write step; it does not change the reference-resolution
// semantics upstream of it.
func JoinRoot(root, rel string) (string, error) {
	return securejoin.SecureJoin(root, rel)
}
