// Package litErrors defines the closed set of failure kinds the notebook
// engine can raise. Every fallible operation in the engine returns one of
// these (or wraps one with fmt.Errorf's %w), so the CLI layer can print a
// one-line diagnostic tagged with the taxonomy member without inspecting
// error strings.
package litErrors

import "fmt"

// Kind identifies which member of the closed error taxonomy an error is.
type Kind string

// Taxonomy is implemented by every member of the closed error set. The
// CLI layer unwraps to it with errors.As to tag its diagnostic with the
// taxonomy member.
type Taxonomy interface {
	error
	Kind() Kind
}

const (
	KindIO                 Kind = "io"
	KindSourceDirNotFound  Kind = "source_directory_not_found"
	KindCannotReadFile     Kind = "cannot_read_file"
	KindDuplicateHeader    Kind = "duplicate_header"
	KindDuplicateModule    Kind = "duplicate_module_name"
	KindIncorrectReference Kind = "incorrect_reference"
	KindPluginNotFound     Kind = "plugin_not_found"
	KindLuaRuntime         Kind = "lua_runtime"
)

// IOError wraps an underlying filesystem failure.
type IOError struct {
	Op  string
	Err error
}

func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Kind returns the taxonomy member this error belongs to.
func (e *IOError) Kind() Kind { return KindIO }

// SourceDirError reports that the source root is missing or not a directory.
type SourceDirError struct {
	Path string
}

func NewSourceDirError(path string) *SourceDirError {
	return &SourceDirError{Path: path}
}

func (e *SourceDirError) Error() string {
	return fmt.Sprintf("source directory not found: %s", e.Path)
}

// Kind returns the taxonomy member this error belongs to.
func (e *SourceDirError) Kind() Kind { return KindSourceDirNotFound }

// PluginReadError reports that a plugin script could not be read.
type PluginReadError struct {
	Path string
	Err  error
}

func NewPluginReadError(path string, err error) *PluginReadError {
	return &PluginReadError{Path: path, Err: err}
}

func (e *PluginReadError) Error() string {
	return fmt.Sprintf("cannot read file: %s", e.Path)
}

func (e *PluginReadError) Unwrap() error { return e.Err }

// Kind returns the taxonomy member this error belongs to.
func (e *PluginReadError) Kind() Kind { return KindCannotReadFile }

// DuplicateHeaderError reports that two sections in one notebook share an
// anchor-normalized header.
type DuplicateHeaderError struct {
	Anchor string
}

func NewDuplicateHeaderError(anchor string) *DuplicateHeaderError {
	return &DuplicateHeaderError{Anchor: anchor}
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("duplicate header found: %s", e.Anchor)
}

// Kind returns the taxonomy member this error belongs to.
func (e *DuplicateHeaderError) Kind() Kind { return KindDuplicateHeader }

// DuplicateModuleError reports that two notebook files in one project
// collapse to the same module name (e.g. a.py.lpnb and a.cpp.lpnb).
type DuplicateModuleError struct {
	Name  string
	PathA string
	PathB string
}

func NewDuplicateModuleError(name, pathA, pathB string) *DuplicateModuleError {
	return &DuplicateModuleError{Name: name, PathA: pathA, PathB: pathB}
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("duplicate module name: %s (%s and %s)", e.Name, e.PathA, e.PathB)
}

// Kind returns the taxonomy member this error belongs to.
func (e *DuplicateModuleError) Kind() Kind { return KindDuplicateModule }

// ReferenceError reports that a reference did not resolve in the section index.
type ReferenceError struct {
	Path   string
	Header string
}

func NewReferenceError(path, header string) *ReferenceError {
	return &ReferenceError{Path: path, Header: header}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("incorrect reference: %s#%s does not resolve to any section", e.Path, e.Header)
}

// Kind returns the taxonomy member this error belongs to.
func (e *ReferenceError) Kind() Kind { return KindIncorrectReference }

// PluginNotFoundError reports that no plugin is registered for an extension.
type PluginNotFoundError struct {
	Ext string
}

func NewPluginNotFoundError(ext string) *PluginNotFoundError {
	return &PluginNotFoundError{Ext: ext}
}

func (e *PluginNotFoundError) Error() string {
	return fmt.Sprintf("no plugin for file extension: %s", e.Ext)
}

// Kind returns the taxonomy member this error belongs to.
func (e *PluginNotFoundError) Kind() Kind { return KindPluginNotFound }

// LuaRuntimeError reports that a plugin script failed to compile or run.
type LuaRuntimeError struct {
	Message string
	Err     error
}

func NewLuaRuntimeError(message string, err error) *LuaRuntimeError {
	return &LuaRuntimeError{Message: message, Err: err}
}

func (e *LuaRuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lua error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("lua error: %s", e.Message)
}

func (e *LuaRuntimeError) Unwrap() error { return e.Err }

// Kind returns the taxonomy member this error belongs to.
func (e *LuaRuntimeError) Kind() Kind { return KindLuaRuntime }
