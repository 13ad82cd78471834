// Package plugin loads scripting plugins that synthesize language-specific
// import statements and clean the composed code of a module. The scripting
// evaluator is treated as an opaque dependency: it loads a source file and
// calls named global functions with string arguments, returning a string.
//
// The evaluator is github.com/yuin/gopher-lua, an embeddable Lua VM.
package plugin

import (
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/grove-tools/litbuild/internal/litErrors"
)

const (
	scriptExtension = "lua"
	importFuncName  = "get_import_code"
	cleanFuncName   = "clean_code"
)

// Registry holds one shared Lua state and, keyed by filename stem, the
// import and clean functions each loaded plugin exposes. The state must
// outlive every function handle the registry hands out; Registry owns it
// for exactly that reason and Close tears it down.
type Registry struct {
	state     *lua.LState
	importFns map[string]*lua.LFunction
	cleanFns  map[string]*lua.LFunction
}

// NewRegistry scans dir non-recursively for "*.lua" files and loads each
// into a freshly created Lua state shared by the whole registry.
//
// A directory that cannot be opened yields an empty, non-fatal registry --
// the first lookup that needs a plugin will then fail with
// PluginNotFound. A plugin file that cannot be read is a fatal
// CannotReadFile error; one that fails to compile, or that is missing
// either expected global function, is a fatal LuaRuntime error.
func NewRegistry(dir string) (*Registry, error) {
	reg := &Registry{
		state:     lua.NewState(),
		importFns: make(map[string]*lua.LFunction),
		cleanFns:  make(map[string]*lua.LFunction),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return reg, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if ext != scriptExtension {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		path := filepath.Join(dir, name)

		src, err := os.ReadFile(path)
		if err != nil {
			reg.Close()
			return nil, litErrors.NewPluginReadError(path, err)
		}
		// Clear the expected globals first: the state is shared, so a
		// plugin lacking one would otherwise pick up the previous plugin's.
		reg.state.SetGlobal(importFuncName, lua.LNil)
		reg.state.SetGlobal(cleanFuncName, lua.LNil)
		if err := reg.state.DoString(string(src)); err != nil {
			reg.Close()
			return nil, litErrors.NewLuaRuntimeError("load plugin "+path, err)
		}

		importFn, err := requireGlobalFunc(reg.state, importFuncName)
		if err != nil {
			reg.Close()
			return nil, err
		}
		cleanFn, err := requireGlobalFunc(reg.state, cleanFuncName)
		if err != nil {
			reg.Close()
			return nil, err
		}

		reg.importFns[stem] = importFn
		reg.cleanFns[stem] = cleanFn
	}

	return reg, nil
}

// Close releases the underlying Lua state. Call it once the registry and
// every section/code it helped build are no longer needed.
func (r *Registry) Close() {
	r.state.Close()
}

// CallImport invokes the import function registered for ext with the three
// arguments spec.md §4.6 names, returning the import/include snippet to
// splice into the assembled file.
func (r *Registry) CallImport(ext, currentPath, referencedPath, codeBlock string) (string, error) {
	fn, ok := r.importFns[ext]
	if !ok {
		return "", litErrors.NewPluginNotFoundError(ext)
	}
	return r.call(importFuncName+" ("+ext+")", fn, lua.LString(currentPath), lua.LString(referencedPath), lua.LString(codeBlock))
}

// CallClean invokes the clean function registered for ext, returning the
// cleaned code.
func (r *Registry) CallClean(ext, code string) (string, error) {
	fn, ok := r.cleanFns[ext]
	if !ok {
		return "", litErrors.NewPluginNotFoundError(ext)
	}
	return r.call(cleanFuncName+" ("+ext+")", fn, lua.LString(code))
}

func (r *Registry) call(what string, fn *lua.LFunction, args ...lua.LValue) (string, error) {
	if err := r.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		return "", litErrors.NewLuaRuntimeError("call "+what, err)
	}
	defer r.state.Pop(1)

	ret := r.state.Get(-1)
	s, ok := ret.(lua.LString)
	if !ok {
		return "", litErrors.NewLuaRuntimeError("plugin function did not return a string", nil)
	}
	return string(s), nil
}

func requireGlobalFunc(state *lua.LState, name string) (*lua.LFunction, error) {
	v := state.GetGlobal(name)
	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil, litErrors.NewLuaRuntimeError("no global function named "+name, nil)
	}
	return fn, nil
}
