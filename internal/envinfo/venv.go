// SPDX-License-Identifier: MPL-2.0

package envinfo

import (
	"envdoctor-cli/pkg/fspath"
	"envdoctor-cli/pkg/types"
)

// PrefixSource names where the environment prefix came from.
type PrefixSource string

const (
	// PrefixSourceVirtualEnv means the prefix was read from VIRTUAL_ENV,
	// the activation signal of a Python venv.
	PrefixSourceVirtualEnv PrefixSource = "VIRTUAL_ENV"
	// PrefixSourceConda means the prefix was read from CONDA_PREFIX.
	PrefixSourceConda PrefixSource = "CONDA_PREFIX"
	// PrefixSourceRuntime means no isolation variable was set and the prefix
	// is the runtime's own installation root (GOROOT).
	PrefixSourceRuntime PrefixSource = "runtime"
)

// pyvenvConfigName is the marker file a Python venv keeps at its root.
const pyvenvConfigName = "pyvenv.cfg"

// resolvePrefix returns the environment prefix path and its source.
// Precedence: VIRTUAL_ENV, then CONDA_PREFIX, then the runtime install root.
func (g *Gatherer) resolvePrefix() (types.FilesystemPath, PrefixSource) {
	if v := g.env("VIRTUAL_ENV"); v != "" {
		return types.FilesystemPath(v), PrefixSourceVirtualEnv
	}
	if v := g.env("CONDA_PREFIX"); v != "" {
		return types.FilesystemPath(v), PrefixSourceConda
	}
	return types.FilesystemPath(g.goroot()), PrefixSourceRuntime
}

// detectIsolation reports whether execution occurs inside an isolated
// environment. An activation variable is the definitive signal; failing
// that, a pyvenv.cfg under the prefix marks a venv even when the caller
// never exported VIRTUAL_ENV (e.g., the interpreter was invoked by path).
func (g *Gatherer) detectIsolation(prefix types.FilesystemPath, source PrefixSource) bool {
	if source == PrefixSourceVirtualEnv || source == PrefixSourceConda {
		return true
	}
	if prefix == "" {
		return false
	}
	if info, err := g.statFile(fspath.JoinStr(prefix, pyvenvConfigName).String()); err == nil && !info.IsDir() {
		return true
	}
	return false
}
