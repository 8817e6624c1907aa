// SPDX-License-Identifier: MPL-2.0

package envinfo

import (
	"envdoctor-cli/internal/issue"
	"envdoctor-cli/pkg/fspath"
	"envdoctor-cli/pkg/types"
)

// resolveProjectRoot resolves the running binary's path, follows any
// symlinks, and returns both the resolved executable path and its parent
// directory. The result is independent of the caller's working directory.
func (g *Gatherer) resolveProjectRoot() (exe, root types.FilesystemPath, err error) {
	raw, err := g.executable()
	if err != nil {
		return "", "", issue.NewErrorContext().
			WithOperation("resolve executable path").
			WithSuggestion("Avoid deleting the binary while it is running").
			WithIssue(issue.ExecutableUnresolvableId).
			Wrap(err).
			BuildError()
	}

	resolved, err := fspath.EvalSymlinks(types.FilesystemPath(raw))
	if err != nil {
		return "", "", issue.NewErrorContext().
			WithOperation("resolve executable path").
			WithResource(raw).
			WithSuggestion("Check for broken symlinks along the install path").
			WithIssue(issue.ExecutableUnresolvableId).
			Wrap(err).
			BuildError()
	}

	return resolved, fspath.Dir(resolved), nil
}
