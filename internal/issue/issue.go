// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue in the catalog.
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	WorkdirUnavailableId
	ExecutableUnresolvableId
	PrefixUnavailableId
)

// MarkdownMsg is Markdown text rendered to the terminal when the issue is shown.
type MarkdownMsg string

// Issue pairs a known failure mode with rendered remediation guidance.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guidance for the issue.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's guidance with glamour using the given style
// ("dark", "light", or a style file path).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file exists but could not be loaded.

## Things you can try:
- Check the error message above for the specific field
- Validate the CUE syntax of your config file
- Show where the config file lives:
~~~
$ envdoctor config path
~~~
- Recreate a default config file:
~~~
$ envdoctor config init
~~~`,
	}

	workdirUnavailableIssue = &Issue{
		id: WorkdirUnavailableId,
		mdMsg: `
# Working directory unavailable!

The current working directory could not be determined. This usually means
the directory was deleted while the process was running in it.

## Things you can try:
- Change into a directory that still exists and re-run:
~~~
$ cd ~ && envdoctor report
~~~`,
	}

	executableUnresolvableIssue = &Issue{
		id: ExecutableUnresolvableId,
		mdMsg: `
# Could not resolve the envdoctor binary path!

The project root is derived from the location of the running binary, and
that location could not be resolved.

## Things you can try:
- Reinstall or rebuild the binary
- Avoid deleting the binary while it is running
- Check for broken symlinks along the install path:
~~~
$ ls -l $(which envdoctor)
~~~`,
	}

	prefixUnavailableIssue = &Issue{
		id: PrefixUnavailableId,
		mdMsg: `
# Environment prefix unavailable!

No environment prefix could be determined: neither VIRTUAL_ENV nor
CONDA_PREFIX is set and the runtime reports no installation root.

## Things you can try:
- Activate your project's virtual environment:
~~~
$ source .venv/bin/activate
~~~
- Re-run the report afterwards:
~~~
$ envdoctor report
~~~`,
	}

	catalog = map[Id]*Issue{
		ConfigLoadFailedId:       configLoadFailedIssue,
		WorkdirUnavailableId:     workdirUnavailableIssue,
		ExecutableUnresolvableId: executableUnresolvableIssue,
		PrefixUnavailableId:      prefixUnavailableIssue,
	}
)

// Get returns the catalog issue for the given id, or nil when unknown.
func Get(id Id) *Issue {
	return catalog[id]
}

// Ids returns all known issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
