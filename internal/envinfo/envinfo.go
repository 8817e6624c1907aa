// SPDX-License-Identifier: MPL-2.0

package envinfo

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"envdoctor-cli/internal/issue"
	"envdoctor-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// SuccessMarker is the nominal result of a successful report run. Nothing
// consumes it; it exists as the fixed success value the reporter promises.
const SuccessMarker = "Setup successful"

// Fixed report lines and labels. The report contract is a fixed sequence of
// labeled lines; renderers may style them but must not reorder or drop them.
const (
	Banner  = "🔍 envdoctor: checking your environment"
	Closing = "✅ Environment working correctly!"

	LabelRuntimeVersion = "Runtime version: "
	LabelWorkingDir     = "Current working directory: "
	LabelPrefix         = "Virtual environment: "
	LabelProjectRoot    = "Project root: "

	IsolatedLine    = "✅ Running in virtual environment"
	NotIsolatedLine = "⚠️  Not running in virtual environment"
)

// Report holds the facts of a single gathering pass. All fields are
// snapshots taken at Gather time.
type Report struct {
	// RuntimeVersion is the Go runtime version string (e.g., "go1.25.0").
	RuntimeVersion string `json:"runtime_version"`
	// Platform is the "os/arch" pair the binary runs on.
	Platform string `json:"platform"`
	// WorkingDir is the process's current working directory.
	WorkingDir types.FilesystemPath `json:"working_dir"`
	// Prefix is the environment prefix path (see PrefixSource).
	Prefix types.FilesystemPath `json:"prefix"`
	// PrefixSource names where the prefix came from.
	PrefixSource PrefixSource `json:"prefix_source"`
	// Isolated is true when execution occurs inside an isolated environment.
	Isolated bool `json:"isolated"`
	// Executable is the resolved path of the running binary.
	Executable types.FilesystemPath `json:"executable"`
	// ProjectRoot is the directory containing the resolved binary.
	ProjectRoot types.FilesystemPath `json:"project_root"`
	// Project holds optional pyproject.toml metadata found at the project root.
	Project *ProjectMeta `json:"project,omitempty"`
	// Marker is the fixed success marker, always SuccessMarker.
	Marker string `json:"marker"`
}

// Lines returns the fixed seven-line plain-text form of the report, in the
// order the report contract requires. Exactly one of the two isolation lines
// appears, never both.
func (r *Report) Lines() []string {
	isolation := NotIsolatedLine
	if r.Isolated {
		isolation = IsolatedLine
	}
	return []string{
		Banner,
		LabelRuntimeVersion + r.RuntimeVersion,
		LabelWorkingDir + r.WorkingDir.String(),
		LabelPrefix + r.Prefix.String(),
		isolation,
		LabelProjectRoot + r.ProjectRoot.String(),
		Closing,
	}
}

// Gatherer collects Report facts. The zero value is not usable; construct
// with NewGatherer. All environment access goes through injectable hooks so
// tests can pin the process environment without mutating it.
type Gatherer struct {
	lookupEnv   func(string) (string, bool)
	getwd       func() (string, error)
	executable  func() (string, error)
	goroot      func() string
	statFile    func(string) (os.FileInfo, error)
	projectMeta bool
	logger      *log.Logger
}

// Option configures a Gatherer.
type Option func(*Gatherer)

// WithLookupEnv overrides environment variable lookup.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(g *Gatherer) { g.lookupEnv = fn }
}

// WithGetwd overrides working directory resolution.
func WithGetwd(fn func() (string, error)) Option {
	return func(g *Gatherer) { g.getwd = fn }
}

// WithExecutable overrides executable path resolution.
func WithExecutable(fn func() (string, error)) Option {
	return func(g *Gatherer) { g.executable = fn }
}

// WithGoroot overrides the runtime installation root lookup.
func WithGoroot(fn func() string) Option {
	return func(g *Gatherer) { g.goroot = fn }
}

// WithProjectMeta enables or disables the pyproject.toml probe at the
// project root (enabled by default).
func WithProjectMeta(enabled bool) Option {
	return func(g *Gatherer) { g.projectMeta = enabled }
}

// WithLogger sets the logger for verbose gathering diagnostics. Diagnostics
// go to the logger's writer (stderr in the CLI), never to the report itself.
func WithLogger(logger *log.Logger) Option {
	return func(g *Gatherer) { g.logger = logger }
}

// NewGatherer creates a Gatherer backed by the real process environment.
func NewGatherer(opts ...Option) *Gatherer {
	g := &Gatherer{
		lookupEnv:   os.LookupEnv,
		getwd:       os.Getwd,
		executable:  os.Executable,
		goroot:      func() string { return runtime.GOROOT() },
		statFile:    os.Stat,
		projectMeta: true,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Gather collects all report facts. Each step is unconditional; the only
// branch is the isolation verdict. Failures are not retried and carry
// remediation context upward.
func (g *Gatherer) Gather() (*Report, error) {
	version := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH
	g.logger.Debug("runtime inspected", "version", version, "platform", platform)

	wd, err := g.getwd()
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read working directory").
			WithSuggestion("Change into a directory that still exists and re-run").
			WithIssue(issue.WorkdirUnavailableId).
			Wrap(err).
			BuildError()
	}
	g.logger.Debug("working directory read", "path", wd)

	prefix, source := g.resolvePrefix()
	isolated := g.detectIsolation(prefix, source)
	g.logger.Debug("environment prefix resolved", "prefix", prefix, "source", source, "isolated", isolated)

	exe, root, err := g.resolveProjectRoot()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("project root resolved", "executable", exe, "root", root)

	report := &Report{
		RuntimeVersion: version,
		Platform:       platform,
		WorkingDir:     types.FilesystemPath(wd),
		Prefix:         prefix,
		PrefixSource:   source,
		Isolated:       isolated,
		Executable:     exe,
		ProjectRoot:    root,
		Marker:         SuccessMarker,
	}

	if g.projectMeta {
		meta, metaErr := readProjectMeta(root)
		if metaErr != nil {
			// Metadata is supplementary; a malformed pyproject.toml must not
			// fail the report.
			g.logger.Warn("skipping project metadata", "error", metaErr)
		} else if meta != nil {
			g.logger.Debug("project metadata read", "name", meta.Name)
			report.Project = meta
		}
	}

	return report, nil
}

func (g *Gatherer) env(key string) string {
	v, _ := g.lookupEnv(key)
	return v
}

// String returns a single-line summary for debugging.
func (r *Report) String() string {
	return fmt.Sprintf("envinfo.Report{runtime=%s wd=%s prefix=%s isolated=%v root=%s}",
		r.RuntimeVersion, r.WorkingDir, r.Prefix, r.Isolated, r.ProjectRoot)
}
