// SPDX-License-Identifier: MPL-2.0

package envinfo

import (
	"path/filepath"
	"testing"

	"envdoctor-cli/internal/testutil"
	"envdoctor-cli/pkg/types"
)

func TestResolvePrefixPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		goroot     string
		wantPrefix string
		wantSource PrefixSource
	}{
		{
			name:       "virtual env wins",
			env:        map[string]string{"VIRTUAL_ENV": "/p/.venv", "CONDA_PREFIX": "/opt/conda"},
			goroot:     "/usr/local/go",
			wantPrefix: "/p/.venv",
			wantSource: PrefixSourceVirtualEnv,
		},
		{
			name:       "conda when no virtual env",
			env:        map[string]string{"CONDA_PREFIX": "/opt/conda/envs/news"},
			goroot:     "/usr/local/go",
			wantPrefix: "/opt/conda/envs/news",
			wantSource: PrefixSourceConda,
		},
		{
			name:       "runtime root as fallback",
			env:        map[string]string{},
			goroot:     "/usr/local/go",
			wantPrefix: "/usr/local/go",
			wantSource: PrefixSourceRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGatherer(
				WithLookupEnv(func(key string) (string, bool) {
					v, ok := tt.env[key]
					return v, ok
				}),
				WithGoroot(func() string { return tt.goroot }),
			)

			prefix, source := g.resolvePrefix()
			if prefix.String() != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", prefix, tt.wantPrefix)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestDetectIsolationFromActivationVariables(t *testing.T) {
	g := NewGatherer(WithLookupEnv(emptyEnv))

	if !g.detectIsolation("/p/.venv", PrefixSourceVirtualEnv) {
		t.Error("VIRTUAL_ENV prefix should mean isolated")
	}
	if !g.detectIsolation("/opt/conda", PrefixSourceConda) {
		t.Error("CONDA_PREFIX prefix should mean isolated")
	}
	if g.detectIsolation("/usr/local/go", PrefixSourceRuntime) {
		t.Error("runtime prefix without pyvenv.cfg should not mean isolated")
	}
	if g.detectIsolation("", PrefixSourceRuntime) {
		t.Error("empty prefix should not mean isolated")
	}
}

func TestDetectIsolationFromPyvenvConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0o644)

	g := NewGatherer(WithLookupEnv(emptyEnv))

	if !g.detectIsolation(types.FilesystemPath(dir), PrefixSourceRuntime) {
		t.Error("prefix containing pyvenv.cfg should mean isolated")
	}
}

func TestDetectIsolationIgnoresPyvenvDirectory(t *testing.T) {
	dir := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(dir, "pyvenv.cfg"), 0o755)

	g := NewGatherer(WithLookupEnv(emptyEnv))

	if g.detectIsolation(types.FilesystemPath(dir), PrefixSourceRuntime) {
		t.Error("a pyvenv.cfg directory is not a venv marker")
	}
}

func TestGatherUnsetRealEnvironment(t *testing.T) {
	// Exercise the real os.LookupEnv path with both variables unset.
	t.Cleanup(testutil.MustUnsetenv(t, "VIRTUAL_ENV"))
	t.Cleanup(testutil.MustUnsetenv(t, "CONDA_PREFIX"))

	exe := filepath.Join(t.TempDir(), "envdoctor")
	testutil.MustWriteFile(t, exe, []byte("#!"), 0o755)
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		t.Fatalf("failed to resolve fake executable: %v", err)
	}

	g := NewGatherer(WithExecutable(func() (string, error) { return resolved, nil }))
	report, err := g.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}
	if report.PrefixSource != PrefixSourceRuntime {
		t.Errorf("PrefixSource = %q, want %q", report.PrefixSource, PrefixSourceRuntime)
	}
}
