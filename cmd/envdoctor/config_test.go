// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"envdoctor-cli/internal/config"
)

// execRoot runs the root command with args and returns the combined output.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigDumpDefaults(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	out, err := execRoot(t, "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	if !strings.Contains(out, `color_scheme: "auto"`) {
		t.Errorf("dump missing default color scheme:\n%s", out)
	}
	if !strings.Contains(out, `format: "text"`) {
		t.Errorf("dump missing default report format:\n%s", out)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)

	out, err := execRoot(t, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Created default configuration") {
		t.Errorf("init output = %q", out)
	}

	out, err = execRoot(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.Contains(out, dir) {
		t.Errorf("path output should mention %q:\n%s", dir, out)
	}
}

func TestConfigSetRoundTrip(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if _, err := execRoot(t, "config", "set", "report.format", "markdown"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	out, err := execRoot(t, "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	if !strings.Contains(out, `format: "markdown"`) {
		t.Errorf("dump should reflect the set value:\n%s", out)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if _, err := execRoot(t, "config", "set", "report.color", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestConfigSetRejectsBadEnumValue(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if _, err := execRoot(t, "config", "set", "ui.color_scheme", "sepia"); err == nil {
		t.Fatal("expected error for invalid color scheme")
	}
}
