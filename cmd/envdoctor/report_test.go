// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"envdoctor-cli/internal/config"
	"envdoctor-cli/internal/envinfo"
	"envdoctor-cli/pkg/types"
)

func sampleReport() *envinfo.Report {
	return &envinfo.Report{
		RuntimeVersion: "go1.25.0",
		Platform:       "linux/amd64",
		WorkingDir:     types.FilesystemPath("/home/user/project"),
		Prefix:         types.FilesystemPath("/home/user/project/.venv"),
		PrefixSource:   envinfo.PrefixSourceVirtualEnv,
		Isolated:       true,
		Executable:     types.FilesystemPath("/home/user/project/bin/envdoctor"),
		ProjectRoot:    types.FilesystemPath("/home/user/project/bin"),
		Marker:         envinfo.SuccessMarker,
	}
}

func TestRenderPlainKeepsLineOrder(t *testing.T) {
	out := renderPlain(sampleReport())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("plain report has %d lines, want 7:\n%s", len(lines), out)
	}
	if lines[0] != envinfo.Banner {
		t.Errorf("line 1 = %q, want banner", lines[0])
	}
	if !strings.HasPrefix(lines[1], envinfo.LabelRuntimeVersion) {
		t.Errorf("line 2 = %q, want runtime version", lines[1])
	}
	if lines[4] != envinfo.IsolatedLine {
		t.Errorf("line 5 = %q, want isolation verdict", lines[4])
	}
	if lines[6] != envinfo.Closing {
		t.Errorf("line 7 = %q, want closing line", lines[6])
	}
}

func TestRenderPlainNotIsolated(t *testing.T) {
	report := sampleReport()
	report.Isolated = false

	out := renderPlain(report)
	if !strings.Contains(out, envinfo.NotIsolatedLine) {
		t.Error("plain report should contain the not-isolated verdict")
	}
	if strings.Contains(out, envinfo.IsolatedLine) {
		t.Error("plain report must never contain both verdict lines")
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	out, err := renderJSON(sampleReport())
	if err != nil {
		t.Fatalf("renderJSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("report JSON does not parse: %v", err)
	}
	if decoded["marker"] != envinfo.SuccessMarker {
		t.Errorf("marker = %v, want %q", decoded["marker"], envinfo.SuccessMarker)
	}
	if decoded["isolated"] != true {
		t.Errorf("isolated = %v, want true", decoded["isolated"])
	}
	if decoded["prefix_source"] != string(envinfo.PrefixSourceVirtualEnv) {
		t.Errorf("prefix_source = %v, want %q", decoded["prefix_source"], envinfo.PrefixSourceVirtualEnv)
	}
}

func TestRenderReportRejectsUnknownFormat(t *testing.T) {
	_, err := renderReport(sampleReport(), config.ReportFormat("yaml"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestReportFormatOrDefault(t *testing.T) {
	origConfig := loadedConfig
	t.Cleanup(func() { loadedConfig = origConfig })

	loadedConfig = config.DefaultConfig()
	loadedConfig.Report.Format = config.FormatJSON

	if got := reportFormatOrDefault(""); got != config.FormatJSON {
		t.Errorf("default format = %q, want configured %q", got, config.FormatJSON)
	}
	if got := reportFormatOrDefault("plain"); got != config.FormatPlain {
		t.Errorf("flag format = %q, want %q", got, config.FormatPlain)
	}

	loadedConfig = nil
	if got := reportFormatOrDefault(""); got != config.FormatText {
		t.Errorf("fallback format = %q, want %q", got, config.FormatText)
	}
}

func TestReportCommandPlainOutput(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	origFormat := reportFormat
	t.Cleanup(func() { reportFormat = origFormat })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"report", "--format", "plain"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("report command error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, envinfo.Banner) {
		t.Errorf("output missing banner:\n%s", out)
	}
	if !strings.Contains(out, envinfo.Closing) {
		t.Errorf("output missing closing line:\n%s", out)
	}
	if !strings.Contains(out, envinfo.LabelProjectRoot) {
		t.Errorf("output missing project root line:\n%s", out)
	}
}

func TestReportCommandRejectsBadFormat(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	origFormat := reportFormat
	t.Cleanup(func() { reportFormat = origFormat })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"report", "--format", "carrier-pigeon"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for invalid format flag")
	}
}
