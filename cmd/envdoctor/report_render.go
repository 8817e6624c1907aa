// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"envdoctor-cli/internal/config"
	"envdoctor-cli/internal/envinfo"

	"github.com/charmbracelet/glamour"
)

// renderReport renders a gathered report in the requested format. The text
// and plain forms keep the fixed report line order; json and markdown carry
// the full fact set including project metadata.
func renderReport(report *envinfo.Report, format config.ReportFormat) (string, error) {
	switch format {
	case config.FormatPlain:
		return renderPlain(report), nil
	case config.FormatJSON:
		return renderJSON(report)
	case config.FormatMarkdown:
		return renderMarkdown(report)
	case config.FormatText:
		return renderText(report), nil
	}
	// Callers validate the format before rendering.
	return "", fmt.Errorf("unknown report format: %s", format)
}

// renderPlain returns the fixed report lines without any styling. This is
// the stable machine-greppable form.
func renderPlain(report *envinfo.Report) string {
	return strings.Join(report.Lines(), "\n") + "\n"
}

// renderText returns the report lines with lipgloss styling applied. Line
// content is identical to the plain form; only colors are added.
func renderText(report *envinfo.Report) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(envinfo.Banner) + "\n")
	sb.WriteString(labeled(envinfo.LabelRuntimeVersion, report.RuntimeVersion) + "\n")
	sb.WriteString(labeled(envinfo.LabelWorkingDir, report.WorkingDir.String()) + "\n")
	sb.WriteString(labeled(envinfo.LabelPrefix, report.Prefix.String()) + "\n")
	if report.Isolated {
		sb.WriteString(SuccessStyle.Render(envinfo.IsolatedLine) + "\n")
	} else {
		sb.WriteString(WarningStyle.Render(envinfo.NotIsolatedLine) + "\n")
	}
	sb.WriteString(labeled(envinfo.LabelProjectRoot, report.ProjectRoot.String()) + "\n")
	sb.WriteString(SuccessStyle.Render(envinfo.Closing) + "\n")

	if report.Project != nil {
		sb.WriteString(labeled("Project: ", report.Project.Name) + "\n")
		if report.Project.RequiresPython != "" {
			sb.WriteString(labeled("Requires: ", report.Project.RequiresPython) + "\n")
		}
	}

	return sb.String()
}

// labeled styles a "Label: value" pair.
func labeled(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// renderJSON returns the report as an indented JSON document.
func renderJSON(report *envinfo.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data) + "\n", nil
}

// renderMarkdown builds a Markdown document from the report and renders it
// with glamour using the configured color scheme.
func renderMarkdown(report *envinfo.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("# " + envinfo.Banner + "\n\n")
	sb.WriteString("| Fact | Value |\n")
	sb.WriteString("|------|-------|\n")
	fmt.Fprintf(&sb, "| Runtime version | `%s` |\n", report.RuntimeVersion)
	fmt.Fprintf(&sb, "| Platform | `%s` |\n", report.Platform)
	fmt.Fprintf(&sb, "| Working directory | `%s` |\n", report.WorkingDir)
	fmt.Fprintf(&sb, "| Environment prefix | `%s` (%s) |\n", report.Prefix, report.PrefixSource)
	fmt.Fprintf(&sb, "| Executable | `%s` |\n", report.Executable)
	fmt.Fprintf(&sb, "| Project root | `%s` |\n", report.ProjectRoot)
	if report.Project != nil {
		fmt.Fprintf(&sb, "| Project | `%s` |\n", report.Project.Name)
		if report.Project.RequiresPython != "" {
			fmt.Fprintf(&sb, "| Requires | `%s` |\n", report.Project.RequiresPython)
		}
	}
	sb.WriteString("\n")
	if report.Isolated {
		sb.WriteString(envinfo.IsolatedLine + "\n\n")
	} else {
		sb.WriteString(envinfo.NotIsolatedLine + "\n\n")
	}
	sb.WriteString(envinfo.Closing + "\n")

	rendered, err := glamour.Render(sb.String(), colorScheme())
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return rendered, nil
}
