// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"envdoctor-cli/internal/config"
	"envdoctor-cli/internal/envinfo"
	"envdoctor-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// reportFormat is the --format flag value for the report command.
	reportFormat string

	// reportCmd prints the environment report. It is also what the bare
	// root command runs.
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Print the environment report",
		Long: `Print a report about the current execution environment.

The report covers the runtime version, the current working directory,
the environment prefix, whether the process runs inside an isolated
environment (virtual env or conda), and the project root derived from
the location of the envdoctor binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, reportFormatOrDefault(reportFormat))
		},
	}
)

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (text, plain, json, markdown)")
}

// reportFormatOrDefault resolves the effective output format: the flag value
// when set, otherwise the configured default.
func reportFormatOrDefault(flagValue string) config.ReportFormat {
	if flagValue != "" {
		return config.ReportFormat(flagValue)
	}
	if loadedConfig != nil {
		return loadedConfig.Report.Format
	}
	return config.FormatText
}

// runReport gathers the environment facts and renders them in the requested
// format to the command's stdout.
func runReport(cmd *cobra.Command, format config.ReportFormat) error {
	if valid, errs := format.IsValid(); !valid {
		return errs[0]
	}

	opts := []envinfo.Option{
		envinfo.WithProjectMeta(projectMetaEnabled()),
	}
	if verbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "envdoctor",
			Level:  log.DebugLevel,
		})
		opts = append(opts, envinfo.WithLogger(logger))
	}

	report, err := envinfo.NewGatherer(opts...).Gather()
	if err != nil {
		renderGatherFailure(err)
		return &ExitError{Code: 1, Err: err}
	}

	rendered, err := renderReport(report, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)

	return nil
}

// projectMetaEnabled reports whether the pyproject.toml probe is enabled.
func projectMetaEnabled() bool {
	if loadedConfig == nil {
		return true
	}
	return loadedConfig.Report.ProjectMetadata
}

// renderGatherFailure prints an actionable diagnosis for a failed gathering
// pass to stderr. Rendering problems degrade to the bare error text.
func renderGatherFailure(err error) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.IssueId != 0 {
		if rendered, renderErr := issue.Get(ae.IssueId).Render(colorScheme()); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
	}
}

// colorScheme returns the configured color scheme name for glamour rendering.
func colorScheme() string {
	if loadedConfig == nil {
		return string(config.ColorSchemeAuto)
	}
	return string(loadedConfig.UI.ColorScheme)
}
