// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	tests := []struct {
		name   string
		scheme ColorScheme
		want   bool
	}{
		{"auto", ColorSchemeAuto, true},
		{"dark", ColorSchemeDark, true},
		{"light", ColorSchemeLight, true},
		{"empty", ColorScheme(""), false},
		{"unknown", ColorScheme("solarized"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := tt.scheme.IsValid()
			if valid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected 1 error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error %v should wrap ErrInvalidColorScheme", errs[0])
				}
			}
		})
	}
}

func TestReportFormatIsValid(t *testing.T) {
	tests := []struct {
		name   string
		format ReportFormat
		want   bool
	}{
		{"text", FormatText, true},
		{"plain", FormatPlain, true},
		{"json", FormatJSON, true},
		{"markdown", FormatMarkdown, true},
		{"empty", ReportFormat(""), false},
		{"unknown", ReportFormat("yaml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := tt.format.IsValid()
			if valid != tt.want {
				t.Errorf("ReportFormat(%q).IsValid() = %v, want %v", tt.format, valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected 1 error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidReportFormat) {
					t.Errorf("error %v should wrap ErrInvalidReportFormat", errs[0])
				}
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	valid, errs := cfg.IsValid()
	if !valid {
		t.Fatalf("DefaultConfig() should be valid, got errors: %v", errs)
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default color scheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.Report.Format != FormatText {
		t.Errorf("default report format = %q, want %q", cfg.Report.Format, FormatText)
	}
	if !cfg.Report.ProjectMetadata {
		t.Error("project metadata probe should be enabled by default")
	}
}

func TestConfigIsValidCollectsFieldErrors(t *testing.T) {
	cfg := &Config{
		UI:     UIConfig{ColorScheme: ColorScheme("neon")},
		Report: ReportConfig{Format: ReportFormat("xml")},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config with two invalid enums should not be valid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 wrapping error, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error %v should wrap ErrInvalidConfig", errs[0])
	}

	var invalidCfg *InvalidConfigError
	if !errors.As(errs[0], &invalidCfg) {
		t.Fatalf("error %v should be an *InvalidConfigError", errs[0])
	}
	if len(invalidCfg.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors (UI and report), got %d", len(invalidCfg.FieldErrors))
	}
}
