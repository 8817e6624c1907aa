// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{"success", 0, false},
		{"generic failure", 1, false},
		{"max valid", 255, false},
		{"negative", -1, true},
		{"above range", 256, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("expected error to wrap ErrInvalidExitCode, got %v", err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	if !ExitCode(0).IsSuccess() {
		t.Error("expected exit code 0 to be success")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("expected exit code 1 to not be success")
	}
}

func TestExitCodeString(t *testing.T) {
	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("String() = %q, want %q", got, "42")
	}
}
