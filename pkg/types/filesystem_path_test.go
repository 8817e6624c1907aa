// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPathIsValid(t *testing.T) {
	tests := []struct {
		name  string
		path  FilesystemPath
		valid bool
	}{
		{"absolute path", "/home/user/project", true},
		{"relative path", "./app", true},
		{"single dot", ".", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"tab only", "\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := tt.path.IsValid()
			if valid != tt.valid {
				t.Errorf("IsValid() = %v, want %v", valid, tt.valid)
			}
			if !tt.valid {
				if len(errs) != 1 {
					t.Fatalf("expected 1 error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidFilesystemPath) {
					t.Errorf("expected error to wrap ErrInvalidFilesystemPath, got %v", errs[0])
				}
			}
		})
	}
}

func TestFilesystemPathString(t *testing.T) {
	p := FilesystemPath("/tmp/x")
	if p.String() != "/tmp/x" {
		t.Errorf("String() = %q, want %q", p.String(), "/tmp/x")
	}
}
