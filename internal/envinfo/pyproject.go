// SPDX-License-Identifier: MPL-2.0

package envinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"envdoctor-cli/pkg/fspath"
	"envdoctor-cli/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectName is the standard Python project manifest file name.
const pyprojectName = "pyproject.toml"

// ProjectMeta holds the subset of pyproject.toml the report cares about.
type ProjectMeta struct {
	// Name is the [project] name.
	Name string `json:"name"`
	// RequiresPython is the [project] requires-python constraint, if any.
	RequiresPython string `json:"requires_python,omitempty"`
}

// pyproject mirrors the TOML layout for decoding.
type pyproject struct {
	Project struct {
		Name           string `toml:"name"`
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

// readProjectMeta reads pyproject.toml from the given directory.
// A missing file returns (nil, nil): the manifest is optional.
func readProjectMeta(dir types.FilesystemPath) (*ProjectMeta, error) {
	path := fspath.JoinStr(dir, pyprojectName)

	data, err := os.ReadFile(path.String())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var manifest pyproject
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if manifest.Project.Name == "" {
		// A pyproject.toml without [project].name (e.g., tool-config-only
		// files) carries nothing worth reporting.
		return nil, nil
	}

	return &ProjectMeta{
		Name:           manifest.Project.Name,
		RequiresPython: manifest.Project.RequiresPython,
	}, nil
}
