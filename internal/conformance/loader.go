package conformance

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseCase parses a case from YAML bytes.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Case) validate() error {
	switch {
	case c.ID == "":
		return &LoadError{Message: "case ID is required"}
	case c.Input.Hex == "" && c.Input.Values == nil:
		return &LoadError{Message: c.ID + ": input needs hex or values"}
	case c.Input.Hex != "" && c.Input.Values != nil:
		return &LoadError{Message: c.ID + ": input has both hex and values"}
	case c.Input.Truncate != nil && *c.Input.Truncate < 0:
		return &LoadError{Message: c.ID + ": truncate must not be negative"}
	case c.Expect.Exit != ExitSuccess && c.Expect.Exit != ExitDecodeFailed:
		return &LoadError{Message: c.ID + ": expect.exit must be 0 or 4"}
	case c.Expect.Exit == ExitDecodeFailed && c.Expect.JSON != "":
		return &LoadError{Message: c.ID + ": a failing case cannot expect JSON"}
	case c.Expect.Exit == ExitSuccess && c.Expect.JSON == "":
		return &LoadError{Message: c.ID + ": a passing case needs expect.json"}
	case c.Expect.Exit == ExitSuccess && c.Expect.ErrorField != "":
		return &LoadError{Message: c.ID + ": a passing case cannot expect an error field"}
	}
	return nil
}

// LoadCase loads a case from a file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	c, err := ParseCase(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	c.File = path
	return c, nil
}

// LoadDirectory loads all cases from a directory and its subdirectories,
// sorted by ID. Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Case, error) {
	var cases []*Case

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		c, err := LoadCase(path)
		if err != nil {
			return err
		}
		cases = append(cases, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(cases, func(a, b *Case) int {
		return strings.Compare(a.ID, b.ID)
	})
	for i := 1; i < len(cases); i++ {
		if cases[i].ID == cases[i-1].ID {
			return nil, &LoadError{File: cases[i].File, Message: "duplicate case ID " + cases[i].ID}
		}
	}
	return cases, nil
}
