// Package probefile loads a project's probe list from .verify-setup.yaml.
package probefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vertti/verify-setup/pkg/probe"
)

// FileName is the probe file searched for during discovery.
const FileName = ".verify-setup.yaml"

// ErrNotFound is returned by FindFile when discovery finds no probe file.
var ErrNotFound = errors.New(FileName + " not found")

// File is the parsed probe file.
type File struct {
	Title  string
	Probes []probe.Spec
}

type rawFile struct {
	Title  string     `yaml:"title"`
	Probes []rawProbe `yaml:"probes"`
}

type rawProbe struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// FindFile returns explicitPath if set and present. Otherwise it searches
// startDir and its parents, stopping at the home directory, a directory
// containing .git, or the filesystem root. An unknown home directory only
// removes that stopping point.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("probe file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// ParseFile reads and validates a probe file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the user's probe file
	if err != nil {
		return nil, fmt.Errorf("failed to read probe file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates probe file contents.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(raw.Probes) == 0 {
		return nil, errors.New("no probes defined")
	}

	f := &File{Title: raw.Title, Probes: make([]probe.Spec, 0, len(raw.Probes))}
	for i, p := range raw.Probes {
		spec := probe.Spec{Command: p.Command, DisplayName: p.Name}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("probes[%d]: %w", i, err)
		}
		f.Probes = append(f.Probes, spec)
	}
	return f, nil
}
