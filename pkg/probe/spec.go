// Package probe runs prerequisite probes: shell commands whose success
// means a tool is installed and whose output is the tool's version.
package probe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCommand is reported for a probe without a command.
var ErrEmptyCommand = errors.New("empty probe command")

// Spec describes one probe.
type Spec struct {
	Command     string // shell command, e.g. "node --version"
	DisplayName string // e.g. "Node.js"
}

// defaults is the built-in probe list, in print order.
var defaults = []Spec{
	{Command: "node --version", DisplayName: "Node.js"},
	{Command: "npm --version", DisplayName: "npm"},
	{Command: "python --version", DisplayName: "Python"},
	{Command: "python -m pip --version", DisplayName: "pip"},
	{Command: "java -version 2>&1 | head -1", DisplayName: "Java"},
	{Command: "git --version", DisplayName: "Git"},
	{Command: "docker --version", DisplayName: "Docker"},
}

// Defaults returns a copy of the built-in probe list.
func Defaults() []Spec {
	out := make([]Spec, len(defaults))
	copy(out, defaults)
	return out
}

// Validate reports whether the spec can be run.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.DisplayName) == "" {
		return fmt.Errorf("probe %q: name is required", s.Command)
	}
	if strings.TrimSpace(s.Command) == "" {
		return fmt.Errorf("probe %q: %w", s.DisplayName, ErrEmptyCommand)
	}
	return nil
}
