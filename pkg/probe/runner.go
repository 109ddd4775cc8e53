package probe

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// Runner abstracts shell execution for testability.
type Runner interface {
	RunShell(ctx context.Context, command string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using the host shell.
type RealRunner struct{}

// RunShell runs command through the host shell and returns its output.
// A non-zero exit is returned as an *exec.ExitError.
func (r *RealRunner) RunShell(ctx context.Context, command string) (stdout, stderr string, err error) {
	name, args := shellArgs(command)
	// #nosec G204 -- probe commands are the built-in list or come from the user's own probe file.
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// StderrRunner forwards each command's stderr to Stderr after the command
// exits, so tools that print their version on stderr still show it.
type StderrRunner struct {
	Runner Runner // defaults to RealRunner
	Stderr io.Writer
}

// RunShell runs command with the wrapped Runner and copies its stderr.
func (r *StderrRunner) RunShell(ctx context.Context, command string) (stdout, stderr string, err error) {
	inner := r.Runner
	if inner == nil {
		inner = &RealRunner{}
	}
	stdout, stderr, err = inner.RunShell(ctx, command)
	if stderr != "" && r.Stderr != nil {
		_, _ = io.WriteString(r.Stderr, stderr)
	}
	return stdout, stderr, err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunShellFunc func(ctx context.Context, command string) (string, string, error)
}

// RunShell calls the mock function.
func (m *MockRunner) RunShell(ctx context.Context, command string) (stdout, stderr string, err error) {
	return m.RunShellFunc(ctx, command)
}
