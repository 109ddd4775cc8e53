package probe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vertti/verify-setup/pkg/check"
)

// ExecError describes why a probe command did not succeed.
type ExecError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

var _ check.Checker = (*Check)(nil)

// Check runs a single probe.
type Check struct {
	Spec   Spec
	Runner Runner       // defaults to RealRunner
	Logger *slog.Logger // defaults to slog.Default()
}

// Run executes the probe command and converts every outcome into a Result.
// It never panics: a missing command, a non-zero exit, a spawn error or a
// panicking Runner all yield StatusFail with empty output.
func (c *Check) Run(ctx context.Context) (result check.Result) {
	result = check.Result{Name: c.Spec.DisplayName}
	log := c.logger().With("probe", c.Spec.DisplayName, "command", c.Spec.Command)

	defer func() {
		if r := recover(); r != nil {
			log.Debug("probe runner panicked", "panic", r)
			result.Failf("probe %q panicked: %v", c.Spec.DisplayName, r)
		}
	}()

	if strings.TrimSpace(c.Spec.Command) == "" {
		log.Debug("probe skipped", "error", ErrEmptyCommand)
		return result.Fail(ErrEmptyCommand)
	}

	runner := c.Runner
	if runner == nil {
		runner = &RealRunner{}
	}

	stdout, stderr, err := runner.RunShell(ctx, c.Spec.Command)
	if err != nil {
		log.Debug("probe failed", "error", err, "stderr", strings.TrimSpace(stderr))
		return result.Fail(&ExecError{Command: c.Spec.Command, Stderr: stderr, Err: err})
	}

	result.Pass(stdout)
	log.Debug("probe passed", "output", result.Output)
	return result
}

func (c *Check) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
