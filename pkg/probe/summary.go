package probe

import (
	"context"
	"log/slog"

	"github.com/vertti/verify-setup/pkg/check"
)

// Summary is the aggregate outcome of a run, in probe order.
type Summary struct {
	Results []check.Result
}

// Passed returns true if every probe passed. An empty run passes.
func (s Summary) Passed() bool {
	for _, r := range s.Results {
		if !r.OK() {
			return false
		}
	}
	return true
}

// Failed returns the failed results in probe order.
func (s Summary) Failed() []check.Result {
	var failed []check.Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// RunAll runs specs one after another in order. onResult, if non-nil, is
// called with each result before the next probe starts.
func RunAll(ctx context.Context, runner Runner, specs []Spec, onResult func(check.Result)) Summary {
	return RunAllWithLogger(ctx, runner, slog.Default(), specs, onResult)
}

// RunAllWithLogger is RunAll with an explicit logger for probe diagnostics.
func RunAllWithLogger(ctx context.Context, runner Runner, logger *slog.Logger, specs []Spec, onResult func(check.Result)) Summary {
	if logger == nil {
		logger = slog.Default()
	}
	summary := Summary{Results: make([]check.Result, 0, len(specs))}
	for _, spec := range specs {
		c := &Check{Spec: spec, Runner: runner, Logger: logger}
		result := c.Run(ctx)
		if onResult != nil {
			onResult(result)
		}
		summary.Results = append(summary.Results, result)
	}
	logger.Debug("probe run finished", "total", len(summary.Results), "failed", len(summary.Failed()))
	return summary
}
