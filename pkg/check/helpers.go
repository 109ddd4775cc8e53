package check

import (
	"fmt"
	"strings"
)

// Pass marks the result as passed with the given raw output, trimmed.
func (r *Result) Pass(output string) Result {
	r.Status = StatusOK
	r.Output = strings.TrimSpace(output)
	r.Err = nil
	return *r
}

// Fail marks the result as failed. Output is always cleared.
func (r *Result) Fail(err error) Result {
	r.Status = StatusFail
	r.Output = ""
	r.Err = err
	return *r
}

// Failf marks the result as failed with a formatted error.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Errorf(format, args...))
}
