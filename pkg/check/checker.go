package check

import "context"

// Checker is implemented by anything that can be probed for presence.
// Run must not return an error or panic: every failure is reported
// through a Result with StatusFail.
//
// Implementations:
//   - probe.Check: runs a shell command and captures its version output
type Checker interface {
	Run(ctx context.Context) Result
}
