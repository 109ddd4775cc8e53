//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates the hand-off is not available on Windows.
var ErrExecNotSupported = errors.New("exec hand-off not supported on Windows; run the command after verify-setup succeeds")

// Exec is not supported on Windows, which has no exec syscall that
// replaces the current process.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrExecNotSupported
}
