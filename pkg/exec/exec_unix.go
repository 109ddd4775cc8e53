//go:build unix

package exec

import (
	"os"
	"os/exec"
	"syscall"
)

// execFunc is swapped out in tests.
var execFunc = syscall.Exec

// Exec replaces the current process with the specified command.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- the hand-off command comes from the user's own command line.
	return execFunc(binary, argv, os.Environ())
}
