// Package exec hands the process over to a follow-up command once every
// prerequisite is present, e.g. "verify-setup -- npm run dev".
package exec

import "errors"

// ErrNoCommand is returned by Handoff when the command name is empty.
var ErrNoCommand = errors.New("no command to exec")

// Executor replaces the current process.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix, this uses syscall.Exec. On Windows, returns an error.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// SplitArgs separates args at the first "--". Everything before it stays
// with verify-setup; everything after it is the hand-off command.
func SplitArgs(args []string) (own, handoff []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// Handoff execs into argv if it is non-empty. It returns nil without doing
// anything when argv is empty.
func Handoff(e Executor, argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	if argv[0] == "" {
		return ErrNoCommand
	}
	return e.Exec(argv[0], argv[1:])
}
