//go:build !windows

package probe

// shellArgs wraps command for the POSIX shell, matching how the probe
// list's pipes and redirections are written.
func shellArgs(command string) (string, []string) {
	return "/bin/sh", []string{"-c", command}
}
