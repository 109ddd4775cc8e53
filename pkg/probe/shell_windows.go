//go:build windows

package probe

// shellArgs wraps command for cmd.exe. Pipelines that rely on POSIX tools
// (such as the Java probe's "| head -1") only work with those tools on PATH.
func shellArgs(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
