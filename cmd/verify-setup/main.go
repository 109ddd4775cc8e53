package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	vexec "github.com/vertti/verify-setup/pkg/exec"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stderr, &vexec.RealExecutor{})
	stop()
	os.Exit(code)
}

// run executes the root command with args (including argv[0]) and returns
// the process exit code. A command after "--" is exec'd once every probe
// passed.
func run(ctx context.Context, args []string, stderr io.Writer, executor vexec.Executor) int {
	own, handoff := vexec.SplitArgs(args)
	if len(own) > 0 {
		own = own[1:]
	}
	rootCmd.SetArgs(own)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			_, _ = fmt.Fprintf(stderr, "verify-setup: %v\n", err)
		}
		return 1
	}

	if err := vexec.Handoff(executor, handoff); err != nil {
		_, _ = fmt.Fprintf(stderr, "exec: %v\n", err)
		return 1
	}
	return 0
}
