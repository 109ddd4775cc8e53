package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/verify-setup/pkg/logging"
	"github.com/vertti/verify-setup/pkg/output"
	"github.com/vertti/verify-setup/pkg/probe"
	"github.com/vertti/verify-setup/pkg/probefile"
	"github.com/vertti/verify-setup/pkg/report"
)

// ErrCheckFailed is returned when one or more probes fail.
var ErrCheckFailed = errors.New("check failed")

// newRunner is replaced in tests.
var newRunner = func() probe.Runner { return &probe.RealRunner{} }

func runVerify(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	title, specs, err := loadProbes(logger)
	if err != nil {
		return err
	}

	runner := &probe.StderrRunner{Runner: newRunner(), Stderr: cmd.ErrOrStderr()}

	var summary probe.Summary
	if jsonOutput {
		summary = probe.RunAllWithLogger(cmd.Context(), runner, logger, specs, nil)
		rep, err := report.Build(title, specs, summary)
		if err != nil {
			return err
		}
		if err := report.Write(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	} else {
		p := output.New(cmd.OutOrStdout(), palette())
		p.Header(title)
		summary = probe.RunAllWithLogger(cmd.Context(), runner, logger, specs, p.PrintResult)
		p.Separator()
		p.Summary(summary.Passed())
	}

	if !summary.Passed() {
		for _, r := range summary.Failed() {
			logger.Debug("missing prerequisite", "probe", r.Name, "error", r.Err)
		}
		return ErrCheckFailed
	}
	return nil
}

// loadProbes returns the probes to run. An explicit --file must load;
// discovery problems of any kind fall back to the built-in list.
func loadProbes(logger *slog.Logger) (string, []probe.Spec, error) {
	if probeFile != "" {
		path, err := probefile.FindFile("", probeFile)
		if err != nil {
			return "", nil, err
		}
		f, err := probefile.ParseFile(path)
		if err != nil {
			return "", nil, err
		}
		logger.Debug("loaded probe file", "path", path, "probes", len(f.Probes))
		return titleOf(f), f.Probes, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Debug("no working directory, using built-in probes", "error", err)
		return output.DefaultTitle, probe.Defaults(), nil
	}

	path, err := probefile.FindFile(wd, "")
	if err != nil {
		if errors.Is(err, probefile.ErrNotFound) {
			logger.Debug("no probe file found, using built-in probes", "dir", wd)
		} else {
			logger.Debug("probe file discovery failed, using built-in probes", "dir", wd, "error", err)
		}
		return output.DefaultTitle, probe.Defaults(), nil
	}

	f, err := probefile.ParseFile(path)
	if err != nil {
		logger.Warn("ignoring invalid probe file, using built-in probes", "error", err)
		return output.DefaultTitle, probe.Defaults(), nil
	}
	logger.Debug("loaded probe file", "path", path, "probes", len(f.Probes))
	return titleOf(f), f.Probes, nil
}

func titleOf(f *probefile.File) string {
	if f.Title == "" {
		return output.DefaultTitle
	}
	return f.Title
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	cfg.Output = cmd.ErrOrStderr()
	return logging.New(cfg)
}

func palette() output.Palette {
	if noColor {
		return output.Palette{}
	}
	return output.DetectPalette()
}
