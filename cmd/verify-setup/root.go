package main

import (
	"github.com/spf13/cobra"
)

var (
	probeFile  string
	jsonOutput bool
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "verify-setup [-- command [args...]]",
	Short: "Check that the development prerequisites are installed",
	Long: `verify-setup runs each tool's version command (Node.js, npm, Python, pip,
Java, Git, Docker) and reports which ones are installed.

A .verify-setup.yaml file in the current directory or a parent replaces the
built-in tool list. A command after "--" is exec'd once every tool is present.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

func init() {
	rootCmd.Flags().StringVar(&probeFile, "file", "", "path to probe file (default: search up for .verify-setup.yaml)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print a JSON report instead of colored text")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log probe diagnostics to stderr")
}
