// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sandshell.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"sandshell/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "sandshell",
		Short: "A sandboxed shell on an in-memory filesystem",
		Long: TitleStyle.Render("sandshell") + SubtitleStyle.Render(" - a sandboxed shell on an in-memory filesystem") + `

sandshell runs POSIX-style command lines against a virtual filesystem
that lives entirely in memory. Nothing it executes can read or write
the host; snapshots move state in and out explicitly.

` + SubtitleStyle.Render("Examples:") + `
  sandshell run -c 'echo hi > /a.txt ; cat /a.txt'
  sandshell run script.sh    Run a host-side script in the sandbox
  sandshell repl             Interactive session
  sandshell docs grep        Show documentation for a builtin
  sandshell serve            Expose the REPL over SSH`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sandshell/config.cue)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command invocation.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}
