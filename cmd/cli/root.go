// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lcmds/internal/config"
	"lcmds/internal/logger"
	"lcmds/internal/store"

	"github.com/spf13/cobra"
)

// Seams for tests: where commands.toml lives and how it is written.
var (
	resolveStorePath = store.DefaultPath
	saveStore        = (*store.Store).Save
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lcmds",
		Short: "Remember shell commands and what they do",
		Long: `A small reference book for shell commands.

Store a command with a description, list everything you saved, look one up
by its exact text, or remove it. Commands are kept in commands.toml next to
the lcmds executable.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				// Settings are cosmetic; fall back to defaults.
				printWarn(cmd.ErrOrStderr(), "Ignoring settings: %v", err)
				cfg = config.Config{}
			}
			cfg.ApplyColor()

			level, err := logger.ParseLevel(cfg.Level())
			if err != nil {
				printWarn(cmd.ErrOrStderr(), "Ignoring log level: %v", err)
			}
			logger.InitLogger(level, verbose)
			logger.Debug("Command invoked.", "command", cmd.CommandPath(), "args", args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printError(cmd.ErrOrStderr(), "No commands passed. Please use --help for help.")
			return &ExitError{Code: ExitFailure}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also write logs to stderr")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			logger.Error("Command failed.", "error", exitErr.Err, "code", exitErr.Code)
			printError(stderr, "Error: %v", exitErr.Err)
		}
		return exitErr.Code
	}

	logger.Error("Command failed.", "error", err)
	printError(stderr, "Error: %v", err)
	return ExitFailure
}

func RunCLI() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// openStore resolves, creates if needed and loads the store. Any failure here
// leaves nothing useful to do, so callers return the error as fatal.
func openStore() (*store.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	return store.Open(path)
}
