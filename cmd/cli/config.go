// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"lcmds/internal/config"
	"lcmds/internal/logger"
	"lcmds/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dimColor is used for less important/secondary text in the CLI output
var dimColor = color.New(color.Faint)

// newConfigCmd is the parent command for all settings subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lcmds settings",
		Long: `Provides subcommands to manage lcmds settings: output color and log level.
Settings live in ~/.config/lcmds/config.yaml. They never change where commands
are stored; that is always commands.toml next to the executable.`,
	}

	configCmd.AddCommand(newConfigPathCmd())
	configCmd.AddCommand(newConfigSetCmd("set-color", "<auto|always|never>",
		"Set when CLI output is colored",
		config.ColorModes, config.ValidColorMode,
		func(cfg *config.Config, v string) { cfg.Color = v }))
	configCmd.AddCommand(newConfigGetCmd("get-color",
		"Show the configured color mode",
		func(cfg config.Config) (string, bool) { return cfg.ColorMode(), cfg.Color == "" }))
	configCmd.AddCommand(newConfigSetCmd("set-log-level", "<debug|info|warn|error>",
		"Set the minimum level written to the log file",
		config.LogLevels, config.ValidLogLevel,
		func(cfg *config.Config, v string) { cfg.LogLevel = v }))
	configCmd.AddCommand(newConfigGetCmd("get-log-level",
		"Show the configured log level",
		func(cfg config.Config) (string, bool) { return cfg.Level(), cfg.LogLevel == "" }))

	return configCmd
}

func newConfigSetCmd(use, argHint, short string, allowed []string, valid func(string) bool, apply func(*config.Config, string)) *cobra.Command {
	return &cobra.Command{
		Use:       use + " " + argHint,
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: allowed,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.ToLower(args[0])
			if !valid(value) {
				return fmt.Errorf("value must be one of: %s", strings.Join(allowed, ", "))
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}

			apply(&cfg, value)

			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("error saving configuration: %w", err)
			}

			logger.Info("Setting changed.", "setting", use, "value", value)
			printSuccess(cmd.OutOrStdout(), "Set to: %s", value)
			return nil
		},
	}
}

func newConfigGetCmd(use, short string, read func(config.Config) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}

			value, isDefault := read(cfg)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, identifierColor.Sprint(value))
			if isDefault {
				fmt.Fprint(out, dimColor.Sprint(" (default)"))
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show where settings, logs and commands are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			printPath := func(label string, path string, err error) {
				if err != nil {
					fmt.Fprintf(out, "%-10s %s\n", label, errorColor.Sprintf("unavailable: %v", err))
					return
				}
				fmt.Fprintf(out, "%-10s %s\n", label, identifierColor.Sprint(path))
			}

			storePath, err := resolveStorePath()
			printPath("Commands:", storePath, err)
			configPath, err := config.DefaultConfigPath()
			printPath("Settings:", configPath, err)
			logPath, err := logger.GetLogFilePath()
			printPath("Log:", logPath, err)

			fmt.Fprintln(out, dimColor.Sprintf("\nThe commands file always sits next to the executable (%s).", store.FileName))
			return nil
		},
	}
}
