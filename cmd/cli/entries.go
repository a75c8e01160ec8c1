// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"

	"lcmds/internal/commands"
	"lcmds/internal/logger"

	"github.com/spf13/cobra"
)

const notStoredMsg = "%s has either not been stored or was previously removed"

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the currently stored commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			list := s.List()
			if list.IsEmpty() {
				printError(out, "No commands stored yet!")
				return nil
			}

			fmt.Fprintln(out, "Commands:")
			for c := range list.All() {
				fmt.Fprintf(out, "%s\n\n", c.Render())
			}
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "get <cmd>",
		Short:             "Show a stored command by its exact text",
		Example:           "  lcmds get 'ls -la'",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: storedNameCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			c, ok := s.List().Find(name)
			if !ok {
				printError(out, notStoredMsg, name)
				return nil
			}
			fmt.Fprintln(out, c.Render())
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var name, desc string

	addCmd := &cobra.Command{
		Use:     "add -c <cmd> -d <desc>",
		Short:   "Add a command to be referenced later",
		Example: `  lcmds add -c "du -sh * | sort -h" -d "biggest things in this directory"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entry := commands.New(name, desc)
			if err := entry.Validate(); err != nil {
				switch {
				case errors.Is(err, commands.ErrEmptyName):
					printError(out, "The command to store must not be empty.")
					return nil
				case errors.Is(err, commands.ErrInvalidText):
					printError(out, "The command and description must be valid UTF-8.")
					return nil
				}
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			list := s.List()
			if list.Contains(entry) {
				printError(out, "This command already exists!")
				return nil
			}

			list.Push(entry)
			if err := saveStore(s); err != nil {
				return saveFailed(err)
			}
			logger.Info("Command added.", "cmd", entry.Cmd, "count", list.Len())
			printSuccess(out, "%s added.", entry.Cmd)
			return nil
		},
	}

	addCmd.Flags().StringVarP(&name, "cmd", "c", "", "command to be stored")
	addCmd.Flags().StringVarP(&desc, "desc", "d", "", "description of the command, whatever helps you")
	_ = addCmd.MarkFlagRequired("cmd")
	_ = addCmd.MarkFlagRequired("desc")

	return addCmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <cmd>",
		Aliases:           []string{"rm"},
		Short:             "Remove a command. It cannot be retrieved later unless added again",
		Example:           "  lcmds remove 'ls -la'",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: storedNameCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			list := s.List()
			if !list.Remove(name) {
				printError(out, notStoredMsg, name)
				return nil
			}

			if err := saveStore(s); err != nil {
				return saveFailed(err)
			}
			logger.Info("Command removed.", "cmd", name, "count", list.Len())
			printSuccess(out, "Command %s removed.", name)
			return nil
		},
	}
}
