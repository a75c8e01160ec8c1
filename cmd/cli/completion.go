// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"os"
	"strings"

	"lcmds/internal/commands"
	"lcmds/internal/store"
	"lcmds/internal/transfer"

	"github.com/spf13/cobra"
)

// storedCommandsForCompletion loads the store without creating it; a missing
// file simply has nothing to suggest.
func storedCommandsForCompletion() (*commands.List, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, err
	}
	list, err := store.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return commands.NewList(), nil
		}
		return nil, err
	}
	return list, nil
}

// storedNameCompletionFunc completes the first argument with stored command names.
func storedNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	list, err := storedCommandsForCompletion()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	suggestions := []string{}
	for c := range list.All() {
		if strings.HasPrefix(c.Cmd, toComplete) {
			suggestions = append(suggestions, c.Cmd)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// formatCompletionFunc completes export --format values.
func formatCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	suggestions := []string{}
	for _, f := range transfer.Formats {
		if strings.HasPrefix(string(f), toComplete) {
			suggestions = append(suggestions, string(f))
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// importFileCompletionFunc restricts file completion to importable extensions.
func importFileCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml", "yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
