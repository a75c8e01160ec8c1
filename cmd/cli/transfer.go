// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"lcmds/internal/logger"
	"lcmds/internal/transfer"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored command to stdout",
		Long: `Writes the whole command list to stdout.

Formats:
  toml  the store file format (default)
  yaml  a YAML document with a commands sequence
  json  a JSON object with a commands array
  sh    a shell script of 'lcmds add' lines that recreates the list`,
		Example: "  lcmds export > backup.toml\n  lcmds export -f sh > restore.sh",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := transfer.ParseFormat(format)
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			logger.Debug("Exporting commands.", "format", string(f), "count", s.List().Len())
			return transfer.Export(cmd.OutOrStdout(), s.List(), f)
		},
	}

	names := make([]string, len(transfer.Formats))
	for i, f := range transfer.Formats {
		names[i] = string(f)
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatTOML),
		fmt.Sprintf("output format (%s)", strings.Join(names, ", ")))
	_ = exportCmd.RegisterFlagCompletionFunc("format", formatCompletionFunc)

	return exportCmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add every command from a TOML, YAML or JSON file",
		Long: `Reads commands from a file and adds the ones not stored yet.
The format is chosen from the extension: .toml, .yaml/.yml or .json.
Commands that already exist keep their current description.`,
		Example:           "  lcmds import backup.toml",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: importFileCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			incoming, err := transfer.ReadFile(args[0])
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res := transfer.Merge(s.List(), incoming)
			for _, name := range res.Skipped {
				printWarn(out, "%s already exists, skipped.", name)
			}
			if res.Invalid > 0 {
				printWarn(out, "%d invalid entries skipped.", res.Invalid)
			}

			if len(res.Added) == 0 {
				printWarn(out, "Nothing new to import.")
				return nil
			}

			if err := saveStore(s); err != nil {
				return saveFailed(err)
			}
			logger.Info("Commands imported.", "file", args[0], "added", len(res.Added), "skipped", len(res.Skipped))
			printSuccess(out, "Imported %d of %d commands.", len(res.Added), incoming.Len())
			return nil
		},
	}
}
