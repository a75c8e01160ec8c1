// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"

	"lcmds/cmd/tui"
	"lcmds/internal/ui"

	"github.com/spf13/cobra"
)

// runBrowser is swapped in tests, which have no terminal.
var runBrowser = tui.RunTUI

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse stored commands interactively",
		Long: `Opens a full-screen list of the stored commands.

  enter  show the full description
  c      copy the command to the clipboard
  d      remove the command (asks for confirmation)
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			err = runBrowser(s)
			var saveErr *ui.SaveError
			if errors.As(err, &saveErr) {
				return saveFailed(saveErr.Err)
			}
			return err
		},
	}
}
