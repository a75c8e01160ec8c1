// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"

	"lcmds/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the command browser over s until the user quits. If the last
// save made in the browser failed, it returns a *ui.SaveError.
func RunTUI(s ui.CommandStore) error {
	m := ui.InitialModel(s)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	if err := m.SaveErr(); err != nil {
		return &ui.SaveError{Err: err}
	}
	return nil
}
