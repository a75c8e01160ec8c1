// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains the Bubble Tea commands that touch
// the outside world: the clipboard and the store file.

package ui

import (
	"lcmds/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

func copyCommandCmd(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		err := copyFn(text)
		if err != nil {
			logger.Warn("Clipboard write failed.", "error", err)
		}
		return commandCopiedMsg{cmd: text, err: err}
	}
}

func saveAfterRemoveCmd(s CommandStore, name string) tea.Cmd {
	return func() tea.Msg {
		err := s.Save()
		if err != nil {
			logger.Error("Saving after removal failed.", "cmd", name, "error", err)
		} else {
			logger.Info("Command removed.", "cmd", name, "count", s.List().Len())
		}
		return commandRemovedMsg{cmd: name, err: err}
	}
}
