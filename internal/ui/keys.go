// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the command browser.
// Cursor movement inside the list is handled by the bubbles list itself.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browser.
type KeyMap struct {
	Up    key.Binding // Shown in help; movement is delegated to the list
	Down  key.Binding // Shown in help; movement is delegated to the list
	Quit  key.Binding // Exit the browser
	Enter key.Binding // Show details of the selected command
	Back  key.Binding // Return to the list

	Copy   key.Binding // Copy the selected command to the clipboard
	Remove key.Binding // Remove the selected command (asks first)
	Yes    key.Binding // Confirm in prompts
	No     key.Binding // Deny in prompts
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc/b", "back"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "remove"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "no"),
	),
}
