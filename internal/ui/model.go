// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive command browser started by
// "lcmds browse".
package ui

import (
	"fmt"

	"lcmds/internal/commands"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandStore is the slice of the store the browser needs.
type CommandStore interface {
	List() *commands.List
	Save() error
}

// item adapts a Command to the bubbles list.
type item struct{ cmd commands.Command }

func (i item) Title() string       { return i.cmd.Cmd }
func (i item) Description() string { return i.cmd.Desc }
func (i item) FilterValue() string { return i.cmd.Cmd }

// Model is the browser's Bubble Tea model.
type Model struct {
	store  CommandStore
	keymap KeyMap
	list   list.Model

	// copyToClipboard is swapped in tests.
	copyToClipboard func(string) error

	currentState  state
	pendingRemove string
	statusMsg     string
	statusIsError bool
	saveErr       error
	width         int
	height        int
}

// InitialModel builds a browser over the commands in s.
func InitialModel(s CommandStore) Model {
	items := make([]list.Item, 0, s.List().Len())
	for c := range s.List().All() {
		items = append(items, item{cmd: c})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Stored commands"
	l.SetStatusBarItemName("command", "commands")
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return Model{
		store:           s,
		keymap:          DefaultKeyMap,
		list:            l,
		copyToClipboard: clipboard.WriteAll,
		currentState:    stateCommandList,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-headerHeight-footerHeight, 1))
		return m, nil

	case commandCopiedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not copy to clipboard: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Copied %s to the clipboard.", msg.cmd), false)
		}
		return m, nil

	case commandRemovedMsg:
		// Every save writes the whole list, so only the latest result counts.
		m.saveErr = msg.err
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Removed %s but could not save: %v", msg.cmd, msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Command %s removed.", msg.cmd), false)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.currentState {
		case stateCommandList:
			return m.handleListKeys(msg)
		case stateCommandDetails:
			return m.handleDetailsKeys(msg)
		case stateRemoveConfirm:
			return m.handleRemoveConfirmKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// --- Update Handlers ---

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Enter):
		if _, ok := m.selected(); ok {
			m.currentState = stateCommandDetails
			m.statusMsg = ""
		}
		return m, nil
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keymap.Remove):
		m.askRemove()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Enter):
		m.currentState = stateCommandList
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keymap.Remove):
		m.askRemove()
	}
	return m, nil
}

func (m *Model) handleRemoveConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Yes):
		name := m.pendingRemove
		m.pendingRemove = ""
		m.currentState = stateCommandList
		if !m.store.List().Remove(name) {
			m.setStatus(fmt.Sprintf("%s has either not been stored or was previously removed", name), true)
			return m, nil
		}
		m.list.RemoveItem(m.list.Index())
		if n := len(m.list.Items()); n > 0 && m.list.Index() >= n {
			m.list.Select(n - 1)
		}
		return m, saveAfterRemoveCmd(m.store, name)
	case key.Matches(msg, m.keymap.No), key.Matches(msg, m.keymap.Quit):
		m.pendingRemove = ""
		m.currentState = stateCommandList
		m.statusMsg = ""
	}
	return m, nil
}

func (m *Model) selected() (commands.Command, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return commands.Command{}, false
	}
	return it.cmd, true
}

func (m *Model) copySelected() tea.Cmd {
	c, ok := m.selected()
	if !ok {
		return nil
	}
	return copyCommandCmd(m.copyToClipboard, c.Cmd)
}

func (m *Model) askRemove() {
	c, ok := m.selected()
	if !ok {
		return
	}
	m.pendingRemove = c.Cmd
	m.currentState = stateRemoveConfirm
	m.statusMsg = ""
}

// SaveErr returns the error from the most recent save, or nil if it succeeded
// or no save happened.
func (m *Model) SaveErr() error {
	return m.saveErr
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMsg = msg
	m.statusIsError = isError
}
