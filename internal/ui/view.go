// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var body string
	var help []key.Binding

	switch m.currentState {
	case stateCommandDetails:
		body = m.renderDetails()
		help = []key.Binding{m.keymap.Back, m.keymap.Copy, m.keymap.Remove, m.keymap.Quit}
	case stateRemoveConfirm:
		body = m.renderRemoveConfirm()
		help = []key.Binding{m.keymap.Yes, m.keymap.No}
	default:
		if len(m.list.Items()) == 0 {
			body = errorStyle.Render("No commands stored yet!") + "\n\n" +
				footerDescStyle.Render(`Add one with: lcmds add -c "<cmd>" -d "<description>"`)
		} else {
			body = m.list.View()
		}
		help = []key.Binding{m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Copy, m.keymap.Remove, m.keymap.Quit}
	}

	header := titleStyle.Render("lcmds") + "\n"
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter(help))
}

func (m *Model) renderDetails() string {
	c, ok := m.selected()
	if !ok {
		return ""
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("command:"), commandStyle.Render(c.Cmd))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("desc:   "), c.Desc)

	style := detailsBorderStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(b.String())
}

func (m *Model) renderRemoveConfirm() string {
	return warnStyle.Render(fmt.Sprintf("Remove %s? It cannot be retrieved later unless added again.", commandStyle.Render(m.pendingRemove))) +
		"\n\n" + footerDescStyle.Render("[y] yes  [n] no")
}

// renderFooter draws the status line and a "key: desc | key: desc" help line.
func (m *Model) renderFooter(bindings []key.Binding) string {
	status := ""
	if m.statusMsg != "" {
		if m.statusIsError {
			status = errorStyle.Render(m.statusMsg)
		} else {
			status = successStyle.Render(m.statusMsg)
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerDescStyle.Render(": "+h.Desc))
	}
	helpLine := strings.Join(parts, footerSeparatorStyle.Render(" | "))
	if m.width > 0 {
		helpLine = lipgloss.NewStyle().Width(m.width).Render(helpLine)
	}

	return "\n" + status + "\n" + helpLine
}
