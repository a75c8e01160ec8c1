// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"testing"

	"lcmds/internal/commands"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	list    *commands.List
	saves   int
	saveErr error
}

func (f *fakeStore) List() *commands.List { return f.list }

func (f *fakeStore) Save() error {
	f.saves++
	return f.saveErr
}

func newFakeStore(names ...string) *fakeStore {
	l := commands.NewList()
	for _, n := range names {
		l.Push(commands.New(n, "desc of "+n))
	}
	return &fakeStore{list: l}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, s CommandStore) *Model {
	t.Helper()
	m := InitialModel(s)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

// exec runs cmd and feeds its message back into the model.
func exec(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func TestInitialModelListsInInsertionOrder(t *testing.T) {
	m := newTestModel(t, newFakeStore("ls", "pwd", "df -h"))

	items := m.list.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "ls", items[0].(item).Title())
	assert.Equal(t, "df -h", items[2].(item).Title())
	assert.Contains(t, m.View(), "ls")
}

func TestEmptyStoreView(t *testing.T) {
	m := newTestModel(t, newFakeStore())
	assert.Contains(t, m.View(), "No commands stored yet!")

	// Actions on an empty list are no-ops.
	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
	m.Update(runes("d"))
	assert.Equal(t, stateCommandList, m.currentState)
}

func TestEnterShowsDetailsAndBack(t *testing.T) {
	m := newTestModel(t, newFakeStore("ls", "pwd"))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateCommandDetails, m.currentState)
	assert.Contains(t, m.View(), "desc of pwd")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateCommandList, m.currentState)
}

func TestCopySelected(t *testing.T) {
	m := newTestModel(t, newFakeStore("ls", "git status"))
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m.Update(runes("j"))
	_, cmd := m.Update(runes("c"))
	exec(t, m, cmd)

	assert.Equal(t, "git status", copied)
	assert.Contains(t, m.statusMsg, "Copied git status")
	assert.False(t, m.statusIsError)
}

func TestCopyFailureIsReported(t *testing.T) {
	m := newTestModel(t, newFakeStore("ls"))
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	_, cmd := m.Update(runes("c"))
	exec(t, m, cmd)

	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMsg, "no clipboard")
}

func TestRemoveConfirmed(t *testing.T) {
	s := newFakeStore("ls", "pwd", "df -h")
	m := newTestModel(t, s)

	m.Update(runes("j"))
	m.Update(runes("d"))
	require.Equal(t, stateRemoveConfirm, m.currentState)
	assert.Contains(t, m.View(), "Remove")

	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)

	assert.Equal(t, []string{"ls", "df -h"}, s.list.Names())
	assert.Len(t, m.list.Items(), 2)
	assert.Equal(t, 1, s.saves)
	assert.Equal(t, "Command pwd removed.", m.statusMsg)
	assert.Equal(t, stateCommandList, m.currentState)
	assert.NoError(t, m.SaveErr())
}

func TestRemoveLastRowKeepsSelection(t *testing.T) {
	s := newFakeStore("a", "b", "c")
	m := newTestModel(t, s)

	m.Update(runes("j"))
	m.Update(runes("j"))
	m.Update(runes("d"))
	require.Equal(t, "c", m.pendingRemove)
	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)
	require.Equal(t, []string{"a", "b"}, s.list.Names())

	c, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "b", c.Cmd)

	m.Update(runes("d"))
	assert.Equal(t, stateRemoveConfirm, m.currentState)
	assert.Equal(t, "b", m.pendingRemove)
}

func TestRemoveOnlyRowLeavesEmptyList(t *testing.T) {
	s := newFakeStore("ls")
	m := newTestModel(t, s)

	m.Update(runes("d"))
	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)

	_, ok := m.selected()
	assert.False(t, ok)
	m.Update(runes("d"))
	assert.Equal(t, stateCommandList, m.currentState)
}

func TestRemoveDeclined(t *testing.T) {
	s := newFakeStore("ls")
	m := newTestModel(t, s)

	m.Update(runes("d"))
	_, cmd := m.Update(runes("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, stateCommandList, m.currentState)
	assert.Equal(t, 1, s.list.Len())
	assert.Zero(t, s.saves)
}

func TestRemoveSaveFailureIsReported(t *testing.T) {
	s := newFakeStore("ls")
	s.saveErr = errors.New("read-only file system")
	m := newTestModel(t, s)

	m.Update(runes("d"))
	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)

	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMsg, "could not save")
	assert.True(t, s.list.IsEmpty())
	assert.EqualError(t, m.SaveErr(), "read-only file system")
}

func TestLaterSaveClearsSaveErr(t *testing.T) {
	s := newFakeStore("ls", "pwd")
	s.saveErr = errors.New("read-only file system")
	m := newTestModel(t, s)

	m.Update(runes("d"))
	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)
	require.Error(t, m.SaveErr())

	s.saveErr = nil
	m.Update(runes("d"))
	_, cmd = m.Update(runes("y"))
	exec(t, m, cmd)
	assert.NoError(t, m.SaveErr())
	assert.Equal(t, 2, s.saves)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, newFakeStore("ls"))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
