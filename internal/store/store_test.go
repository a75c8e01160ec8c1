// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"lcmds/internal/commands"
	"lcmds/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), FileName)
}

func TestDefaultPathIsBesideExecutable(t *testing.T) {
	p, err := DefaultPath()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(exe), FileName), p)
}

func TestEnsureExistsCreatesEmptyFile(t *testing.T) {
	path := tempStorePath(t)

	require.NoError(t, EnsureExists(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// Existing content is left alone.
	require.NoError(t, os.WriteFile(path, []byte("commands = []\n"), 0640))
	require.NoError(t, EnsureExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "commands = []\n", string(data))
}

func TestEnsureExistsFailsInMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)
	err := EnsureExists(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "\n", "  \n\t"} {
		path := tempStorePath(t)
		require.NoError(t, os.WriteFile(path, []byte(content), 0640))

		list, err := Load(path)
		require.NoError(t, err)
		assert.True(t, list.IsEmpty())
	}
}

func TestLoadAbsentCommandsKey(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("# nothing yet\n"), 0640))

	list, err := Load(path)
	require.NoError(t, err)
	assert.True(t, list.IsEmpty())
	assert.NotNil(t, list.Commands)
}

func TestLoadParsesArrayOfTables(t *testing.T) {
	path := tempStorePath(t)
	content := `[[commands]]
cmd = "ls"
desc = "list files"

[[commands]]
cmd = "du -sh *"
desc = "sizes of everything here"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0640))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "du -sh *"}, list.Names())
	c, ok := list.Find("du -sh *")
	require.True(t, ok)
	assert.Equal(t, "sizes of everything here", c.Desc)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("[[commands]\ncmd = \n"), 0640))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse store file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(tempStorePath(t))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveEmptyListIsExplicit(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, Save(path, commands.NewList()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "commands = []")

	list, err := Load(path)
	require.NoError(t, err)
	assert.True(t, list.IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempStorePath(t)

	list := commands.NewList()
	list.Push(commands.New("ls", "list files"))
	list.Push(commands.New(`grep -rn "TODO" .`, "find todos, with \"quotes\""))
	list.Push(commands.New("tar -xzf x.tgz", "extract\nmultiline"))
	list.Push(commands.New("df -h", ""))
	require.True(t, list.Remove("ls"))
	list.Push(commands.New("ls", "list files again"))

	require.NoError(t, Save(path, list))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, list.Commands, got.Commands)
}

func TestSaveNilCommands(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, Save(path, &commands.List{}))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSaveRefusesInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		entry commands.Command
	}{
		{"bad name", commands.New("bad\xffname", "x")},
		{"bad description", commands.New("ls", "bad\xffdesc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tempStorePath(t)
			good := commands.NewList()
			good.Push(commands.New("df -h", "disk usage"))
			require.NoError(t, Save(path, good))

			bad := commands.NewList()
			bad.Push(commands.New("df -h", "disk usage"))
			bad.Push(tt.entry)
			err := Save(path, bad)
			require.ErrorIs(t, err, commands.ErrInvalidText)

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, good.Commands, got.Commands)
		})
	}
}

func TestSaveFailsOnDirectory(t *testing.T) {
	err := Save(t.TempDir(), commands.NewList())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write store file")
}

func TestOpenCreatesAndSaves(t *testing.T) {
	path := tempStorePath(t)

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.True(t, s.List().IsEmpty())

	s.List().Push(commands.New("ls", "list files"))
	require.NoError(t, s.Save())

	again, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls"}, again.List().Names())
}

// Concurrent invocations are unsupported: each loads the whole file, so the
// later save discards the earlier one's change.
func TestConcurrentWritersLoseUpdates(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, EnsureExists(path))

	first, err := Open(path)
	require.NoError(t, err)
	second, err := Open(path)
	require.NoError(t, err)

	first.List().Push(commands.New("ls", ""))
	require.NoError(t, first.Save())
	second.List().Push(commands.New("pwd", ""))
	require.NoError(t, second.Save())

	final, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pwd"}, final.Names())
}
