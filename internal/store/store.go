// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists the command list as a TOML file that lives next to
// the running executable.
//
// Every load reads the whole file and every save rewrites it. There is no
// locking: two invocations that mutate the store at the same time can lose an
// update, the last writer wins.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lcmds/internal/commands"
	"lcmds/internal/logger"

	"github.com/BurntSushi/toml"
)

// FileName is the store file created beside the executable.
const FileName = "commands.toml"

// DefaultPath returns the store location: the directory of the current
// executable joined with FileName.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// EnsureExists creates an empty store file at path if none exists.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat store file %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0640) // rw-r-----
	if err != nil {
		return fmt.Errorf("failed to create store file %s: %w", path, err)
	}
	logger.Info("Created store file.", "path", path)
	return f.Close()
}

// Load reads the store at path. An empty file is an empty list.
func Load(path string) (*commands.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}

	list := commands.NewList()
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("Store file empty.", "path", path)
		return list, nil
	}

	if err := toml.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s (fix or delete it): %w", path, err)
	}
	if list.Commands == nil {
		list.Commands = []commands.Command{}
	}

	logger.Debug("Loaded store.", "path", path, "count", list.Len())
	return list, nil
}

// Encode serializes list in the store format. An empty list is written as an
// explicit "commands = []". Entries that are not valid UTF-8 are refused so a
// save never produces a file that Load cannot parse.
func Encode(list *commands.List) ([]byte, error) {
	out := commands.List{Commands: list.Commands}
	if out.Commands == nil {
		out.Commands = []commands.Command{}
	}
	for _, c := range out.Commands {
		if errors.Is(c.Validate(), commands.ErrInvalidText) {
			return nil, fmt.Errorf("refusing to encode %q: %w", c.Cmd, commands.ErrInvalidText)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("failed to encode commands to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// Save overwrites the store at path with the full list.
func Save(path string, list *commands.List) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write store file %s: %w", path, err)
	}

	logger.Info("Saved store.", "path", path, "count", list.Len())
	return nil
}
