// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import "lcmds/internal/commands"

// Store is a loaded command list bound to the file it came from.
type Store struct {
	path string
	list *commands.List
}

// Open creates the file at path if needed and loads it.
func Open(path string) (*Store, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}
	list, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, list: list}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) List() *commands.List { return s.list }

// Save writes the current list back to disk.
func (s *Store) Save() error {
	return Save(s.path, s.list)
}
