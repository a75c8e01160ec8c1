// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package commands

import (
	"iter"
	"slices"
)

// List is an insertion-ordered collection of commands. Names are kept unique
// by callers checking Contains before Push; List itself does not enforce it.
// Lookups are linear scans.
type List struct {
	Commands []Command `toml:"commands" yaml:"commands" json:"commands"`
}

// NewList returns an empty list.
func NewList() *List {
	return &List{Commands: []Command{}}
}

func (l *List) IsEmpty() bool {
	return len(l.Commands) == 0
}

func (l *List) Len() int {
	return len(l.Commands)
}

// Contains reports whether a command with the same name is stored.
func (l *List) Contains(c Command) bool {
	return slices.ContainsFunc(l.Commands, c.Equal)
}

// Find returns the first command named name.
func (l *List) Find(name string) (Command, bool) {
	i := l.index(name)
	if i < 0 {
		return Command{}, false
	}
	return l.Commands[i], true
}

// Push appends c without a duplicate check.
func (l *List) Push(c Command) {
	l.Commands = append(l.Commands, c)
}

// Remove deletes the first command named name and reports whether one was found.
func (l *List) Remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	l.Commands = slices.Delete(l.Commands, i, i+1)
	return true
}

// All yields the stored commands in insertion order.
func (l *List) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, c := range l.Commands {
			if !yield(c) {
				return
			}
		}
	}
}

// Names returns the command names in insertion order.
func (l *List) Names() []string {
	names := make([]string, 0, len(l.Commands))
	for c := range l.All() {
		names = append(names, c.Cmd)
	}
	return names
}

func (l *List) index(name string) int {
	return slices.IndexFunc(l.Commands, func(c Command) bool {
		return c.Cmd == name
	})
}
