// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package commands defines the stored command record and the ordered list
// that holds every command the user has saved.
package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fatih/color"
)

// ErrEmptyName is returned by Validate when a command has no name.
var ErrEmptyName = errors.New("command name must not be empty")

// ErrInvalidText is returned by Validate when the command or its description
// is not valid UTF-8. TOML cannot hold such text.
var ErrInvalidText = errors.New("command and description must be valid UTF-8")

var labelColor = color.New(color.FgBlue)

// Command is a single remembered shell command and its description.
type Command struct {
	// Cmd is the command text and the key used for lookups
	Cmd string `toml:"cmd" yaml:"cmd" json:"cmd"`

	// Desc is free text, whatever helps the user remember the command
	Desc string `toml:"desc" yaml:"desc" json:"desc"`
}

// New returns a command named cmd with description desc.
func New(cmd, desc string) Command {
	return Command{Cmd: cmd, Desc: desc}
}

// Equal reports whether two commands share a name. Descriptions are ignored.
func (c Command) Equal(other Command) bool {
	return c.Cmd == other.Cmd
}

// Validate reports whether c can be stored.
func (c Command) Validate() error {
	if c.Cmd == "" {
		return ErrEmptyName
	}
	if !utf8.ValidString(c.Cmd) || !utf8.ValidString(c.Desc) {
		return ErrInvalidText
	}
	return nil
}

// Render returns the labelled two-line block shown by list and get.
func (c Command) Render() string {
	return fmt.Sprintf("\t%s: %s\n\t%s: %s",
		labelColor.Sprint("command"), c.Cmd,
		labelColor.Sprint("desc"), c.Desc)
}

func (c Command) String() string {
	return c.Render()
}
