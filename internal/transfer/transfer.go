// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package transfer converts command lists to and from the formats supported
// by the export and import subcommands.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lcmds/internal/commands"
	"lcmds/internal/store"
	"lcmds/internal/util"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format name or file extension that has
// no codec.
var ErrUnknownFormat = errors.New("unknown format")

type Format string

const (
	FormatTOML  Format = "toml"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatShell Format = "sh"
)

// Formats lists the export formats in help order.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON, FormatShell}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "sh", "shell":
		return FormatShell, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks a decodable format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil || f == FormatShell {
		return "", fmt.Errorf("%w: cannot import %s (use .toml, .yaml or .json)", ErrUnknownFormat, path)
	}
	return f, nil
}

// Export writes the whole list to w in format f.
func Export(w io.Writer, list *commands.List, f Format) error {
	switch f {
	case FormatTOML:
		data, err := store.Encode(list)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(normalized(list)); err != nil {
			return fmt.Errorf("failed to encode commands to YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(normalized(list)); err != nil {
			return fmt.Errorf("failed to encode commands to JSON: %w", err)
		}
		return nil
	case FormatShell:
		return exportShell(w, list)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// exportShell writes a script that recreates the list with lcmds add.
func exportShell(w io.Writer, list *commands.List) error {
	var buf bytes.Buffer
	buf.WriteString("#!/bin/sh\n")
	for c := range list.All() {
		buf.WriteString(util.ShellCommandLine("lcmds", "add", "-c", c.Cmd, "-d", c.Desc))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Decode parses data in format f. Empty input is an empty list.
func Decode(data []byte, f Format) (*commands.List, error) {
	list := commands.NewList()
	if len(bytes.TrimSpace(data)) == 0 {
		return list, nil
	}

	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, list)
	case FormatYAML:
		err = yaml.Unmarshal(data, list)
	case FormatJSON:
		err = json.Unmarshal(data, list)
	default:
		return nil, fmt.Errorf("%w: cannot decode %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s input: %w", f, err)
	}
	if list.Commands == nil {
		list.Commands = []commands.Command{}
	}
	return list, nil
}

// ReadFile decodes the file at path, choosing the format from its extension.
func ReadFile(path string) (*commands.List, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}
	return Decode(data, f)
}

// MergeResult reports what Merge did with each incoming command.
type MergeResult struct {
	Added   []string
	Skipped []string
	Invalid int
}

// Merge appends every command from src whose name is not already in dst.
// Commands that fail Validate are counted as invalid and dropped.
func Merge(dst, src *commands.List) MergeResult {
	var res MergeResult
	for c := range src.All() {
		if err := c.Validate(); err != nil {
			res.Invalid++
			continue
		}
		if dst.Contains(c) {
			res.Skipped = append(res.Skipped, c.Cmd)
			continue
		}
		dst.Push(c)
		res.Added = append(res.Added, c.Cmd)
	}
	return res
}

func normalized(list *commands.List) commands.List {
	if list.Commands == nil {
		return commands.List{Commands: []commands.Command{}}
	}
	return commands.List{Commands: list.Commands}
}
