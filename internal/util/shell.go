// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import "strings"

// QuoteArgForShell quotes an argument for safe use in a POSIX shell command.
// It uses single quotes and escapes any internal single quotes, so the shell
// reproduces the value byte for byte, tildes and newlines included.
func QuoteArgForShell(arg string) string {
	return `'` + strings.ReplaceAll(arg, "'", `'\''`) + `'`
}

// ShellCommandLine joins args into one line, quoting every argument that is
// not a plain word.
func ShellCommandLine(args ...string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if isPlainWord(a) {
			parts[i] = a
		} else {
			parts[i] = QuoteArgForShell(a)
		}
	}
	return strings.Join(parts, " ")
}

func isPlainWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '/', r == '=', r == ':':
		default:
			return false
		}
	}
	return true
}
