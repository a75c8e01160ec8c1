// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	warnColor       = color.New(color.FgYellow)
	identifierColor = color.New(color.FgBlue)
)

// Status lines are indented by a tab so they stand apart from rendered entries.

func printError(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "\t%s\n", errorColor.Sprintf(format, a...))
}

func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "\t%s\n", successColor.Sprintf(format, a...))
}

func printWarn(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "\t%s\n", warnColor.Sprintf(format, a...))
}
