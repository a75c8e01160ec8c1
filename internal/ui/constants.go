// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateCommandList state = iota
	stateCommandDetails
	stateRemoveConfirm
)

const (
	headerHeight = 2 // Title line plus the blank line under it.
	footerHeight = 3 // Status line plus the wrapped help line.
)
