// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// SaveError reports that the browser exited with a removal that was not
// written to the store.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "browse: " + e.Err.Error() }

func (e *SaveError) Unwrap() error { return e.Err }

// commandCopiedMsg reports the result of a clipboard write.
type commandCopiedMsg struct {
	cmd string
	err error
}

// commandRemovedMsg reports the result of saving the store after a removal.
// The entry is already gone from the in-memory list either way.
type commandRemovedMsg struct {
	cmd string
	err error
}
