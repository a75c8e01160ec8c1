// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import "fmt"

// Exit codes
const (
	ExitSuccess   = 0 // Success, including "not found" and "already exists" outcomes
	ExitFailure   = 1 // Usage error, or the store could not be located, read or parsed
	ExitSaveError = 2 // The operation succeeded in memory but the store could not be written
)

// ExitError carries a process exit code out of a cobra RunE. A nil Err means
// the message was already printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func saveFailed(err error) error {
	return &ExitError{Code: ExitSaveError, Err: fmt.Errorf("changes were not saved: %w", err)}
}
