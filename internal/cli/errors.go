// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
)

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError covers start-up and runtime failures
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
)

// UsageError reports a bad flag or missing argument.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message + " (see 'smartchat help')"
}

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsageError
	}
	return ExitGeneralError
}
