// percona-mongo-explorer
// Copyright (C) 2023 Percona LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mongo

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
)

// EmulatorDebuggingLink points at troubleshooting tips for the local emulator.
const EmulatorDebuggingLink = "https://aka.ms/AA5zah5"

// ErrConfiguration is returned when an account cannot be used as configured.
var ErrConfiguration = errors.New("invalid account configuration")

// ConnectionError is returned when the server cannot be reached.
type ConnectionError struct {
	// Err is the error returned by the driver.
	Err error

	msg string
}

// Error returns the error message.
func (e *ConnectionError) Error() string {
	if e.msg != "" {
		return e.msg
	}

	return fmt.Sprintf("could not connect to account: %s", e.Err)
}

// Unwrap returns the driver error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ListError is returned when the server fails the listDatabases command.
type ListError struct {
	Err error
}

// Error returns the error message.
func (e *ListError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the driver error.
func (e *ListError) Unwrap() error {
	return e.Err
}

// newConnectionError wraps err and points emulator users at the debugging tips
// when the emulator refused the connection.
func newConnectionError(a Account, err error) *ConnectionError {
	cErr := &ConnectionError{Err: err}
	if a.Emulator && isConnectionRefused(err) {
		cErr.msg = fmt.Sprintf(
			"Unable to reach emulator. See %s for debugging information.\n%s",
			EmulatorDebuggingLink, err.Error(),
		)
	}

	return cErr
}

// wrapOperationError classifies an error returned by a server command.
func wrapOperationError(a Account, err error) error {
	if isConnectionRefused(err) || mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return newConnectionError(a, err)
	}

	return &ListError{Err: err}
}

func isConnectionRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "ECONNREFUSED") || strings.Contains(msg, "connection refused")
}
