/*
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a kind of chain parameter error.
type ErrorCode int

const (
	// ErrUnknownNetwork indicates a lookup or selection by a network name
	// that is not registered.
	ErrUnknownNetwork ErrorCode = iota

	// ErrGenesisIntegrity indicates the constructed genesis block does not
	// match its hard-coded hash or merkle root.  The binary must not run.
	ErrGenesisIntegrity

	// ErrParameterConsistency indicates internally inconsistent constants,
	// either within one profile or across profiles.
	ErrParameterConsistency

	// ErrPrecondition indicates the active profile was requested before a
	// network was selected.
	ErrPrecondition

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork:       "ErrUnknownNetwork",
	ErrGenesisIntegrity:     "ErrGenesisIntegrity",
	ErrParameterConsistency: "ErrParameterConsistency",
	ErrPrecondition:         "ErrPrecondition",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a chain parameter error.  It carries the kind of the
// failure, the network it concerns when there is one, and a description.
type Error struct {
	ErrorCode   ErrorCode
	Net         string
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	msg := e.Description
	if e.Net != "" {
		msg = e.Net + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// newError creates an Error given a set of arguments.
func newError(c ErrorCode, net, desc string) Error {
	return Error{ErrorCode: c, Net: net, Description: desc}
}

// wrapError creates an Error around a lower level failure.
func wrapError(c ErrorCode, net string, err error, desc string) Error {
	return Error{ErrorCode: c, Net: net, Description: desc, Err: err}
}

// IsErrorCode returns whether or not the provided error is a chain parameter
// error with the provided error code.  Errors wrapped with pkg/errors are
// unwrapped.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	if errors.As(err, &e) {
		return e.ErrorCode == c
	}
	return false
}
