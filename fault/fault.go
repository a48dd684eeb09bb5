// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrHeightMismatch       = InvalidError("stored height does not match subtree height")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrListEmpty            = NotFoundError("list is empty")
	ErrMissingConfiguration = InvalidError("configuration table is missing")
	ErrNegativePosition     = InvalidError("position is negative")
	ErrNodeCountMismatch    = InvalidError("node count does not match tree")
	ErrOutOfOrder           = InvalidError("keys are out of order")
	ErrPositionOutOfRange   = InvalidError("position out of range")
	ErrTreeEmpty            = NotFoundError("tree is empty")
	ErrUnbalanced           = InvalidError("subtree heights differ by more than one")
	ErrUnknownAction        = InvalidError("unknown script action")
	ErrUnknownKind          = InvalidError("unknown structure kind")
	ErrValueNotFound        = NotFoundError("value not found")
	ErrVerificationFailed   = ProcessError("structure verification failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
