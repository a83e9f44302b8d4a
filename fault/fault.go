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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidKey           = InvalidError("invalid search key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPrefix        = InvalidError("invalid key prefix")
	ErrInvalidSourceKind    = InvalidError("invalid source kind")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingArguments     = LengthError("missing arguments")
	ErrMissingFile          = NotFoundError("missing file")
	ErrNotADirectory        = InvalidError("not a directory")
	ErrSourceReleased       = ProcessError("source already released")
	ErrTreeBalance          = InvalidError("tree balance is out of range")
	ErrTreeCount            = InvalidError("tree count does not match nodes")
	ErrTreeHeight           = InvalidError("tree height is inconsistent")
	ErrTreeOrder            = InvalidError("tree items are out of order")
	ErrUnknownCommand       = NotFoundError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
