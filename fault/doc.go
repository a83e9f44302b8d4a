// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and fatal error logging
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The Panic family of functions are for conditions that can only be
// caused by a bug, e.g. a corrupt tree.  They write to a "PANIC"
// logger channel when Initialise has been called, otherwise to
// standard output, and then panic.
package fault
