// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// The data structure packages never return an error for the
// "silent" cases: inserting a duplicate key into the AVL tree or
// deleting a key that is not present only report false.  Errors
// here cover misuse that the classic list routines would signal with
// a -1 return, configuration problems and invariant violations.
package fault
