// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package linkedlist - singly, doubly and circular linked lists of
// integers
//
// positions are zero based; misuse such as deleting from an empty
// list is reported with the errors from the fault package
package linkedlist
