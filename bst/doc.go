// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree of integers
//
// equal values are stored in the left sub-tree so the tree behaves as
// a multiset; an in-order walk yields the values in non-decreasing
// order
package bst
