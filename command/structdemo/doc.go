// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// structdemo - run scripted demonstrations of the AVL tree, binary
// search tree and linked list structures
//
// the demos are read from a Lua configuration file, each one names a
// structure kind and a list of steps to apply to it
package main
