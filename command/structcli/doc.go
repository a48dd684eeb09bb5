// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// structcli - apply steps given on the command line to one structure
//
// e.g.  structcli --kind=avl run insert=10,20,30 delete=20 search=10 print
package main
