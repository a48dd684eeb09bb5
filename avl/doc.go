// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keeping an explicit height in
// every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records the height of the sub-tree rooted at it (a leaf
// is 1, an absent sub-tree is 0).  After an insert or delete every
// node on the path back to the root has its height recomputed from
// its two children and, if the children's heights differ by more
// than one, one of the four rotations is applied.  The rotation is
// chosen from the balance factor of the heavy child, the same test
// for both insert and delete.
//
// Keys are unique: inserting a key that is already present leaves the
// tree unchanged and deleting an absent key is a no-op; both simply
// report false.
package avl
