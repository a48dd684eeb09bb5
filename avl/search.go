// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != tree.Search(key)
}
