// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the new root of the sub-tree
func (tree *Tree) insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default: // duplicate
		return p, false
	}

	// no structural change below so no heights can have changed
	if !added {
		return p, false
	}

	recomputeHeight(p)
	return tree.rebalance(p), true
}
