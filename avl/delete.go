// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the key was not present
func (tree *Tree) Delete(key Item) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the new root of the sub-tree
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			releaseNode(p)
			return child, true
		}

		// two children: take over the in-order successor's key
		// then remove the successor, which has no left child
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = tree.delete(successor.key, p.right)
	}

	if !removed {
		return p, false
	}

	recomputeHeight(p)
	return tree.rebalance(p), true
}
