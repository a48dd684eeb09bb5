// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Iterator - produces the keys of a tree one at a time
//
// nodes are pushed on an explicit stack so a walk never needs more
// than the tree height of storage.  The tree must not be modified
// while an iterator is in use; start a new one afterwards.
type Iterator struct {
	stack     []*Node
	ascending bool
	current   *Node
}

// Ascending - iterator over all keys from lowest to highest
func (tree *Tree) Ascending() *Iterator {
	return newIterator(tree.root, true)
}

// Descending - iterator over all keys from highest to lowest
func (tree *Tree) Descending() *Iterator {
	return newIterator(tree.root, false)
}

func newIterator(root *Node, ascending bool) *Iterator {
	it := &Iterator{
		stack:     make([]*Node, 0, height(root)),
		ascending: ascending,
	}
	it.push(root)
	return it
}

// stack p and its chain of children towards the starting end
func (it *Iterator) push(p *Node) {
	for nil != p {
		it.stack = append(it.stack, p)
		if it.ascending {
			p = p.left
		} else {
			p = p.right
		}
	}
}

// Next - move to the next key, false when no more keys
func (it *Iterator) Next() bool {
	n := len(it.stack)
	if 0 == n {
		it.current = nil
		return false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	if it.ascending {
		it.push(p.right)
	} else {
		it.push(p.left)
	}
	it.current = p
	return true
}

// Key - key at the current position, nil before the first Next or
// after the last
func (it *Iterator) Key() Item {
	if nil == it.current {
		return nil
	}
	return it.current.key
}

// Node - node at the current position
func (it *Iterator) Node() *Node {
	return it.current
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	for it := tree.Ascending(); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}
