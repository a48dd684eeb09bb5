// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/structures/fault"
)

// Node - a single value in the tree
type Node struct {
	left  *Node
	right *Node
	value int
}

// Tree - root of the tree and a running count of its nodes
type Tree struct {
	root  *Node
	count int
}

// New - create an empty tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Root - the root node, nil for an empty tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Value - the value stored in the node
func (p *Node) Value() int {
	return p.value
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Insert - add a value, duplicates are kept
func (tree *Tree) Insert(value int) {
	tree.root = insert(tree.root, value)
	tree.count += 1
}

func insert(p *Node, value int) *Node {
	if nil == p {
		return &Node{value: value}
	}
	if value > p.value {
		p.right = insert(p.right, value)
	} else {
		p.left = insert(p.left, value)
	}
	return p
}

// Search - find the node nearest the root holding value
func (tree *Tree) Search(value int) *Node {
	p := tree.root
	for nil != p {
		switch {
		case value == p.value:
			return p
		case value > p.value:
			p = p.right
		default:
			p = p.left
		}
	}
	return nil
}

// Contains - true if at least one copy of value is present
func (tree *Tree) Contains(value int) bool {
	return nil != tree.Search(value)
}

// Delete - remove one occurrence of value
//
// returns false if the value was not present
func (tree *Tree) Delete(value int) bool {
	root, removed := remove(tree.root, value)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

func remove(p *Node, value int) (*Node, bool) {
	if nil == p {
		return nil, false
	}

	removed := false
	switch {
	case value < p.value:
		p.left, removed = remove(p.left, value)
		return p, removed
	case value > p.value:
		p.right, removed = remove(p.right, value)
		return p, removed
	}

	switch {
	case nil == p.left:
		return p.right, true
	case nil == p.right:
		return p.left, true
	}

	// two children: take over the in-order successor's value and
	// unlink the successor node itself
	p.right, p.value = removeMin(p.right)
	return p, true
}

// unlink the leftmost node of p returning the new sub-tree and the
// value that was removed
func removeMin(p *Node) (*Node, int) {
	if nil == p.left {
		return p.right, p.value
	}
	var value int
	p.left, value = removeMin(p.left)
	return p, value
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Count - number of values in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// recursive node count used to validate the running count
func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return countNodes(p.left) + countNodes(p.right) + 1
}

// Min - smallest value
func (tree *Tree) Min() (int, error) {
	p := tree.root
	if nil == p {
		return 0, fault.ErrTreeEmpty
	}
	for nil != p.left {
		p = p.left
	}
	return p.value, nil
}

// Max - largest value
func (tree *Tree) Max() (int, error) {
	p := tree.root
	if nil == p {
		return 0, fault.ErrTreeEmpty
	}
	for nil != p.right {
		p = p.right
	}
	return p.value, nil
}

// Check - verify ordering and the node count
func (tree *Tree) Check() error {
	values := tree.InOrder()
	for i := 1; i < len(values); i += 1 {
		if values[i-1] > values[i] {
			return fault.ErrOutOfOrder
		}
	}
	if countNodes(tree.root) != tree.count {
		return fault.ErrNodeCountMismatch
	}
	return nil
}
