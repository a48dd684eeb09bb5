// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when
// the receiver is less than, equal to or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // height of the sub-tree rooted here, leaf = 1
}

// create a leaf, the only way a node enters the tree
func newNode(key Item) *Node {
	return &Node{
		key:    key,
		height: 1,
	}
}

// a node removed from the tree must not keep anything alive
func releaseNode(p *Node) {
	p.left = nil
	p.right = nil
	p.key = nil
	p.height = 0
}

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height, p must not be nil
func balanceFactor(p *Node) int {
	return height(p.left) - height(p.right)
}

// must be called whenever either child of p changes
func recomputeHeight(p *Node) {
	p.height = 1 + larger(height(p.left), height(p.right))
}

func larger(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
