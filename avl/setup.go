// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	count     int
	rotations int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Rotations - number of single rotations performed so far, a double
// rotation counts as two
func (tree *Tree) Rotations() int {
	return tree.rotations
}

// ChildrenAtDepth - returns all nodes at a specific depth below this
// node, left to right
func (p *Node) ChildrenAtDepth(depth uint) []*Node {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - left child, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Height - stored height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - left height minus right height, always in -1…+1
func (p *Node) Balance() int {
	return balanceFactor(p)
}
