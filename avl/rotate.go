// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote z.left
//
//	      z              y
//	     / \            / \
//	    y   D   -->    A   z
//	   / \                / \
//	  A   B              B   D
func (tree *Tree) rotateRight(z *Node) *Node {
	y := z.left
	z.left = y.right
	y.right = z

	// z is now below y so must be updated first
	recomputeHeight(z)
	recomputeHeight(y)

	tree.rotations += 1
	return y
}

// promote z.right, mirror of rotateRight
func (tree *Tree) rotateLeft(z *Node) *Node {
	y := z.right
	z.right = y.left
	y.left = z

	recomputeHeight(z)
	recomputeHeight(y)

	tree.rotations += 1
	return y
}

// left sub-tree is heavy on its right side
func (tree *Tree) rotateLeftRight(p *Node) *Node {
	p.left = tree.rotateLeft(p.left)
	return tree.rotateRight(p)
}

// right sub-tree is heavy on its left side
func (tree *Tree) rotateRightLeft(p *Node) *Node {
	p.right = tree.rotateRight(p.right)
	return tree.rotateLeft(p)
}

// restore the balance of p after one of its sub-trees changed
// height; p.height must already be current.  Returns the root of the
// possibly rotated sub-tree.
func (tree *Tree) rebalance(p *Node) *Node {
	bf := balanceFactor(p)
	switch {
	case bf > 1:
		if balanceFactor(p.left) >= 0 {
			return tree.rotateRight(p) // left-left
		}
		return tree.rotateLeftRight(p)
	case bf < -1:
		if balanceFactor(p.right) <= 0 {
			return tree.rotateLeft(p) // right-right
		}
		return tree.rotateRightLeft(p)
	default:
		return p
	}
}
