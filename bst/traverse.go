// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// InOrder - left, node, right
func (tree *Tree) InOrder() []int {
	values := make([]int, 0, tree.count)
	var walk func(p *Node)
	walk = func(p *Node) {
		if nil == p {
			return
		}
		walk(p.left)
		values = append(values, p.value)
		walk(p.right)
	}
	walk(tree.root)
	return values
}

// PreOrder - node, left, right
func (tree *Tree) PreOrder() []int {
	values := make([]int, 0, tree.count)
	var walk func(p *Node)
	walk = func(p *Node) {
		if nil == p {
			return
		}
		values = append(values, p.value)
		walk(p.left)
		walk(p.right)
	}
	walk(tree.root)
	return values
}

// PostOrder - left, right, node
func (tree *Tree) PostOrder() []int {
	values := make([]int, 0, tree.count)
	var walk func(p *Node)
	walk = func(p *Node) {
		if nil == p {
			return
		}
		walk(p.left)
		walk(p.right)
		values = append(values, p.value)
	}
	walk(tree.root)
	return values
}

// LevelOrder - breadth first, each level left to right
func (tree *Tree) LevelOrder() []int {
	values := make([]int, 0, tree.count)
	if nil == tree.root {
		return values
	}

	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		values = append(values, p.value)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return values
}
