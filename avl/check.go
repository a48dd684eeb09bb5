// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/structures/fault"
)

// Check - verify ordering, balance, stored heights and the node count
// by walking the whole tree
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCountMismatch
	}
	return nil
}

// internal: consistency checker, every key in p must lie strictly
// between low and high (nil for unbounded); returns the node count and
// the height recomputed from scratch
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrOutOfOrder
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrOutOfOrder
	}

	ln, lh, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + larger(lh, rh)
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return ln + rn + 1, h, nil
}
