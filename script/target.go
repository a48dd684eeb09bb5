// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"strings"
)

//go:generate mockgen -destination=mocks/target.go -package=mocks github.com/bitmark-inc/structures/script Target

// Target - the operations a script can apply to a structure
type Target interface {
	Insert(int) bool
	Delete(int) bool
	Contains(int) bool
	Values() []int
	Render(io.Writer)
}

// Checker - a target that can validate its own internal invariants
type Checker interface {
	Check() error
}

// names of the structures that NewTarget can create
const (
	KindAVL            = "avl"
	KindBST            = "bst"
	KindSingly         = "singly"
	KindDoubly         = "doubly"
	KindSinglyCircular = "singly-circular"
	KindDoublyCircular = "doubly-circular"
)

// Kinds - all valid kind names
func Kinds() []string {
	return []string{
		KindAVL,
		KindBST,
		KindSingly,
		KindDoubly,
		KindSinglyCircular,
		KindDoublyCircular,
	}
}

// NewTarget - create an empty structure by kind name
func NewTarget(kind string) (Target, error) {
	switch strings.ToLower(kind) {
	case KindAVL:
		return NewAVLTarget(), nil
	case KindBST:
		return NewBSTTarget(), nil
	default:
		return NewListTarget(kind)
	}
}

// Verify - run the target's invariant check if it has one
func Verify(target Target) error {
	c, ok := target.(Checker)
	if !ok {
		return nil
	}
	return c.Check()
}
