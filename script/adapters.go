// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/structures/avl"
	"github.com/bitmark-inc/structures/bst"
	"github.com/bitmark-inc/structures/fault"
	"github.com/bitmark-inc/structures/linkedlist"
)

// integer key for the AVL tree
type intKey int

func (k intKey) Compare(x interface{}) int {
	y := x.(intKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

type avlTarget struct {
	tree *avl.Tree
}

// NewAVLTarget - wrap an empty AVL tree, duplicates are rejected
func NewAVLTarget() Target {
	return &avlTarget{
		tree: avl.New(),
	}
}

func (a *avlTarget) Insert(v int) bool {
	return a.tree.Insert(intKey(v))
}

func (a *avlTarget) Delete(v int) bool {
	return a.tree.Delete(intKey(v))
}

func (a *avlTarget) Contains(v int) bool {
	return a.tree.Contains(intKey(v))
}

func (a *avlTarget) Values() []int {
	values := make([]int, 0, a.tree.Count())
	for it := a.tree.Ascending(); it.Next(); {
		values = append(values, int(it.Key().(intKey)))
	}
	return values
}

func (a *avlTarget) Render(w io.Writer) {
	fmt.Fprintf(w, "avl: count: %d  height: %d  rotations: %d\n", a.tree.Count(), a.tree.Height(), a.tree.Rotations())
	a.tree.Print(w, true)
}

func (a *avlTarget) Check() error {
	return a.tree.Check()
}

type bstTarget struct {
	tree *bst.Tree
}

// NewBSTTarget - wrap an empty binary search tree, duplicates are kept
func NewBSTTarget() Target {
	return &bstTarget{
		tree: bst.New(),
	}
}

func (b *bstTarget) Insert(v int) bool {
	b.tree.Insert(v)
	return true
}

func (b *bstTarget) Delete(v int) bool {
	return b.tree.Delete(v)
}

func (b *bstTarget) Contains(v int) bool {
	return b.tree.Contains(v)
}

func (b *bstTarget) Values() []int {
	return b.tree.InOrder()
}

func (b *bstTarget) Render(w io.Writer) {
	fmt.Fprintf(w, "bst: count: %d  height: %d\n", b.tree.Count(), b.tree.Height())
	fmt.Fprintf(w, "  inorder:    %v\n", b.tree.InOrder())
	fmt.Fprintf(w, "  preorder:   %v\n", b.tree.PreOrder())
	fmt.Fprintf(w, "  postorder:  %v\n", b.tree.PostOrder())
	fmt.Fprintf(w, "  levelorder: %v\n", b.tree.LevelOrder())
}

func (b *bstTarget) Check() error {
	return b.tree.Check()
}

// operations shared by all list kinds
type sequence interface {
	InsertAtEnd(int)
	DeleteByValue(int) error
	Search(int) (int, bool)
	Length() int
	String() string
}

type listTarget struct {
	kind   string
	list   sequence
	values func() []int
}

// NewListTarget - wrap an empty list of the given kind; inserts
// append, deletes remove the first occurrence
func NewListTarget(kind string) (Target, error) {
	t := &listTarget{
		kind: strings.ToLower(kind),
	}
	switch t.kind {
	case KindSingly:
		l := linkedlist.NewSingly()
		t.list = l
		t.values = l.Values
	case KindDoubly:
		l := linkedlist.NewDoubly()
		t.list = l
		t.values = l.Forward
	case KindSinglyCircular:
		l := linkedlist.NewSinglyCircular()
		t.list = l
		t.values = l.Values
	case KindDoublyCircular:
		l := linkedlist.NewDoublyCircular()
		t.list = l
		t.values = l.Forward
	default:
		return nil, fault.ErrUnknownKind
	}
	return t, nil
}

func (l *listTarget) Insert(v int) bool {
	l.list.InsertAtEnd(v)
	return true
}

func (l *listTarget) Delete(v int) bool {
	return nil == l.list.DeleteByValue(v)
}

func (l *listTarget) Contains(v int) bool {
	_, found := l.list.Search(v)
	return found
}

func (l *listTarget) Values() []int {
	return l.values()
}

func (l *listTarget) Render(w io.Writer) {
	fmt.Fprintf(w, "%s: length: %d\n", l.kind, l.list.Length())
	fmt.Fprintf(w, "  %s\n", l.list.String())
}

// the tracked length must match a full walk
func (l *listTarget) Check() error {
	if len(l.values()) != l.list.Length() {
		return fault.ErrNodeCountMismatch
	}
	return nil
}
