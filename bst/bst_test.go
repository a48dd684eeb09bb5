// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/structures/bst"
	"github.com/bitmark-inc/structures/fault"
)

func sampleTree() *bst.Tree {
	tree := bst.New()
	for _, v := range []int{20, 10, 30, 5, 25, 35} {
		tree.Insert(v)
	}
	return tree
}

func TestEmpty(t *testing.T) {
	tree := bst.New()

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Empty(t, tree.InOrder(), "inorder")
	assert.Empty(t, tree.LevelOrder(), "level order")
	assert.False(t, tree.Delete(1), "delete")
	assert.Nil(t, tree.Search(1), "search")

	_, err := tree.Min()
	assert.Equal(t, fault.ErrTreeEmpty, err, "min error")
	_, err = tree.Max()
	assert.Equal(t, fault.ErrTreeEmpty, err, "max error")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestTraversals(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []int{5, 10, 20, 25, 30, 35}, tree.InOrder(), "inorder")
	assert.Equal(t, []int{20, 10, 5, 30, 25, 35}, tree.PreOrder(), "preorder")
	assert.Equal(t, []int{5, 10, 25, 35, 30, 20}, tree.PostOrder(), "postorder")
	assert.Equal(t, []int{20, 10, 30, 5, 25, 35}, tree.LevelOrder(), "level order")
	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, 6, tree.Count(), "count")
	assert.NoError(t, tree.Check())
}

func TestSearch(t *testing.T) {
	tree := sampleTree()

	p := tree.Search(25)
	require.NotNil(t, p, "25 not found")
	assert.Equal(t, 25, p.Value())
	assert.Nil(t, tree.Search(100), "100 found")
	assert.True(t, tree.Contains(35))
	assert.False(t, tree.Contains(0))

	min, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 5, min, "min")
	max, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 35, max, "max")
}

func TestDelete(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.Delete(5), "leaf")
	assert.Equal(t, []int{10, 20, 25, 30, 35}, tree.InOrder())

	assert.True(t, tree.Delete(10), "now a leaf")
	assert.Equal(t, []int{20, 25, 30, 35}, tree.InOrder())

	assert.True(t, tree.Delete(30), "two children")
	assert.Equal(t, []int{20, 25, 35}, tree.InOrder())
	right := tree.Root().Right()
	require.NotNil(t, right)
	assert.Equal(t, 35, right.Value(), "successor took the slot")
	assert.Equal(t, 25, right.Left().Value(), "left child kept")

	assert.False(t, tree.Delete(30), "already deleted")
	assert.Equal(t, 3, tree.Count(), "final count")
	assert.NoError(t, tree.Check())
}

func TestDeleteRoot(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.Delete(20))
	assert.Equal(t, 25, tree.Root().Value(), "successor became root")
	assert.Equal(t, []int{5, 10, 25, 30, 35}, tree.InOrder())
	assert.NoError(t, tree.Check())
}

func TestDuplicates(t *testing.T) {
	tree := bst.New()
	for _, v := range []int{20, 10, 20} {
		tree.Insert(v)
	}

	assert.Equal(t, []int{10, 20, 20}, tree.InOrder())
	assert.Equal(t, 3, tree.Height(), "duplicate went left then right of 10")
	assert.Equal(t, 20, tree.Root().Left().Right().Value())

	assert.True(t, tree.Delete(20))
	assert.Equal(t, []int{10, 20}, tree.InOrder(), "one occurrence removed")
	assert.True(t, tree.Delete(20))
	assert.Equal(t, []int{10}, tree.InOrder())
	assert.False(t, tree.Delete(20))
	assert.NoError(t, tree.Check())
}

func TestDuplicateSuccessor(t *testing.T) {
	tree := bst.New()
	for _, v := range []int{20, 10, 30, 25, 25} {
		tree.Insert(v)
	}

	assert.True(t, tree.Delete(20))
	assert.Equal(t, 25, tree.Root().Value())
	assert.Equal(t, []int{10, 25, 25, 30}, tree.InOrder())
	assert.Equal(t, 4, tree.Count())
	assert.NoError(t, tree.Check())
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree := bst.New()
	expected := []int{}

	for i := 0; i < 500; i += 1 {
		v := r.Intn(100)
		tree.Insert(v)
		expected = append(expected, v)
	}
	sort.Ints(expected)
	require.Equal(t, expected, tree.InOrder())
	require.NoError(t, tree.Check())

	for i := 0; i < 300; i += 1 {
		v := r.Intn(100)
		n := sort.SearchInts(expected, v)
		present := n < len(expected) && v == expected[n]
		require.Equal(t, present, tree.Delete(v), "delete: %d", v)
		if present {
			expected = append(expected[:n], expected[n+1:]...)
		}
	}
	require.Equal(t, expected, tree.InOrder())
	require.Equal(t, len(expected), tree.Count())
	require.NoError(t, tree.Check())
}
