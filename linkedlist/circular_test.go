// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/structures/fault"
	"github.com/bitmark-inc/structures/linkedlist"
)

func TestSinglyCircular(t *testing.T) {
	l := linkedlist.NewSinglyCircular()
	assert.Equal(t, "(empty)", l.String())
	assert.Empty(t, l.Values())

	_, err := l.DeleteFromBeginning()
	assert.Equal(t, fault.ErrListEmpty, err)
	_, err = l.DeleteFromEnd()
	assert.Equal(t, fault.ErrListEmpty, err)
	assert.Equal(t, fault.ErrListEmpty, l.DeleteByValue(1))

	l.InsertAtEnd(20)
	l.InsertAtEnd(30)
	l.InsertAtBeginning(10)
	assert.Equal(t, []int{10, 20, 30}, l.Values())
	assert.Equal(t, "10 -> 20 -> 30 -> (head)", l.String())
	assert.Equal(t, 3, l.Length())

	pos, found := l.Search(30)
	assert.True(t, found)
	assert.Equal(t, 2, pos)
	_, found = l.Search(99)
	assert.False(t, found)

	v, err := l.DeleteFromEnd()
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	l.InsertAtEnd(40)
	assert.Equal(t, []int{10, 20, 40}, l.Values(), "tail moved back")

	v, err = l.DeleteFromBeginning()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{20, 40}, l.Values())

	assert.Equal(t, fault.ErrValueNotFound, l.DeleteByValue(99))
	require.NoError(t, l.DeleteByValue(40), "tail by value")
	l.InsertAtEnd(50)
	assert.Equal(t, []int{20, 50}, l.Values())

	require.NoError(t, l.DeleteByValue(20))
	require.NoError(t, l.DeleteByValue(50))
	assert.Equal(t, 0, l.Length())
	assert.Empty(t, l.Values())

	l.InsertAtBeginning(1)
	v, err = l.DeleteFromEnd()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "single node ring")
	assert.Equal(t, "(empty)", l.String())
}

func TestDoublyCircular(t *testing.T) {
	l := linkedlist.NewDoublyCircular()
	assert.Equal(t, "(empty)", l.String())
	assert.Empty(t, l.Forward())
	assert.Empty(t, l.Backward())

	_, err := l.DeleteFromBeginning()
	assert.Equal(t, fault.ErrListEmpty, err)
	_, err = l.DeleteFromEnd()
	assert.Equal(t, fault.ErrListEmpty, err)
	assert.Equal(t, fault.ErrListEmpty, l.DeleteByValue(1))
	_, found := l.Search(1)
	assert.False(t, found)

	l.InsertAtEnd(20)
	l.InsertAtBeginning(10)
	l.InsertAtEnd(30)
	assert.Equal(t, []int{10, 20, 30}, l.Forward())
	assert.Equal(t, []int{30, 20, 10}, l.Backward())
	assert.Equal(t, "10 <-> 20 <-> 30 <-> (head)", l.String())

	pos, found := l.Search(20)
	assert.True(t, found)
	assert.Equal(t, 1, pos)

	v, err := l.DeleteFromBeginning()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = l.DeleteFromEnd()
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	assert.Equal(t, []int{20}, l.Forward())
	assert.Equal(t, []int{20}, l.Backward())

	l.InsertAtEnd(40)
	l.InsertAtEnd(50)
	require.NoError(t, l.DeleteByValue(20), "head by value")
	assert.Equal(t, []int{40, 50}, l.Forward())
	assert.Equal(t, []int{50, 40}, l.Backward())
	assert.Equal(t, fault.ErrValueNotFound, l.DeleteByValue(20))
	assert.Equal(t, 2, l.Length())

	require.NoError(t, l.DeleteByValue(50))
	require.NoError(t, l.DeleteByValue(40))
	assert.Equal(t, 0, l.Length())
	assert.Equal(t, "(empty)", l.String())
}
