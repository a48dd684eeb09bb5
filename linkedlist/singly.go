// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkedlist

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/structures/fault"
)

type singlyNode struct {
	next  *singlyNode
	value int
}

// Singly - a NULL terminated list with only a head pointer
type Singly struct {
	head  *singlyNode
	count int
}

// NewSingly - create an empty list
func NewSingly() *Singly {
	return &Singly{}
}

// InsertAtBeginning - push a value on the front
func (l *Singly) InsertAtBeginning(value int) {
	l.head = &singlyNode{
		next:  l.head,
		value: value,
	}
	l.count += 1
}

// InsertAtEnd - append a value
func (l *Singly) InsertAtEnd(value int) {
	n := &singlyNode{value: value}
	l.count += 1

	if nil == l.head {
		l.head = n
		return
	}
	p := l.head
	for nil != p.next {
		p = p.next
	}
	p.next = n
}

// InsertAtPosition - insert so that the value ends up at pos,
// pos == Length() appends
func (l *Singly) InsertAtPosition(value int, pos int) error {
	if pos < 0 {
		return fault.ErrNegativePosition
	}
	if pos > l.count {
		return fault.ErrPositionOutOfRange
	}
	if 0 == pos {
		l.InsertAtBeginning(value)
		return nil
	}

	p := l.head
	for i := 0; i < pos-1; i += 1 {
		p = p.next
	}
	p.next = &singlyNode{
		next:  p.next,
		value: value,
	}
	l.count += 1
	return nil
}

// InsertSorted - insert before the first value that is not smaller,
// keeps an ascending list ascending
func (l *Singly) InsertSorted(value int) {
	if nil == l.head || l.head.value >= value {
		l.InsertAtBeginning(value)
		return
	}
	p := l.head
	for nil != p.next && p.next.value < value {
		p = p.next
	}
	p.next = &singlyNode{
		next:  p.next,
		value: value,
	}
	l.count += 1
}

// DeleteFromBeginning - remove and return the first value
func (l *Singly) DeleteFromBeginning() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	value := l.head.value
	l.head = l.head.next
	l.count -= 1
	return value, nil
}

// DeleteFromEnd - remove and return the last value
func (l *Singly) DeleteFromEnd() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	if nil == l.head.next {
		return l.DeleteFromBeginning()
	}

	p := l.head
	for nil != p.next.next {
		p = p.next
	}
	value := p.next.value
	p.next = nil
	l.count -= 1
	return value, nil
}

// DeleteByValue - remove the first occurrence of value
func (l *Singly) DeleteByValue(value int) error {
	if nil == l.head {
		return fault.ErrListEmpty
	}
	if value == l.head.value {
		_, err := l.DeleteFromBeginning()
		return err
	}
	for p := l.head; nil != p.next; p = p.next {
		if value == p.next.value {
			p.next = p.next.next
			l.count -= 1
			return nil
		}
	}
	return fault.ErrValueNotFound
}

// DeleteAtPosition - remove and return the value at pos
func (l *Singly) DeleteAtPosition(pos int) (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	if pos < 0 {
		return 0, fault.ErrNegativePosition
	}
	if pos >= l.count {
		return 0, fault.ErrPositionOutOfRange
	}
	if 0 == pos {
		return l.DeleteFromBeginning()
	}

	p := l.head
	for i := 0; i < pos-1; i += 1 {
		p = p.next
	}
	value := p.next.value
	p.next = p.next.next
	l.count -= 1
	return value, nil
}

// Search - position of the first occurrence of value
func (l *Singly) Search(value int) (int, bool) {
	i := 0
	for p := l.head; nil != p; p = p.next {
		if value == p.value {
			return i, true
		}
		i += 1
	}
	return -1, false
}

// Length - number of values
func (l *Singly) Length() int {
	return l.count
}

// ElementAt - value at pos
func (l *Singly) ElementAt(pos int) (int, error) {
	if pos < 0 {
		return 0, fault.ErrNegativePosition
	}
	if pos >= l.count {
		return 0, fault.ErrPositionOutOfRange
	}
	p := l.head
	for i := 0; i < pos; i += 1 {
		p = p.next
	}
	return p.value, nil
}

// Middle - the middle value found with a slow and a fast pointer, for
// an even length this is the second of the two middle values
func (l *Singly) Middle() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	slow := l.head
	fast := l.head
	for nil != fast && nil != fast.next {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.value, nil
}

// Reverse - reverse the links in place
func (l *Singly) Reverse() {
	var previous *singlyNode
	p := l.head
	for nil != p {
		next := p.next
		p.next = previous
		previous = p
		p = next
	}
	l.head = previous
}

// Values - the values from head to end
func (l *Singly) Values() []int {
	values := make([]int, 0, l.count)
	for p := l.head; nil != p; p = p.next {
		values = append(values, p.value)
	}
	return values
}

// String - e.g. "10 -> 20 -> NULL"
func (l *Singly) String() string {
	var b strings.Builder
	for p := l.head; nil != p; p = p.next {
		b.WriteString(strconv.Itoa(p.value))
		b.WriteString(" -> ")
	}
	b.WriteString("NULL")
	return b.String()
}
