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

type doublyNode struct {
	prev  *doublyNode
	next  *doublyNode
	value int
}

// Doubly - a NULL terminated list linked in both directions
type Doubly struct {
	head  *doublyNode
	tail  *doublyNode
	count int
}

// NewDoubly - create an empty list
func NewDoubly() *Doubly {
	return &Doubly{}
}

// InsertAtBeginning - push a value on the front
func (l *Doubly) InsertAtBeginning(value int) {
	n := &doublyNode{
		next:  l.head,
		value: value,
	}
	if nil == l.head {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.count += 1
}

// InsertAtEnd - append a value
func (l *Doubly) InsertAtEnd(value int) {
	n := &doublyNode{
		prev:  l.tail,
		value: value,
	}
	if nil == l.tail {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count += 1
}

// InsertAtPosition - insert so that the value ends up at pos,
// pos == Length() appends
func (l *Doubly) InsertAtPosition(value int, pos int) error {
	switch {
	case pos < 0:
		return fault.ErrNegativePosition
	case pos > l.count:
		return fault.ErrPositionOutOfRange
	case 0 == pos:
		l.InsertAtBeginning(value)
		return nil
	case l.count == pos:
		l.InsertAtEnd(value)
		return nil
	}

	p := l.head
	for i := 0; i < pos-1; i += 1 {
		p = p.next
	}
	n := &doublyNode{
		prev:  p,
		next:  p.next,
		value: value,
	}
	p.next.prev = n
	p.next = n
	l.count += 1
	return nil
}

// DeleteFromBeginning - remove and return the first value
func (l *Doubly) DeleteFromBeginning() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	n := l.head
	l.unlink(n)
	return n.value, nil
}

// DeleteFromEnd - remove and return the last value
func (l *Doubly) DeleteFromEnd() (int, error) {
	if nil == l.tail {
		return 0, fault.ErrListEmpty
	}
	n := l.tail
	l.unlink(n)
	return n.value, nil
}

// DeleteByValue - remove the first occurrence of value
func (l *Doubly) DeleteByValue(value int) error {
	if nil == l.head {
		return fault.ErrListEmpty
	}
	for p := l.head; nil != p; p = p.next {
		if value == p.value {
			l.unlink(p)
			return nil
		}
	}
	return fault.ErrValueNotFound
}

func (l *Doubly) unlink(n *doublyNode) {
	if nil == n.prev {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if nil == n.next {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.count -= 1
}

// Search - position of the first occurrence of value
func (l *Doubly) Search(value int) (int, bool) {
	i := 0
	for p := l.head; nil != p; p = p.next {
		if value == p.value {
			return i, true
		}
		i += 1
	}
	return -1, false
}

// Reverse - swap the links of every node, head and tail exchange places
func (l *Doubly) Reverse() {
	for p := l.head; nil != p; p = p.prev {
		p.prev, p.next = p.next, p.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Length - number of values
func (l *Doubly) Length() int {
	return l.count
}

// Forward - values from head to tail
func (l *Doubly) Forward() []int {
	values := make([]int, 0, l.count)
	for p := l.head; nil != p; p = p.next {
		values = append(values, p.value)
	}
	return values
}

// Backward - values from tail to head
func (l *Doubly) Backward() []int {
	values := make([]int, 0, l.count)
	for p := l.tail; nil != p; p = p.prev {
		values = append(values, p.value)
	}
	return values
}

// String - e.g. "NULL <- 10 <-> 20 -> NULL"
func (l *Doubly) String() string {
	if nil == l.head {
		return "NULL"
	}
	var b strings.Builder
	b.WriteString("NULL <- ")
	for p := l.head; nil != p; p = p.next {
		b.WriteString(strconv.Itoa(p.value))
		if nil != p.next {
			b.WriteString(" <-> ")
		}
	}
	b.WriteString(" -> NULL")
	return b.String()
}
