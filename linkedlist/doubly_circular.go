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

// DoublyCircular - a ring linked in both directions, head.prev is the
// tail
type DoublyCircular struct {
	head  *doublyNode
	count int
}

// NewDoublyCircular - create an empty ring
func NewDoublyCircular() *DoublyCircular {
	return &DoublyCircular{}
}

// link a new node in front of the head, i.e. as the new tail
func (l *DoublyCircular) push(value int) *doublyNode {
	n := &doublyNode{value: value}
	if nil == l.head {
		n.prev = n
		n.next = n
		l.head = n
	} else {
		tail := l.head.prev
		n.prev = tail
		n.next = l.head
		tail.next = n
		l.head.prev = n
	}
	l.count += 1
	return n
}

// InsertAtBeginning - the new node becomes the head
func (l *DoublyCircular) InsertAtBeginning(value int) {
	l.head = l.push(value)
}

// InsertAtEnd - the new node becomes the tail
func (l *DoublyCircular) InsertAtEnd(value int) {
	l.push(value)
}

// DeleteFromBeginning - remove and return the head value
func (l *DoublyCircular) DeleteFromBeginning() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	return l.unlink(l.head), nil
}

// DeleteFromEnd - remove and return the tail value
func (l *DoublyCircular) DeleteFromEnd() (int, error) {
	if nil == l.head {
		return 0, fault.ErrListEmpty
	}
	return l.unlink(l.head.prev), nil
}

// DeleteByValue - remove the first occurrence of value, counting from
// the head
func (l *DoublyCircular) DeleteByValue(value int) error {
	if nil == l.head {
		return fault.ErrListEmpty
	}
	p := l.head
	for i := 0; i < l.count; i += 1 {
		if value == p.value {
			l.unlink(p)
			return nil
		}
		p = p.next
	}
	return fault.ErrValueNotFound
}

func (l *DoublyCircular) unlink(n *doublyNode) int {
	if n.next == n {
		l.head = nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
		if n == l.head {
			l.head = n.next
		}
	}
	n.prev = nil
	n.next = nil
	l.count -= 1
	return n.value
}

// Search - position of the first occurrence of value, counting from
// the head
func (l *DoublyCircular) Search(value int) (int, bool) {
	p := l.head
	for i := 0; i < l.count; i += 1 {
		if value == p.value {
			return i, true
		}
		p = p.next
	}
	return -1, false
}

// Length - number of values
func (l *DoublyCircular) Length() int {
	return l.count
}

// Forward - one trip round the ring following next from the head
func (l *DoublyCircular) Forward() []int {
	values := make([]int, 0, l.count)
	if nil == l.head {
		return values
	}
	p := l.head
	for {
		values = append(values, p.value)
		p = p.next
		if p == l.head {
			break
		}
	}
	return values
}

// Backward - one trip round the ring following prev from the tail
func (l *DoublyCircular) Backward() []int {
	values := make([]int, 0, l.count)
	if nil == l.head {
		return values
	}
	tail := l.head.prev
	p := tail
	for {
		values = append(values, p.value)
		p = p.prev
		if p == tail {
			break
		}
	}
	return values
}

// String - e.g. "10 <-> 20 <-> (head)"
func (l *DoublyCircular) String() string {
	if nil == l.head {
		return "(empty)"
	}
	var b strings.Builder
	for _, v := range l.Forward() {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" <-> ")
	}
	b.WriteString("(head)")
	return b.String()
}
