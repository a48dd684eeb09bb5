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

// SinglyCircular - a ring of singly linked nodes reached through its
// tail, tail.next is the head
type SinglyCircular struct {
	tail  *singlyNode
	count int
}

// NewSinglyCircular - create an empty ring
func NewSinglyCircular() *SinglyCircular {
	return &SinglyCircular{}
}

func (l *SinglyCircular) push(value int) *singlyNode {
	n := &singlyNode{value: value}
	if nil == l.tail {
		n.next = n
		l.tail = n
	} else {
		n.next = l.tail.next
		l.tail.next = n
	}
	l.count += 1
	return n
}

// InsertAtBeginning - the new node becomes the head
func (l *SinglyCircular) InsertAtBeginning(value int) {
	l.push(value)
}

// InsertAtEnd - the new node becomes the tail
func (l *SinglyCircular) InsertAtEnd(value int) {
	l.tail = l.push(value)
}

// DeleteFromBeginning - remove and return the head value
func (l *SinglyCircular) DeleteFromBeginning() (int, error) {
	if nil == l.tail {
		return 0, fault.ErrListEmpty
	}
	return l.unlinkAfter(l.tail), nil
}

// DeleteFromEnd - remove and return the tail value
func (l *SinglyCircular) DeleteFromEnd() (int, error) {
	if nil == l.tail {
		return 0, fault.ErrListEmpty
	}
	p := l.tail
	for p.next != l.tail {
		p = p.next
	}
	return l.unlinkAfter(p), nil
}

// DeleteByValue - remove the first occurrence of value, counting from
// the head
func (l *SinglyCircular) DeleteByValue(value int) error {
	if nil == l.tail {
		return fault.ErrListEmpty
	}
	p := l.tail
	for i := 0; i < l.count; i += 1 {
		if value == p.next.value {
			l.unlinkAfter(p)
			return nil
		}
		p = p.next
	}
	return fault.ErrValueNotFound
}

// remove p.next from the ring
func (l *SinglyCircular) unlinkAfter(p *singlyNode) int {
	n := p.next
	if n == p {
		l.tail = nil
	} else {
		p.next = n.next
		if n == l.tail {
			l.tail = p
		}
	}
	n.next = nil
	l.count -= 1
	return n.value
}

// Search - position of the first occurrence of value, counting from
// the head
func (l *SinglyCircular) Search(value int) (int, bool) {
	if nil == l.tail {
		return -1, false
	}
	p := l.tail.next
	for i := 0; i < l.count; i += 1 {
		if value == p.value {
			return i, true
		}
		p = p.next
	}
	return -1, false
}

// Length - number of values
func (l *SinglyCircular) Length() int {
	return l.count
}

// Values - one trip round the ring starting at the head
func (l *SinglyCircular) Values() []int {
	values := make([]int, 0, l.count)
	if nil == l.tail {
		return values
	}
	p := l.tail.next
	for {
		values = append(values, p.value)
		if p == l.tail {
			break
		}
		p = p.next
	}
	return values
}

// String - e.g. "10 -> 20 -> (head)"
func (l *SinglyCircular) String() string {
	if nil == l.tail {
		return "(empty)"
	}
	var b strings.Builder
	for _, v := range l.Values() {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" -> ")
	}
	b.WriteString("(head)")
	return b.String()
}
