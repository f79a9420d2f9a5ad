package container

import (
	"fmt"
	"strings"
)

// listNode is one cell of a singly linked List.
// Each cell owns exactly one forward link; the List owns the head.
type listNode[T comparable] struct {
	data T
	next *listNode[T]
}

// List is a head-owned singly linked list.
//
// The zero value is an empty list, ready to use:
//
//	var l container.List[int]
//	l.Append(1)
//
// List requires comparable elements so Delete can locate the first match
// by value equality.
type List[T comparable] struct {
	head *listNode[T]
}

// NewList returns an empty List.
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// Append inserts v at the tail of the list.
//
// Complexity: O(n) — the list keeps no tail pointer.
func (l *List[T]) Append(v T) {
	n := &listNode[T]{data: v}
	if l.head == nil {
		l.head = n
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// Prepend inserts v at the head of the list.
//
// Complexity: O(1)
func (l *List[T]) Prepend(v T) {
	l.head = &listNode[T]{data: v, next: l.head}
}

// Delete removes the first node whose value equals v and reports whether
// a node was removed. The rest of the chain is untouched.
//
// Complexity: O(n)
func (l *List[T]) Delete(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.data == v {
		l.head = l.head.next
		return true
	}
	cur := l.head
	for cur.next != nil {
		if cur.next.data == v {
			cur.next = cur.next.next
			return true
		}
		cur = cur.next
	}

	return false
}

// Contains reports whether v occurs anywhere in the list.
//
// Complexity: O(n)
func (l *List[T]) Contains(v T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == v {
			return true
		}
	}
	return false
}

// Len returns the number of elements in the list.
//
// Complexity: O(n) — length is not cached.
func (l *List[T]) Len() int {
	count := 0
	for cur := l.head; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Values returns the elements in head-to-tail order.
// The returned slice is a copy; mutating it does not affect the list.
func (l *List[T]) Values() []T {
	var out []T
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}

	return out
}

// String renders the chain as "a -> b -> c"; an empty list renders as "".
func (l *List[T]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, cur.data)
	}

	return sb.String()
}
