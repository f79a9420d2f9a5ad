package bst

import (
	"cmp"

	"github.com/velkatra/algolith/bintree"
)

// Tree is a binary search tree over ordered values.
//
// Root is exported so the bintree traversals can walk it directly; treat
// it as read-only and let Insert/Delete maintain the ordering invariant.
//
// The zero value is an empty tree, ready to use.
type Tree[T cmp.Ordered] struct {
	Root *bintree.Node[T]
}

// New returns an empty Tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds v to the tree. Duplicates are kept and descend to the
// right of their equal.
//
// Complexity: O(h)
func (t *Tree[T]) Insert(v T) {
	t.Root = insert(t.Root, v)
}

func insert[T cmp.Ordered](n *bintree.Node[T], v T) *bintree.Node[T] {
	if n == nil {
		return bintree.NewNode(v)
	}
	if v < n.Value {
		n.Left = insert(n.Left, v)
	} else {
		n.Right = insert(n.Right, v)
	}

	return n
}

// Search returns the topmost node holding v, or nil when v is absent.
//
// Complexity: O(h)
func (t *Tree[T]) Search(v T) *bintree.Node[T] {
	n := t.Root
	for n != nil && n.Value != v {
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	return n
}

// Contains reports whether v occurs in the tree.
//
// Complexity: O(h)
func (t *Tree[T]) Contains(v T) bool {
	return t.Search(v) != nil
}

// Delete removes one occurrence of v and reports whether anything was
// removed. Deleting an absent value leaves the tree untouched.
//
// A node with two children exchanges values with its in-order successor
// (the minimum of the right subtree); the successor node is then deleted
// from the right subtree, which terminates because that recursion meets
// at most a one-child case.
//
// Complexity: O(h)
func (t *Tree[T]) Delete(v T) bool {
	var removed bool
	t.Root = remove(t.Root, v, &removed)

	return removed
}

func remove[T cmp.Ordered](n *bintree.Node[T], v T, removed *bool) *bintree.Node[T] {
	if n == nil {
		return nil
	}
	switch {
	case v < n.Value:
		n.Left = remove(n.Left, v, removed)
	case v > n.Value:
		n.Right = remove(n.Right, v, removed)
	default:
		*removed = true
		// 1) At most one child: splice the node out.
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		// 2) Two children: adopt the in-order successor's value, then
		//    delete that successor from the right subtree.
		succ := minNode(n.Right)
		n.Value = succ.Value
		n.Right = remove(n.Right, succ.Value, removed)
	}

	return n
}

// Min returns the smallest value in the tree.
// It returns (zero, false) when the tree is empty.
//
// Complexity: O(h)
func (t *Tree[T]) Min() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.Root).Value, true
}

// Max returns the largest value in the tree.
// It returns (zero, false) when the tree is empty.
//
// Complexity: O(h)
func (t *Tree[T]) Max() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	n := t.Root
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, true
}

// Values returns every value in ascending order via an in-order walk.
func (t *Tree[T]) Values() []T {
	return bintree.InOrder(t.Root)
}

// Len returns the number of values stored.
//
// Complexity: O(n) — the size is not cached.
func (t *Tree[T]) Len() int {
	return bintree.Count(t.Root)
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.Root == nil
}

// minNode descends the left spine; n must be non-nil.
func minNode[T cmp.Ordered](n *bintree.Node[T]) *bintree.Node[T] {
	for n.Left != nil {
		n = n.Left
	}

	return n
}
