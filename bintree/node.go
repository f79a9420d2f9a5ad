package bintree

// Node is one vertex of a binary tree: a value and two child links.
// A nil *Node is a valid empty tree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a leaf node carrying v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil tree has height 0.
//
// Complexity: O(n)
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	lh := Height(root.Left)
	rh := Height(root.Right)
	if lh > rh {
		return lh + 1
	}

	return rh + 1
}

// Count returns the number of nodes in the tree.
//
// Complexity: O(n)
func Count[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + Count(root.Left) + Count(root.Right)
}
