package bintree

import "github.com/velkatra/algolith/container"

// InOrder returns the values in left, node, right order.
// On a binary search tree this is ascending order.
//
// Complexity: O(n) time, O(h) stack.
func InOrder[T any](root *Node[T]) []T {
	var out []T
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(root)

	return out
}

// PreOrder returns the values in node, left, right order.
//
// Complexity: O(n) time, O(h) stack.
func PreOrder[T any](root *Node[T]) []T {
	var out []T
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}

// PostOrder returns the values in left, right, node order.
//
// Complexity: O(n) time, O(h) stack.
func PostOrder[T any](root *Node[T]) []T {
	var out []T
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.Value)
	}
	walk(root)

	return out
}

// LevelOrder returns the values breadth-first: depth 0 first, then each
// deeper level left to right. The frontier is a container.Queue, the same
// discipline the bfs package applies to graphs.
//
// Complexity: O(n) time, O(w) space for the widest level.
func LevelOrder[T any](root *Node[T]) []T {
	if root == nil {
		return nil
	}

	var out []T
	frontier := container.NewQueue[*Node[T]]()
	frontier.Enqueue(root)
	for !frontier.IsEmpty() {
		n, _ := frontier.Dequeue()
		out = append(out, n.Value)
		if n.Left != nil {
			frontier.Enqueue(n.Left)
		}
		if n.Right != nil {
			frontier.Enqueue(n.Right)
		}
	}

	return out
}
