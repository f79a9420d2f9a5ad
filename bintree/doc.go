// Package bintree defines the binary tree node and the four canonical
// traversals over it.
//
// What
//
//   - Node[T]: a value plus Left/Right child links. Nodes are plain
//     exported structs; callers may assemble any shape by hand, and the
//     bst package grows search trees out of the same node type.
//   - InOrder, PreOrder, PostOrder: the recursive depth-first orders.
//   - LevelOrder: breadth-first, top to bottom and left to right, driven
//     by a container.Queue frontier.
//
// Why
//
//   - In-order visits a search tree's values in sorted order; pre-order
//     reproduces the insertion shape; post-order frees or folds children
//     before parents; level-order groups values by depth.
//
// Complexity
//
//	Every traversal visits each node exactly once: O(n) time,
//	O(h) auxiliary space for the recursive orders (h = tree height)
//	and O(w) for level order (w = widest level).
//
// All traversals accept a nil root and return a nil slice for it.
package bintree
