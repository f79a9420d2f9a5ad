// Package bst implements an unbalanced binary search tree over ordered
// element types.
//
// What
//
//   - Tree[T]: Insert, Search, Delete, Min, Max over bintree.Node links,
//     so every bintree traversal applies to the Root unchanged.
//   - The ordering invariant: values strictly less than a node live in
//     its left subtree, values greater or equal live in its right
//     subtree. Duplicates are therefore admitted, on the right.
//
// Why
//
//   - Ordered dictionaries without hashing: Search costs O(h), and an
//     in-order walk of the Root yields the values ascending.
//
// Complexity
//
//	Insert / Search / Delete: O(h), where h is the current height.
//	No rebalancing is performed, so h degrades to O(n) under sorted
//	insertion order and stays near O(log n) under shuffled input.
//
// Deletion follows the classic three cases: a leaf vanishes, a node with
// one child is spliced out, and a node with two children swaps values
// with its in-order successor before the successor is deleted from the
// right subtree.
package bst
