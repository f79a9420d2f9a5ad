// Package algolith is a self-contained, in-memory library of classical
// data structures and algorithms — the structures you learn first and
// reach for forever.
//
// 🚀 What is algolith?
//
//	A deterministic, single-threaded toolkit that brings together:
//		• Linear containers: singly linked list, stack, queue
//		• Trees: binary tree (four traversal orders), binary search tree
//		• Heaps: generic min-heap and max-heap over one sift engine
//		• Hash table: separate chaining with optional rehash
//		• Graph: insertion-ordered adjacency lists, directed or undirected
//		• Sorting: bubble, selection, insertion, merge, quick, heap, counting
//		• Searching: linear, binary (two forms), jump
//		• Graph algorithms: BFS, DFS, Dijkstra, Bellman-Ford, Kahn toposort
//		• Dynamic programming: Fibonacci, knapsack, LCS, edit distance, coins, LIS
//		• Greedy: activity selection, fractional knapsack, Huffman coding
//		• Backtracking: permutations, combinations, N-Queens, Sudoku
//		• Strings: KMP, Rabin-Karp, longest palindromic substring
//
// ✨ Why choose algolith?
//
//   - Deterministic – insertion-ordered iteration, reproducible results
//   - Honest contracts – empty-safe (value, ok) returns, sentinel errors,
//     documented preconditions instead of hidden validation
//   - Pure Go – no cgo, no I/O, no goroutines, no hidden state
//   - Generic – cmp.Ordered bounds and comparator variants where order
//     belongs to the caller
//
// Every package is independent except where the design wires them on
// purpose: traversals ride the container primitives, Dijkstra and Huffman
// ride the heap, and the search family assumes the sort family's output.
//
//	container/   — List, Stack, Queue primitives
//	bintree/     — binary tree nodes & traversals
//	bst/         — binary search tree over bintree nodes
//	binheap/     — comparator heap, NewMin / NewMax
//	hashtable/   — chained hash table
//	graph/       — adjacency-list graph
//	sorting/     — seven sorts + comparator variants
//	searching/   — linear, binary, jump
//	bfs/ dfs/    — traversal over graph
//	dijkstra/    — shortest paths, non-negative weights
//	bellmanford/ — shortest paths with negative-cycle detection
//	toposort/    — Kahn's algorithm
//	dp/ greedy/ backtrack/ strsearch/ — the algorithm families
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four vertices, four edges; bfs.BFS(g, "A") visits A, B, C, D.
package algolith
