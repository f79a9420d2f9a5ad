// Package container provides the linear container primitives the rest of
// the library builds on: a singly linked List, a LIFO Stack, and a FIFO
// Queue.
//
// What
//
//   - List[T]: head-owned singly linked list with Append, Prepend and
//     first-match Delete. Length is not cached; Len walks the chain.
//   - Stack[T]: resizable-array LIFO with O(1) amortized Push/Pop/Peek.
//   - Queue[T]: growable ring buffer with O(1) amortized operations at
//     both ends.
//
// Why
//
//   - The traversal packages ride these primitives on purpose: bfs uses
//     Queue for its frontier, dfs uses Stack for its iterative engine,
//     bintree uses Queue for level order.
//
// Accessors on empty containers return (zero, false) rather than
// panicking; that second return is the contract, check it.
//
// None of the containers are safe for concurrent use. The library assumes
// a single caller per structure instance throughout.
package container
