package binheap

import "cmp"

// Heap is a binary heap ordered by a less function: the element at the
// root is the minimum under less. Invert the comparator for a max heap.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewMin returns a min-heap for ordered element types: Pop yields the
// smallest value first.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns a max-heap for ordered element types: Pop yields the
// largest value first. It is NewMin with the comparison flipped.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// FromSlice builds a heap over a copy of items in O(n) by sifting down
// every internal node, last parent first. The input slice is not
// modified.
func FromSlice[T any](items []T, less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{
		items: append([]T(nil), items...),
		less:  less,
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Push adds v to the heap.
//
// Complexity: O(log n)
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root, the minimum under less.
// It returns (zero, false) when the heap is empty.
//
// Complexity: O(log n)
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(h.items) - 1
	root := h.items[0]
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference so it can be collected
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, true
}

// Peek returns the root without removing it.
// It returns (zero, false) when the heap is empty.
//
// Complexity: O(1)
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// siftUp restores the heap property on the path from i to the root.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown restores the heap property on the subtree rooted at i.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		top := i
		if l := 2*i + 1; l < n && h.less(h.items[l], h.items[top]) {
			top = l
		}
		if r := 2*i + 2; r < n && h.less(h.items[r], h.items[top]) {
			top = r
		}
		if top == i {
			return
		}
		h.items[i], h.items[top] = h.items[top], h.items[i]
		i = top
	}
}
