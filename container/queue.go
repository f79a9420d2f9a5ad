package container

// minQueueCap is the smallest ring allocation; doubling proceeds from here.
const minQueueCap = 8

// Queue is a FIFO container backed by a growable ring buffer, so both
// Enqueue and Dequeue run in O(1) amortized time with no per-element
// allocation.
//
// The zero value is an empty queue, ready to use. Dequeue and Front on
// an empty queue return (zero, false).
type Queue[T any] struct {
	buf  []T
	head int // index of the front element
	size int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the back of the queue.
//
// Complexity: O(1) amortized
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the front element.
// It returns (zero, false) when the queue is empty.
//
// Complexity: O(1)
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // drop the reference so it can be collected
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, true
}

// Front returns the front element without removing it.
// It returns (zero, false) when the queue is empty.
//
// Complexity: O(1)
func (q *Queue[T]) Front() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// grow doubles the ring and unwinds the wrap so head restarts at zero.
func (q *Queue[T]) grow() {
	capacity := len(q.buf) * 2
	if capacity < minQueueCap {
		capacity = minQueueCap
	}
	next := make([]T, capacity)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
