package container

// Stack is a LIFO container backed by a resizable array.
//
// The zero value is an empty stack, ready to use. Pop and Peek on an
// empty stack return (zero, false); callers branch on the bool rather
// than recover from a panic.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
//
// Complexity: O(1) amortized
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// It returns (zero, false) when the stack is empty.
//
// Complexity: O(1) amortized
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero // drop the reference so it can be collected
	s.items = s.items[:last]

	return v, true
}

// Peek returns the top element without removing it.
// It returns (zero, false) when the stack is empty.
//
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
