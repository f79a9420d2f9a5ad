package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkatra/algolith/container"
)

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestList_AppendPreservesOrder(t *testing.T) {
	var l container.List[int]
	for i := 1; i <= 5; i++ {
		l.Append(i)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
	assert.Equal(t, 5, l.Len())
}

func TestList_PrependReversesOrder(t *testing.T) {
	var l container.List[string]
	l.Prepend("c")
	l.Prepend("b")
	l.Prepend("a")

	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
}

func TestList_DeleteHead(t *testing.T) {
	l := container.NewList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	require.True(t, l.Delete(1))
	assert.Equal(t, []int{2, 3}, l.Values())
}

func TestList_DeleteMiddleAndTail(t *testing.T) {
	l := container.NewList[int]()
	for _, v := range []int{1, 2, 3, 4} {
		l.Append(v)
	}

	require.True(t, l.Delete(3))
	require.True(t, l.Delete(4))
	assert.Equal(t, []int{1, 2}, l.Values())
}

func TestList_DeleteFirstMatchOnly(t *testing.T) {
	l := container.NewList[int]()
	for _, v := range []int{7, 5, 7, 5} {
		l.Append(v)
	}

	require.True(t, l.Delete(5))
	assert.Equal(t, []int{7, 7, 5}, l.Values(),
		"only the first matching node should be removed")
}

func TestList_DeleteMissing(t *testing.T) {
	l := container.NewList[int]()
	l.Append(1)

	assert.False(t, l.Delete(42))
	assert.False(t, container.NewList[int]().Delete(42), "delete on empty list")
	assert.Equal(t, []int{1}, l.Values())
}

func TestList_Contains(t *testing.T) {
	l := container.NewList[string]()
	l.Append("x")
	l.Append("y")

	assert.True(t, l.Contains("y"))
	assert.False(t, l.Contains("z"))
}

func TestList_EmptyBehaviour(t *testing.T) {
	var l container.List[int]

	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Values())
	assert.Equal(t, "", l.String())
}

func TestList_String(t *testing.T) {
	l := container.NewList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	assert.Equal(t, "1 -> 2 -> 3", l.String())
}

// ---------------------------------------------------------------------------
// Stack
// ---------------------------------------------------------------------------

func TestStack_LIFOOrder(t *testing.T) {
	s := container.NewStack[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	var s container.Stack[string]
	s.Push("a")
	s.Push("b")

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len())
}

func TestStack_EmptyAccessors(t *testing.T) {
	var s container.Stack[int]

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Len())
}

func TestStack_ReusableAfterDrain(t *testing.T) {
	var s container.Stack[int]
	s.Push(1)
	_, _ = s.Pop()
	s.Push(2)

	got, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

// ---------------------------------------------------------------------------
// Queue
// ---------------------------------------------------------------------------

func TestQueue_FIFOOrder(t *testing.T) {
	q := container.NewQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}

	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_FrontDoesNotRemove(t *testing.T) {
	var q container.Queue[string]
	q.Enqueue("a")
	q.Enqueue("b")

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, "a", front)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_EmptyAccessors(t *testing.T) {
	var q container.Queue[int]

	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Front()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Len())
}

// Interleaved enqueue/dequeue forces the ring to wrap and to grow while
// wrapped; order must survive both.
func TestQueue_WrapAroundAndGrowth(t *testing.T) {
	var q container.Queue[int]
	next := 0 // next value to enqueue
	want := 0 // next value expected from dequeue

	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 5; i++ {
			got, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, want, got)
			want++
		}
	}
	for !q.IsEmpty() {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
		want++
	}

	assert.Equal(t, next, want, "every enqueued value must come back out")
}
