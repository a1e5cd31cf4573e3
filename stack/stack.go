// Package stack implements a generic last-in, first-out container.
package stack

import (
	"iter"
)

// Stack is a LIFO container backed by a slice. Index 0 is the bottom and
// the last element is the top.
//
// The zero value is an empty stack ready to use. A Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	values []T
}

// New returns a stack holding a copy of items, the first item at the bottom.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	if len(items) > 0 {
		s.values = make([]T, len(items))
		copy(s.values, items)
	}
	return s
}

// From drains seq into a new stack. A nil seq gives an empty stack.
func From[T any](seq iter.Seq[T]) *Stack[T] {
	return new(Stack[T]).PushAll(seq)
}

// Push puts value on top and returns s so pushes can be chained.
func (s *Stack[T]) Push(value T) *Stack[T] {
	s.values = append(s.values, value)
	return s
}

// PushAll pushes every element of seq in order.
func (s *Stack[T]) PushAll(seq iter.Seq[T]) *Stack[T] {
	if seq == nil {
		return s
	}
	for v := range seq {
		s.values = append(s.values, v)
	}
	return s
}

// Pop removes and returns the top element. The bool is false, and the stack
// untouched, when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.IsEmpty() {
		return zero, false
	}

	index := len(s.values) - 1
	el := s.values[index]
	s.values[index] = zero
	s.values = s.values[:index]
	return el, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.values[len(s.values)-1], true
}

func (s *Stack[T]) Size() int {
	return len(s.values)
}

// Len is the same as Size.
func (s *Stack[T]) Len() int {
	return s.Size()
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// ToSlice returns a copy of the contents from bottom to top. It is never nil.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Clear removes every element. The backing array is kept for reuse.
func (s *Stack[T]) Clear() {
	clear(s.values)
	s.values = s.values[:0]
}

// Clone returns an independent stack with the same elements. Elements are
// copied by value, so pointers in T are shared.
func (s *Stack[T]) Clone() *Stack[T] {
	return New(s.values...)
}
