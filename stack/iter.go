package stack

import "iter"

// All returns an iterator over the elements from bottom to top.
// Each pass sees the contents as they were when the pass started.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		values := s.values
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from top to bottom, the
// order in which Pop would return them.
func (s *Stack[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		values := s.values
		for i := len(values) - 1; i >= 0; i-- {
			if !yield(values[i]) {
				return
			}
		}
	}
}
