package stack

import "github.com/samber/mo"

// PeekOption is Peek with the result wrapped in an Option.
func (s *Stack[T]) PeekOption() mo.Option[T] {
	return mo.TupleToOption(s.Peek())
}

// PopOption is Pop with the result wrapped in an Option. None means the
// stack was empty and nothing was removed.
func (s *Stack[T]) PopOption() mo.Option[T] {
	return mo.TupleToOption(s.Pop())
}
