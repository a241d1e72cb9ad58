package stack

import "iter"

// Iterator walks a stack one element at a time.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

var (
	_ Iterator[int] = (*DrainIterator[int])(nil)
	_ Iterator[int] = (*ViewIterator[int])(nil)
)

// DrainIterator pops the stack as it goes. It reads the live stack rather
// than a snapshot, so pushes made while draining are returned too.
type DrainIterator[T comparable] struct {
	s *Stack[T]
}

// Drain returns an iterator that empties the stack top first.
func (s *Stack[T]) Drain() *DrainIterator[T] {
	return &DrainIterator[T]{s: s}
}

func (it *DrainIterator[T]) HasNext() bool {
	return it.s.size > 0
}

func (it *DrainIterator[T]) Next() (T, error) {
	return it.s.Pop()
}

// ViewIterator reads the stack top to bottom without modifying it. It is a
// live view: a Push or Pop during iteration shifts what later calls see.
type ViewIterator[T comparable] struct {
	s   *Stack[T]
	pos int
}

// Iter returns a non-destructive iterator starting at the top.
func (s *Stack[T]) Iter() *ViewIterator[T] {
	return &ViewIterator[T]{s: s}
}

func (it *ViewIterator[T]) HasNext() bool {
	return it.pos < it.s.size
}

func (it *ViewIterator[T]) Next() (T, error) {
	v, err := it.s.Get(it.pos)
	if err != nil {
		return v, err
	}
	it.pos++
	return v, nil
}

// All yields index/element pairs from the top down without modifying the
// stack.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it := s.Iter(); it.HasNext(); {
			i := it.pos
			v, _ := it.Next()
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements from the top down without modifying the stack.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// PopAll pops and yields elements until the stack is empty or the loop
// breaks. Elements not yet yielded stay on the stack.
func (s *Stack[T]) PopAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.Drain(); it.HasNext(); {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}
