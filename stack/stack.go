// Package stack provides a growable LIFO container with an optional hard
// ceiling on its size.
//
// Elements are addressed from the top: index 0 is the most recently pushed
// element and index Len()-1 the oldest one.
//
// A Stack is not safe for concurrent use. Callers that share one between
// goroutines must synchronize every call themselves.
package stack

import (
	"fmt"
	"math"

	"github.com/samber/mo"
)

// Stack is a LIFO container backed by a single slice that grows on demand.
type Stack[T comparable] struct {
	// items[:size] are live with the top at items[size-1];
	// items[size:] always hold the zero value.
	items       []T
	size        int
	scaleFactor float64
	maxSize     int
}

// New returns an empty stack. Without options it allocates
// DefaultInitialCapacity slots, grows by DefaultScaleFactor and never
// refuses a push. An invalid configuration returns ErrInvalidArgument and a
// nil stack.
func New[T comparable](opts ...Option) (*Stack[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Stack[T]{
		items:       make([]T, cfg.initialCapacity),
		scaleFactor: cfg.scaleFactor,
		maxSize:     cfg.maxSize,
	}, nil
}

// MustNew is like New but panics if the configuration is invalid.
func MustNew[T comparable](opts ...Option) *Stack[T] {
	s, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// MaxSize returns the ceiling on Len.
func (s *Stack[T]) MaxSize() int {
	return s.maxSize
}

// ScaleFactor returns the growth multiplier.
func (s *Stack[T]) ScaleFactor() float64 {
	return s.scaleFactor
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Push places v on top of the stack, growing the backing slice when it is
// full. Once Len reaches MaxSize it returns ErrIllegalState and leaves the
// stack untouched.
func (s *Stack[T]) Push(v T) error {
	if s.size >= s.maxSize {
		return fmt.Errorf("%w: stack is at its max size of %d", ErrIllegalState, s.maxSize)
	}
	if s.size == len(s.items) {
		s.grow()
	}

	s.items[s.size] = v
	s.size++
	return nil
}

// grow reallocates to min(maxSize, max(cap+1, floor(cap*scaleFactor))).
func (s *Stack[T]) grow() {
	capacity := len(s.items)
	next := capacity + 1
	if scaled := math.Floor(float64(capacity) * s.scaleFactor); scaled > float64(next) {
		if scaled >= float64(s.maxSize) {
			next = s.maxSize
		} else {
			next = int(scaled)
		}
	}
	next = min(next, s.maxSize)

	items := make([]T, next)
	copy(items, s.items[:s.size])
	s.items = items
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.size == 0 {
		return zero, fmt.Errorf("%w: pop", ErrEmptyCollection)
	}

	s.size--
	v := s.items[s.size]
	s.items[s.size] = zero
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek", ErrEmptyCollection)
	}
	return s.items[s.size-1], nil
}

// TryPop is Pop for callers that treat an empty stack as a normal outcome.
func (s *Stack[T]) TryPop() mo.Option[T] {
	v, err := s.Pop()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// TryPeek is Peek for callers that treat an empty stack as a normal outcome.
func (s *Stack[T]) TryPeek() mo.Option[T] {
	v, err := s.Peek()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// Get returns the element at index, counted from the top.
func (s *Stack[T]) Get(index int) (T, error) {
	if index < 0 || index >= s.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, s.size)
	}
	return s.items[s.size-1-index], nil
}

// Clear removes every element. The allocated capacity is kept.
func (s *Stack[T]) Clear() {
	clear(s.items[:s.size])
	s.size = 0
}

// Contains reports whether v is on the stack.
func (s *Stack[T]) Contains(v T) bool {
	for _, e := range s.items[:s.size] {
		if e == v {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every one of vs is on the stack.
func (s *Stack[T]) ContainsAll(vs ...T) bool {
	for _, v := range vs {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// ToSlice returns the elements top first. The stack is not modified.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, s.size)
	for i := range out {
		out[i] = s.items[s.size-1-i]
	}
	return out
}

// PopToSlice pops every element into a slice, top first, leaving the stack
// empty.
func (s *Stack[T]) PopToSlice() []T {
	out := make([]T, s.size)
	for i := range out {
		out[i], _ = s.Pop()
	}
	return out
}

// Clone returns an independent copy with the same capacity and settings.
func (s *Stack[T]) Clone() *Stack[T] {
	items := make([]T, len(s.items))
	copy(items, s.items[:s.size])
	return &Stack[T]{
		items:       items,
		size:        s.size,
		scaleFactor: s.scaleFactor,
		maxSize:     s.maxSize,
	}
}

// String lists the elements top first, e.g. "Stack[3 2 1]".
func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack%v", s.ToSlice())
}
