package stack

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Of returns a stack holding items with items[0] on top, so popping yields
// them in the order they were listed. Its capacity equals len(items) and it
// uses the default scale factor and max size.
func Of[T comparable](items ...T) *Stack[T] {
	return wrap(lo.Reverse(slices.Clone(items)))
}

// FromSlice is Of for an existing slice. The slice is copied, never aliased.
func FromSlice[T comparable](items []T) *Stack[T] {
	return Of(items...)
}

// FromSeq drains seq once, in order, and returns a stack with the first
// yielded value on top. seq must be finite.
func FromSeq[T comparable](seq iter.Seq[T]) *Stack[T] {
	return wrap(lo.Reverse(slices.Collect(seq)))
}

// wrap takes ownership of items, which must already be in storage order.
func wrap[T comparable](items []T) *Stack[T] {
	if items == nil {
		items = []T{}
	}
	return &Stack[T]{
		items:       items,
		size:        len(items),
		scaleFactor: DefaultScaleFactor,
		maxSize:     DefaultMaxSize,
	}
}
