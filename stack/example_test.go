package stack_test

import (
	"errors"
	"fmt"

	"github.com/tedmax100/lifo/stack"
)

func ExampleOf() {
	s := stack.Of("first", "second", "third")

	for v := range s.PopAll() {
		fmt.Println(v)
	}
	// Output:
	// first
	// second
	// third
}

func ExampleStack_Push() {
	s := stack.MustNew[int](stack.WithInitialCapacity(2), stack.WithMaxSize(2))

	fmt.Println(s.Push(1))
	fmt.Println(s.Push(2))
	err := s.Push(3)
	fmt.Println(errors.Is(err, stack.ErrIllegalState), s)
	// Output:
	// <nil>
	// <nil>
	// true Stack[2 1]
}

func ExampleStack_Get() {
	s := stack.Of(10, 20, 30)

	top, _ := s.Get(0)
	bottom, _ := s.Get(s.Len() - 1)
	_, err := s.Get(3)
	fmt.Println(top, bottom, errors.Is(err, stack.ErrIndexOutOfBounds))
	// Output:
	// 10 30 true
}
