package stack

import "errors"

var (
	// ErrInvalidArgument is returned by New for an out of range configuration.
	ErrInvalidArgument = errors.New("stack: invalid argument")
	// ErrIllegalState is returned by Push once the stack holds MaxSize elements.
	ErrIllegalState = errors.New("stack: illegal state")
	// ErrEmptyCollection is returned by Pop and Peek on an empty stack.
	ErrEmptyCollection = errors.New("stack: empty collection")
	// ErrIndexOutOfBounds is returned by Get for an index outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("stack: index out of bounds")
)
