package stack

import (
	"fmt"
	"math"
)

const (
	DefaultInitialCapacity = 8
	DefaultScaleFactor     = 1.5
	DefaultMaxSize         = math.MaxInt
)

type config struct {
	initialCapacity int
	scaleFactor     float64
	maxSize         int
}

func defaultConfig() config {
	return config{
		initialCapacity: DefaultInitialCapacity,
		scaleFactor:     DefaultScaleFactor,
		maxSize:         DefaultMaxSize,
	}
}

func (c config) validate() error {
	if c.initialCapacity < 0 {
		return fmt.Errorf("%w: initial capacity %d is negative", ErrInvalidArgument, c.initialCapacity)
	}
	if !(c.scaleFactor > 1.0) {
		return fmt.Errorf("%w: scale factor %v must be greater than 1", ErrInvalidArgument, c.scaleFactor)
	}
	if c.maxSize < 0 {
		return fmt.Errorf("%w: max size %d is negative", ErrInvalidArgument, c.maxSize)
	}
	if c.maxSize < c.initialCapacity {
		return fmt.Errorf("%w: max size %d is smaller than initial capacity %d", ErrInvalidArgument, c.maxSize, c.initialCapacity)
	}
	return nil
}

// Option configures a Stack built by New.
type Option func(*config)

// WithInitialCapacity sets the number of slots allocated up front.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = n
	}
}

// WithScaleFactor sets the multiplier applied to the capacity when a full
// stack grows. It must be greater than 1.
func WithScaleFactor(f float64) Option {
	return func(c *config) {
		c.scaleFactor = f
	}
}

// WithMaxSize sets the hard ceiling on the number of elements.
func WithMaxSize(n int) Option {
	return func(c *config) {
		c.maxSize = n
	}
}
