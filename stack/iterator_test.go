package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](t testing.TB, it Iterator[T]) []T {
	t.Helper()
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestDrain(t *testing.T) {
	s := Of(1, 2, 3)

	got := collect[int](t, s.Drain())

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, s.IsEmpty())

	t.Run("exhausted iterator stays exhausted", func(t *testing.T) {
		it := s.Drain()
		assert.False(t, it.HasNext())
		_, err := it.Next()
		assert.ErrorIs(t, err, ErrEmptyCollection)
	})

	t.Run("reflects pushes made while draining", func(t *testing.T) {
		s := Of(1)
		it := s.Drain()
		v, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		require.NoError(t, s.Push(2))
		assert.True(t, it.HasNext())
	})
}

func TestIter(t *testing.T) {
	t.Run("visits every element top to bottom", func(t *testing.T) {
		s := Of("a", "b", "c")

		got := collect[string](t, s.Iter())

		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("independent cursors", func(t *testing.T) {
		s := Of(1, 2)
		first, second := s.Iter(), s.Iter()

		_, err := first.Next()
		require.NoError(t, err)

		v, err := second.Next()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("past the end", func(t *testing.T) {
		it := Of(1).Iter()
		_, err := it.Next()
		require.NoError(t, err)

		assert.False(t, it.HasNext())
		_, err = it.Next()
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("empty stack", func(t *testing.T) {
		assert.False(t, MustNew[int]().Iter().HasNext())
	})
}

func TestRangeFunctions(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		s := Of("x", "y")
		var indexes []int
		var values []string
		for i, v := range s.All() {
			indexes = append(indexes, i)
			values = append(values, v)
		}

		assert.Equal(t, []int{0, 1}, indexes)
		assert.Equal(t, []string{"x", "y"}, values)
	})

	t.Run("Values stops on break", func(t *testing.T) {
		s := Of(1, 2, 3)
		var got []int
		for v := range s.Values() {
			got = append(got, v)
			if v == 2 {
				break
			}
		}

		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("PopAll leaves the rest on break", func(t *testing.T) {
		s := Of(1, 2, 3)
		for v := range s.PopAll() {
			if v == 2 {
				break
			}
		}

		assertStack(t, s, 3)
	})

	t.Run("PopAll empties the stack", func(t *testing.T) {
		s := Of(1, 2, 3)
		var got []int
		for v := range s.PopAll() {
			got = append(got, v)
		}

		assert.Equal(t, []int{1, 2, 3}, got)
		assert.True(t, s.IsEmpty())
	})
}
