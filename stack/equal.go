package stack

import "hash/maphash"

// hashSalt keeps the hash of an empty stack away from zero.
const hashSalt uint64 = 0x9e3779b97f4a7c15

var hashSeed = maphash.MakeSeed()

// Equal reports whether both stacks hold the same elements in the same
// order. Capacity, scale factor and max size are not compared, so a stack
// that grew past its contents equals a tightly built one.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.size != other.size {
		return false
	}
	for i, e := range s.items[:s.size] {
		if e != other.items[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash of the live elements that agrees with Equal. The
// value is stable for the life of the process only.
func (s *Stack[T]) Hash() uint64 {
	h := hashSalt
	for i := s.size - 1; i >= 0; i-- {
		h = h*31 + maphash.Comparable(hashSeed, s.items[i])
	}
	return h
}
