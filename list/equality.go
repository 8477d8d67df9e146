package list

import (
	"hash/maphash"
	"iter"
)

// Equal returns true if both lists hold the same number of elements and their elements are pairwise equal in
// traversal order. Whether the lists share storage does not matter.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but uses the given function to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	next, stop := iter.Pull(b.All())
	defer stop()

	for value := range a.All() {
		other, _ := next()
		if !eq(value, other) {
			return false
		}
	}

	return true
}

// IndexOf returns the position of the first element equal to the given value.
func IndexOf[T comparable](l *List[T], value T) (index Index[T], found bool) {
	return l.IndexFunc(func(candidate T) bool {
		return candidate == value
	})
}

// Contains returns true if the List holds an element equal to the given value.
func Contains[T comparable](l *List[T], value T) bool {
	_, found := IndexOf(l, value)

	return found
}

// Hash returns the hash of the List for the given seed. Lists that are Equal have the same hash.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	WriteHash(&h, l)

	return h.Sum64()
}

// WriteHash feeds the number of elements and then every element in traversal order into the given hash.
func WriteHash[T comparable](h *maphash.Hash, l *List[T]) {
	maphash.WriteComparable(h, l.Len())

	for value := range l.All() {
		maphash.WriteComparable(h, value)
	}
}
