package stack

import (
	"iter"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/vds/list"
)

// Stack is a last-in-first-out stack with value semantics.
//
// Elements are stored from the bottom to the top of the Stack, which is also the order of iteration. Clone is O(1):
// the copy shares the storage of the original until one of them is written to. The zero value is an empty Stack ready
// to use.
type Stack[T any] struct {
	elements *list.List[T]
}

// New creates a new Stack by pushing the given values in order, so the last value ends up on top.
func New[T any](values ...T) *Stack[T] {
	return &Stack[T]{elements: list.New(values...)}
}

// FromSeq creates a new Stack by pushing the values of the given sequence in order.
func FromSeq[T any](seq iter.Seq[T]) *Stack[T] {
	return &Stack[T]{elements: list.FromSeq(seq)}
}

// Clone returns a copy of the Stack that shares its storage until one of them is written to.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{elements: s.storage().Clone()}
}

// Push pushes an element onto the top of this Stack.
func (s *Stack[T]) Push(element T) {
	s.storage().Append(element)
}

// Pop removes and returns the top element of this Stack. The Stack must not be empty.
func (s *Stack[T]) Pop() T {
	if s.IsEmpty() {
		panic(ierrors.Wrap(list.ErrEmpty, "failed to pop"))
	}

	return s.storage().RemoveLast()
}

// TryPop removes and returns the top element of this Stack and whether the element exists.
func (s *Stack[T]) TryPop() (element T, exists bool) {
	if s.IsEmpty() {
		return element, false
	}

	return s.storage().RemoveLast(), true
}

// Peek returns the top element of this Stack without removing it.
func (s *Stack[T]) Peek() (element T, exists bool) {
	return s.storage().Last()
}

// RemoveAll removes all elements from this Stack.
func (s *Stack[T]) RemoveAll(keepCapacity ...bool) {
	s.storage().RemoveAll(keepCapacity...)
}

// Len returns the amount of elements in this Stack.
func (s *Stack[T]) Len() int {
	return s.storage().Len()
}

// IsEmpty checks if this Stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return s.storage().IsEmpty()
}

// At returns the element at the given distance from the bottom of the Stack, which must lie in [0, Len()).
func (s *Stack[T]) At(offset int) T {
	elements := s.storage()
	if offset == elements.Len() {
		panic(ierrors.Wrapf(list.ErrIndexOutOfRange, "offset %d is not within [0, %d)", offset, elements.Len()))
	}

	return elements.At(elements.IndexAt(offset))
}

// All returns a sequence over the elements from the bottom to the top.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.storage().All()
}

// Values returns a slice of all elements from the bottom to the top.
func (s *Stack[T]) Values() []T {
	return s.storage().Values()
}

// String returns the elements as a bracketed list from the bottom to the top.
func (s *Stack[T]) String() string {
	return s.storage().String()
}

// storage returns the underlying List, creating it for the zero value.
func (s *Stack[T]) storage() *list.List[T] {
	if s.elements == nil {
		s.elements = list.New[T]()
	}

	return s.elements
}

// Equal returns true if both stacks hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return list.Equal(a.storage(), b.storage())
}
