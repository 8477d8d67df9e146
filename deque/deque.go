package deque

import (
	"hash/maphash"
	"iter"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/vds/list"
)

// Deque is a double-ended queue with value semantics.
//
// It is a thin wrapper around a list.List and shares its copy-on-write behavior: Clone is O(1) and the storage is
// only copied once one of the copies is written to. The zero value is an empty Deque ready to use.
type Deque[T any] struct {
	elements *list.List[T]
}

// New creates a new Deque holding the given values from front to back.
func New[T any](values ...T) *Deque[T] {
	return &Deque[T]{elements: list.New(values...)}
}

// FromSeq creates a new Deque holding the values of the given sequence from front to back.
func FromSeq[T any](seq iter.Seq[T]) *Deque[T] {
	return &Deque[T]{elements: list.FromSeq(seq)}
}

// Clone returns a copy of the Deque that shares its storage until one of them is written to.
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{elements: d.storage().Clone()}
}

// Len returns the number of elements in the Deque.
func (d *Deque[T]) Len() int {
	return d.storage().Len()
}

// IsEmpty returns true if the Deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.storage().IsEmpty()
}

// First returns the element at the front of the Deque and whether it exists.
func (d *Deque[T]) First() (value T, exists bool) {
	return d.storage().First()
}

// Last returns the element at the back of the Deque and whether it exists.
func (d *Deque[T]) Last() (value T, exists bool) {
	return d.storage().Last()
}

// Prepend inserts the given value at the front of the Deque.
func (d *Deque[T]) Prepend(value T) {
	d.storage().Prepend(value)
}

// Append inserts the given value at the back of the Deque.
func (d *Deque[T]) Append(value T) {
	d.storage().Append(value)
}

// AppendSeq inserts the values of the given sequence at the back of the Deque.
func (d *Deque[T]) AppendSeq(seq iter.Seq[T]) {
	d.storage().AppendSeq(seq)
}

// RemoveFirst removes and returns the element at the front of the Deque. The Deque must not be empty.
func (d *Deque[T]) RemoveFirst() T {
	return d.storage().RemoveFirst()
}

// RemoveLast removes and returns the element at the back of the Deque. The Deque must not be empty.
func (d *Deque[T]) RemoveLast() T {
	return d.storage().RemoveLast()
}

// RemoveAll removes all elements from the Deque.
func (d *Deque[T]) RemoveAll(keepCapacity ...bool) {
	d.storage().RemoveAll(keepCapacity...)
}

// RotateLeft moves the given number of elements one by one from the front to the back of the Deque.
// A single step rotation is RotateLeft(1).
func (d *Deque[T]) RotateLeft(positions int) {
	d.rotate(positions, d.storage().MoveFrontToBack)
}

// RotateRight moves the given number of elements one by one from the back to the front of the Deque.
// A single step rotation is RotateRight(1).
func (d *Deque[T]) RotateRight(positions int) {
	d.rotate(positions, d.storage().MoveBackToFront)
}

// rotate applies the given single step positions times, skipping full turns.
func (d *Deque[T]) rotate(positions int, step func()) {
	if positions <= 0 {
		panic(ierrors.Wrapf(ErrNonPositiveRotation, "cannot rotate by %d positions", positions))
	}

	if d.IsEmpty() {
		return
	}

	for range positions % d.Len() {
		step()
	}
}

// StartIndex returns the position of the front element.
func (d *Deque[T]) StartIndex() list.Index[T] {
	return d.storage().StartIndex()
}

// EndIndex returns the position one past the back element.
func (d *Deque[T]) EndIndex() list.Index[T] {
	return d.storage().EndIndex()
}

// IndexAfter returns the position that follows the given one.
func (d *Deque[T]) IndexAfter(i list.Index[T]) list.Index[T] {
	return d.storage().IndexAfter(i)
}

// IndexBefore returns the position in front of the given one.
func (d *Deque[T]) IndexBefore(i list.Index[T]) list.Index[T] {
	return d.storage().IndexBefore(i)
}

// IndexAt returns the position at the given offset from the front.
func (d *Deque[T]) IndexAt(offset int) list.Index[T] {
	return d.storage().IndexAt(offset)
}

// At returns the element at the given position.
func (d *Deque[T]) At(i list.Index[T]) T {
	return d.storage().At(i)
}

// Set replaces the element at the given position.
func (d *Deque[T]) Set(i list.Index[T], value T) {
	d.storage().Set(i, value)
}

// ReplaceSubrange replaces the elements in the range [from, to) with the given elements.
func (d *Deque[T]) ReplaceSubrange(from, to list.Index[T], newElements ...T) {
	d.storage().ReplaceSubrange(from, to, newElements...)
}

// All returns a sequence over the elements from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return d.storage().All()
}

// Backward returns a sequence over the elements from back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return d.storage().Backward()
}

// Values returns a slice of all elements from front to back.
func (d *Deque[T]) Values() []T {
	return d.storage().Values()
}

// String returns the elements as a bracketed list from front to back.
func (d *Deque[T]) String() string {
	return d.storage().String()
}

// Equal returns true if both deques hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return list.Equal(a.storage(), b.storage())
}

// Hash returns the hash of the Deque for the given seed. Deques that are Equal have the same hash.
func Hash[T comparable](seed maphash.Seed, d *Deque[T]) uint64 {
	return list.Hash(seed, d.storage())
}

// storage returns the underlying List, creating it for the zero value.
func (d *Deque[T]) storage() *list.List[T] {
	if d.elements == nil {
		d.elements = list.New[T]()
	}

	return d.elements
}
