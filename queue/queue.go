package queue

import (
	"iter"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/vds/list"
)

// Queue is a first-in-first-out queue with value semantics.
//
// Clone is O(1): the copy shares the storage of the original until one of them is written to. The zero value is an
// empty Queue ready to use.
type Queue[T any] struct {
	elements *list.List[T]
}

// New creates a new Queue holding the given values, the first value being the next one to be dequeued.
func New[T any](values ...T) *Queue[T] {
	return &Queue[T]{elements: list.New(values...)}
}

// FromSeq creates a new Queue holding the values of the given sequence in dequeue order.
func FromSeq[T any](seq iter.Seq[T]) *Queue[T] {
	return &Queue[T]{elements: list.FromSeq(seq)}
}

// Clone returns a copy of the Queue that shares its storage until one of them is written to.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{elements: q.storage().Clone()}
}

// Enqueue adds an element to the back of the Queue.
func (q *Queue[T]) Enqueue(element T) {
	q.storage().Append(element)
}

// EnqueueSeq adds the values of the given sequence to the back of the Queue.
func (q *Queue[T]) EnqueueSeq(seq iter.Seq[T]) {
	q.storage().AppendSeq(seq)
}

// Dequeue removes and returns the oldest element of the Queue. The Queue must not be empty.
func (q *Queue[T]) Dequeue() T {
	if q.IsEmpty() {
		panic(ierrors.Wrap(list.ErrEmpty, "failed to dequeue"))
	}

	return q.storage().RemoveFirst()
}

// TryDequeue removes and returns the oldest element of the Queue and whether it existed.
func (q *Queue[T]) TryDequeue() (element T, exists bool) {
	if q.IsEmpty() {
		return element, false
	}

	return q.storage().RemoveFirst(), true
}

// Peek returns the oldest element of the Queue without removing it.
func (q *Queue[T]) Peek() (element T, exists bool) {
	return q.storage().First()
}

// RemoveAll removes all elements from the Queue.
func (q *Queue[T]) RemoveAll(keepCapacity ...bool) {
	q.storage().RemoveAll(keepCapacity...)
}

// Len returns the amount of elements in the Queue.
func (q *Queue[T]) Len() int {
	return q.storage().Len()
}

// IsEmpty checks if the Queue is empty.
func (q *Queue[T]) IsEmpty() bool {
	return q.storage().IsEmpty()
}

// StartIndex returns the position of the oldest element.
func (q *Queue[T]) StartIndex() list.Index[T] {
	return q.storage().StartIndex()
}

// EndIndex returns the position one past the newest element.
func (q *Queue[T]) EndIndex() list.Index[T] {
	return q.storage().EndIndex()
}

// IndexAfter returns the position that follows the given one.
func (q *Queue[T]) IndexAfter(i list.Index[T]) list.Index[T] {
	return q.storage().IndexAfter(i)
}

// IndexBefore returns the position in front of the given one.
func (q *Queue[T]) IndexBefore(i list.Index[T]) list.Index[T] {
	return q.storage().IndexBefore(i)
}

// At returns the element at the given position.
func (q *Queue[T]) At(i list.Index[T]) T {
	return q.storage().At(i)
}

// All returns a sequence over the elements in dequeue order.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.storage().All()
}

// Values returns a slice of all elements in dequeue order.
func (q *Queue[T]) Values() []T {
	return q.storage().Values()
}

// String returns the elements as a bracketed list in dequeue order.
func (q *Queue[T]) String() string {
	return q.storage().String()
}

// storage returns the underlying List, creating it for the zero value.
func (q *Queue[T]) storage() *list.List[T] {
	if q.elements == nil {
		q.elements = list.New[T]()
	}

	return q.elements
}

// Equal returns true if both queues hold equal elements in the same order.
func Equal[T comparable](a, b *Queue[T]) bool {
	return list.Equal(a.storage(), b.storage())
}
