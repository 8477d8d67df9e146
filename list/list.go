package list

import (
	"iter"
	"runtime"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List is a doubly linked list with value semantics.
//
// Copies are made with Clone, which is O(1): the copy shares the node chain of the original until either of them is
// written to. A write to a shared chain forks a private chain for the writing List first, so mutating a copy never
// affects the original and vice versa. A List is not safe for concurrent use.
//
// The zero value is an empty List ready to use. A List must not be copied by value after first use, as both copies
// would consider themselves the exclusive owner of the chain; use Clone instead.
type List[T any] struct {
	// chain is the node storage this List currently reads from.
	chain *chain[T]

	// version is increased by every structural mutation and captured by indices.
	version uint64

	// cleanup releases the ownership of chain once this List becomes unreachable.
	cleanup runtime.Cleanup

	// tracked is true while cleanup is registered.
	tracked bool
}

// New creates a new List holding the given values.
func New[T any](values ...T) *List[T] {
	return &List[T]{chain: newChain(newRunOfValues(values))}
}

// FromSeq creates a new List holding the values of the given sequence in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	return &List[T]{chain: newChain(newRun(seq))}
}

// Clone returns a copy of the List. The copy shares the node chain of the original until one of them is written to.
func (l *List[T]) Clone() *List[T] {
	l.lazyInit()
	l.track()

	l.chain.acquire()
	cloned := &List[T]{chain: l.chain, version: l.version}
	cloned.track()

	return cloned
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	if l.chain == nil {
		return 0
	}

	return l.chain.count
}

// IsEmpty returns true if the List holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the first element of the List and whether it exists.
func (l *List[T]) First() (value T, exists bool) {
	if l.IsEmpty() {
		return value, false
	}

	return l.chain.head.value, true
}

// Last returns the last element of the List and whether it exists.
func (l *List[T]) Last() (value T, exists bool) {
	if l.IsEmpty() {
		return value, false
	}

	return l.chain.tail.value, true
}

// All returns a sequence over the elements of the List from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.chain == nil {
			return
		}

		for current := l.chain.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Backward returns a sequence over the elements of the List from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.chain == nil {
			return
		}

		for current := l.chain.tail; current != nil; current = current.prev {
			if !yield(current.value) {
				return
			}
		}
	}
}

// ForEach executes the given callback for the value of each element in the List. The iteration is aborted if the
// callback returns an error.
func (l *List[T]) ForEach(callback func(value T) error) error {
	for value := range l.All() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// ForEachReverse executes the given callback for the value of each element in the List in reverse order. The
// iteration is aborted if the callback returns an error.
func (l *List[T]) ForEachReverse(callback func(value T) error) error {
	for value := range l.Backward() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// Range executes the given callback for the value of each element in the List.
func (l *List[T]) Range(callback func(value T)) {
	for value := range l.All() {
		callback(value)
	}
}

// RangeReverse executes the given callback for the value of each element in the List in reverse order.
func (l *List[T]) RangeReverse(callback func(value T)) {
	for value := range l.Backward() {
		callback(value)
	}
}

// Values returns a slice of all values in the List.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	for value := range l.All() {
		values = append(values, value)
	}

	return values
}

// lazyInit lazily initializes a zero List value.
func (l *List[T]) lazyInit() {
	if l.chain == nil {
		l.chain = newChain[T](nil)
	}
}

// isExclusive returns true if no other List value shares the chain.
func (l *List[T]) isExclusive() bool {
	return l.chain.isExclusive()
}

// track makes sure that the ownership of the current chain is given up once this List is garbage collected.
func (l *List[T]) track() {
	if l.tracked {
		return
	}

	l.cleanup = runtime.AddCleanup(l, (*chain[T]).release, l.chain)
	l.tracked = true
}

// adopt switches the List to the given chain and gives up the ownership of the previous one.
func (l *List[T]) adopt(c *chain[T]) {
	if l.tracked {
		l.cleanup.Stop()
		l.tracked = false
	}

	previous := l.chain
	l.chain = c

	if previous != nil {
		previous.release()
	}
}

// fork copies the shared chain into a private one with a fresh identity, leaving out the nodes in [lower, upper). It
// returns the copies of the nodes that enclose the gap. The ownership of the shared chain is only given up after the
// copy is complete.
func (l *List[T]) fork(lower, upper int) (before, after *node[T]) {
	forked := new(run[T])

	offset := 0
	for current := l.chain.head; current != nil; current = current.next {
		if offset < lower || offset >= upper {
			copied := forked.pushBack(current.value)

			switch offset {
			case lower - 1:
				before = copied
			case upper:
				after = copied
			}
		}

		offset++
	}

	l.adopt(newChain(forked))

	return before, after
}

// makeExclusive forks the chain if it is shared.
func (l *List[T]) makeExclusive() {
	l.lazyInit()

	if !l.isExclusive() {
		l.fork(l.chain.count, l.chain.count)
	}
}

// touch marks a structural mutation.
func (l *List[T]) touch() {
	l.version++
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
