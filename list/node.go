package list

import (
	"iter"
)

// node is a single element of a node chain.
//
// Ownership flows forward only: next keeps the successor alive, while prev is a back-reference that is used for
// lookups (stepping backwards, locating the node in front of a range) and never to decide what is reachable.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// run is a detached sequence of linked nodes.
type run[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// newRun links the values of the given sequence into a fresh run.
func newRun[T any](seq iter.Seq[T]) *run[T] {
	r := new(run[T])
	if seq == nil {
		return r
	}

	for value := range seq {
		r.pushBack(value)
	}

	return r
}

// newRunOfValues links the given values into a fresh run.
func newRunOfValues[T any](values []T) *run[T] {
	r := new(run[T])
	for _, value := range values {
		r.pushBack(value)
	}

	return r
}

// pushBack appends a new node holding value and returns it.
func (r *run[T]) pushBack(value T) *node[T] {
	n := &node[T]{value: value, prev: r.tail}
	if r.tail == nil {
		r.head = n
	} else {
		r.tail.next = n
	}
	r.tail = n
	r.count++

	return n
}

// isEmpty returns true if the run holds no nodes.
func (r *run[T]) isEmpty() bool {
	return r.count == 0
}

// nodeAt walks to the node at the given offset, starting from whichever end is closer. It returns nil for
// offset == count.
func (r *run[T]) nodeAt(offset int) *node[T] {
	if offset >= r.count {
		return nil
	}

	if offset <= r.count/2 {
		current := r.head
		for range offset {
			current = current.next
		}

		return current
	}

	current := r.tail
	for range r.count - 1 - offset {
		current = current.prev
	}

	return current
}
