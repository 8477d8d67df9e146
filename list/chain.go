package list

import (
	"go.uber.org/atomic"
)

// identity marks one physical node chain. Indices capture it to prove which chain they were taken from.
type identity struct {
	// marker gives the type a non-zero size so that every allocation has its own address.
	marker byte
}

// chain is the node storage that is shared by all List values that were cloned from each other and have not written
// since.
type chain[T any] struct {
	run[T]

	// identity is replaced whenever a List forks away from a shared chain.
	identity *identity

	// owners counts the List values reading from this chain.
	owners atomic.Int64
}

// newChain adopts the nodes of the given run into a chain with a fresh identity and a single owner.
func newChain[T any](r *run[T]) *chain[T] {
	c := &chain[T]{identity: new(identity)}
	if r != nil {
		c.run = *r
	}
	c.owners.Store(1)

	return c
}

// acquire registers an additional owner.
func (c *chain[T]) acquire() {
	c.owners.Inc()
}

// release unregisters an owner. It is also used as the cleanup of List values that became unreachable.
func (c *chain[T]) release() {
	c.owners.Dec()
}

// isExclusive returns true if exactly one List value reads from this chain.
func (c *chain[T]) isExclusive() bool {
	return c.owners.Load() == 1
}

// predecessor returns the node in front of n, or the tail if n marks the end of the chain.
func (c *chain[T]) predecessor(n *node[T]) *node[T] {
	if n == nil {
		return c.tail
	}

	return n.prev
}

// splice links the replacement run in place of the removed nodes between before and after. A nil before means the
// range starts at the head, a nil after means it ends at the tail.
func (c *chain[T]) splice(before, after *node[T], replacement *run[T], removed int) {
	switch {
	case before == nil && after == nil:
		c.run = *replacement

		return
	case before == nil:
		replacement.tail.next = after
		after.prev = replacement.tail
		c.head = replacement.head
	case after == nil:
		before.next = replacement.head
		replacement.head.prev = before
		c.tail = replacement.tail
	default:
		before.next = replacement.head
		replacement.head.prev = before
		replacement.tail.next = after
		after.prev = replacement.tail
	}

	c.count += replacement.count - removed
}

// unlink drops the removed nodes between before and after.
func (c *chain[T]) unlink(before, after *node[T], removed int) {
	if removed == 0 {
		return
	}

	switch {
	case before == nil && after == nil:
		c.run = run[T]{}

		return
	case before == nil:
		after.prev = nil
		c.head = after
	case after == nil:
		before.next = nil
		c.tail = before
	default:
		before.next = after
		after.prev = before
	}

	c.count -= removed
}
