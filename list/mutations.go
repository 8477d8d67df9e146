package list

import (
	"iter"

	"github.com/iotaledger/hive.go/ierrors"
)

// region Adding Elements //////////////////////////////////////////////////////////////////////////////////////////////

// Prepend inserts the given value at the front of the List.
func (l *List[T]) Prepend(value T) {
	l.lazyInit()

	l.replace(0, 0, l.chain.head, l.chain.head, newRunOfValues([]T{value}))
}

// PrependValues inserts the given values at the front of the List, keeping their order.
func (l *List[T]) PrependValues(values ...T) {
	l.lazyInit()

	l.replace(0, 0, l.chain.head, l.chain.head, newRunOfValues(values))
}

// PrependSeq inserts the values of the given sequence at the front of the List, keeping their order.
func (l *List[T]) PrependSeq(seq iter.Seq[T]) {
	replacement := newRun(seq)
	l.lazyInit()

	l.replace(0, 0, l.chain.head, l.chain.head, replacement)
}

// Append inserts the given value at the back of the List.
func (l *List[T]) Append(value T) {
	l.lazyInit()

	l.replace(l.chain.count, l.chain.count, nil, nil, newRunOfValues([]T{value}))
}

// AppendValues inserts the given values at the back of the List.
func (l *List[T]) AppendValues(values ...T) {
	l.lazyInit()

	l.replace(l.chain.count, l.chain.count, nil, nil, newRunOfValues(values))
}

// AppendSeq inserts the values of the given sequence at the back of the List.
func (l *List[T]) AppendSeq(seq iter.Seq[T]) {
	replacement := newRun(seq)
	l.lazyInit()

	l.replace(l.chain.count, l.chain.count, nil, nil, replacement)
}

// Insert inserts the given values in front of the element at the given position.
func (l *List[T]) Insert(position Index[T], values ...T) {
	l.ReplaceSubrange(position, position, values...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Replacing Elements ///////////////////////////////////////////////////////////////////////////////////////////

// Set replaces the element at the given position.
//
// Setting an element is not a structural mutation: unless the List has to fork its shared storage, indices stay
// valid.
func (l *List[T]) Set(position Index[T], value T) {
	target := l.resolve(position, false)

	if !l.isExclusive() {
		_, target = l.fork(position.offset, position.offset)
	}

	target.value = value
}

// ReplaceSubrange replaces the elements in the range [from, to) with the given elements.
func (l *List[T]) ReplaceSubrange(from, to Index[T], newElements ...T) {
	l.ReplaceSubrangeSeq(from, to, func(yield func(T) bool) {
		for _, element := range newElements {
			if !yield(element) {
				return
			}
		}
	})
}

// ReplaceSubrangeSeq replaces the elements in the range [from, to) with the values of the given sequence.
//
// All insertions and removals are expressed through this operation. The elements in front of and behind the range
// keep their relative order and the length of the List changes by the number of inserted minus the number of
// removed elements. The bounds have to be valid indices of this List with from not lying after to.
func (l *List[T]) ReplaceSubrangeSeq(from, to Index[T], newElements iter.Seq[T]) {
	l.checkRange(from, to)

	l.replace(from.offset, to.offset, l.resolve(from, true), l.resolve(to, true), newRun(newElements))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Removing Elements ////////////////////////////////////////////////////////////////////////////////////////////

// Remove removes the element at the given position and returns its value.
func (l *List[T]) Remove(position Index[T]) T {
	target := l.resolve(position, false)
	value := target.value

	l.replace(position.offset, position.offset+1, target, target.next, new(run[T]))

	return value
}

// RemoveRange removes the elements in the range [from, to).
func (l *List[T]) RemoveRange(from, to Index[T]) {
	l.ReplaceSubrangeSeq(from, to, nil)
}

// RemoveFirst removes the first element of the List and returns its value. The List must not be empty.
func (l *List[T]) RemoveFirst() T {
	if l.IsEmpty() {
		panic(ierrors.Wrap(ErrEmpty, "failed to remove the first element"))
	}

	head := l.chain.head
	l.replace(0, 1, head, head.next, new(run[T]))

	return head.value
}

// RemoveLast removes the last element of the List and returns its value. The List must not be empty.
func (l *List[T]) RemoveLast() T {
	if l.IsEmpty() {
		panic(ierrors.Wrap(ErrEmpty, "failed to remove the last element"))
	}

	tail := l.chain.tail
	l.replace(l.chain.count-1, l.chain.count, tail, nil, new(run[T]))

	return tail.value
}

// RemoveAll removes all elements from the List.
//
// The optional keepCapacity flag is advisory only: nodes are allocated per element, so there is no backing storage
// that could be kept around.
func (l *List[T]) RemoveAll(keepCapacity ...bool) {
	l.lazyInit()

	l.replace(0, l.chain.count, l.chain.head, nil, new(run[T]))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Moving Elements //////////////////////////////////////////////////////////////////////////////////////////////

// MoveFrontToBack detaches the first element and reattaches it at the back of the List in O(1).
func (l *List[T]) MoveFrontToBack() {
	l.makeExclusive()
	defer l.touch()

	c := l.chain
	if c.count < 2 {
		return
	}

	moved := c.head
	c.head = moved.next
	c.head.prev = nil

	moved.next = nil
	moved.prev = c.tail
	c.tail.next = moved
	c.tail = moved
}

// MoveBackToFront detaches the last element and reattaches it at the front of the List in O(1).
func (l *List[T]) MoveBackToFront() {
	l.makeExclusive()
	defer l.touch()

	c := l.chain
	if c.count < 2 {
		return
	}

	moved := c.tail
	c.tail = moved.prev
	c.tail.next = nil

	moved.prev = nil
	moved.next = c.head
	c.head.prev = moved
	c.head = moved
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region replace //////////////////////////////////////////////////////////////////////////////////////////////////////

// replace substitutes the nodes in [lower, upper) with the given run. first and after are the nodes at the offsets
// lower and upper of the current chain (nil for the end).
func (l *List[T]) replace(lower, upper int, first, after *node[T], replacement *run[T]) {
	defer l.touch()

	c := l.chain
	removed := upper - lower

	// the whole list is replaced: no node of the old chain survives, so nothing has to be copied
	if lower == 0 && upper == c.count {
		if c.isExclusive() {
			c.run = *replacement
		} else {
			l.adopt(newChain(replacement))
		}

		return
	}

	var before *node[T]
	if c.isExclusive() {
		before = c.predecessor(first)
	} else {
		// the copy already leaves out the removed nodes
		before, after = l.fork(lower, upper)
		c, removed = l.chain, 0
	}

	if replacement.isEmpty() {
		c.unlink(before, after, removed)

		return
	}

	c.splice(before, after, replacement, removed)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
