package list

import (
	"iter"
	"weak"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// region Index ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Index is a position in a List.
//
// An Index is only valid for the List it was taken from and only until that List is structurally modified (elements
// inserted, removed or moved). Indices are compared by their offset only. Using an invalid Index panics with
// ErrInvalidIndex.
type Index[T any] struct {
	// node is the element at the position (nil for the end position).
	node weak.Pointer[node[T]]

	// offset is the distance from the start of the List.
	offset int

	// owner is the identity of the node chain the Index was taken from.
	owner weak.Pointer[identity]

	// version is the structural version of the List the Index was taken from.
	version uint64
}

// Offset returns the distance of the Index from the start of its List.
func (i Index[T]) Offset() int {
	return i.offset
}

// Compare returns -1, 0 or 1 depending on whether i lies before, at or after other.
func (i Index[T]) Compare(other Index[T]) int {
	switch {
	case i.offset < other.offset:
		return -1
	case i.offset > other.offset:
		return 1
	default:
		return 0
	}
}

// Less returns true if i lies before other.
func (i Index[T]) Less(other Index[T]) bool {
	return i.offset < other.offset
}

// Equal returns true if both indices point at the same offset.
func (i Index[T]) Equal(other Index[T]) bool {
	return i.offset == other.offset
}

// String returns a human-readable version of the Index.
func (i Index[T]) String() string {
	return stringify.Struct("Index",
		stringify.NewStructField("offset", i.offset),
		stringify.NewStructField("version", i.version),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Manipulating Indices /////////////////////////////////////////////////////////////////////////////////////////

// StartIndex returns the position of the first element (equal to EndIndex if the List is empty).
func (l *List[T]) StartIndex() Index[T] {
	l.lazyInit()

	return l.index(l.chain.head, 0)
}

// EndIndex returns the position one past the last element.
func (l *List[T]) EndIndex() Index[T] {
	l.lazyInit()

	return l.index(nil, l.chain.count)
}

// IndexAfter returns the position that follows the given one. The given position must lie before EndIndex.
func (l *List[T]) IndexAfter(i Index[T]) Index[T] {
	current := l.resolve(i, false)

	return l.index(current.next, i.offset+1)
}

// IndexBefore returns the position in front of the given one. The given position must lie after StartIndex.
func (l *List[T]) IndexBefore(i Index[T]) Index[T] {
	current := l.resolve(i, true)
	if i.offset == 0 {
		panic(ierrors.Wrap(ErrIndexOutOfRange, "there is no position in front of the start index"))
	}

	return l.index(l.chain.predecessor(current), i.offset-1)
}

// IndexAt returns the position at the given offset, which must lie in [0, Len()].
func (l *List[T]) IndexAt(offset int) Index[T] {
	l.lazyInit()

	if offset < 0 || offset > l.chain.count {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "offset %d is not within [0, %d]", offset, l.chain.count))
	}

	return l.index(l.chain.nodeAt(offset), offset)
}

// IndexFunc returns the position of the first element that satisfies the given predicate.
func (l *List[T]) IndexFunc(predicate func(value T) bool) (index Index[T], found bool) {
	for position, value := range l.Indexed() {
		if predicate(value) {
			return position, true
		}
	}

	return index, false
}

// Indexed returns a sequence over the positions and elements of the List from front to back.
func (l *List[T]) Indexed() iter.Seq2[Index[T], T] {
	return func(yield func(Index[T], T) bool) {
		l.lazyInit()

		offset := 0
		for current := l.chain.head; current != nil; current = current.next {
			if !yield(l.index(current, offset), current.value) {
				return
			}

			offset++
		}
	}
}

// At returns the element at the given position, which must lie before EndIndex.
func (l *List[T]) At(i Index[T]) T {
	return l.resolve(i, false).value
}

// index creates an Index for the given node of the current chain.
func (l *List[T]) index(n *node[T], offset int) Index[T] {
	index := Index[T]{
		offset:  offset,
		owner:   weak.Make(l.chain.identity),
		version: l.version,
	}

	if n != nil {
		index.node = weak.Make(n)
	}

	return index
}

// resolve validates the given Index against the List and returns its node. The end position is only accepted if
// allowEnd is set, and resolves to nil.
func (l *List[T]) resolve(i Index[T], allowEnd bool) *node[T] {
	l.lazyInit()

	if i.owner.Value() != l.chain.identity || i.version != l.version {
		panic(ierrors.Wrapf(ErrInvalidIndex, "index at offset %d was not taken from the current state of this list", i.offset))
	}

	upperBound := l.chain.count
	if allowEnd {
		upperBound++
	}

	if i.offset < 0 || i.offset >= upperBound {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "offset %d is not within the bounds of a list of length %d", i.offset, l.chain.count))
	}

	if i.offset == l.chain.count {
		return nil
	}

	n := i.node.Value()
	if n == nil {
		panic(ierrors.Wrapf(ErrInvalidIndex, "element at offset %d no longer exists", i.offset))
	}

	return n
}

// checkRange validates the bounds of a range.
func (l *List[T]) checkRange(from, to Index[T]) {
	l.resolve(from, true)
	l.resolve(to, true)

	if from.offset > to.offset {
		panic(ierrors.Wrapf(ErrInvalidRange, "lower bound %d lies after upper bound %d", from.offset, to.offset))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
