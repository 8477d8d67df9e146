package sortcriterion

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Order is the direction in which a Criterion orders its elements.
type Order int

const (
	// Ascending orders smaller keys first.
	Ascending Order = iota

	// Descending orders larger keys first.
	Descending
)

// String returns a human-readable version of the Order.
func (o Order) String() string {
	if o == Descending {
		return "Descending"
	}

	return "Ascending"
}

// Criterion decides the relative order of two elements.
type Criterion[E any] struct {
	// Less returns true if a has to be ordered before b.
	Less func(a, b E) bool

	// Equal returns true if a and b are interchangeable for this Criterion.
	Equal func(a, b E) bool
}

// New creates a Criterion from the given functions.
func New[E any](less, equal func(a, b E) bool) Criterion[E] {
	return Criterion[E]{Less: less, Equal: equal}
}

// ByKey creates a Criterion that orders elements by the given key in the given order (Ascending by default).
func ByKey[E any, V constraints.Ordered](key func(E) V, optOrder ...Order) Criterion[E] {
	direction := sign(lo.First(optOrder, Ascending))

	return Criterion[E]{
		Less: func(a, b E) bool {
			return lo.Comparator(key(a), key(b))*direction < 0
		},
		Equal: func(a, b E) bool {
			return key(a) == key(b)
		},
	}
}

// ByOptionalKey creates a Criterion that orders elements by a key that may be absent. In Ascending order, elements
// with a key come before elements without one; in Descending order they come after them.
func ByOptionalKey[E any, V constraints.Ordered](key func(E) (V, bool), optOrder ...Order) Criterion[E] {
	direction := sign(lo.First(optOrder, Ascending))

	compare := func(a, b E) int {
		aKey, aExists := key(a)
		bKey, bExists := key(b)

		switch {
		case aExists && bExists:
			return lo.Comparator(aKey, bKey)
		case aExists:
			return -1
		case bExists:
			return 1
		default:
			return 0
		}
	}

	return Criterion[E]{
		Less: func(a, b E) bool {
			return compare(a, b)*direction < 0
		},
		Equal: func(a, b E) bool {
			return compare(a, b) == 0
		},
	}
}

// Compose combines the given criteria: the first criterion for which two elements are not equal decides their
// order.
func Compose[E any](criteria ...Criterion[E]) Criterion[E] {
	return Criterion[E]{
		Less: func(a, b E) bool {
			for _, criterion := range criteria {
				if !criterion.Equal(a, b) {
					return criterion.Less(a, b)
				}
			}

			return false
		},
		Equal: func(a, b E) bool {
			for _, criterion := range criteria {
				if !criterion.Equal(a, b) {
					return false
				}
			}

			return true
		},
	}
}

// Compare returns -1, 0 or 1 depending on whether a is ordered before, together with or after b.
func (c Criterion[E]) Compare(a, b E) int {
	switch {
	case c.Equal(a, b):
		return 0
	case c.Less(a, b):
		return -1
	case c.Less(b, a):
		return 1
	default:
		return 0
	}
}

// sign maps an Order to the factor applied to ascending comparisons.
func sign(order Order) int {
	if order == Descending {
		return -1
	}

	return 1
}
