package sortcriterion

import (
	"iter"
	"slices"

	"github.com/iotaledger/vds/list"
)

// Sorted returns the values of the given sequence ordered by the given criteria. Elements that all criteria
// consider equal keep their relative order.
func Sorted[E any](seq iter.Seq[E], criteria ...Criterion[E]) []E {
	sorted := slices.Collect(seq)
	Sort(sorted, criteria...)

	return sorted
}

// Sort orders the given slice in place by the given criteria. Elements that all criteria consider equal keep their
// relative order.
func Sort[E any](s []E, criteria ...Criterion[E]) {
	slices.SortStableFunc(s, Compose(criteria...).Compare)
}

// SortList orders the elements of the given List by the given criteria.
func SortList[E any](l *list.List[E], criteria ...Criterion[E]) {
	sorted := Sorted(l.All(), criteria...)

	l.ReplaceSubrange(l.StartIndex(), l.EndIndex(), sorted...)
}

// Min returns the first element that no other element is ordered before, or false if the sequence is empty.
func Min[E any](seq iter.Seq[E], criteria ...Criterion[E]) (minimum E, exists bool) {
	criterion := Compose(criteria...)

	for element := range seq {
		if !exists || criterion.Less(element, minimum) {
			minimum, exists = element, true
		}
	}

	return minimum, exists
}

// Max returns the first element that is not ordered before any other element, or false if the sequence is empty.
func Max[E any](seq iter.Seq[E], criteria ...Criterion[E]) (maximum E, exists bool) {
	criterion := Compose(criteria...)

	for element := range seq {
		if !exists || criterion.Less(maximum, element) {
			maximum, exists = element, true
		}
	}

	return maximum, exists
}
