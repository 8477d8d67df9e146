package list

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/vds/testutil"
)

func TestList_ReplaceSubrange(t *testing.T) {
	testList := New(1, 2, 3, 4, 5)

	testList.ReplaceSubrange(testList.IndexAt(1), testList.IndexAt(3), 9)

	requireListElements(t, testList, []int{1, 9, 4, 5})
	require.Equal(t, 4, testList.Len())
}

func TestList_ReplaceSubrange_WholeList(t *testing.T) {
	testList := New(1, 2, 3)
	testList.ReplaceSubrange(testList.StartIndex(), testList.EndIndex(), 7, 8)
	requireListElements(t, testList, []int{7, 8})

	empty := New[int]()
	empty.ReplaceSubrange(empty.StartIndex(), empty.EndIndex(), 1, 2, 3)
	requireListElements(t, empty, []int{1, 2, 3})
}

func TestList_ReplaceSubrange_Insertion(t *testing.T) {
	atStart := New(3, 4)
	atStart.ReplaceSubrange(atStart.StartIndex(), atStart.StartIndex(), 1, 2)
	requireListElements(t, atStart, []int{1, 2, 3, 4})

	atEnd := New(1, 2)
	atEnd.ReplaceSubrange(atEnd.EndIndex(), atEnd.EndIndex(), 3, 4)
	requireListElements(t, atEnd, []int{1, 2, 3, 4})

	midChain := New(1, 4)
	midChain.Insert(midChain.IndexAt(1), 2, 3)
	requireListElements(t, midChain, []int{1, 2, 3, 4})
}

func TestList_ReplaceSubrange_Removal(t *testing.T) {
	atStart := New(1, 2, 3, 4)
	atStart.RemoveRange(atStart.StartIndex(), atStart.IndexAt(2))
	requireListElements(t, atStart, []int{3, 4})

	atEnd := New(1, 2, 3, 4)
	atEnd.RemoveRange(atEnd.IndexAt(2), atEnd.EndIndex())
	requireListElements(t, atEnd, []int{1, 2})

	midChain := New(1, 2, 3, 4)
	midChain.RemoveRange(midChain.IndexAt(1), midChain.IndexAt(3))
	requireListElements(t, midChain, []int{1, 4})

	wholeList := New(1, 2, 3, 4)
	wholeList.RemoveRange(wholeList.StartIndex(), wholeList.EndIndex())
	requireListElements(t, wholeList, []int{})

	nothing := New(1, 2)
	nothing.RemoveRange(nothing.IndexAt(1), nothing.IndexAt(1))
	requireListElements(t, nothing, []int{1, 2})

	single := New(1, 2, 3)
	require.Equal(t, 2, single.Remove(single.IndexAt(1)))
	requireListElements(t, single, []int{1, 3})
}

func TestList_ReplaceSubrange_Splice(t *testing.T) {
	prefix := New(1, 2, 3, 4)
	prefix.ReplaceSubrange(prefix.StartIndex(), prefix.IndexAt(2), 9, 9, 9)
	requireListElements(t, prefix, []int{9, 9, 9, 3, 4})

	suffix := New(1, 2, 3, 4)
	suffix.ReplaceSubrange(suffix.IndexAt(3), suffix.EndIndex(), 9)
	requireListElements(t, suffix, []int{1, 2, 3, 9})

	general := New(1, 2, 3, 4, 5)
	general.ReplaceSubrange(general.IndexAt(1), general.IndexAt(4), 8, 9)
	requireListElements(t, general, []int{1, 8, 9, 5})
}

func TestList_ReplaceSubrange_InvalidBounds(t *testing.T) {
	testList := New(1, 2, 3)

	testutil.RequirePanicsWithError(t, ErrInvalidRange, func() {
		testList.ReplaceSubrange(testList.IndexAt(2), testList.IndexAt(1), 7)
	})
	requireListElements(t, testList, []int{1, 2, 3})

	other := New(1, 2, 3)
	testutil.RequirePanicsWithError(t, ErrInvalidIndex, func() {
		testList.ReplaceSubrange(other.StartIndex(), other.EndIndex())
	})
	requireListElements(t, testList, []int{1, 2, 3})
}

// TestList_ReplaceSubrange_AllRanges checks every range of lists up to a small length against the equivalent slice
// operation, both for exclusively owned and for shared storage.
func TestList_ReplaceSubrange_AllRanges(t *testing.T) {
	replacements := [][]int{{}, {100}, {100, 101, 102}}

	for length := range 6 {
		elements := make([]int, length)
		for i := range elements {
			elements[i] = i
		}

		for lower := 0; lower <= length; lower++ {
			for upper := lower; upper <= length; upper++ {
				for _, replacement := range replacements {
					expected := append(append(append([]int{}, elements[:lower]...), replacement...), elements[upper:]...)

					for _, shared := range []bool{false, true} {
						t.Run(fmt.Sprintf("n=%d/[%d,%d)/r=%d/shared=%v", length, lower, upper, len(replacement), shared), func(t *testing.T) {
							testList := New(elements...)

							var original *List[int]
							if shared {
								original = testList.Clone()
							}

							testList.ReplaceSubrange(testList.IndexAt(lower), testList.IndexAt(upper), replacement...)

							requireListElements(t, testList, expected)
							require.Equal(t, length-(upper-lower)+len(replacement), testList.Len())

							if shared {
								requireListElements(t, original, elements)
							}
						})
					}
				}
			}
		}
	}
}
