package bag

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/vds/list"
)

// Entry is an item of a Bag together with the number of times it is contained.
type Entry[Item comparable] struct {
	Item  Item
	Count int
}

// String returns a human-readable version of the Entry.
func (e Entry[Item]) String() string {
	return fmt.Sprintf("%s: %d", list.Describe(e.Item), e.Count)
}

// Bag is a multiset that maps every item it contains to a positive count.
//
// A Bag is not safe for concurrent use. Copies are made with Clone. The zero value is an empty Bag ready to use.
type Bag[Item comparable] struct {
	counts *shrinkingmap.ShrinkingMap[Item, int]
}

// New creates a new empty Bag.
func New[Item comparable]() *Bag[Item] {
	return &Bag[Item]{counts: shrinkingmap.New[Item, int]()}
}

// NewWithCapacity creates a new empty Bag. The capacity is advisory only: the underlying map shrinks and grows on
// its own.
func NewWithCapacity[Item comparable](minimumCapacity int) *Bag[Item] {
	return New[Item]()
}

// FromSeq creates a new Bag that contains every item of the given sequence once per occurrence.
func FromSeq[Item comparable](seq iter.Seq[Item]) *Bag[Item] {
	b := New[Item]()
	for item := range seq {
		b.Add(item)
	}

	return b
}

// FromCounts creates a new Bag from the given item-count pairs. Every item must appear only once and every count
// must be greater than 0.
func FromCounts[Item comparable](itemsAndCounts iter.Seq2[Item, int]) *Bag[Item] {
	b := New[Item]()
	for item, count := range itemsAndCounts {
		if b.Contains(item) {
			panic(ierrors.Wrapf(ErrDuplicateItem, "item %s appears more than once", list.Describe(item)))
		}

		b.Add(item, count)
	}

	return b
}

// Clone returns an independent copy of the Bag.
func (b *Bag[Item]) Clone() *Bag[Item] {
	cloned := New[Item]()
	for item, count := range b.All() {
		cloned.counts.Set(item, count)
	}

	return cloned
}

// Add adds the given item count times (once if no count is given). The count must be greater than 0.
func (b *Bag[Item]) Add(item Item, optCount ...int) {
	count := lo.First(optCount, 1)
	if count <= 0 {
		panic(ierrors.Wrapf(ErrNonPositiveCount, "cannot add %d of item %s", count, list.Describe(item)))
	}

	b.storage().Set(item, b.Count(item)+count)
}

// Remove removes the given item count times (once if no count is given). The count must be greater than 0.
//
// If the Bag holds no more than count of the item, the item is removed entirely. The returned Entry holds the number
// of items that were actually removed. If the Bag does not contain the item, it is left unchanged and false is
// returned.
func (b *Bag[Item]) Remove(item Item, optCount ...int) (removed Entry[Item], existed bool) {
	count := lo.First(optCount, 1)
	if count <= 0 {
		panic(ierrors.Wrapf(ErrNonPositiveCount, "cannot remove %d of item %s", count, list.Describe(item)))
	}

	currentCount, exists := b.storage().Get(item)
	if !exists {
		return removed, false
	}

	if count >= currentCount {
		b.counts.Delete(item)

		return Entry[Item]{Item: item, Count: currentCount}, true
	}

	b.counts.Set(item, currentCount-count)

	return Entry[Item]{Item: item, Count: count}, true
}

// RemoveAllOf removes the given item entirely and returns how many of it the Bag contained.
func (b *Bag[Item]) RemoveAllOf(item Item) (removed Entry[Item], existed bool) {
	currentCount, exists := b.storage().Get(item)
	if !exists {
		return removed, false
	}

	b.counts.Delete(item)

	return Entry[Item]{Item: item, Count: currentCount}, true
}

// UpdateCount sets the count of the given item and returns the previous count. A count of 0 removes the item.
func (b *Bag[Item]) UpdateCount(item Item, count int) (previousCount int, existed bool) {
	if count < 0 {
		panic(ierrors.Wrapf(ErrNegativeCount, "cannot set the count of item %s to %d", list.Describe(item), count))
	}

	previousCount, existed = b.storage().Get(item)

	if count == 0 {
		b.counts.Delete(item)
	} else {
		b.counts.Set(item, count)
	}

	return previousCount, existed
}

// RemoveAll removes all items from the Bag.
func (b *Bag[Item]) RemoveAll(keepCapacity ...bool) {
	b.counts = shrinkingmap.New[Item, int]()
}

// Count returns the number of times the given item is contained (0 if it is missing).
func (b *Bag[Item]) Count(item Item) int {
	count, _ := b.storage().Get(item)

	return count
}

// Contains returns true if the Bag contains at least one of the given item.
func (b *Bag[Item]) Contains(item Item) bool {
	return b.storage().Has(item)
}

// Len returns the number of distinct items in the Bag.
func (b *Bag[Item]) Len() int {
	return b.storage().Size()
}

// IsEmpty returns true if the Bag contains no items.
func (b *Bag[Item]) IsEmpty() bool {
	return b.storage().IsEmpty()
}

// TotalCount returns the sum of the counts of all items.
func (b *Bag[Item]) TotalCount() int {
	return lo.Sum(lo.Values(b.storage().AsMap())...)
}

// All returns a sequence over the item-count pairs of the Bag in no particular order. The Bag must not be modified
// during the iteration.
func (b *Bag[Item]) All() iter.Seq2[Item, int] {
	return func(yield func(Item, int) bool) {
		b.storage().ForEach(yield)
	}
}

// Items returns the distinct items of the Bag in no particular order.
func (b *Bag[Item]) Items() []Item {
	return lo.Keys(b.storage().AsMap())
}

// Entries returns the item-count pairs of the Bag in no particular order.
func (b *Bag[Item]) Entries() []Entry[Item] {
	entries := make([]Entry[Item], 0, b.Len())
	for item, count := range b.All() {
		entries = append(entries, Entry[Item]{Item: item, Count: count})
	}

	return entries
}

// String returns the item-count pairs of the Bag ordered by their rendering, e.g. ["a": 2, "b": 1].
func (b *Bag[Item]) String() string {
	if b.IsEmpty() {
		return "[:]"
	}

	renderedEntries := lo.Map(b.Entries(), Entry[Item].String)
	slices.Sort(renderedEntries)

	return "[" + strings.Join(renderedEntries, ", ") + "]"
}

// storage returns the underlying map, creating it for the zero value.
func (b *Bag[Item]) storage() *shrinkingmap.ShrinkingMap[Item, int] {
	if b.counts == nil {
		b.counts = shrinkingmap.New[Item, int]()
	}

	return b.counts
}

// Equal returns true if both bags contain the same items with the same counts.
func Equal[Item comparable](a, b *Bag[Item]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for item, count := range a.All() {
		if b.Count(item) != count {
			return false
		}
	}

	return true
}
