package orderedmap

import (
	"hash/maphash"
	"iter"
	"strings"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/vds/list"
)

// region OrderedMap ///////////////////////////////////////////////////////////////////////////////////////////////////

// OrderedMap is a map that remembers the order in which its keys were first inserted.
//
// The keys are held in a list.List, so Clone shares the key order with the original until one of them is written
// to. An OrderedMap is not safe for concurrent use. The zero value is an empty OrderedMap ready to use.
type OrderedMap[K comparable, V any] struct {
	keys   *list.List[K]
	values *shrinkingmap.ShrinkingMap[K, V]
}

// New returns a new empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   list.New[K](),
		values: shrinkingmap.New[K, V](),
	}
}

// FromSeq creates a new OrderedMap from the given key-value pairs, keeping their order. Every key must appear only
// once.
func FromSeq[K comparable, V any](keysAndValues iter.Seq2[K, V]) *OrderedMap[K, V] {
	o := New[K, V]()
	for key, value := range keysAndValues {
		if o.Has(key) {
			panic(ierrors.Wrapf(ErrDuplicateKey, "key %s appears more than once", list.Describe(key)))
		}

		o.Set(key, value)
	}

	return o
}

// Clone returns a copy of the OrderedMap. The key order is shared until either map changes it.
func (o *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	o.initialize()

	cloned := &OrderedMap[K, V]{
		keys:   o.keys.Clone(),
		values: shrinkingmap.New[K, V](),
	}
	o.values.ForEach(func(key K, value V) bool {
		cloned.values.Set(key, value)

		return true
	})

	return cloned
}

// Len returns the number of entries in the OrderedMap.
func (o *OrderedMap[K, V]) Len() int {
	o.initialize()

	return o.keys.Len()
}

// IsEmpty returns true if the OrderedMap holds no entries.
func (o *OrderedMap[K, V]) IsEmpty() bool {
	return o.Len() == 0
}

// Has returns true if the given key exists.
func (o *OrderedMap[K, V]) Has(key K) bool {
	o.initialize()

	return o.values.Has(key)
}

// Get returns the value mapped to the given key and whether it exists.
func (o *OrderedMap[K, V]) Get(key K) (value V, exists bool) {
	o.initialize()

	return o.values.Get(key)
}

// GetOrDefault returns the value mapped to the given key, or defaultValue if the key does not exist.
func (o *OrderedMap[K, V]) GetOrDefault(key K, defaultValue V) V {
	if value, exists := o.Get(key); exists {
		return value
	}

	return defaultValue
}

// Set maps the given value to the given key. New keys are appended to the key order, existing keys keep their
// position. It returns the previous value and whether it existed.
func (o *OrderedMap[K, V]) Set(key K, value V) (previousValue V, previousValueExisted bool) {
	o.initialize()

	if previousValue, previousValueExisted = o.values.Get(key); !previousValueExisted {
		o.keys.Append(key)
	}

	o.values.Set(key, value)

	return previousValue, previousValueExisted
}

// Delete removes the entry with the given key and returns its value and whether it existed.
func (o *OrderedMap[K, V]) Delete(key K) (deletedValue V, deleted bool) {
	o.initialize()

	if deletedValue, deleted = o.values.Get(key); !deleted {
		return deletedValue, false
	}

	o.keys.Remove(lo.Return1(list.IndexOf(o.keys, key)))
	o.values.Delete(key)

	return deletedValue, true
}

// RemoveAll removes all entries.
func (o *OrderedMap[K, V]) RemoveAll(keepCapacity ...bool) {
	o.initialize()

	o.keys.RemoveAll(keepCapacity...)
	o.values = shrinkingmap.New[K, V]()
}

// IndexOfKey returns the position of the given key in the key order.
func (o *OrderedMap[K, V]) IndexOfKey(key K) (position int, exists bool) {
	o.initialize()

	index, exists := list.IndexOf(o.keys, key)
	if !exists {
		return -1, false
	}

	return index.Offset(), true
}

// At returns the entry at the given position, which must lie in [0, Len()).
func (o *OrderedMap[K, V]) At(position int) (key K, value V) {
	o.checkPosition(position, o.Len()-1)

	key = o.keys.At(o.keys.IndexAt(position))

	return key, lo.Return1(o.values.Get(key))
}

// SetAt replaces the entry at the given position, which must lie in [0, Len()), with the given key and value.
func (o *OrderedMap[K, V]) SetAt(position int, key K, value V) {
	o.checkPosition(position, o.Len()-1)

	o.ReplaceSubrange(position, position+1, types.Tuple[K, V]{A: key, B: value})
}

// ReplaceSubrange replaces the entries at the positions [from, to) with the given key-value pairs. The new keys must
// be distinct and must not exist outside the replaced range.
func (o *OrderedMap[K, V]) ReplaceSubrange(from, to int, entries ...types.Tuple[K, V]) {
	o.checkPosition(from, o.Len())
	o.checkPosition(to, o.Len())
	if from > to {
		panic(ierrors.Wrapf(ErrPositionOutOfRange, "lower bound %d lies after upper bound %d", from, to))
	}

	lower, upper := o.keys.IndexAt(from), o.keys.IndexAt(to)

	replacedKeys := make(map[K]struct{}, to-from)
	for index := lower; index.Less(upper); index = o.keys.IndexAfter(index) {
		replacedKeys[o.keys.At(index)] = struct{}{}
	}

	newKeys := make(map[K]struct{}, len(entries))
	for _, entry := range entries {
		if _, duplicate := newKeys[entry.A]; duplicate {
			panic(ierrors.Wrapf(ErrDuplicateKey, "key %s appears more than once", list.Describe(entry.A)))
		}

		if _, replaced := replacedKeys[entry.A]; !replaced && o.values.Has(entry.A) {
			panic(ierrors.Wrapf(ErrDuplicateKey, "key %s already exists outside of the replaced range", list.Describe(entry.A)))
		}

		newKeys[entry.A] = struct{}{}
	}

	for key := range replacedKeys {
		o.values.Delete(key)
	}

	for _, entry := range entries {
		o.values.Set(entry.A, entry.B)
	}

	o.keys.ReplaceSubrange(lower, upper, lo.Map(entries, func(entry types.Tuple[K, V]) K { return entry.A })...)
}

// All returns a sequence over the entries in key order.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		o.initialize()

		for key := range o.keys.All() {
			if !yield(key, lo.Return1(o.values.Get(key))) {
				return
			}
		}
	}
}

// Backward returns a sequence over the entries in reverse key order.
func (o *OrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		o.initialize()

		for key := range o.keys.Backward() {
			if !yield(key, lo.Return1(o.values.Get(key))) {
				return
			}
		}
	}
}

// ForEach iterates through the entries in key order. Returning false from the consumer aborts the iteration.
func (o *OrderedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	for key, value := range o.All() {
		if !consumer(key, value) {
			return false
		}
	}

	return true
}

// Keys returns the keys in order.
func (o *OrderedMap[K, V]) Keys() []K {
	o.initialize()

	return o.keys.Values()
}

// Values returns the values in key order.
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Len())
	for _, value := range o.All() {
		values = append(values, value)
	}

	return values
}

// String returns the entries in key order, e.g. ["a": 1, "b": 2], or [:] if the OrderedMap is empty.
func (o *OrderedMap[K, V]) String() string {
	if o.IsEmpty() {
		return "[:]"
	}

	var builder strings.Builder
	builder.WriteString("[")
	for key, value := range o.All() {
		if builder.Len() > 1 {
			builder.WriteString(", ")
		}

		builder.WriteString(list.Describe(key))
		builder.WriteString(": ")
		builder.WriteString(list.Describe(value))
	}
	builder.WriteString("]")

	return builder.String()
}

// initialize lazily initializes a zero OrderedMap value.
func (o *OrderedMap[K, V]) initialize() {
	if o.keys == nil {
		o.keys = list.New[K]()
	}

	if o.values == nil {
		o.values = shrinkingmap.New[K, V]()
	}
}

// checkPosition panics if the given position does not lie in [0, upperBound].
func (o *OrderedMap[K, V]) checkPosition(position, upperBound int) {
	if position < 0 || position > upperBound {
		panic(ierrors.Wrapf(ErrPositionOutOfRange, "position %d is not within [0, %d]", position, upperBound))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Transforming /////////////////////////////////////////////////////////////////////////////////////////////////

// MapValues returns a new OrderedMap with the same keys in the same order and the transformed values.
func MapValues[K comparable, V, T any](o *OrderedMap[K, V], transform func(V) T) *OrderedMap[K, T] {
	mapped := New[K, T]()
	for key, value := range o.All() {
		mapped.Set(key, transform(value))
	}

	return mapped
}

// CompactMapValues returns a new OrderedMap with the transformed values, leaving out the entries for which the
// transformation yields no value.
func CompactMapValues[K comparable, V, T any](o *OrderedMap[K, V], transform func(V) (T, bool)) *OrderedMap[K, T] {
	mapped := New[K, T]()
	for key, value := range o.All() {
		if transformed, exists := transform(value); exists {
			mapped.Set(key, transformed)
		}
	}

	return mapped
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Comparing ////////////////////////////////////////////////////////////////////////////////////////////////////

// Equal returns true if both maps hold equal entries in the same order.
func Equal[K, V comparable](a, b *OrderedMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but uses the given function to compare values.
func EqualFunc[K comparable, V any](a, b *OrderedMap[K, V], eq func(x, y V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	aKeys, bKeys := a.Keys(), b.Keys()
	for i, key := range aKeys {
		if bKeys[i] != key || !eq(lo.Return1(a.Get(key)), lo.Return1(b.Get(key))) {
			return false
		}
	}

	return true
}

// Hash returns the hash of the OrderedMap for the given seed. It does not depend on the key order, so maps that are
// Equal have the same hash.
func Hash[K, V comparable](seed maphash.Seed, o *OrderedMap[K, V]) uint64 {
	var combined uint64
	for key, value := range o.All() {
		var h maphash.Hash
		h.SetSeed(seed)
		maphash.WriteComparable(&h, key)
		maphash.WriteComparable(&h, value)

		combined ^= h.Sum64()
	}

	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, combined)

	return h.Sum64()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
