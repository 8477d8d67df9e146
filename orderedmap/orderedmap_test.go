package orderedmap

import (
	"hash/maphash"
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/vds/testutil"
)

func TestOrderedMap_Size(t *testing.T) {
	orderedMap := New[int, int]()

	require.Equal(t, 0, orderedMap.Len())
	require.True(t, orderedMap.IsEmpty())

	orderedMap.Set(1, 1)

	require.Equal(t, 1, orderedMap.Len())

	orderedMap.Set(3, 1)
	orderedMap.Set(2, 1)

	require.Equal(t, 3, orderedMap.Len())
	require.False(t, orderedMap.IsEmpty())

	orderedMap.Set(2, 2)

	require.Equal(t, 3, orderedMap.Len())

	orderedMap.Delete(2)

	require.Equal(t, 2, orderedMap.Len())
	require.Equal(t, []int{1, 3}, orderedMap.Keys())
}

func TestOrderedMap_SetGetDelete(t *testing.T) {
	var orderedMap OrderedMap[string, int]

	_, existed := orderedMap.Set("b", 1)
	require.False(t, existed)
	orderedMap.Set("a", 2)
	orderedMap.Set("c", 3)

	previous, existed := orderedMap.Set("a", 20)
	require.True(t, existed)
	require.Equal(t, 2, previous)
	require.Equal(t, []string{"b", "a", "c"}, orderedMap.Keys())
	require.Equal(t, []int{1, 20, 3}, orderedMap.Values())

	value, exists := orderedMap.Get("a")
	require.True(t, exists)
	require.Equal(t, 20, value)

	_, exists = orderedMap.Get("z")
	require.False(t, exists)
	require.Equal(t, 7, orderedMap.GetOrDefault("z", 7))
	require.True(t, orderedMap.Has("c"))

	deleted, wasDeleted := orderedMap.Delete("a")
	require.True(t, wasDeleted)
	require.Equal(t, 20, deleted)
	_, wasDeleted = orderedMap.Delete("a")
	require.False(t, wasDeleted)
	require.Equal(t, []string{"b", "c"}, orderedMap.Keys())

	orderedMap.Set("a", 1)
	require.Equal(t, []string{"b", "c", "a"}, orderedMap.Keys())

	orderedMap.RemoveAll()
	require.True(t, orderedMap.IsEmpty())
	require.Empty(t, orderedMap.Keys())
}

func TestOrderedMap_Positions(t *testing.T) {
	orderedMap := FromSeq(func(yield func(string, int) bool) {
		_ = yield("a", 1) && yield("b", 2) && yield("c", 3)
	})

	key, value := orderedMap.At(1)
	require.Equal(t, "b", key)
	require.Equal(t, 2, value)

	position, exists := orderedMap.IndexOfKey("c")
	require.True(t, exists)
	require.Equal(t, 2, position)

	_, exists = orderedMap.IndexOfKey("z")
	require.False(t, exists)

	orderedMap.SetAt(1, "x", 10)
	require.Equal(t, []string{"a", "x", "c"}, orderedMap.Keys())
	require.False(t, orderedMap.Has("b"))

	orderedMap.SetAt(1, "x", 11)
	require.Equal(t, 11, orderedMap.GetOrDefault("x", 0))

	testutil.RequirePanicsWithError(t, ErrPositionOutOfRange, func() { orderedMap.At(3) })
	testutil.RequirePanicsWithError(t, ErrPositionOutOfRange, func() { orderedMap.At(-1) })
	testutil.RequirePanicsWithError(t, ErrPositionOutOfRange, func() { orderedMap.SetAt(3, "y", 1) })
	testutil.RequirePanicsWithError(t, ErrDuplicateKey, func() { orderedMap.SetAt(0, "c", 1) })
	require.Equal(t, []string{"a", "x", "c"}, orderedMap.Keys())
}

func TestOrderedMap_ReplaceSubrange(t *testing.T) {
	orderedMap := FromSeq(slices.All([]string{"zero", "one", "two", "three"}))

	orderedMap.ReplaceSubrange(1, 3, types.Tuple[int, string]{A: 10, B: "ten"}, types.Tuple[int, string]{A: 2, B: "TWO"})
	require.Equal(t, []int{0, 10, 2, 3}, orderedMap.Keys())
	require.Equal(t, []string{"zero", "ten", "TWO", "three"}, orderedMap.Values())
	require.False(t, orderedMap.Has(1))

	orderedMap.ReplaceSubrange(4, 4, types.Tuple[int, string]{A: 4, B: "four"})
	require.Equal(t, []int{0, 10, 2, 3, 4}, orderedMap.Keys())

	orderedMap.ReplaceSubrange(0, 2)
	require.Equal(t, []int{2, 3, 4}, orderedMap.Keys())

	testutil.RequirePanicsWithError(t, ErrPositionOutOfRange, func() { orderedMap.ReplaceSubrange(2, 1) })
	testutil.RequirePanicsWithError(t, ErrPositionOutOfRange, func() { orderedMap.ReplaceSubrange(0, 4) })
	testutil.RequirePanicsWithError(t, ErrDuplicateKey, func() {
		orderedMap.ReplaceSubrange(0, 0, types.Tuple[int, string]{A: 5}, types.Tuple[int, string]{A: 5})
	})
	require.Equal(t, []int{2, 3, 4}, orderedMap.Keys())
}

func TestOrderedMap_FromSeq(t *testing.T) {
	testutil.RequirePanicsWithError(t, ErrDuplicateKey, func() {
		FromSeq(func(yield func(string, int) bool) {
			_ = yield("a", 1) && yield("a", 2)
		})
	})
}

func TestOrderedMap_Iteration(t *testing.T) {
	orderedMap := New[string, int]()
	for i := range 5 {
		orderedMap.Set(strconv.Itoa(4-i), i)
	}

	var keys []string
	for key := range orderedMap.All() {
		keys = append(keys, key)
	}
	require.Equal(t, []string{"4", "3", "2", "1", "0"}, keys)

	var values []int
	for _, value := range orderedMap.Backward() {
		values = append(values, value)
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, values)

	visited := 0
	require.False(t, orderedMap.ForEach(func(key string, value int) bool {
		visited++

		return value < 2
	}))
	require.Equal(t, 3, visited)

	require.Equal(t, map[string]int{"4": 0, "3": 1, "2": 2, "1": 3, "0": 4}, maps.Collect(orderedMap.All()))
}

func TestOrderedMap_Transforming(t *testing.T) {
	orderedMap := FromSeq(slices.All([]string{"1", "x", "3"}))

	lengths := MapValues(orderedMap, func(value string) int { return len(value) * 2 })
	require.Equal(t, []int{0, 1, 2}, lengths.Keys())
	require.Equal(t, []int{2, 2, 2}, lengths.Values())

	parsed := CompactMapValues(orderedMap, func(value string) (int, bool) {
		number, err := strconv.Atoi(value)

		return number, err == nil
	})
	require.Equal(t, []int{0, 2}, parsed.Keys())
	require.Equal(t, []int{1, 3}, parsed.Values())
}

func TestOrderedMap_ValueSemantics(t *testing.T) {
	original := FromSeq(slices.All([]string{"a", "b"}))
	cloned := original.Clone()
	require.True(t, Equal(original, cloned))

	cloned.Set(2, "c")
	cloned.Set(0, "A")
	cloned.Delete(1)

	require.Equal(t, []int{0, 1}, original.Keys())
	require.Equal(t, []string{"a", "b"}, original.Values())
	require.Equal(t, []int{0, 2}, cloned.Keys())
	require.Equal(t, []string{"A", "c"}, cloned.Values())
}

func TestOrderedMap_Equality(t *testing.T) {
	seed := maphash.MakeSeed()

	ab := FromSeq(maps.All(map[string]int{"a": 1}))
	ab.Set("b", 2)
	ba := FromSeq(maps.All(map[string]int{"b": 2}))
	ba.Set("a", 1)

	require.False(t, Equal(ab, ba))
	require.Equal(t, Hash(seed, ab), Hash(seed, ba))

	abCopy := ab.Clone()
	require.True(t, Equal(ab, abCopy))
	require.Equal(t, Hash(seed, ab), Hash(seed, abCopy))

	abCopy.Set("b", 3)
	require.False(t, Equal(ab, abCopy))
	require.NotEqual(t, Hash(seed, ab), Hash(seed, abCopy))

	require.True(t, EqualFunc(ab, abCopy, func(x, y int) bool { return x > 0 && y > 0 }))
	require.True(t, Equal(New[string, int](), New[string, int]()))
}

func TestOrderedMap_String(t *testing.T) {
	require.Equal(t, "[:]", New[string, int]().String())

	orderedMap := New[string, int]()
	orderedMap.Set("b", 2)
	orderedMap.Set("a", 1)
	require.Equal(t, `["b": 2, "a": 1]`, orderedMap.String())

	numbers := New[int, string]()
	numbers.Set(1, "one")
	require.Equal(t, `[1: "one"]`, numbers.String())
}
