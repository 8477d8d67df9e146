package list

import (
	"hash/maphash"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, Equal(New[int](), New[int]()))
	require.True(t, Equal(New(1, 2, 3), New(1, 2, 3)))
	require.False(t, Equal(New(1, 2, 3), New(1, 2)))
	require.False(t, Equal(New(1, 2, 3), New(1, 2, 4)))

	var zero List[int]
	require.True(t, Equal(&zero, New[int]()))

	original := New(1, 2, 3)
	cloned := original.Clone()
	require.True(t, Equal(original, cloned))

	cloned.Set(cloned.IndexAt(0), 1)
	require.True(t, Equal(original, cloned))

	require.True(t, EqualFunc(New("a", "B"), New("A", "b"), strings.EqualFold))
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	original := New(1, 2, 3)
	cloned := original.Clone()
	rebuilt := New[int]()
	rebuilt.AppendValues(3, 2, 1)
	rebuilt.MoveBackToFront()

	require.Equal(t, []int{1, 3, 2}, rebuilt.Values())
	rebuilt.ReplaceSubrange(rebuilt.IndexAt(1), rebuilt.EndIndex(), 2, 3)

	require.Equal(t, Hash(seed, original), Hash(seed, cloned))
	require.Equal(t, Hash(seed, original), Hash(seed, rebuilt))
	require.NotEqual(t, Hash(seed, original), Hash(seed, New(3, 2, 1)))
	require.NotEqual(t, Hash(seed, New[int]()), Hash(seed, New(0)))
}
