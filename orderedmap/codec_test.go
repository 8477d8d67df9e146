package orderedmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

type point struct {
	X int
	Y int
}

func TestOrderedMap_JSON_StringKeys(t *testing.T) {
	orderedMap := New[string, int]()
	orderedMap.Set("zebra", 1)
	orderedMap.Set("apple", 2)

	encoded, err := json.Marshal(orderedMap)
	require.NoError(t, err)
	require.Equal(t, `{"zebra":1,"apple":2}`, string(encoded))

	decoded := New[string, int]()
	require.NoError(t, json.Unmarshal([]byte(`{"b": 2, "c": 3, "a": 1}`), decoded))
	require.Equal(t, []string{"b", "c", "a"}, decoded.Keys())
	require.Equal(t, []int{2, 3, 1}, decoded.Values())

	require.NoError(t, json.Unmarshal([]byte(`{}`), decoded))
	require.True(t, decoded.IsEmpty())

	require.Error(t, json.Unmarshal([]byte(`["a", 1]`), decoded))
	require.Error(t, json.Unmarshal([]byte(`{"a": "x"}`), decoded))
}

func TestOrderedMap_JSON_IntegerKeys(t *testing.T) {
	orderedMap := New[int, string]()
	orderedMap.Set(3, "c")
	orderedMap.Set(-1, "a")

	encoded, err := json.Marshal(orderedMap)
	require.NoError(t, err)
	require.Equal(t, `{"3":"c","-1":"a"}`, string(encoded))

	decoded := New[int, string]()
	require.NoError(t, json.Unmarshal(encoded, decoded))
	require.True(t, Equal(orderedMap, decoded))

	err = json.Unmarshal([]byte(`{"1": "a", "two": "b"}`), decoded)
	require.Error(t, err)
	require.True(t, ierrors.Is(err, ErrUnsupportedKey))
	require.True(t, Equal(orderedMap, decoded))

	unsigned := New[uint8, bool]()
	require.NoError(t, json.Unmarshal([]byte(`{"7": true, "255": false}`), unsigned))
	require.Equal(t, []uint8{7, 255}, unsigned.Keys())
	require.Error(t, json.Unmarshal([]byte(`{"256": true}`), unsigned))
}

func TestOrderedMap_JSON_OtherKeys(t *testing.T) {
	orderedMap := New[point, string]()
	orderedMap.Set(point{X: 1, Y: 2}, "a")
	orderedMap.Set(point{X: 0, Y: 0}, "origin")

	encoded, err := json.Marshal(orderedMap)
	require.NoError(t, err)
	require.Equal(t, `[{"X":1,"Y":2},"a",{"X":0,"Y":0},"origin"]`, string(encoded))

	decoded := New[point, string]()
	require.NoError(t, json.Unmarshal(encoded, decoded))
	require.True(t, Equal(orderedMap, decoded))

	err = json.Unmarshal([]byte(`[{"X":1,"Y":2},"a",{"X":3,"Y":4}]`), decoded)
	require.Error(t, err)
	require.True(t, ierrors.Is(err, ErrOddLength))

	encoded, err = json.Marshal(New[point, string]())
	require.NoError(t, err)
	require.Equal(t, `[]`, string(encoded))
}

func TestOrderedMap_EncodeDecode(t *testing.T) {
	api := serix.NewAPI()

	orderedMap := New[uint32, int64]()
	orderedMap.Set(3, -3)
	orderedMap.Set(1, 1)
	orderedMap.Set(2, 1<<40)

	encoded, err := orderedMap.Encode(api)
	require.NoError(t, err)
	require.Len(t, encoded, 4+3*(4+8))

	decoded := New[uint32, int64]()
	decoded.Set(9, 9)
	bytesRead, err := decoded.Decode(api, encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), bytesRead)
	require.True(t, Equal(orderedMap, decoded))
	require.Equal(t, []uint32{3, 1, 2}, decoded.Keys())

	_, err = decoded.Decode(api, encoded[:len(encoded)-1])
	require.Error(t, err)
	require.True(t, Equal(orderedMap, decoded))
}
