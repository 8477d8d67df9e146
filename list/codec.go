package list

import (
	"context"
	"encoding/json"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// MarshalJSON encodes the List as a JSON array in traversal order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the content of the List with the elements of a JSON array.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var values []T
	if err := json.Unmarshal(b, &values); err != nil {
		return ierrors.Wrap(err, "failed to unmarshal list")
	}

	l.lazyInit()
	l.replace(0, l.chain.count, l.chain.head, nil, newRunOfValues(values))

	return nil
}

// Encode returns a serialized byte slice of the List: the number of elements followed by the serix encoding of every
// element.
func (l *List[T]) Encode(api *serix.API) ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(l.Len()), func(err error) error {
		return ierrors.Wrap(err, "failed to write list length to serializer")
	})

	for value := range l.All() {
		valueBytes, err := api.Encode(context.Background(), value)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode list element")
			})

			break
		}

		seri.WriteBytes(valueBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write list element to serializer")
		})
	}

	return seri.Serialize()
}

// Decode deserializes the given bytes into the List, replacing its content, and returns the number of bytes read.
func (l *List[T]) Decode(api *serix.API, b []byte) (bytesRead int, err error) {
	var length uint32
	bytesReadLength, err := api.Decode(context.Background(), b, &length)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to decode list length")
	}
	bytesRead += bytesReadLength

	decoded := new(run[T])
	for range length {
		var value T
		bytesReadValue, err := api.Decode(context.Background(), b[bytesRead:], &value)
		if err != nil {
			return 0, ierrors.Wrapf(err, "failed to decode list element %d", decoded.count)
		}
		bytesRead += bytesReadValue

		decoded.pushBack(value)
	}

	l.lazyInit()
	l.replace(0, l.chain.count, l.chain.head, nil, decoded)

	return bytesRead, nil
}
