package orderedmap

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// region JSON /////////////////////////////////////////////////////////////////////////////////////////////////////////

// MarshalJSON encodes the OrderedMap in key order.
//
// Maps with string or integer keys are encoded as JSON objects. All other maps are encoded as a flat JSON array of
// alternating keys and values.
func (o *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer

	objectEncoded := isObjectKey[K]()
	if objectEncoded {
		buffer.WriteByte('{')
	} else {
		buffer.WriteByte('[')
	}

	for key, value := range o.All() {
		if buffer.Len() > 1 {
			buffer.WriteByte(',')
		}

		var encodedKey []byte
		var err error
		if objectEncoded {
			encodedKey, err = json.Marshal(formatKey(key))
		} else {
			encodedKey, err = json.Marshal(key)
		}
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to marshal key")
		}
		buffer.Write(encodedKey)

		if objectEncoded {
			buffer.WriteByte(':')
		} else {
			buffer.WriteByte(',')
		}

		encodedValue, err := json.Marshal(value)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to marshal value of key %s", formatKey(key))
		}
		buffer.Write(encodedValue)
	}

	if objectEncoded {
		buffer.WriteByte('}')
	} else {
		buffer.WriteByte(']')
	}

	return buffer.Bytes(), nil
}

// UnmarshalJSON replaces the content of the OrderedMap with the decoded entries, keeping the order in which they
// appear. A key that appears twice keeps its first position and the last value.
func (o *OrderedMap[K, V]) UnmarshalJSON(b []byte) error {
	var decoded *OrderedMap[K, V]
	var err error
	if isObjectKey[K]() {
		decoded, err = unmarshalObject[K, V](b)
	} else {
		decoded, err = unmarshalPairs[K, V](b)
	}

	if err != nil {
		return ierrors.Wrap(err, "failed to unmarshal ordered map")
	}

	*o = *decoded

	return nil
}

// unmarshalObject decodes a JSON object while keeping the order of its members.
func unmarshalObject[K comparable, V any](b []byte) (*OrderedMap[K, V], error) {
	decoder := json.NewDecoder(bytes.NewReader(b))

	if err := expectDelimiter(decoder, '{'); err != nil {
		return nil, err
	}

	decoded := New[K, V]()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, err := parseKey[K](token.(string))
		if err != nil {
			return nil, err
		}

		var value V
		if err := decoder.Decode(&value); err != nil {
			return nil, ierrors.Wrapf(err, "failed to decode value of key %s", token)
		}

		decoded.Set(key, value)
	}

	if err := expectDelimiter(decoder, '}'); err != nil {
		return nil, err
	}

	return decoded, nil
}

// unmarshalPairs decodes a flat JSON array of alternating keys and values.
func unmarshalPairs[K comparable, V any](b []byte) (*OrderedMap[K, V], error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(b, &elements); err != nil {
		return nil, err
	}

	if len(elements)%2 != 0 {
		return nil, ierrors.Wrapf(ErrOddLength, "array has %d elements", len(elements))
	}

	decoded := New[K, V]()
	for i := 0; i < len(elements); i += 2 {
		var key K
		if err := json.Unmarshal(elements[i], &key); err != nil {
			return nil, ierrors.Wrapf(err, "failed to decode key at position %d", i)
		}

		var value V
		if err := json.Unmarshal(elements[i+1], &value); err != nil {
			return nil, ierrors.Wrapf(err, "failed to decode value at position %d", i+1)
		}

		decoded.Set(key, value)
	}

	return decoded, nil
}

// expectDelimiter reads the next token and makes sure it is the given delimiter.
func expectDelimiter(decoder *json.Decoder, expected json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if delimiter, isDelimiter := token.(json.Delim); !isDelimiter || delimiter != expected {
		return ierrors.Errorf("expected %s but found %v", expected, token)
	}

	return nil
}

// isObjectKey returns true if keys of the given type are encoded as the member names of a JSON object.
func isObjectKey[K comparable]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// formatKey renders a string or integer key as a JSON member name.
func formatKey[K comparable](key K) string {
	value := reflect.ValueOf(key)

	switch {
	case value.CanInt():
		return strconv.FormatInt(value.Int(), 10)
	case value.CanUint():
		return strconv.FormatUint(value.Uint(), 10)
	default:
		return value.String()
	}
}

// parseKey converts a JSON member name to a string or integer key.
func parseKey[K comparable](name string) (key K, err error) {
	value := reflect.ValueOf(&key).Elem()

	switch {
	case value.CanInt():
		parsed, err := strconv.ParseInt(name, 10, value.Type().Bits())
		if err != nil {
			return key, ierrors.Wrapf(ErrUnsupportedKey, "expected an integer key but found %q", name)
		}
		value.SetInt(parsed)
	case value.CanUint():
		parsed, err := strconv.ParseUint(name, 10, value.Type().Bits())
		if err != nil {
			return key, ierrors.Wrapf(ErrUnsupportedKey, "expected an unsigned integer key but found %q", name)
		}
		value.SetUint(parsed)
	default:
		value.SetString(name)
	}

	return key, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Binary ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Encode returns a serialized byte slice of the OrderedMap: the number of entries followed by the serix encoding of
// every key and value in key order.
func (o *OrderedMap[K, V]) Encode(api *serix.API) ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(o.Len()), func(err error) error {
		return ierrors.Wrap(err, "failed to write OrderedMap size to serializer")
	})

	o.ForEach(func(key K, value V) bool {
		keyBytes, err := api.Encode(context.Background(), key)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode OrderedMap key")
			})

			return false
		}
		seri.WriteBytes(keyBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write OrderedMap key to serializer")
		})

		valueBytes, err := api.Encode(context.Background(), value)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode OrderedMap value")
			})

			return false
		}
		seri.WriteBytes(valueBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write OrderedMap value to serializer")
		})

		return true
	})

	return seri.Serialize()
}

// Decode deserializes the given bytes into the OrderedMap, replacing its content, and returns the number of bytes
// read.
func (o *OrderedMap[K, V]) Decode(api *serix.API, b []byte) (bytesRead int, err error) {
	var mapSize uint32
	bytesReadSize, err := api.Decode(context.Background(), b, &mapSize)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to decode OrderedMap size")
	}
	bytesRead += bytesReadSize

	decoded := New[K, V]()
	for range mapSize {
		var key K
		bytesReadKey, err := api.Decode(context.Background(), b[bytesRead:], &key)
		if err != nil {
			return 0, ierrors.Wrap(err, "failed to decode OrderedMap key")
		}
		bytesRead += bytesReadKey

		var value V
		bytesReadValue, err := api.Decode(context.Background(), b[bytesRead:], &value)
		if err != nil {
			return 0, ierrors.Wrap(err, "failed to decode OrderedMap value")
		}
		bytesRead += bytesReadValue

		if _, existed := decoded.Set(key, value); existed {
			return 0, ierrors.Wrapf(ErrDuplicateKey, "failed to decode OrderedMap entry %d", decoded.Len())
		}
	}

	*o = *decoded

	return bytesRead, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
