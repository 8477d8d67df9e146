package orderedmap

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrDuplicateKey is raised when the same key would be stored twice.
	ErrDuplicateKey = ierrors.New("duplicate key")

	// ErrPositionOutOfRange is raised when a position does not lie within the bounds of an OrderedMap.
	ErrPositionOutOfRange = ierrors.New("position out of range")

	// ErrUnsupportedKey is returned when a JSON object key cannot be converted to the key type.
	ErrUnsupportedKey = ierrors.New("unsupported key")

	// ErrOddLength is returned when a JSON array of key-value pairs has an odd number of elements.
	ErrOddLength = ierrors.New("expected alternating keys and values but found an odd number of elements")
)
