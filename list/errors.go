package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidIndex is raised when an Index is used with a List it was not taken from, or after the List was
	// structurally modified.
	ErrInvalidIndex = ierrors.New("invalid list index")

	// ErrIndexOutOfRange is raised when an Index or offset lies outside the bounds of the List.
	ErrIndexOutOfRange = ierrors.New("list index out of range")

	// ErrInvalidRange is raised when the lower bound of a range lies after its upper bound.
	ErrInvalidRange = ierrors.New("invalid list range")

	// ErrEmpty is raised when an element is forcibly removed from an empty List.
	ErrEmpty = ierrors.New("list is empty")
)
