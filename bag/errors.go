package bag

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrNonPositiveCount is raised when a non-positive count is added to or removed from a Bag.
	ErrNonPositiveCount = ierrors.New("count must be greater than 0")

	// ErrNegativeCount is raised when the count of an item is set to a negative number.
	ErrNegativeCount = ierrors.New("count must not be negative")

	// ErrDuplicateItem is raised when a Bag is created from item-count pairs that contain the same item twice.
	ErrDuplicateItem = ierrors.New("item-count pairs contain a duplicate item")
)
