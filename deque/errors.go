package deque

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrNonPositiveRotation is raised when a Deque is rotated by zero or a negative number of positions.
var ErrNonPositiveRotation = ierrors.New("rotation requires a positive number of positions")
