package workload

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnknownKind is returned for workload names that do not exist.
var ErrUnknownKind = ierrors.New("unknown workload kind")

// Kind names a workload.
type Kind string

const (
	// KindQueue enqueues all values and drains the queue again.
	KindQueue Kind = "queue"
	// KindStack pushes all values and pops them again.
	KindStack Kind = "stack"
	// KindDequeRotate rotates a deque by a third of its length.
	KindDequeRotate Kind = "deque-rotate"
	// KindSplice reverses the middle third of a shared list in place.
	KindSplice Kind = "splice"
	// KindCloneFork clones a list and writes to the clone.
	KindCloneFork Kind = "clone-fork"
	// KindBag counts the values in buckets.
	KindBag Kind = "bag"
	// KindOrderedMap indexes the values by bucket in insertion order.
	KindOrderedMap Kind = "orderedmap"
	// KindSort sorts a shared list.
	KindSort Kind = "sort"
)

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	kind := Kind(name)
	if _, exists := scenarios[kind]; !exists {
		return "", ierrors.Wrapf(ErrUnknownKind, "%q", name)
	}

	return kind, nil
}

func (k Kind) String() string {
	return string(k)
}
